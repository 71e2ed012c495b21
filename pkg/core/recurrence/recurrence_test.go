package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_WeeklySaturdays(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) // Saturday
	until := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	dates, err := Expand("FREQ=WEEKLY;BYDAY=SA", from, until)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-01", "2024-06-08", "2024-06-15", "2024-06-22", "2024-06-29"}, dates)
}

func TestExpand_CountLimitsOccurrences(t *testing.T) {
	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	dates, err := Expand("FREQ=DAILY;COUNT=3", from, until)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-05"}, dates)
}

func TestExpand_InvalidRule(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := Expand("NOT_A_RULE", from, from.AddDate(0, 0, 7))
	assert.Error(t, err)
}

func TestExpand_InvalidWindow(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := Expand("FREQ=DAILY", from, from.AddDate(0, 0, -1))
	assert.ErrorContains(t, err, "before start")

	_, err = Expand("FREQ=DAILY", from, from.AddDate(2, 0, 0))
	assert.ErrorContains(t, err, "exceeds")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("FREQ=WEEKLY;BYDAY=MO,WE"))
	assert.Error(t, Validate("FREQ=SOMETIMES"))
}
