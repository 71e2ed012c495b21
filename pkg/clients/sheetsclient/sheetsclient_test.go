package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAvailability(t *testing.T) {
	raw := [][]interface{}{
		{"Timestamp", " name ", "Dates"},
		{"t1", "Alice", "2024-05-01, 2024-05-02"},
		{"t2", "", "2024-05-03"},
		{"t3", "  Bob ", "2024-05-02;2024-05-04\n2024-05-05"},
		{"t4", "Carol"},
	}

	rows, err := parseAvailability(raw)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, AvailabilityRow{Row: 2, Name: "Alice", Dates: []string{"2024-05-01", "2024-05-02"}}, rows[0])
	assert.Equal(t, AvailabilityRow{Row: 4, Name: "Bob", Dates: []string{"2024-05-02", "2024-05-04", "2024-05-05"}}, rows[1])
	assert.Equal(t, "Carol", rows[2].Name)
	assert.Empty(t, rows[2].Dates)
}

func TestParseAvailability_MissingColumns(t *testing.T) {
	_, err := parseAvailability([][]interface{}{{"Name"}})
	assert.ErrorContains(t, err, "Dates")

	_, err = parseAvailability([][]interface{}{{"Dates"}})
	assert.ErrorContains(t, err, "Name")

	_, err = parseAvailability(nil)
	assert.Error(t, err)
}

func TestCellString(t *testing.T) {
	row := []interface{}{"a", 42, nil}
	assert.Equal(t, "a", cellString(row, 0))
	assert.Equal(t, "42", cellString(row, 1))
	assert.Equal(t, "", cellString(row, 2))
	assert.Equal(t, "", cellString(row, 5))
	assert.Equal(t, "", cellString(row, -1))
}

func TestBuildScheduleValues(t *testing.T) {
	schedule := &PublishedSchedule{
		Rows: []PublishedScheduleRow{
			{Date: "2024-05-01", Weekday: "Wednesday", Attendees: []string{"Alice", "Bob"}, Core: true},
			{Date: "2024-05-03", Weekday: "Friday", Attendees: []string{"Carol"}},
		},
		Warnings: []string{"participants below the minimum of 2 meetings: Carol (1)"},
	}

	values := buildScheduleValues(schedule)

	assert.Equal(t, [][]interface{}{
		{"Date", "Day", "Core", "Attendee 1", "Attendee 2"},
		{"2024-05-01", "Wednesday", "Yes", "Alice", "Bob"},
		{"2024-05-03", "Friday", "", "Carol", ""},
		{},
		{"Warnings"},
		{"participants below the minimum of 2 meetings: Carol (1)"},
	}, values)
}

func TestBuildScheduleValues_Empty(t *testing.T) {
	values := buildScheduleValues(&PublishedSchedule{})

	assert.Equal(t, [][]interface{}{
		{"Date", "Day", "Core"},
		{"No meeting dates selected"},
	}, values)
}
