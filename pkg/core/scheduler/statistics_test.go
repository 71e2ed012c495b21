package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

func TestStatistics_Summary(t *testing.T) {
	participants := []model.Participant{
		{ID: "2", DisplayName: "Bea", AvailableDates: []string{d1, d2}},
		{ID: "1", DisplayName: "Al", AvailableDates: []string{d2, d3}},
		{ID: "3", DisplayName: "Cy", AvailableDates: []string{d4}},
	}

	stats := Statistics([]string{d2, d1}, participants)

	assert.Equal(t, 2, stats.TotalMeetings)

	require.Len(t, stats.Participants, 3)
	assert.Equal(t, ParticipantStats{ParticipantID: "1", DisplayName: "Al", AttendingCount: 1, AttendingDates: []string{d2}}, stats.Participants[0])
	assert.Equal(t, ParticipantStats{ParticipantID: "2", DisplayName: "Bea", AttendingCount: 2, AttendingDates: []string{d1, d2}}, stats.Participants[1])
	assert.Equal(t, 0, stats.Participants[2].AttendingCount)
	assert.Empty(t, stats.Participants[2].AttendingDates)

	assert.Equal(t, []DateStats{{Date: d1, Participants: 1}, {Date: d2, Participants: 2}}, stats.Dates)

	// Attendance counts 1, 2, 0
	assert.InDelta(t, 1.0, stats.MeanAttendance, 1e-9)
	assert.InDelta(t, 0.816496580927726, stats.StdDevAttendance, 1e-9)
}

func TestStatistics_NoParticipants(t *testing.T) {
	stats := Statistics([]string{}, nil)

	assert.Equal(t, 0, stats.TotalMeetings)
	assert.Empty(t, stats.Participants)
	assert.Zero(t, stats.MeanAttendance)
	assert.Zero(t, stats.StdDevAttendance)
}
