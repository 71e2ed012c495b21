package scheduler

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

// ParticipantStats summarises one participant's attendance over the final dates
type ParticipantStats struct {
	ParticipantID  string
	DisplayName    string
	AttendingCount int
	AttendingDates []string
}

// DateStats is the number of participants available on a final date
type DateStats struct {
	Date         string
	Participants int
}

// ScheduleStats is a read-only summary of a selection for presentation
type ScheduleStats struct {
	TotalMeetings    int
	Participants     []ParticipantStats
	Dates            []DateStats
	MeanAttendance   float64
	StdDevAttendance float64
}

// Statistics summarises attendance over the final dates.
// Participants are sorted by display name then identifier; dates chronologically.
func Statistics(finalDates []string, participants []model.Participant) ScheduleStats {
	index := BuildAvailabilityIndex(participants)
	chronological := slices.Sorted(slices.Values(finalDates))

	stats := ScheduleStats{
		TotalMeetings: len(finalDates),
		Participants:  make([]ParticipantStats, 0, len(participants)),
		Dates:         make([]DateStats, 0, len(chronological)),
	}

	counts := make([]float64, 0, len(participants))
	for _, p := range participants {
		attending := make([]string, 0)
		for _, date := range chronological {
			if index.IsAvailable(p.ID, date) {
				attending = append(attending, date)
			}
		}

		stats.Participants = append(stats.Participants, ParticipantStats{
			ParticipantID:  p.ID,
			DisplayName:    p.DisplayName,
			AttendingCount: len(attending),
			AttendingDates: attending,
		})
		counts = append(counts, float64(len(attending)))
	}

	sort.Slice(stats.Participants, func(i, j int) bool {
		a, b := stats.Participants[i], stats.Participants[j]
		if a.DisplayName != b.DisplayName {
			return a.DisplayName < b.DisplayName
		}
		return a.ParticipantID < b.ParticipantID
	})

	for _, date := range chronological {
		stats.Dates = append(stats.Dates, DateStats{Date: date, Participants: index.Tally[date]})
	}

	if len(counts) > 0 {
		stats.MeanAttendance, stats.StdDevAttendance = stat.PopMeanStdDev(counts, nil)
	}

	return stats
}
