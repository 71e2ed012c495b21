package scheduler

import (
	"math"
	"slices"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

// CoreDateFraction is the share of final dates flagged as core dates
const CoreDateFraction = 0.25

// BuildAssignments intersects the final dates with each participant's availability.
// Every participant gets an entry, in ascending chronological order, empty when they attend nothing.
func BuildAssignments(finalDates []string, participants []model.Participant, index *AvailabilityIndex) map[string][]string {
	chronological := slices.Sorted(slices.Values(finalDates))

	assignments := make(map[string][]string, len(participants))
	for _, p := range participants {
		dates := make([]string, 0)
		for _, date := range chronological {
			if index.IsAvailable(p.ID, date) {
				dates = append(dates, date)
			}
		}
		assignments[p.ID] = dates
	}

	return assignments
}

// CoreDates returns the earliest quarter (at least one) of the final dates in chronological order
func CoreDates(finalDates []string) []string {
	if len(finalDates) == 0 {
		return []string{}
	}

	chronological := slices.Sorted(slices.Values(finalDates))
	return chronological[:coreDateCount(len(chronological))]
}

func coreDateCount(n int) int {
	return max(1, int(math.Ceil(float64(n)*CoreDateFraction)))
}
