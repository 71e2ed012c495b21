package scheduler

import (
	"sort"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

// VoteTally maps a date to the number of distinct participants who listed it
type VoteTally map[string]int

// AvailabilityIndex aggregates participant submissions per date
type AvailabilityIndex struct {
	// Tally is the vote count per date
	Tally VoteTally

	// Voters holds, for each date, the sorted identifiers of participants who listed it
	Voters map[string][]string

	// participantDates is the de-duplicated availability of each participant, keyed by identifier
	participantDates map[string]map[string]bool
}

// BuildAvailabilityIndex builds the vote tally and voter lists for the given participants.
// A participant contributes at most one vote per distinct date.
func BuildAvailabilityIndex(participants []model.Participant) *AvailabilityIndex {
	index := &AvailabilityIndex{
		Tally:            make(VoteTally),
		Voters:           make(map[string][]string),
		participantDates: make(map[string]map[string]bool, len(participants)),
	}

	for _, p := range participants {
		dates, exists := index.participantDates[p.ID]
		if !exists {
			dates = make(map[string]bool, len(p.AvailableDates))
			index.participantDates[p.ID] = dates
		}

		for _, date := range p.AvailableDates {
			if dates[date] {
				continue
			}
			dates[date] = true
			index.Tally[date]++
			index.Voters[date] = append(index.Voters[date], p.ID)
		}
	}

	// Input order must not leak into the voter lists
	for _, voters := range index.Voters {
		sort.Strings(voters)
	}

	return index
}

// IsAvailable reports whether the participant listed the date
func (a *AvailabilityIndex) IsAvailable(participantID, date string) bool {
	return a.participantDates[participantID][date]
}

// Attendance counts how many of the dates the participant listed
func (a *AvailabilityIndex) Attendance(participantID string, dates []string) int {
	count := 0
	for _, date := range dates {
		if a.IsAvailable(participantID, date) {
			count++
		}
	}
	return count
}
