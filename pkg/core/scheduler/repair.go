package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

// MaxRepairCandidates is the most valid dates the shortfall repair will consider beyond the baseline
const MaxRepairCandidates = 20

// RepairShortfall extends the selected dates so every participant can attend at least
// minPerPerson of them. Valid dates after the baseline are scanned in rank order, at most
// MaxRepairCandidates of them. A candidate that satisfies everyone is committed immediately;
// otherwise a candidate is kept only if it strictly reduces the number of unsatisfied participants.
//
// selected must be a prefix of valid (as produced by SelectBaseline).
func RepairShortfall(
	selected []string,
	valid []Candidate,
	participants []model.Participant,
	index *AvailabilityIndex,
	minPerPerson int,
	warnings *WarningCollector,
) []string {
	best := append([]string{}, selected...)
	if minPerPerson <= 0 {
		return best
	}

	// Attendance per participant for the best set so far
	attendance := make(map[string]int, len(participants))
	for _, p := range participants {
		attendance[p.ID] = index.Attendance(p.ID, best)
	}

	unsatisfied := countUnsatisfied(attendance, minPerPerson)
	if unsatisfied == 0 {
		return best
	}

	start := len(selected)
	end := min(len(valid), start+MaxRepairCandidates)

	for i := start; i < end; i++ {
		date := valid[i].Date

		// Only voters of this date gain attendance; those one short become satisfied
		tentativeUnsatisfied := unsatisfied
		for _, id := range index.Voters[date] {
			if attendance[id] == minPerPerson-1 {
				tentativeUnsatisfied--
			}
		}

		if tentativeUnsatisfied >= unsatisfied {
			continue
		}

		best = append(best, date)
		for _, id := range index.Voters[date] {
			attendance[id]++
		}
		unsatisfied = tentativeUnsatisfied

		if unsatisfied == 0 {
			return best
		}
	}

	warnings.Addf("participants below the minimum of %d meetings: %s",
		minPerPerson, describeInsufficient(participants, attendance, minPerPerson))

	return best
}

// countUnsatisfied counts participants whose attendance is below the threshold
func countUnsatisfied(attendance map[string]int, minPerPerson int) int {
	count := 0
	for _, n := range attendance {
		if n < minPerPerson {
			count++
		}
	}
	return count
}

// describeInsufficient lists participants below the threshold as "name (count)", sorted by name then id
func describeInsufficient(participants []model.Participant, attendance map[string]int, minPerPerson int) string {
	insufficient := make([]model.Participant, 0)
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p.ID] || attendance[p.ID] >= minPerPerson {
			continue
		}
		seen[p.ID] = true
		insufficient = append(insufficient, p)
	}

	sort.Slice(insufficient, func(i, j int) bool {
		if insufficient[i].DisplayName != insufficient[j].DisplayName {
			return insufficient[i].DisplayName < insufficient[j].DisplayName
		}
		return insufficient[i].ID < insufficient[j].ID
	})

	parts := make([]string, len(insufficient))
	for i, p := range insufficient {
		parts[i] = fmt.Sprintf("%s (%d)", p.DisplayName, attendance[p.ID])
	}
	return strings.Join(parts, ", ")
}
