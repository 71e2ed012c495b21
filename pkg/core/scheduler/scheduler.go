package scheduler

import "github.com/jakechorley/meeting-scheduler/pkg/core/model"

// SelectionResult holds the recommended meeting dates and the diagnostics raised choosing them
type SelectionResult struct {
	// FinalDates are in rank order: the baseline first, then repair additions
	FinalDates []string
	Warnings   []string
}

// ScheduleResult holds the per-participant assignments derived from a selection
type ScheduleResult struct {
	FinalDates []string

	// Assignments maps participant identifier to the final dates they can attend, chronologically
	Assignments map[string][]string

	// CoreDates is the earliest quarter of the final dates
	CoreDates []string
	Warnings  []string
}

// SelectDates runs the date selection pipeline:
// tally votes, rank candidates, apply the quorum, pick the baseline and repair attendance shortfalls.
//
// It never fails; degenerate inputs produce an empty or partial result with warnings.
// Inputs are not modified.
func SelectDates(participants []model.Participant, settings model.Settings) SelectionResult {
	result, _ := selectDates(participants, settings)
	return result
}

// Schedule selects dates and expands them into per-participant assignments and core dates
func Schedule(participants []model.Participant, settings model.Settings) ScheduleResult {
	selection, index := selectDates(participants, settings)

	return ScheduleResult{
		FinalDates:  selection.FinalDates,
		Assignments: BuildAssignments(selection.FinalDates, participants, index),
		CoreDates:   CoreDates(selection.FinalDates),
		Warnings:    selection.Warnings,
	}
}

func selectDates(participants []model.Participant, settings model.Settings) (SelectionResult, *AvailabilityIndex) {
	warnings := &WarningCollector{}

	index := BuildAvailabilityIndex(participants)
	ranked := RankCandidates(index.Tally)

	baseline, ok := SelectBaseline(ranked, settings.MinParticipantsPerMeeting, settings.MinMeetingDates, warnings)
	if !ok {
		return SelectionResult{FinalDates: []string{}, Warnings: warnings.List()}, index
	}

	finalDates := baseline.Selected
	if settings.MinMeetingsPerPerson > 0 {
		finalDates = RepairShortfall(
			baseline.Selected,
			baseline.ValidDates,
			participants,
			index,
			settings.MinMeetingsPerPerson,
			warnings,
		)
	}

	return SelectionResult{FinalDates: finalDates, Warnings: warnings.List()}, index
}
