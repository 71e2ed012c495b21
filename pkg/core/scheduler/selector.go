package scheduler

// Baseline is the outcome of the quorum filter and the initial pick
type Baseline struct {
	// Selected holds the first MinMeetingDates valid dates, in rank order
	Selected []string

	// ValidDates holds every candidate that meets the quorum, in rank order
	ValidDates []Candidate
}

// SelectBaseline filters ranked candidates to those meeting the quorum and picks the
// first meetingDates of them. It returns false when no candidate meets the quorum,
// in which case nothing downstream should run.
func SelectBaseline(ranked []Candidate, quorum, meetingDates int, warnings *WarningCollector) (*Baseline, bool) {
	valid := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		if c.Count >= quorum {
			valid = append(valid, c)
		}
	}

	if len(valid) == 0 {
		warnings.Addf("no date satisfies the minimum-attendance quorum of %d participants", quorum)
		return &Baseline{Selected: []string{}, ValidDates: valid}, false
	}

	count := min(meetingDates, len(valid))
	if count < meetingDates {
		warnings.Addf("%d meeting dates were requested but only %d dates satisfy the quorum of %d participants",
			meetingDates, count, quorum)
	}

	return &Baseline{
		Selected:   candidateDates(valid[:count]),
		ValidDates: valid,
	}, true
}
