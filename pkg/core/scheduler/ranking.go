package scheduler

import (
	"iter"
	"sort"
)

// Candidate is a date together with its vote count
type Candidate struct {
	Date  string
	Count int
}

// candidateLess orders candidates by count descending, then by date ascending.
// ISO dates compare lexicographically in chronological order, so this is a strict total order.
func candidateLess(a, b Candidate) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Date < b.Date
}

// RankCandidates returns every date in the tally in rank order
func RankCandidates(tally VoteTally) []Candidate {
	candidates := make([]Candidate, 0, len(tally))
	for date, count := range tally {
		candidates = append(candidates, Candidate{Date: date, Count: count})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidateLess(candidates[i], candidates[j])
	})

	return candidates
}

// Ranked yields the tally's candidates in rank order
func Ranked(tally VoteTally) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, c := range RankCandidates(tally) {
			if !yield(c) {
				return
			}
		}
	}
}

// candidateDates extracts the dates of the given candidates, preserving order
func candidateDates(candidates []Candidate) []string {
	dates := make([]string, len(candidates))
	for i, c := range candidates {
		dates[i] = c.Date
	}
	return dates
}
