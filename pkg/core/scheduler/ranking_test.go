package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

func TestBuildAvailabilityIndex_CountsDistinctParticipants(t *testing.T) {
	participants := []model.Participant{
		participant("B", d1, d2, d2),
		participant("A", d1),
		participant("C"),
	}

	index := BuildAvailabilityIndex(participants)

	assert.Equal(t, VoteTally{d1: 2, d2: 1}, index.Tally)
	assert.Equal(t, []string{"A", "B"}, index.Voters[d1])
	assert.Equal(t, []string{"B"}, index.Voters[d2])

	assert.True(t, index.IsAvailable("A", d1))
	assert.False(t, index.IsAvailable("A", d2))
	assert.False(t, index.IsAvailable("unknown", d1))
	assert.Equal(t, 2, index.Attendance("B", []string{d1, d2, d3}))
	assert.Equal(t, 0, index.Attendance("C", []string{d1, d2}))
}

func TestRankCandidates_CountDescendingThenDateAscending(t *testing.T) {
	tally := VoteTally{
		"2024-04-10": 2,
		"2024-04-01": 1,
		"2024-04-05": 3,
		"2024-03-31": 2,
		"2024-04-02": 1,
	}

	ranked := RankCandidates(tally)

	assert.Equal(t, []Candidate{
		{Date: "2024-04-05", Count: 3},
		{Date: "2024-03-31", Count: 2},
		{Date: "2024-04-10", Count: 2},
		{Date: "2024-04-01", Count: 1},
		{Date: "2024-04-02", Count: 1},
	}, ranked)
}

func TestRankCandidates_Empty(t *testing.T) {
	assert.Empty(t, RankCandidates(VoteTally{}))
}

func TestRanked_StopsEarly(t *testing.T) {
	tally := VoteTally{d1: 1, d2: 3, d3: 2}

	var got []string
	for c := range Ranked(tally) {
		got = append(got, c.Date)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{d2, d3}, got)
}

func TestSelectBaseline_FiltersByQuorumPreservingRank(t *testing.T) {
	ranked := []Candidate{
		{Date: d3, Count: 4},
		{Date: d1, Count: 2},
		{Date: d2, Count: 1},
	}
	warnings := &WarningCollector{}

	baseline, ok := SelectBaseline(ranked, 2, 1, warnings)

	require.True(t, ok)
	assert.Equal(t, []string{d3}, baseline.Selected)
	assert.Equal(t, ranked[:2], baseline.ValidDates)
	assert.Empty(t, warnings.List())
}

func TestSelectBaseline_NoValidDates(t *testing.T) {
	warnings := &WarningCollector{}

	baseline, ok := SelectBaseline([]Candidate{{Date: d1, Count: 1}}, 2, 1, warnings)

	assert.False(t, ok)
	assert.Empty(t, baseline.Selected)
	assert.Equal(t, []string{"no date satisfies the minimum-attendance quorum of 2 participants"}, warnings.List())
}

func TestWarningCollector_ListIsACopy(t *testing.T) {
	warnings := &WarningCollector{}
	assert.NotNil(t, warnings.List())

	warnings.Addf("first %d", 1)
	warnings.Addf("second")

	list := warnings.List()
	list[0] = "changed"

	assert.Equal(t, []string{"first 1", "second"}, warnings.List())
}
