package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

func threeParticipantStore() *mockStore {
	return &mockStore{participants: []db.Participant{
		{ID: "c", Name: "Carol", Dates: []string{"2024-05-01", "2024-05-02"}},
		{ID: "a", Name: "Alice", Dates: []string{"2024-05-01", "2024-05-02"}},
		{ID: "b", Name: "Bob", Dates: []string{"2024-05-01", "2024-05-03"}},
	}}
}

func TestRecommend_DefaultSettings(t *testing.T) {
	store := threeParticipantStore()

	result, err := Recommend(context.Background(), store, zap.NewNop(), model.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, model.DefaultSettings(), result.Settings)
	assert.Equal(t, []string{"2024-05-01"}, result.Selection.FinalDates)
	assert.Empty(t, result.Selection.Warnings)
	assert.Equal(t, result.Selection.FinalDates, result.Schedule.FinalDates)
	assert.Equal(t, []string{"2024-05-01"}, result.Schedule.CoreDates)

	require.Len(t, result.Participants, 3)
	assert.Equal(t, "Alice", result.Participants[0].DisplayName)

	assert.Equal(t, 1, result.Statistics.TotalMeetings)
	assert.InDelta(t, 1.0, result.Statistics.MeanAttendance, 1e-9)
	assert.InDelta(t, 0.0, result.Statistics.StdDevAttendance, 1e-9)
}

func TestRecommend_UsesSavedSettings(t *testing.T) {
	store := threeParticipantStore()
	store.settings = &db.Settings{MinDatesPerPerson: 1, MinMeetingDates: 3, MinMeetingsPerPerson: 0, MinParticipantsPerMeeting: 2}

	result, err := Recommend(context.Background(), store, zap.NewNop(), model.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, result.Schedule.FinalDates)
	require.Len(t, result.Schedule.Warnings, 1)
	assert.Equal(t, "3 meeting dates were requested but only 2 dates satisfy the quorum of 2 participants", result.Schedule.Warnings[0])
	assert.Equal(t, []string{"2024-05-01"}, result.Schedule.Assignments["b"])
}

func TestRecommend_NoParticipants(t *testing.T) {
	result, err := Recommend(context.Background(), &mockStore{}, zap.NewNop(), model.DefaultSettings())
	require.NoError(t, err)

	assert.Empty(t, result.Schedule.FinalDates)
	assert.Equal(t, []string{"no date satisfies the minimum-attendance quorum of 2 participants"}, result.Schedule.Warnings)
}

func TestRecommend_StoreErrors(t *testing.T) {
	_, err := Recommend(context.Background(), &mockStore{getParticipantsErr: errors.New("boom")}, zap.NewNop(), model.DefaultSettings())
	assert.ErrorContains(t, err, "failed to fetch participants")

	_, err = Recommend(context.Background(), &mockStore{getSettingsErr: errors.New("boom")}, zap.NewNop(), model.DefaultSettings())
	assert.ErrorContains(t, err, "failed to fetch settings")
}
