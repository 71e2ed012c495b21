package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/core/scheduler"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// RecommendStore is the subset of storage a recommendation reads
type RecommendStore interface {
	GetParticipants(ctx context.Context) ([]db.Participant, error)
	GetSettings(ctx context.Context) (*db.Settings, error)
}

// RecommendResult is a full recommendation together with the inputs it was computed from
type RecommendResult struct {
	Settings     model.Settings
	Participants []model.Participant // sorted by display name, then identifier
	Selection    scheduler.SelectionResult
	Schedule     scheduler.ScheduleResult
	Statistics   scheduler.ScheduleStats
}

// Recommend loads participants and settings, selects meeting dates and builds the schedule.
// Algorithm warnings are logged and returned; they are not errors.
func Recommend(ctx context.Context, store RecommendStore, logger *zap.Logger, defaults model.Settings) (*RecommendResult, error) {
	settings, err := GetSettings(ctx, store, logger, defaults)
	if err != nil {
		return nil, err
	}

	records, err := store.GetParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	participants := toModelParticipants(records)
	sortParticipants(participants)

	logger.Debug("Selecting meeting dates",
		zap.Int("participants", len(participants)),
		zap.Int("min_meeting_dates", settings.MinMeetingDates),
		zap.Int("min_participants_per_meeting", settings.MinParticipantsPerMeeting),
		zap.Int("min_meetings_per_person", settings.MinMeetingsPerPerson))

	schedule := scheduler.Schedule(participants, settings)

	for _, warning := range schedule.Warnings {
		logger.Warn("Recommendation warning", zap.String("warning", warning))
	}

	logger.Info("Recommendation complete",
		zap.Int("final_dates", len(schedule.FinalDates)),
		zap.Int("core_dates", len(schedule.CoreDates)),
		zap.Int("warnings", len(schedule.Warnings)))

	return &RecommendResult{
		Settings:     settings,
		Participants: participants,
		Selection: scheduler.SelectionResult{
			FinalDates: schedule.FinalDates,
			Warnings:   schedule.Warnings,
		},
		Schedule:   schedule,
		Statistics: scheduler.Statistics(schedule.FinalDates, participants),
	}, nil
}
