package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// SettingsReader reads the persisted settings; nil means nothing has been saved
type SettingsReader interface {
	GetSettings(ctx context.Context) (*db.Settings, error)
}

// GetSettings returns the persisted settings, or defaults when none have been saved
func GetSettings(ctx context.Context, store SettingsReader, logger *zap.Logger, defaults model.Settings) (model.Settings, error) {
	saved, err := store.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to fetch settings: %w", err)
	}

	if saved == nil {
		logger.Debug("No saved settings, using defaults")
		return defaults, nil
	}

	settings := toModelSettings(*saved)
	if err := settings.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("saved settings are invalid: %w", err)
	}

	return settings, nil
}

// UpdateSettings applies patch over the current settings, validates and persists the result
func UpdateSettings(
	ctx context.Context,
	store db.SettingsStore,
	logger *zap.Logger,
	defaults model.Settings,
	patch model.SettingsPatch,
) (model.Settings, error) {
	current, err := GetSettings(ctx, store, logger, defaults)
	if err != nil {
		return model.Settings{}, err
	}

	updated := patch.Apply(current)
	if err := updated.Validate(); err != nil {
		return model.Settings{}, err
	}

	if err := store.SaveSettings(ctx, toDBSettings(updated)); err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Info("Settings updated",
		zap.Int("min_dates_per_person", updated.MinDatesPerPerson),
		zap.Int("min_meeting_dates", updated.MinMeetingDates),
		zap.Int("min_meetings_per_person", updated.MinMeetingsPerPerson),
		zap.Int("min_participants_per_meeting", updated.MinParticipantsPerMeeting))

	return updated, nil
}

// ResetSettings persists the defaults
func ResetSettings(ctx context.Context, store db.SettingsStore, logger *zap.Logger, defaults model.Settings) (model.Settings, error) {
	if err := defaults.Validate(); err != nil {
		return model.Settings{}, err
	}

	if err := store.SaveSettings(ctx, toDBSettings(defaults)); err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Info("Settings reset to defaults")
	return defaults, nil
}
