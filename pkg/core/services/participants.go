package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/core/recurrence"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// Availability describes the dates a participant can attend: explicit dates, an RRULE
// expanded over [From, Until], or both
type Availability struct {
	Dates []string
	RRule string
	From  string
	Until string
}

// ResolveAvailability expands the rule (if any) and merges it with the explicit dates.
// The result is validated, de-duplicated and chronological.
func ResolveAvailability(availability Availability) ([]string, error) {
	dates := append([]string{}, availability.Dates...)

	if availability.RRule != "" {
		if availability.From == "" || availability.Until == "" {
			return nil, fmt.Errorf("%w: a recurrence rule needs both a from and an until date", model.ErrInvalidParticipant)
		}
		from, err := model.ParseDate(availability.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidParticipant, err)
		}
		until, err := model.ParseDate(availability.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidParticipant, err)
		}

		expanded, err := recurrence.Expand(availability.RRule, from, until)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidParticipant, err)
		}
		dates = append(dates, expanded...)
	}

	return normalizeDates(dates)
}

// validateParticipantDates enforces the minimum number of distinct dates
func validateParticipantDates(dates []string, settings model.Settings) error {
	if len(dates) < settings.MinDatesPerPerson {
		return fmt.Errorf("%w: %d distinct dates given but at least %d are required",
			model.ErrInvalidParticipant, len(dates), settings.MinDatesPerPerson)
	}
	return nil
}

// AddParticipant validates and stores a new participant under a fresh identifier
func AddParticipant(
	ctx context.Context,
	store db.ParticipantStore,
	logger *zap.Logger,
	settings model.Settings,
	name string,
	dates []string,
) (*model.Participant, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	dates, err = normalizeDates(dates)
	if err != nil {
		return nil, err
	}

	if err := validateParticipantDates(dates, settings); err != nil {
		return nil, err
	}

	record := &db.Participant{
		ID:        uuid.New().String(),
		Name:      name,
		Dates:     dates,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := store.InsertParticipant(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert participant: %w", err)
	}

	logger.Info("Participant added",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.Int("dates", len(record.Dates)))

	participant := toModelParticipant(*record)
	return &participant, nil
}

// ParticipantUpdate is a partial edit; nil fields keep their current value
type ParticipantUpdate struct {
	Name  *string
	Dates []string
}

// UpdateParticipant edits a participant's name and/or dates.
// Returns db.ErrParticipantNotFound (wrapped) when no participant has id.
func UpdateParticipant(
	ctx context.Context,
	store db.ParticipantStore,
	logger *zap.Logger,
	settings model.Settings,
	id string,
	update ParticipantUpdate,
) (*model.Participant, error) {
	existing, err := findParticipant(ctx, store, id)
	if err != nil {
		return nil, err
	}

	record := *existing
	if update.Name != nil {
		record.Name, err = normalizeName(*update.Name)
		if err != nil {
			return nil, err
		}
	}

	if update.Dates != nil {
		record.Dates, err = normalizeDates(update.Dates)
		if err != nil {
			return nil, err
		}
		if err := validateParticipantDates(record.Dates, settings); err != nil {
			return nil, err
		}
	}

	record.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := store.UpdateParticipant(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	logger.Info("Participant updated",
		zap.String("id", record.ID),
		zap.String("name", record.Name),
		zap.Int("dates", len(record.Dates)))

	participant := toModelParticipant(record)
	return &participant, nil
}

// RemoveParticipant deletes a participant by identifier
func RemoveParticipant(ctx context.Context, store db.ParticipantStore, logger *zap.Logger, id string) error {
	if err := store.DeleteParticipant(ctx, id); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	logger.Info("Participant removed", zap.String("id", id))
	return nil
}

// ListParticipants returns every participant sorted by display name, then identifier
func ListParticipants(ctx context.Context, store db.ParticipantStore, logger *zap.Logger) ([]model.Participant, error) {
	records, err := store.GetParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	participants := toModelParticipants(records)
	sortParticipants(participants)

	logger.Debug("Fetched participants", zap.Int("count", len(participants)))
	return participants, nil
}

func findParticipant(ctx context.Context, store db.ParticipantStore, id string) (*db.Participant, error) {
	records, err := store.GetParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}

	return nil, fmt.Errorf("participant %s: %w", id, db.ErrParticipantNotFound)
}
