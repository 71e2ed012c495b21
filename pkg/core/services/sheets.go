package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/internal/config"
	"github.com/jakechorley/meeting-scheduler/pkg/clients/sheetsclient"
	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// ErrSheetsNotConfigured is returned by the sheet operations when the config has no sheets section
var ErrSheetsNotConfigured = errors.New("sheets is not configured")

// AvailabilityReader reads availability rows from a spreadsheet tab
type AvailabilityReader interface {
	ListAvailability(ctx context.Context, spreadsheetID, tab string) ([]sheetsclient.AvailabilityRow, error)
}

// SchedulePublisher writes a schedule to a spreadsheet tab
type SchedulePublisher interface {
	PublishSchedule(ctx context.Context, spreadsheetID, tab string, schedule *sheetsclient.PublishedSchedule) error
}

// ImportIssue is a sheet row that could not be imported
type ImportIssue struct {
	Row    int
	Name   string
	Reason string
}

// ImportResult summarises an availability import
type ImportResult struct {
	Added     []model.Participant
	Updated   []model.Participant
	Unchanged int
	Skipped   []ImportIssue
}

// ImportParticipants reads the availability tab and upserts participants by display name.
// Invalid rows and repeated names are skipped and reported; they do not abort the import.
func ImportParticipants(
	ctx context.Context,
	reader AvailabilityReader,
	store db.ParticipantStore,
	logger *zap.Logger,
	sheetsCfg *config.SheetsConfig,
	settings model.Settings,
) (*ImportResult, error) {
	if sheetsCfg == nil {
		return nil, ErrSheetsNotConfigured
	}

	logger.Debug("Reading availability tab",
		zap.String("spreadsheet_id", sheetsCfg.SpreadsheetID),
		zap.String("tab", sheetsCfg.AvailabilityTab))

	rows, err := reader.ListAvailability(ctx, sheetsCfg.SpreadsheetID, sheetsCfg.AvailabilityTab)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability: %w", err)
	}

	existing, err := store.GetParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	byName := make(map[string]db.Participant, len(existing))
	for _, p := range existing {
		byName[p.Name] = p
	}

	result := &ImportResult{
		Added:   []model.Participant{},
		Updated: []model.Participant{},
		Skipped: []ImportIssue{},
	}
	seen := make(map[string]int, len(rows))
	now := time.Now().UTC().Format(time.RFC3339)

	for _, row := range rows {
		skip := func(reason string) {
			logger.Warn("Skipping availability row",
				zap.Int("row", row.Row),
				zap.String("name", row.Name),
				zap.String("reason", reason))
			result.Skipped = append(result.Skipped, ImportIssue{Row: row.Row, Name: row.Name, Reason: reason})
		}

		if first, ok := seen[row.Name]; ok {
			skip(fmt.Sprintf("name already imported from row %d", first))
			continue
		}
		seen[row.Name] = row.Row

		dates, err := normalizeDates(row.Dates)
		if err != nil {
			skip(err.Error())
			continue
		}
		if err := validateParticipantDates(dates, settings); err != nil {
			skip(err.Error())
			continue
		}

		current, found := byName[row.Name]
		if !found {
			record := &db.Participant{
				ID:        uuid.New().String(),
				Name:      row.Name,
				Dates:     dates,
				CreatedAt: now,
			}
			if err := store.InsertParticipant(ctx, record); err != nil {
				return nil, fmt.Errorf("failed to insert participant from row %d: %w", row.Row, err)
			}
			result.Added = append(result.Added, toModelParticipant(*record))
			continue
		}

		if slices.Equal(current.Dates, dates) {
			result.Unchanged++
			continue
		}

		current.Dates = dates
		current.UpdatedAt = now
		if err := store.UpdateParticipant(ctx, &current); err != nil {
			return nil, fmt.Errorf("failed to update participant from row %d: %w", row.Row, err)
		}
		result.Updated = append(result.Updated, toModelParticipant(current))
	}

	logger.Info("Availability imported",
		zap.Int("added", len(result.Added)),
		zap.Int("updated", len(result.Updated)),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// PublishSchedule computes a recommendation and writes it to the publish tab
func PublishSchedule(
	ctx context.Context,
	publisher SchedulePublisher,
	store RecommendStore,
	logger *zap.Logger,
	sheetsCfg *config.SheetsConfig,
	defaults model.Settings,
) (*RecommendResult, error) {
	if sheetsCfg == nil {
		return nil, ErrSheetsNotConfigured
	}

	result, err := Recommend(ctx, store, logger, defaults)
	if err != nil {
		return nil, err
	}

	published, err := buildPublishedSchedule(result)
	if err != nil {
		return nil, err
	}

	if err := publisher.PublishSchedule(ctx, sheetsCfg.SpreadsheetID, sheetsCfg.PublishTab, published); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("spreadsheet_id", sheetsCfg.SpreadsheetID),
		zap.String("tab", sheetsCfg.PublishTab),
		zap.Int("dates", len(published.Rows)))

	return result, nil
}

// buildPublishedSchedule lays the final dates out chronologically with the display names of
// everyone available on each, in the result's participant order
func buildPublishedSchedule(result *RecommendResult) (*sheetsclient.PublishedSchedule, error) {
	core := make(map[string]bool, len(result.Schedule.CoreDates))
	for _, date := range result.Schedule.CoreDates {
		core[date] = true
	}

	attendees := make(map[string][]string, len(result.Schedule.FinalDates))
	for _, p := range result.Participants {
		for _, date := range result.Schedule.Assignments[p.ID] {
			attendees[date] = append(attendees[date], p.DisplayName)
		}
	}

	published := &sheetsclient.PublishedSchedule{
		Rows:     make([]sheetsclient.PublishedScheduleRow, 0, len(result.Statistics.Dates)),
		Warnings: result.Schedule.Warnings,
	}

	for _, date := range result.Statistics.Dates {
		day, err := model.ParseDate(date.Date)
		if err != nil {
			return nil, err
		}

		published.Rows = append(published.Rows, sheetsclient.PublishedScheduleRow{
			Date:      date.Date,
			Weekday:   day.Weekday().String(),
			Attendees: attendees[date.Date],
			Core:      core[date.Date],
		})
	}

	return published, nil
}
