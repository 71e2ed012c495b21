package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// GetSettings retrieves the saved settings row, or nil if none has been saved
func (d *DB) GetSettings(ctx context.Context) (*db.Settings, error) {
	var s db.Settings
	var updatedAt time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT min_dates_per_person, min_meeting_dates, min_meetings_per_person, min_participants_per_meeting, updated_at
		FROM scheduler_settings
		WHERE id = 1
	`).Scan(&s.MinDatesPerPerson, &s.MinMeetingDates, &s.MinMeetingsPerPerson, &s.MinParticipantsPerMeeting, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	s.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
	return &s, nil
}

// SaveSettings upserts the single settings row
func (d *DB) SaveSettings(ctx context.Context, settings *db.Settings) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO scheduler_settings (id, min_dates_per_person, min_meeting_dates, min_meetings_per_person, min_participants_per_meeting, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			min_dates_per_person = EXCLUDED.min_dates_per_person,
			min_meeting_dates = EXCLUDED.min_meeting_dates,
			min_meetings_per_person = EXCLUDED.min_meetings_per_person,
			min_participants_per_meeting = EXCLUDED.min_participants_per_meeting,
			updated_at = EXCLUDED.updated_at
	`, settings.MinDatesPerPerson, settings.MinMeetingDates, settings.MinMeetingsPerPerson, settings.MinParticipantsPerMeeting)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
