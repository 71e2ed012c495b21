package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// GetParticipants retrieves all participant records with their dates, oldest first
func (d *DB) GetParticipants(ctx context.Context) ([]db.Participant, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT p.id, p.name, p.created_at, p.updated_at,
			COALESCE(
				array_agg(pd.available_date ORDER BY pd.available_date) FILTER (WHERE pd.available_date IS NOT NULL),
				'{}'
			)
		FROM participant p
		LEFT JOIN participant_date pd ON pd.participant_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []db.Participant{}
	for rows.Next() {
		var p db.Participant
		var createdAt time.Time
		var updatedAt *time.Time
		var dates []time.Time
		if err := rows.Scan(&p.ID, &p.Name, &createdAt, &updatedAt, &dates); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}

		p.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		if updatedAt != nil {
			p.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
		}
		p.Dates = make([]string, len(dates))
		for i, date := range dates {
			p.Dates[i] = date.Format("2006-01-02")
		}

		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return participants, nil
}

// InsertParticipant inserts a participant and their dates in one transaction
func (d *DB) InsertParticipant(ctx context.Context, participant *db.Participant) error {
	createdAt, err := parseTimestamp(participant.CreatedAt)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO participant (id, name, created_at)
			VALUES ($1, $2, $3)
		`, participant.ID, participant.Name, createdAt)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}

		return insertDates(ctx, tx, participant.ID, participant.Dates)
	})
}

// UpdateParticipant replaces a participant's name and dates
func (d *DB) UpdateParticipant(ctx context.Context, participant *db.Participant) error {
	updatedAt := time.Now().UTC()
	if participant.UpdatedAt != "" {
		parsed, err := parseTimestamp(participant.UpdatedAt)
		if err != nil {
			return err
		}
		updatedAt = parsed
	}

	return pgx.BeginFunc(ctx, d.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE participant SET name = $2, updated_at = $3 WHERE id = $1
		`, participant.ID, participant.Name, updatedAt)
		if err != nil {
			return fmt.Errorf("failed to update participant: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("failed to update participant %s: %w", participant.ID, db.ErrParticipantNotFound)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM participant_date WHERE participant_id = $1`, participant.ID); err != nil {
			return fmt.Errorf("failed to clear participant dates: %w", err)
		}

		return insertDates(ctx, tx, participant.ID, participant.Dates)
	})
}

// DeleteParticipant removes a participant; their dates cascade
func (d *DB) DeleteParticipant(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM participant WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete participant %s: %w", id, db.ErrParticipantNotFound)
	}
	return nil
}

func insertDates(ctx context.Context, tx pgx.Tx, participantID string, dates []string) error {
	if len(dates) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO participant_date (participant_id, available_date)
		SELECT $1, d::date FROM unnest($2::text[]) AS d
		ON CONFLICT DO NOTHING
	`, participantID, dates)
	if err != nil {
		return fmt.Errorf("failed to insert participant dates: %w", err)
	}
	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t, nil
}
