package db

import (
	"context"
	"errors"
)

// ErrParticipantNotFound is returned when no participant has the requested ID
var ErrParticipantNotFound = errors.New("participant not found")

// ParticipantStore defines the interface for participant database operations
type ParticipantStore interface {
	GetParticipants(ctx context.Context) ([]Participant, error)
	InsertParticipant(ctx context.Context, participant *Participant) error
	UpdateParticipant(ctx context.Context, participant *Participant) error
	DeleteParticipant(ctx context.Context, id string) error
}

// SettingsStore defines the interface for settings database operations.
// GetSettings returns nil when nothing has been saved yet.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error
}

// Database defines the interface for all database operations.
// Both the YAML file-backed db.FileDB and postgres.DB implement this interface.
type Database interface {
	ParticipantStore
	SettingsStore
	Close()
}
