package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/jakechorley/meeting-scheduler/pkg/clients/sheetsclient"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// mockStore is an in-memory db.Database
type mockStore struct {
	participants []db.Participant
	settings     *db.Settings

	getParticipantsErr error
	insertErr          error
	updateErr          error
	getSettingsErr     error
	saveSettingsErr    error

	inserted []db.Participant
	updated  []db.Participant
	saved    []db.Settings
}

var _ db.Database = (*mockStore)(nil)

func (m *mockStore) GetParticipants(ctx context.Context) ([]db.Participant, error) {
	if m.getParticipantsErr != nil {
		return nil, m.getParticipantsErr
	}
	return slices.Clone(m.participants), nil
}

func (m *mockStore) InsertParticipant(ctx context.Context, participant *db.Participant) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.participants = append(m.participants, *participant)
	m.inserted = append(m.inserted, *participant)
	return nil
}

func (m *mockStore) UpdateParticipant(ctx context.Context, participant *db.Participant) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.participants {
		if m.participants[i].ID == participant.ID {
			m.participants[i] = *participant
			m.updated = append(m.updated, *participant)
			return nil
		}
	}
	return fmt.Errorf("update %s: %w", participant.ID, db.ErrParticipantNotFound)
}

func (m *mockStore) DeleteParticipant(ctx context.Context, id string) error {
	for i := range m.participants {
		if m.participants[i].ID == id {
			m.participants = slices.Delete(m.participants, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", id, db.ErrParticipantNotFound)
}

func (m *mockStore) GetSettings(ctx context.Context) (*db.Settings, error) {
	if m.getSettingsErr != nil {
		return nil, m.getSettingsErr
	}
	return m.settings, nil
}

func (m *mockStore) SaveSettings(ctx context.Context, settings *db.Settings) error {
	if m.saveSettingsErr != nil {
		return m.saveSettingsErr
	}
	saved := *settings
	m.settings = &saved
	m.saved = append(m.saved, saved)
	return nil
}

func (m *mockStore) Close() {}

// mockSheets implements AvailabilityReader and SchedulePublisher
type mockSheets struct {
	rows       []sheetsclient.AvailabilityRow
	listErr    error
	publishErr error

	publishedID  string
	publishedTab string
	published    *sheetsclient.PublishedSchedule
}

func (m *mockSheets) ListAvailability(ctx context.Context, spreadsheetID, tab string) ([]sheetsclient.AvailabilityRow, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockSheets) PublishSchedule(ctx context.Context, spreadsheetID, tab string, schedule *sheetsclient.PublishedSchedule) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.publishedID = spreadsheetID
	m.publishedTab = tab
	m.published = schedule
	return nil
}
