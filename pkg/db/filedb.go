package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileContents is the on-disk document of a FileDB
type fileContents struct {
	Settings     *Settings     `yaml:"settings,omitempty"`
	Participants []Participant `yaml:"participants"`
}

// FileDB stores participants and settings in a single YAML document.
// Every write replaces the file atomically.
type FileDB struct {
	path string
	mu   sync.Mutex
}

// NewFileDB creates a FileDB at path, creating parent directories as needed.
// The file itself is created on the first write.
func NewFileDB(path string) (*FileDB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &FileDB{path: path}, nil
}

// Close is a no-op; FileDB holds no open handles between calls
func (f *FileDB) Close() {}

// GetParticipants retrieves all participant records in insertion order
func (f *FileDB) GetParticipants(ctx context.Context) ([]Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return nil, err
	}
	return contents.Participants, nil
}

// InsertParticipant inserts a new participant record
func (f *FileDB) InsertParticipant(ctx context.Context, participant *Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}

	for _, p := range contents.Participants {
		if p.ID == participant.ID {
			return fmt.Errorf("participant %s already exists", participant.ID)
		}
	}

	contents.Participants = append(contents.Participants, *participant)
	return f.write(contents)
}

// UpdateParticipant replaces the participant record with the same ID
func (f *FileDB) UpdateParticipant(ctx context.Context, participant *Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}

	for i, p := range contents.Participants {
		if p.ID == participant.ID {
			contents.Participants[i] = *participant
			return f.write(contents)
		}
	}

	return fmt.Errorf("failed to update participant %s: %w", participant.ID, ErrParticipantNotFound)
}

// DeleteParticipant removes the participant record with the given ID
func (f *FileDB) DeleteParticipant(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}

	for i, p := range contents.Participants {
		if p.ID == id {
			contents.Participants = append(contents.Participants[:i], contents.Participants[i+1:]...)
			return f.write(contents)
		}
	}

	return fmt.Errorf("failed to delete participant %s: %w", id, ErrParticipantNotFound)
}

// GetSettings retrieves the saved settings, or nil if none were saved
func (f *FileDB) GetSettings(ctx context.Context) (*Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return nil, err
	}
	return contents.Settings, nil
}

// SaveSettings replaces the saved settings
func (f *FileDB) SaveSettings(ctx context.Context, settings *Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}

	s := *settings
	contents.Settings = &s
	return f.write(contents)
}

// read loads the document; a missing file is an empty document
func (f *FileDB) read() (*fileContents, error) {
	contents := &fileContents{Participants: []Participant{}}

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return contents, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if err := yaml.Unmarshal(data, contents); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", f.path, err)
	}
	if contents.Participants == nil {
		contents.Participants = []Participant{}
	}

	return contents, nil
}

// write replaces the document via a temporary file and rename
func (f *FileDB) write(contents *fileContents) error {
	data, err := yaml.Marshal(contents)
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary data file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close data file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}
