package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO-8601 calendar date format used for every date string
const DateLayout = "2006-01-02"

// ErrInvalidSettings is returned when a Settings value fails range validation
var ErrInvalidSettings = errors.New("invalid settings")

// ErrInvalidParticipant is returned when a participant fails validation
var ErrInvalidParticipant = errors.New("invalid participant")

var validate = validator.New()

// Participant is a person who submitted the dates they can attend
type Participant struct {
	ID             string   `validate:"required"`
	DisplayName    string   `validate:"required"`
	AvailableDates []string `validate:"dive,datetime=2006-01-02"`
}

// Validate checks the participant shape and every available date
func (p Participant) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidParticipant, p.DisplayName, err)
	}
	return nil
}

// Settings holds the constraints applied when selecting meeting dates.
// A Settings value is an immutable snapshot; callers pass it explicitly.
type Settings struct {
	// MinDatesPerPerson is the least number of distinct dates a participant must submit
	MinDatesPerPerson int `yaml:"minDatesPerPerson" json:"minDatesPerPerson" validate:"min=1"`

	// MinMeetingDates is the target number of meetings
	MinMeetingDates int `yaml:"minMeetingDates" json:"minMeetingDates" validate:"min=1"`

	// MinMeetingsPerPerson is the least number of selected dates each participant should attend (0 = no limit)
	MinMeetingsPerPerson int `yaml:"minMeetingsPerPerson" json:"minMeetingsPerPerson" validate:"min=0"`

	// MinParticipantsPerMeeting is the quorum a date needs to be eligible
	MinParticipantsPerMeeting int `yaml:"minParticipantsPerMeeting" json:"minParticipantsPerMeeting" validate:"min=1"`
}

// DefaultSettings returns the settings used when nothing has been persisted
func DefaultSettings() Settings {
	return Settings{
		MinDatesPerPerson:         1,
		MinMeetingDates:           1,
		MinMeetingsPerPerson:      0,
		MinParticipantsPerMeeting: 2,
	}
}

// Validate checks every field is within its allowed range
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// SettingsPatch is a partial settings update; nil fields keep their current value
type SettingsPatch struct {
	MinDatesPerPerson         *int
	MinMeetingDates           *int
	MinMeetingsPerPerson      *int
	MinParticipantsPerMeeting *int
}

// Apply returns a copy of s with the non-nil patch fields applied
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.MinDatesPerPerson != nil {
		s.MinDatesPerPerson = *p.MinDatesPerPerson
	}
	if p.MinMeetingDates != nil {
		s.MinMeetingDates = *p.MinMeetingDates
	}
	if p.MinMeetingsPerPerson != nil {
		s.MinMeetingsPerPerson = *p.MinMeetingsPerPerson
	}
	if p.MinParticipantsPerMeeting != nil {
		s.MinParticipantsPerMeeting = *p.MinParticipantsPerMeeting
	}
	return s
}

// ParseDate parses a YYYY-MM-DD string, rejecting anything that is not a real calendar date
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}
