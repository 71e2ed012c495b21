package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

func toModelParticipant(p db.Participant) model.Participant {
	return model.Participant{
		ID:             p.ID,
		DisplayName:    p.Name,
		AvailableDates: slices.Clone(p.Dates),
	}
}

func toModelParticipants(participants []db.Participant) []model.Participant {
	result := make([]model.Participant, len(participants))
	for i, p := range participants {
		result[i] = toModelParticipant(p)
	}
	return result
}

func toModelSettings(s db.Settings) model.Settings {
	return model.Settings{
		MinDatesPerPerson:         s.MinDatesPerPerson,
		MinMeetingDates:           s.MinMeetingDates,
		MinMeetingsPerPerson:      s.MinMeetingsPerPerson,
		MinParticipantsPerMeeting: s.MinParticipantsPerMeeting,
	}
}

func toDBSettings(s model.Settings) *db.Settings {
	return &db.Settings{
		MinDatesPerPerson:         s.MinDatesPerPerson,
		MinMeetingDates:           s.MinMeetingDates,
		MinMeetingsPerPerson:      s.MinMeetingsPerPerson,
		MinParticipantsPerMeeting: s.MinParticipantsPerMeeting,
	}
}

// normalizeDates validates every date, then returns them de-duplicated in chronological order
func normalizeDates(dates []string) ([]string, error) {
	normalized := make([]string, 0, len(dates))
	for _, date := range dates {
		date = strings.TrimSpace(date)
		if _, err := model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidParticipant, err)
		}
		normalized = append(normalized, date)
	}

	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}

// normalizeName trims the name and rejects blanks
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be empty", model.ErrInvalidParticipant)
	}
	return name, nil
}

// sortParticipants orders participants by display name, then identifier
func sortParticipants(participants []model.Participant) {
	slices.SortFunc(participants, func(a, b model.Participant) int {
		return cmp.Or(
			cmp.Compare(a.DisplayName, b.DisplayName),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
