package db

// Participant is the stored form of a participant and their submitted availability
type Participant struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Dates     []string `yaml:"dates"`
	CreatedAt string   `yaml:"createdAt"` // RFC3339
	UpdatedAt string   `yaml:"updatedAt,omitempty"`
}

// Settings is the stored scheduling settings snapshot
type Settings struct {
	MinDatesPerPerson         int    `yaml:"minDatesPerPerson"`
	MinMeetingDates           int    `yaml:"minMeetingDates"`
	MinMeetingsPerPerson      int    `yaml:"minMeetingsPerPerson"`
	MinParticipantsPerMeeting int    `yaml:"minParticipantsPerMeeting"`
	UpdatedAt                 string `yaml:"updatedAt,omitempty"`
}
