package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/internal/config"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "plain", line: "addParticipant Alice 2024-05-01", want: []string{"addParticipant", "Alice", "2024-05-01"}},
		{name: "double quotes", line: `addParticipant "Mary Jane" 2024-05-01`, want: []string{"addParticipant", "Mary Jane", "2024-05-01"}},
		{name: "single quotes keep semicolons", line: `addParticipant Bob --rrule 'FREQ=WEEKLY;BYDAY=MO'`, want: []string{"addParticipant", "Bob", "--rrule", "FREQ=WEEKLY;BYDAY=MO"}},
		{name: "empty quoted arg", line: `updateParticipant id --name ""`, want: []string{"updateParticipant", "id", "--name", ""}},
		{name: "extra spaces", line: "  listParticipants   ", want: []string{"listParticipants"}},
		{name: "unclosed", line: `addParticipant "Mary`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommandLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testApp(t *testing.T) *AppContext {
	t.Helper()

	store, err := db.NewFileDB(t.TempDir() + "/data.yaml")
	require.NoError(t, err)

	return &AppContext{
		Cfg: &config.Config{
			Store: config.StoreFile,
			AvailabilityRules: []config.AvailabilityRule{
				{Name: "mondays", RRule: "FREQ=WEEKLY;BYDAY=MO"},
			},
		},
		Database: store,
		Logger:   zap.NewNop(),
		Ctx:      context.Background(),
	}
}

func TestAvailabilityFromFlags(t *testing.T) {
	app := testApp(t)

	t.Run("preset resolves to rule", func(t *testing.T) {
		cmd := AddParticipantCmd(app)
		require.NoError(t, cmd.ParseFlags([]string{"--preset", "mondays", "--from", "2024-05-01"}))

		availability, err := availabilityFromFlags(cmd, app, []string{"2024-05-02"})
		require.NoError(t, err)

		assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO", availability.RRule)
		assert.Equal(t, "2024-05-01", availability.From)
		assert.Equal(t, "2024-07-24", availability.Until)
		assert.Equal(t, []string{"2024-05-02"}, availability.Dates)
	})

	t.Run("unknown preset", func(t *testing.T) {
		cmd := AddParticipantCmd(app)
		require.NoError(t, cmd.ParseFlags([]string{"--preset", "weekends"}))

		_, err := availabilityFromFlags(cmd, app, nil)
		assert.ErrorContains(t, err, "weekends")
	})

	t.Run("rule and preset conflict", func(t *testing.T) {
		cmd := AddParticipantCmd(app)
		require.NoError(t, cmd.ParseFlags([]string{"--preset", "mondays", "--rrule", "FREQ=DAILY"}))

		_, err := availabilityFromFlags(cmd, app, nil)
		assert.Error(t, err)
	})

	t.Run("dates only", func(t *testing.T) {
		cmd := AddParticipantCmd(app)

		availability, err := availabilityFromFlags(cmd, app, []string{"2024-05-02"})
		require.NoError(t, err)
		assert.Empty(t, availability.RRule)
		assert.Empty(t, availability.From)
	})
}

func TestSessionRunsCommandsAgainstSharedStore(t *testing.T) {
	app := testApp(t)

	root := &cobra.Command{Use: "scheduler"}
	root.AddCommand(
		AddParticipantCmd(app),
		ListParticipantsCmd(app),
		SetSettingsCmd(app),
		InteractiveCmd(app),
	)

	input := strings.Join([]string{
		`addParticipant "Mary Jane" 2024-05-01 2024-05-02`,
		`setSettings --min-meeting-dates 3`,
		`setSettings`,
		`bogus`,
		`exit`,
		`addParticipant Ignored 2024-05-01`,
	}, "\n")

	require.NoError(t, runSession(root, strings.NewReader(input)))

	participants, err := app.Database.GetParticipants(context.Background())
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "Mary Jane", participants[0].Name)

	settings, err := app.Database.GetSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, 3, settings.MinMeetingDates)
}

func TestRunSessionCommand_ResetsFlagsBetweenRuns(t *testing.T) {
	app := testApp(t)
	cmd := SetSettingsCmd(app)

	require.NoError(t, runSessionCommand(cmd, []string{"--min-meeting-dates", "4"}))
	assert.True(t, cmd.Flags().Changed("min-meeting-dates"))

	err := runSessionCommand(cmd, nil)
	assert.ErrorContains(t, err, "nothing to update")
	assert.False(t, cmd.Flags().Changed("min-meeting-dates"))
}
