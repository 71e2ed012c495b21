package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/core/services"
)

var settingsFlags = []struct {
	name  string
	usage string
	field func(*model.SettingsPatch) **int
}{
	{"min-dates-per-person", "Least number of dates each participant must submit", func(p *model.SettingsPatch) **int { return &p.MinDatesPerPerson }},
	{"min-meeting-dates", "Target number of meetings", func(p *model.SettingsPatch) **int { return &p.MinMeetingDates }},
	{"min-meetings-per-person", "Least number of meetings each participant should attend (0 disables)", func(p *model.SettingsPatch) **int { return &p.MinMeetingsPerPerson }},
	{"min-participants-per-meeting", "Quorum a date needs to be eligible", func(p *model.SettingsPatch) **int { return &p.MinParticipantsPerMeeting }},
}

// ShowSettingsCmd creates the showSettings command
func ShowSettingsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showSettings",
		Short: "Show the current scheduling settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := services.GetSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			fmt.Println()
			printSettings(settings)
			fmt.Println()
			return nil
		},
	}
}

// SetSettingsCmd creates the setSettings command
func SetSettingsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setSettings",
		Short: "Change one or more scheduling settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.SettingsPatch
			changed := 0
			for _, f := range settingsFlags {
				if !cmd.Flags().Changed(f.name) {
					continue
				}
				value, err := cmd.Flags().GetInt(f.name)
				if err != nil {
					return err
				}
				*f.field(&patch) = &value
				changed++
			}

			if changed == 0 {
				return fmt.Errorf("nothing to update: pass at least one setting flag")
			}

			settings, err := services.UpdateSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings(), patch)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Settings updated\n\n")
			printSettings(settings)
			fmt.Println()
			return nil
		},
	}

	for _, f := range settingsFlags {
		cmd.Flags().Int(f.name, 0, f.usage)
	}

	return cmd
}

// ResetSettingsCmd creates the resetSettings command
func ResetSettingsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resetSettings",
		Short: "Restore the default scheduling settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := services.ResetSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Settings reset\n\n")
			printSettings(settings)
			fmt.Println()
			return nil
		},
	}
}

func printSettings(s model.Settings) {
	fmt.Printf("  Min dates per person:         %d\n", s.MinDatesPerPerson)
	fmt.Printf("  Min meeting dates:            %d\n", s.MinMeetingDates)
	fmt.Printf("  Min meetings per person:      %d\n", s.MinMeetingsPerPerson)
	fmt.Printf("  Min participants per meeting: %d\n", s.MinParticipantsPerMeeting)
}
