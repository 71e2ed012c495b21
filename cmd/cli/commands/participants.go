package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
	"github.com/jakechorley/meeting-scheduler/pkg/core/services"
)

// defaultRuleWindow is how far a recurrence rule is expanded when --until is not given
const defaultRuleWindow = 12 * 7 * 24 * time.Hour

// AddParticipantCmd creates the addParticipant command
func AddParticipantCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addParticipant <name> [dates...]",
		Short: "Add a participant with the dates they can attend (YYYY-MM-DD)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			availability, err := availabilityFromFlags(cmd, app, args[1:])
			if err != nil {
				return err
			}

			dates, err := services.ResolveAvailability(availability)
			if err != nil {
				return err
			}

			settings, err := services.GetSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			participant, err := services.AddParticipant(app.Ctx, app.Database, app.Logger, settings, args[0], dates)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Participant added\n\n")
			printParticipant(*participant)
			fmt.Println()

			return nil
		},
	}

	addAvailabilityFlags(cmd)
	return cmd
}

// UpdateParticipantCmd creates the updateParticipant command
func UpdateParticipantCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateParticipant <id> [dates...]",
		Short: "Rename a participant and/or replace their dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update services.ParticipantUpdate

			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				update.Name = &name
			}

			availability, err := availabilityFromFlags(cmd, app, args[1:])
			if err != nil {
				return err
			}
			if len(availability.Dates) > 0 || availability.RRule != "" {
				update.Dates, err = services.ResolveAvailability(availability)
				if err != nil {
					return err
				}
			}

			if update.Name == nil && update.Dates == nil {
				return fmt.Errorf("nothing to update: pass --name and/or dates")
			}

			settings, err := services.GetSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			participant, err := services.UpdateParticipant(app.Ctx, app.Database, app.Logger, settings, args[0], update)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Participant updated\n\n")
			printParticipant(*participant)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("name", "", "New display name")
	addAvailabilityFlags(cmd)
	return cmd
}

// RemoveParticipantCmd creates the removeParticipant command
func RemoveParticipantCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeParticipant <id>",
		Short: "Remove a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveParticipant(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Participant %s removed\n\n", args[0])
			return nil
		},
	}
}

// ListParticipantsCmd creates the listParticipants command
func ListParticipantsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listParticipants",
		Short: "List every participant and their dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			participants, err := services.ListParticipants(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(participants) == 0 {
				fmt.Println("\nNo participants yet.")
				return nil
			}

			fmt.Printf("\n%d participants:\n\n", len(participants))
			for _, p := range participants {
				printParticipant(p)
			}
			fmt.Println()

			return nil
		},
	}
}

func addAvailabilityFlags(cmd *cobra.Command) {
	cmd.Flags().String("rrule", "", "Recurrence rule describing availability, e.g. FREQ=WEEKLY;BYDAY=TU,TH")
	cmd.Flags().String("preset", "", "Name of an availabilityRules preset from the config")
	cmd.Flags().String("from", "", "First date a rule may produce (default today)")
	cmd.Flags().String("until", "", "Last date a rule may produce (default twelve weeks after --from)")
}

// availabilityFromFlags combines positional dates with the --rrule/--preset window flags
func availabilityFromFlags(cmd *cobra.Command, app *AppContext, dates []string) (services.Availability, error) {
	rule, _ := cmd.Flags().GetString("rrule")
	preset, _ := cmd.Flags().GetString("preset")
	from, _ := cmd.Flags().GetString("from")
	until, _ := cmd.Flags().GetString("until")

	if rule != "" && preset != "" {
		return services.Availability{}, fmt.Errorf("--rrule and --preset are mutually exclusive")
	}

	if preset != "" {
		presetRule, ok := app.Cfg.AvailabilityRule(preset)
		if !ok {
			return services.Availability{}, fmt.Errorf("unknown availability preset %q", preset)
		}
		rule = presetRule
	}

	if rule != "" {
		if from == "" {
			from = time.Now().Format(model.DateLayout)
		}
		if until == "" {
			start, err := model.ParseDate(from)
			if err != nil {
				return services.Availability{}, err
			}
			until = start.Add(defaultRuleWindow).Format(model.DateLayout)
		}
		app.Logger.Debug("Expanding availability rule",
			zap.String("rrule", rule),
			zap.String("from", from),
			zap.String("until", until))
	}

	return services.Availability{Dates: dates, RRule: rule, From: from, Until: until}, nil
}

func printParticipant(p model.Participant) {
	fmt.Printf("  %-20s %s\n", p.DisplayName, p.ID)
	fmt.Printf("  %-20s %s\n", "", strings.Join(p.AvailableDates, ", "))
}
