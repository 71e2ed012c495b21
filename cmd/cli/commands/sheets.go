package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/meeting-scheduler/pkg/core/services"
)

// ImportParticipantsCmd creates the importParticipants command
func ImportParticipantsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importParticipants",
		Short: "Import participants and their dates from the availability tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			settings, err := services.GetSettings(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			result, err := services.ImportParticipants(app.Ctx, client, app.Database, app.Logger, app.Cfg.Sheets, settings)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Import complete: %d added, %d updated, %d unchanged\n",
				len(result.Added), len(result.Updated), result.Unchanged)

			if len(result.Skipped) > 0 {
				fmt.Printf("\n⚠️  Skipped %d rows:\n", len(result.Skipped))
				for _, issue := range result.Skipped {
					fmt.Printf("  ✗ row %d (%s): %s\n", issue.Row, issue.Name, issue.Reason)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule",
		Short: "Recommend meeting dates and publish them to the schedule tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			result, err := services.PublishSchedule(app.Ctx, client, app.Database, app.Logger, app.Cfg.Sheets, app.Cfg.Settings())
			if err != nil {
				return err
			}

			printRecommendation(result)
			fmt.Printf("✓ Published to tab %q\n\n", app.Cfg.Sheets.PublishTab)

			return nil
		},
	}
}
