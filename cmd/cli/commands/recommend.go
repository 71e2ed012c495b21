package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/meeting-scheduler/pkg/core/services"
)

// RecommendCmd creates the recommend command
func RecommendCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Recommend meeting dates from everyone's availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.Recommend(app.Ctx, app.Database, app.Logger, app.Cfg.Settings())
			if err != nil {
				return err
			}

			printRecommendation(result)
			return nil
		},
	}
}

func printRecommendation(result *services.RecommendResult) {
	fmt.Println()
	printSettings(result.Settings)
	fmt.Println()

	if len(result.Schedule.FinalDates) == 0 {
		fmt.Println("No meeting dates could be recommended.")
	} else {
		core := make(map[string]bool, len(result.Schedule.CoreDates))
		for _, date := range result.Schedule.CoreDates {
			core[date] = true
		}

		fmt.Printf("Recommended dates (%d):\n", len(result.Statistics.Dates))
		for i, date := range result.Statistics.Dates {
			marker := ""
			if core[date.Date] {
				marker = " (core)"
			}
			fmt.Printf("  %2d. %s  %d participants%s\n", i+1, date.Date, date.Participants, marker)
		}
		fmt.Println()

		fmt.Println("Attendance:")
		for _, p := range result.Statistics.Participants {
			fmt.Printf("  %-20s %d/%d  %s\n",
				p.DisplayName, p.AttendingCount, result.Statistics.TotalMeetings, strings.Join(p.AttendingDates, ", "))
		}
		fmt.Printf("\n  Mean %.2f, std dev %.2f meetings per participant\n", result.Statistics.MeanAttendance, result.Statistics.StdDevAttendance)
	}

	if len(result.Schedule.Warnings) > 0 {
		fmt.Printf("\n⚠️  Warnings:\n")
		for _, warning := range result.Schedule.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
	fmt.Println()
}
