package sheetsclient

import (
	"context"
	"fmt"
	"strings"
)

// PublishedScheduleRow is a single final date in the published schedule
type PublishedScheduleRow struct {
	Date      string // YYYY-MM-DD
	Weekday   string
	Attendees []string // display names
	Core      bool
}

// PublishedSchedule is everything written to the publish tab
type PublishedSchedule struct {
	Rows     []PublishedScheduleRow
	Warnings []string
}

// PublishSchedule writes the schedule to tab, creating the tab if it does not exist.
// An existing tab is cleared first so no rows from an older schedule survive.
func (c *Client) PublishSchedule(ctx context.Context, spreadsheetID, tab string, schedule *PublishedSchedule) error {
	exists, err := c.SheetExists(ctx, spreadsheetID, tab)
	if err != nil {
		return err
	}

	if exists {
		if err := c.ClearValues(ctx, spreadsheetID, tab); err != nil {
			return fmt.Errorf("failed to clear tab %q: %w", tab, err)
		}
	} else {
		if _, err := c.CreateSheet(ctx, spreadsheetID, tab); err != nil {
			return fmt.Errorf("failed to create tab %q: %w", tab, err)
		}
	}

	if err := c.UpdateValues(ctx, spreadsheetID, fmt.Sprintf("%s!A1", tab), buildScheduleValues(schedule)); err != nil {
		return fmt.Errorf("failed to write schedule to tab %q: %w", tab, err)
	}

	return nil
}

// buildScheduleValues lays out the header, one row per date with an attendee per column,
// then a blank row and the warnings
func buildScheduleValues(schedule *PublishedSchedule) [][]interface{} {
	maxAttendees := 0
	for _, row := range schedule.Rows {
		maxAttendees = max(maxAttendees, len(row.Attendees))
	}

	header := []interface{}{"Date", "Day", "Core"}
	for i := 0; i < maxAttendees; i++ {
		header = append(header, fmt.Sprintf("Attendee %d", i+1))
	}

	values := make([][]interface{}, 0, len(schedule.Rows)+len(schedule.Warnings)+3)
	values = append(values, header)

	for _, row := range schedule.Rows {
		core := ""
		if row.Core {
			core = "Yes"
		}

		sheetRow := []interface{}{row.Date, row.Weekday, core}
		for i := 0; i < maxAttendees; i++ {
			if i < len(row.Attendees) {
				sheetRow = append(sheetRow, row.Attendees[i])
			} else {
				sheetRow = append(sheetRow, "")
			}
		}
		values = append(values, sheetRow)
	}

	if len(schedule.Rows) == 0 {
		values = append(values, []interface{}{"No meeting dates selected"})
	}

	if len(schedule.Warnings) > 0 {
		values = append(values, []interface{}{}, []interface{}{"Warnings"})
		for _, warning := range schedule.Warnings {
			values = append(values, []interface{}{strings.TrimSpace(warning)})
		}
	}

	return values
}
