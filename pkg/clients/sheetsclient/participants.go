package sheetsclient

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

const (
	nameColumn  = "Name"
	datesColumn = "Dates"
)

// AvailabilityRow is one participant's line in the availability tab
type AvailabilityRow struct {
	Row   int // 1-based sheet row, for error messages
	Name  string
	Dates []string
}

// ListAvailability reads and parses the availability tab.
// Dates are returned as written; callers validate them.
func (c *Client) ListAvailability(ctx context.Context, spreadsheetID, tab string) ([]AvailabilityRow, error) {
	values, err := c.GetValues(ctx, spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("availability tab %q is empty", tab)
	}

	rows, err := parseAvailability(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse availability: %w", err)
	}

	return rows, nil
}

func parseAvailability(raw [][]interface{}) ([]AvailabilityRow, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	header := raw[0]
	nameCol := findColumnIndex(header, nameColumn)
	datesCol := findColumnIndex(header, datesColumn)
	if nameCol == -1 {
		return nil, fmt.Errorf("missing required field in header: %s", nameColumn)
	}
	if datesCol == -1 {
		return nil, fmt.Errorf("missing required field in header: %s", datesColumn)
	}

	rows := make([]AvailabilityRow, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		name := strings.TrimSpace(cellString(raw[i], nameCol))
		if name == "" {
			continue
		}

		rows = append(rows, AvailabilityRow{
			Row:   i + 1,
			Name:  name,
			Dates: splitDates(cellString(raw[i], datesCol)),
		})
	}

	return rows, nil
}

// splitDates splits a cell on commas, semicolons and whitespace
func splitDates(cell string) []string {
	return strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

func cellString(row []interface{}, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	if str, ok := row[index].(string); ok {
		return str
	}
	if row[index] == nil {
		return ""
	}
	return fmt.Sprint(row[index])
}

// findColumnIndex finds the index of a column by its header name, ignoring surrounding space and case
func findColumnIndex(header []interface{}, columnName string) int {
	for i, cell := range header {
		if str, ok := cell.(string); ok && strings.EqualFold(strings.TrimSpace(str), columnName) {
			return i
		}
	}
	return -1
}
