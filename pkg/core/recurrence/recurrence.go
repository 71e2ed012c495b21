package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jakechorley/meeting-scheduler/pkg/core/model"
)

// MaxWindow bounds how far an expansion may reach, so unbounded rules stay small
const MaxWindow = 366 * 24 * time.Hour

// Validate checks the RRULE syntax
func Validate(rule string) error {
	if _, err := rrule.StrToRRule(rule); err != nil {
		return fmt.Errorf("invalid rrule %q: %w", rule, err)
	}
	return nil
}

// Expand returns the YYYY-MM-DD dates produced by rule between from and until (inclusive),
// in chronological order. The rule's DTSTART is set to from.
func Expand(rule string, from, until time.Time) ([]string, error) {
	if until.Before(from) {
		return nil, fmt.Errorf("window end %s is before start %s", until.Format(model.DateLayout), from.Format(model.DateLayout))
	}
	if until.Sub(from) > MaxWindow {
		return nil, fmt.Errorf("window from %s to %s exceeds %v", from.Format(model.DateLayout), until.Format(model.DateLayout), MaxWindow)
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule %q: %w", rule, err)
	}
	r.DTStart(from)

	occurrences := r.Between(from, until, true)

	dates := make([]string, 0, len(occurrences))
	seen := make(map[string]bool, len(occurrences))
	for _, occurrence := range occurrences {
		date := occurrence.Format(model.DateLayout)
		if seen[date] {
			continue
		}
		seen[date] = true
		dates = append(dates, date)
	}

	return dates, nil
}
