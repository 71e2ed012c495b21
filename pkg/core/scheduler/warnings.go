package scheduler

import "fmt"

// WarningCollector accumulates diagnostics in the order they are raised
type WarningCollector struct {
	warnings []string
}

// Addf appends a formatted warning
func (w *WarningCollector) Addf(format string, args ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, args...))
}

// List returns the collected warnings (never nil)
func (w *WarningCollector) List() []string {
	out := make([]string, len(w.warnings))
	copy(out, w.warnings)
	return out
}
