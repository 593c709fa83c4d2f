package strata

import (
	"fmt"
	"strings"
)

// Warning records a recoverable problem encountered while processing a
// document, such as a page whose content stream could not be parsed. A
// warning never aborts extraction; the affected page is skipped and the
// rest of the document is processed normally.
type Warning struct {
	// Page is the 1-indexed page the warning relates to, or 0 for a
	// document-level warning.
	Page int

	// Message describes the problem.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single display string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
