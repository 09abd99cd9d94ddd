// Package layout positions generated dashboard metadata on the target
// platform's grid: panels are packed per module into a wrapping band layout,
// fields are ordered and placed on an adaptive sub-grid inside each panel,
// and the per-view attribute string is derived last. Every pass is a pure
// transform: rows in, repositioned copy out.
package layout

import "strings"

// Panel packing constants. Panels pack left to right and wrap into a new
// band once the cursor reaches the row width limit.
const (
	panelBaseWidth    = 6
	panelReportBonus  = 3
	panelBaseHeight   = 14
	panelSummaryBonus = 4
	panelWrapX        = 18
	panelBandGap      = 5
	panelFieldSoftCap = 8
)

// Field sub-grid constants.
const (
	initialX       = 3
	initialY       = 5
	horizontalStep = 60
	verticalStep   = 55
	maxColumns     = 4
)

// Semantic name patterns, checked against lowercased names with hyphens and
// underscores folded to spaces. Order matters: first matching group wins.
var (
	idPatterns       = []string{"id", "code", "number", "key"}
	namePatterns     = []string{"name", "title", "label"}
	datePatterns     = []string{"date", "created", "modified", "time"}
	statusPatterns   = []string{"status", "state", "condition", "phase"}
	amountPatterns   = []string{"amount", "price", "cost", "value", "total"}
	contactPatterns  = []string{"email", "phone", "contact", "address"}
	longTextPatterns = []string{"description", "comment", "notes"}
)

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	return strings.ReplaceAll(s, "_", " ")
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
