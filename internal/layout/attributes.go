package layout

import (
	"fmt"
	"strings"

	"tableflow/internal/metadata"
)

// attrSegment renders one field's slot in a view attribute string. The three
// trailing slots are static placeholders for per-field flags the platform
// reserves but the generator never sets.
func attrSegment(field string) string {
	return fmt.Sprintf("%s::False::0::0", field)
}

// SerializeViewAttributes derives the pipe-delimited attribute string for
// every (dashboard, object name, view type) group and stamps it onto each of
// the group's rows, returning the updated copy. Fields appear once each in
// encounter order, space-stripped; null references and the fallback
// identifier are excluded.
func SerializeViewAttributes(rows []metadata.DashboardRow) []metadata.DashboardRow {
	out := make([]metadata.DashboardRow, len(rows))
	copy(out, rows)

	type groupKey struct {
		dashboard string
		object    string
		view      metadata.ViewType
	}
	groups := make(map[groupKey][]int)
	var order []groupKey
	for i := range out {
		k := groupKey{out[i].Dashboard, out[i].ObjectName, out[i].ViewType}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range order {
		idx := groups[k]
		var segments []string
		seen := make(map[string]struct{})
		for _, i := range idx {
			f := out[i].Field
			if f.Value == "" && !f.Text {
				continue // null reference
			}
			if _, dup := seen[f.Value]; dup {
				continue
			}
			seen[f.Value] = struct{}{}
			if strings.EqualFold(strings.TrimSpace(f.Value), metadata.RecordID) {
				continue
			}
			cleaned := strings.TrimSpace(strings.ReplaceAll(f.Value, " ", ""))
			segments = append(segments, attrSegment(cleaned))
		}
		attr := strings.Join(segments, "|")
		for _, i := range idx {
			out[i].ViewTypeAttributes = attr
		}
	}
	return out
}

// ResanitizeViewAttributes re-applies field sanitation to the name slot of
// every attribute segment, leaving the placeholder slots untouched. Upstream
// free-text sources can reintroduce punctuation after the initial
// serialization; running this pass twice is a no-op.
func ResanitizeViewAttributes(rows []metadata.DashboardRow) []metadata.DashboardRow {
	out := make([]metadata.DashboardRow, len(rows))
	copy(out, rows)

	for i := range out {
		if out[i].ViewTypeAttributes == "" {
			continue
		}
		segments := strings.Split(out[i].ViewTypeAttributes, "|")
		for j, seg := range segments {
			parts := strings.Split(seg, "::")
			parts[0] = metadata.Sanitize(parts[0])
			segments[j] = strings.Join(parts, "::")
		}
		out[i].ViewTypeAttributes = strings.Join(segments, "|")
	}
	return out
}
