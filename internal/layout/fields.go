package layout

import (
	"math"
	"sort"

	"tableflow/internal/metadata"
)

// PositionFields assigns field geometry within each dashboard panel and
// returns the repositioned copy. Rows group by dashboard name alone; fields
// are ordered by semantic priority onto an adaptive sub-grid whose column
// count grows with the square root of the field count, capped at four.
func PositionFields(rows []metadata.DashboardRow) []metadata.DashboardRow {
	out := make([]metadata.DashboardRow, len(rows))
	copy(out, rows)

	for _, dashboard := range firstSeen(out, func(r metadata.DashboardRow) string { return r.Dashboard }) {
		var idx []int
		for i := range out {
			if out[i].Dashboard == dashboard {
				idx = append(idx, i)
			}
		}
		positionDashboardFields(out, idx)
	}
	return out
}

func positionDashboardFields(rows []metadata.DashboardRow, idx []int) {
	columns := columnCount(len(idx))

	sorted := make([]int, len(idx))
	copy(sorted, idx)
	sort.SliceStable(sorted, func(a, b int) bool {
		return fieldPriority(rows[sorted[a]].Field) < fieldPriority(rows[sorted[b]].Field)
	})

	for position, i := range sorted {
		col := position % columns
		row := position / columns
		rows[i].FieldX = initialX + col*horizontalStep
		rows[i].FieldY = initialY + row*verticalStep

		sizeField(&rows[i])
	}
}

// columnCount adapts the sub-grid width to the field count: ceil(sqrt(n)),
// clamped to [1, maxColumns].
func columnCount(fieldCount int) int {
	cols := int(math.Ceil(math.Sqrt(float64(fieldCount))))
	if cols < 1 {
		cols = 1
	}
	if cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// fieldPriority scores a field for ordering. Lower scores place first:
// identifiers, then names, dates, status, amounts, contacts, everything
// else. Non-text field references sort last.
func fieldPriority(f metadata.FieldName) int {
	if !f.Text {
		return 100
	}
	norm := normalizeName(f.Value)
	groups := []struct {
		patterns []string
		score    int
	}{
		{idPatterns, -10},
		{namePatterns, -5},
		{datePatterns, 0},
		{statusPatterns, 5},
		{amountPatterns, 10},
		{contactPatterns, 15},
	}
	for _, g := range groups {
		if matchesAny(norm, g.patterns) {
			return g.score
		}
	}
	return 20
}

// sizeField sets a field's box size from its name. Pattern checks run first
// (long-text, then date, then id); a long raw name then widens the box. The
// order matches the platform's existing exports and must not change.
// Non-text references keep the default geometry.
func sizeField(row *metadata.DashboardRow) {
	if !row.Field.Text {
		return
	}
	norm := normalizeName(row.Field.Value)

	width, height := 50, 74
	switch {
	case matchesAny(norm, longTextPatterns):
		width, height = 100, 100
	case matchesAny(norm, datePatterns):
		height = 64
	case matchesAny(norm, idPatterns):
		height = 50
	}

	if len(row.Field.Value) > 15 {
		width = min(width*3/2, 100)
	}

	row.FieldWidth = width
	row.FieldHeight = height
}
