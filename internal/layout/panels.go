package layout

import (
	"tableflow/internal/metadata"
)

// PositionPanels assigns panel geometry to every dashboard row and returns
// the repositioned copy. Each module lays out independently: its dashboards,
// in first-seen row order, pack left to right along a cursor and wrap into a
// new band once the cursor reaches the row width limit. All rows of one
// dashboard share the panel's geometry.
func PositionPanels(rows []metadata.DashboardRow) []metadata.DashboardRow {
	out := make([]metadata.DashboardRow, len(rows))
	copy(out, rows)

	for _, module := range firstSeen(out, func(r metadata.DashboardRow) string { return r.Module }) {
		positionModulePanels(out, module)
	}
	return out
}

func positionModulePanels(rows []metadata.DashboardRow, module string) {
	var moduleIdx []int
	for i := range rows {
		if rows[i].Module == module {
			moduleIdx = append(moduleIdx, i)
		}
	}

	currentX, currentY := 0, 0
	maxHeightInRow := 0
	for _, dashboard := range firstSeenAt(rows, moduleIdx, func(r metadata.DashboardRow) string { return r.Dashboard }) {
		var panelIdx []int
		for _, i := range moduleIdx {
			if rows[i].Dashboard == dashboard {
				panelIdx = append(panelIdx, i)
			}
		}

		width, height := panelSize(rows, panelIdx)
		for _, i := range panelIdx {
			rows[i].PanelX = currentX
			rows[i].PanelY = currentY
			rows[i].PanelWidth = width
			rows[i].PanelHeight = height
		}

		if height > maxHeightInRow {
			maxHeightInRow = height
		}
		currentX += width
		if currentX >= panelWrapX {
			currentX = 0
			currentY += maxHeightInRow + panelBandGap
			maxHeightInRow = 0
		}
	}
}

// panelSize derives a panel's dimensions from its content: reports widen it,
// field overflow beyond the soft cap and summary views stretch it.
func panelSize(rows []metadata.DashboardRow, panelIdx []int) (width, height int) {
	width = panelBaseWidth
	height = panelBaseHeight

	fieldCount := len(panelIdx)
	hasReport, hasSummary := false, false
	for _, i := range panelIdx {
		if rows[i].ObjectType == metadata.ObjectReport {
			hasReport = true
		}
		if rows[i].ViewType == metadata.ViewReportSummary {
			hasSummary = true
		}
	}

	if hasReport {
		width += panelReportBonus
	}
	if fieldCount > panelFieldSoftCap {
		height += ceilDiv(fieldCount-panelFieldSoftCap, 2) * 2
	}
	if hasSummary {
		height += panelSummaryBonus
	}
	return width, height
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// firstSeen returns the distinct key values over all rows, in encounter order.
func firstSeen(rows []metadata.DashboardRow, key func(metadata.DashboardRow) string) []string {
	idx := make([]int, len(rows))
	for i := range rows {
		idx[i] = i
	}
	return firstSeenAt(rows, idx, key)
}

// firstSeenAt is firstSeen restricted to the given row indices.
func firstSeenAt(rows []metadata.DashboardRow, idx []int, key func(metadata.DashboardRow) string) []string {
	seen := make(map[string]struct{}, len(idx))
	var order []string
	for _, i := range idx {
		k := key(rows[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		order = append(order, k)
	}
	return order
}
