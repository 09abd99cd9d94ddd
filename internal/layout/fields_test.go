package layout

import (
	"testing"

	"tableflow/internal/metadata"
)

func fieldRow(dashboard, field string) metadata.DashboardRow {
	r := metadata.DashboardRow{
		Module:    "Sales",
		Dashboard: dashboard,
		FieldType: metadata.FieldTypeField,
		Field:     metadata.FieldName{Value: field, Text: true},
	}
	r.ApplyGeometryDefaults()
	return r
}

func TestFieldPriorityOrdering(t *testing.T) {
	tests := []struct {
		field string
		want  int
	}{
		{"Order ID", -10},
		{"Invoice Number", -10},
		{"Customer Name", -5},
		{"Title", -5},
		{"Created Date", 0},
		{"Status", 5},
		{"Total Amount", 10},
		{"Unit Price", 10},
		{"Email", 15},
		{"Shipping Address", 15},
		{"Description", 20},
		{"quantity_on_hand", 20},
	}
	for _, tt := range tests {
		got := fieldPriority(metadata.FieldName{Value: tt.field, Text: true})
		if got != tt.want {
			t.Errorf("fieldPriority(%q) = %d, want %d", tt.field, got, tt.want)
		}
	}

	if got := fieldPriority(metadata.FieldName{Value: "7", Text: false}); got != 100 {
		t.Errorf("non-text reference priority = %d, want 100", got)
	}
}

func TestColumnCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {2, 2}, {4, 2}, {5, 3}, {9, 3}, {10, 4}, {16, 4}, {30, 4},
	}
	for _, tt := range tests {
		if got := columnCount(tt.n); got != tt.want {
			t.Errorf("columnCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPositionFieldsGrid(t *testing.T) {
	// Four fields: two columns. Priority order is ID, Name, Status, Notes.
	rows := []metadata.DashboardRow{
		fieldRow("Overview", "Status"),
		fieldRow("Overview", "Notes"),
		fieldRow("Overview", "ID"),
		fieldRow("Overview", "Name"),
	}

	got := PositionFields(rows)

	want := map[string]struct{ x, y int }{
		"ID":     {3, 5},
		"Name":   {63, 5},
		"Status": {3, 60},
		"Notes":  {63, 60},
	}
	for _, r := range got {
		w := want[r.Field.Value]
		if r.FieldX != w.x || r.FieldY != w.y {
			t.Errorf("%s at (%d, %d), want (%d, %d)", r.Field.Value, r.FieldX, r.FieldY, w.x, w.y)
		}
	}
}

func TestPositionFieldsNonTextLast(t *testing.T) {
	rows := []metadata.DashboardRow{
		{Dashboard: "D", Field: metadata.FieldName{Value: "3", Text: false}},
		fieldRow("D", "Name"),
	}
	rows[0].ApplyGeometryDefaults()

	got := PositionFields(rows)

	// Two fields means two columns; the text field takes the first slot.
	byValue := map[string]metadata.DashboardRow{}
	for _, r := range got {
		byValue[r.Field.Value] = r
	}
	if byValue["Name"].FieldX != 3 {
		t.Errorf("text field at x=%d, want 3", byValue["Name"].FieldX)
	}
	if byValue["3"].FieldX != 63 {
		t.Errorf("non-text field at x=%d, want 63", byValue["3"].FieldX)
	}
	// Non-text references keep their default box.
	if byValue["3"].FieldWidth != 50 || byValue["3"].FieldHeight != 50 {
		t.Errorf("non-text sized %dx%d, want default 50x50", byValue["3"].FieldWidth, byValue["3"].FieldHeight)
	}
}

func TestSizeField(t *testing.T) {
	tests := []struct {
		field         string
		width, height int
	}{
		{"Description", 100, 100},
		{"Internal Notes", 100, 100},
		{"Created Date", 50, 64},
		{"Order ID", 50, 50},
		{"Customer Name", 50, 74},
		{"Miscellaneous Details", 75, 74}, // long name widens the default box
		{"Product Description Text", 100, 100},
	}
	for _, tt := range tests {
		row := fieldRow("D", tt.field)
		sizeField(&row)
		if row.FieldWidth != tt.width || row.FieldHeight != tt.height {
			t.Errorf("sizeField(%q) = %dx%d, want %dx%d",
				tt.field, row.FieldWidth, row.FieldHeight, tt.width, tt.height)
		}
	}
}

func TestPositionFieldsGroupsByDashboardName(t *testing.T) {
	// Dashboards sharing a name lay out as one group even across modules.
	rows := []metadata.DashboardRow{
		fieldRow("Overview", "ID"),
		{Module: "HR", Dashboard: "Overview", FieldType: metadata.FieldTypeField,
			Field: metadata.FieldName{Value: "Name", Text: true}},
	}
	rows[1].ApplyGeometryDefaults()

	got := PositionFields(rows)
	if got[1].FieldX != 63 {
		t.Errorf("second row at x=%d, want 63 (same group as first)", got[1].FieldX)
	}
}
