package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"tableflow/internal/completion"
	"tableflow/internal/config"
	"tableflow/internal/metadata"
	"tableflow/internal/workbook"
)

// scriptClient replays canned replies in order, one per completion call.
type scriptClient struct {
	replies []string
	calls   int
}

func (s *scriptClient) Complete(_ context.Context, _ completion.Request) (string, error) {
	if s.calls >= len(s.replies) {
		return "", errors.New("unexpected completion call")
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

func writeInputWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xlsx")
	wb := workbook.New()
	wb.Set("Customers", &workbook.Sheet{
		Columns: []string{"Customer Name", "Email"},
		Rows: []map[string]string{
			{"Customer Name": "Ada", "Email": "ada@example.com"},
		},
	})
	schemas := map[string][]string{"Customers": {"Customer Name", "Email"}}
	if err := workbook.Write(path, wb, []string{"Customers"}, schemas); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

const (
	relevantReply = `{"relevant": true}`
	modulesReply  = `[
		{"Module": "Sales", "Type": "Module"},
		{"Module": "Customers", "Parent Module": "Sales", "Type": "Dashboard"}
	]`
	tablesReply = `[
		{"Table Name": "Customers", "Module": "Sales", "Field": "Customer Name", "Data Type": "Text"},
		{"Table Name": "Customers", "Module": "Sales", "Field": "Email", "Data Type": "Text"}
	]`
	dashboardsReply = `[
		{"Module": "Sales", "Dashboard": "Customers Dashboard", "Object Type": "Table",
		 "Object Name": "Customers", "View Type": "List", "Field Type": "Field",
		 "Field": "Customer Name"},
		{"Module": "Sales", "Dashboard": "Customers Dashboard", "Object Type": "Table",
		 "Object Name": "Customers", "View Type": "List", "Field Type": "Field",
		 "Field": "Email"}
	]`
)

func TestRunAll(t *testing.T) {
	client := &scriptClient{replies: []string{relevantReply, modulesReply, tablesReply, dashboardsReply}}
	runner := NewRunner(config.Default(), client, nil)

	out := filepath.Join(t.TempDir(), "metadata.xlsx")
	err := runner.RunAll(context.Background(), Options{
		InputPath:    writeInputWorkbook(t),
		MetadataPath: out,
	})
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if client.calls != 4 {
		t.Errorf("completion calls = %d, want 4", client.calls)
	}

	got, err := workbook.Load(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}

	names := got.Names()
	if len(names) != 4 || names[0] != metadata.SheetModules || names[3] != metadata.SheetLinks {
		t.Fatalf("sheets = %v", names)
	}

	modules := got.Sheet(metadata.SheetModules)
	if len(modules.Rows) != 2 || modules.Cell(0, "Module") != "Sales" {
		t.Errorf("modules sheet = %+v", modules.Rows)
	}

	table := got.Sheet(metadata.SheetTable)
	if len(table.Rows) != 2 {
		t.Fatalf("table rows = %d", len(table.Rows))
	}
	if table.Cell(0, "Display Field") != metadata.RecordID || table.Cell(0, "Unique Id") != metadata.RecordID {
		t.Errorf("table defaults missing: %+v", table.Rows[0])
	}

	dash := got.Sheet(metadata.SheetDashboard)
	if len(dash.Rows) != 2 {
		t.Fatalf("dashboard rows = %d", len(dash.Rows))
	}
	if dash.Cell(0, "Dashboard") != "Customers" {
		t.Errorf("dashboard name = %q, want suffix stripped", dash.Cell(0, "Dashboard"))
	}
	if dash.Cell(0, "Element Id") != "1" || dash.Cell(1, "Element Id") != "1" {
		t.Errorf("element ids = %q, %q", dash.Cell(0, "Element Id"), dash.Cell(1, "Element Id"))
	}
	if dash.Cell(0, "PosX") != "0" || dash.Cell(0, "Width") != "6" || dash.Cell(0, "Height") != "14" {
		t.Errorf("panel geometry = %q %q %q", dash.Cell(0, "PosX"), dash.Cell(0, "Width"), dash.Cell(0, "Height"))
	}
	// Name places before contact on the field grid.
	if dash.Cell(0, "PosX.1") != "3" || dash.Cell(1, "PosX.1") != "63" {
		t.Errorf("field x = %q, %q", dash.Cell(0, "PosX.1"), dash.Cell(1, "PosX.1"))
	}
	wantAttrs := "CustomerName::False::0::0|Email::False::0::0"
	if dash.Cell(0, "View Type Attributes") != wantAttrs {
		t.Errorf("attributes = %q, want %q", dash.Cell(0, "View Type Attributes"), wantAttrs)
	}
}

func TestRunModulesNotRelevantExportsEmpty(t *testing.T) {
	client := &scriptClient{replies: []string{`{"relevant": false}`}}
	runner := NewRunner(config.Default(), client, nil)

	out := filepath.Join(t.TempDir(), "metadata.xlsx")
	err := runner.RunModules(context.Background(), Options{
		InputPath:    writeInputWorkbook(t),
		MetadataPath: out,
	})
	if err != nil {
		t.Fatalf("RunModules: %v", err)
	}

	got, err := workbook.Load(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	modules := got.Sheet(metadata.SheetModules)
	if modules == nil {
		t.Fatal("modules sheet missing from export")
	}
	if len(modules.Rows) != 0 {
		t.Errorf("modules rows = %d, want none", len(modules.Rows))
	}
	if len(modules.Columns) == 0 || modules.Columns[0] != "Module" {
		t.Errorf("modules columns = %v", modules.Columns)
	}
}

func TestRunAllNotRelevantExportsEmpty(t *testing.T) {
	client := &scriptClient{replies: []string{`{"relevant": false}`}}
	runner := NewRunner(config.Default(), client, nil)

	out := filepath.Join(t.TempDir(), "metadata.xlsx")
	err := runner.RunAll(context.Background(), Options{
		InputPath:    writeInputWorkbook(t),
		MetadataPath: out,
	})
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("completion calls = %d, want only the relevance check", client.calls)
	}

	got, err := workbook.Load(out)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if names := got.Names(); len(names) != 4 {
		t.Fatalf("sheets = %v", names)
	}
	if n := len(got.Sheet(metadata.SheetModules).Rows); n != 0 {
		t.Errorf("modules rows = %d, want none", n)
	}
	if n := len(got.Sheet(metadata.SheetTable).Rows); n != 0 {
		t.Errorf("table rows = %d, want none", n)
	}
}

func TestInjectDropdownsSkipsMissingSheet(t *testing.T) {
	runner := NewRunner(config.Default(), &scriptClient{}, nil)

	path := filepath.Join(t.TempDir(), "partial.xlsx")
	wb := workbook.New()
	wb.Set(metadata.SheetModules, metadata.ModulesSheet(nil))
	if err := workbook.Write(path, wb, []string{metadata.SheetModules}, metadata.SheetSchemas); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := runner.injectDropdowns(path, []string{metadata.SheetDashboard, metadata.SheetModules})
	if err != nil {
		t.Fatalf("injectDropdowns: %v", err)
	}
}

func TestRunTablesRequiresModules(t *testing.T) {
	runner := NewRunner(config.Default(), &scriptClient{}, nil)

	err := runner.RunTables(context.Background(), Options{
		InputPath:    writeInputWorkbook(t),
		MetadataPath: filepath.Join(t.TempDir(), "absent.xlsx"),
	})
	if err == nil {
		t.Fatal("expected error without a modules sheet")
	}
}

func TestRunStagesIncrementally(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "metadata.xlsx")
	input := writeInputWorkbook(t)

	modRunner := NewRunner(config.Default(), &scriptClient{replies: []string{relevantReply, modulesReply}}, nil)
	if err := modRunner.RunModules(context.Background(), Options{InputPath: input, MetadataPath: meta}); err != nil {
		t.Fatalf("RunModules: %v", err)
	}

	tabRunner := NewRunner(config.Default(), &scriptClient{replies: []string{tablesReply}}, nil)
	if err := tabRunner.RunTables(context.Background(), Options{InputPath: input, MetadataPath: meta}); err != nil {
		t.Fatalf("RunTables: %v", err)
	}

	dashRunner := NewRunner(config.Default(), &scriptClient{replies: []string{dashboardsReply}}, nil)
	if err := dashRunner.RunDashboards(context.Background(), Options{InputPath: input, MetadataPath: meta}); err != nil {
		t.Fatalf("RunDashboards: %v", err)
	}

	got, err := workbook.Load(meta)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Sheet(metadata.SheetModules).Rows) != 2 {
		t.Error("modules sheet lost across stages")
	}
	if len(got.Sheet(metadata.SheetTable).Rows) != 2 {
		t.Error("table sheet lost across stages")
	}
	if len(got.Sheet(metadata.SheetDashboard).Rows) != 2 {
		t.Error("dashboard sheet missing")
	}
}

func TestFinishDashboards(t *testing.T) {
	rows := []metadata.DashboardRow{
		{
			Module: "Sales", Dashboard: "Overview", ObjectName: "Customers",
			ViewType: metadata.ViewList, FieldType: metadata.FieldTypeField,
			Field: metadata.FieldName{Value: "Customer.Name", Text: true},
		},
	}
	rows[0].ApplyGeometryDefaults()

	got := FinishDashboards(rows)

	if got[0].ElementID != "1" {
		t.Errorf("element id = %q", got[0].ElementID)
	}
	if got[0].PanelWidth != 6 || got[0].PanelHeight != 14 {
		t.Errorf("panel = %dx%d", got[0].PanelWidth, got[0].PanelHeight)
	}
	// The final sanitize pass strips punctuation inside the attribute string.
	if got[0].ViewTypeAttributes != "CustomerName::False::0::0" {
		t.Errorf("attributes = %q", got[0].ViewTypeAttributes)
	}
}
