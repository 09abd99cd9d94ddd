package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wb.xlsx")
	wb := New()
	wb.Set("Table", &Sheet{
		Columns: []string{"Field", "Required?"},
		Rows:    []map[string]string{{"Field": "Name", "Required?": "TRUE"}},
	})
	schemas := map[string][]string{"Table": {"Field", "Required?"}}
	if err := Write(path, wb, []string{"Table"}, schemas); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return path
}

func TestInjectDropdowns(t *testing.T) {
	path := writeTestWorkbook(t)

	options := map[string][]string{
		"Required?": {"TRUE", "FALSE"},
		"Absent":    {"x"}, // not in the header, skipped
	}
	if err := InjectDropdowns(path, "Table", options, nil); err != nil {
		t.Fatalf("InjectDropdowns: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	dvs, err := f.GetDataValidations("Table")
	if err != nil {
		t.Fatalf("GetDataValidations: %v", err)
	}
	if len(dvs) != 1 {
		t.Fatalf("validations = %d, want 1", len(dvs))
	}
	if dvs[0].Sqref != "B2:B1048576" {
		t.Errorf("sqref = %q", dvs[0].Sqref)
	}
}

func TestInjectDropdownsMissingSheet(t *testing.T) {
	path := writeTestWorkbook(t)
	err := InjectDropdowns(path, "Nope", map[string][]string{"A": {"x"}}, nil)
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("err = %v, want ErrSheetNotFound", err)
	}
}
