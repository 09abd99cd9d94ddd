package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Conform returns a copy of s restricted to exactly the declared columns, in
// declared order. Declared-but-absent columns are inserted with empty strings
// for every row; columns outside the schema are discarded.
func Conform(s *Sheet, schema []string) *Sheet {
	out := &Sheet{Columns: append([]string(nil), schema...)}
	if s == nil {
		return out
	}
	for _, row := range s.Rows {
		conformed := make(map[string]string, len(schema))
		for _, col := range schema {
			conformed[col] = row[col]
		}
		out.Rows = append(out.Rows, conformed)
	}
	return out
}

// Write exports the workbook to path. Only the sheets named in order are
// written, each conformed to its schema first; a named sheet missing from the
// workbook is written as headers only.
func Write(path string, wb *Workbook, order []string, schemas map[string][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, name := range order {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
		sheet := Conform(wb.Sheet(name), schemas[name])
		if err := writeSheet(f, name, sheet); err != nil {
			return fmt.Errorf("write sheet %s: %w", name, err)
		}
	}
	// Drop the workbook's implicit default sheet.
	if len(order) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, s *Sheet) error {
	header := make([]any, len(s.Columns))
	for i, col := range s.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, row := range s.Rows {
		cells := make([]any, len(s.Columns))
		for j, col := range s.Columns {
			cells[j] = row[col]
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, anchor, &cells); err != nil {
			return err
		}
	}
	return nil
}
