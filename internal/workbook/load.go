package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Load reads an .xlsx workbook into ordered tabular form. The first row of
// each sheet is taken as the header; column order and row order are preserved
// as read. Sheets without a header row load as empty sheets.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := New()
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", name, err)
		}
		wb.Set(name, sheetFromRows(rows))
	}
	return wb, nil
}

func sheetFromRows(raw [][]string) *Sheet {
	s := &Sheet{}
	if len(raw) == 0 {
		return s
	}
	s.Columns = append(s.Columns, raw[0]...)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(s.Columns))
		for i, col := range s.Columns {
			// excelize trims trailing empty cells from each row.
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}
