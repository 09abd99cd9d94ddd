package metadata

import (
	"strings"

	"tableflow/internal/workbook"
)

// ModuleRowsFromSheet reads a loaded Modules sheet back into typed rows.
func ModuleRowsFromSheet(s *workbook.Sheet) []ModuleRow {
	if s == nil {
		return nil
	}
	out := make([]ModuleRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, ModuleRow{
			Module:       row["Module"],
			ParentModule: FlexString(row["Parent Module"]),
			Kind:         ModuleKind(strings.TrimSpace(row["Type"])),
			Color:        FlexString(row["Color"]),
			Icon:         FlexString(row["Icon"]),
		})
	}
	return out
}

// TableRowsFromSheet reads a loaded Table sheet back into typed rows. Only
// the columns downstream stages consume are mapped; the rest of the sheet
// passes through export untouched.
func TableRowsFromSheet(s *workbook.Sheet) []TableRow {
	if s == nil {
		return nil
	}
	out := make([]TableRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, TableRow{
			TableName:    row["Table Name"],
			Module:       row["Module"],
			Field:        row["Field"],
			DisplayField: row["Display Field"],
			UniqueID:     row["Unique Id"],
			DataType:     row["Data Type"],
		})
	}
	return out
}
