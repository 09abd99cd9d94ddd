package workbook

import (
	"bytes"
	"encoding/json"
)

// TableSummary names one user table and its columns, in sheet order.
type TableSummary struct {
	Name    string
	Columns []string
}

// Summary maps every sheet of a user workbook to its column list. Order
// follows the workbook so prompts are deterministic for a given input.
type Summary []TableSummary

// Summarize extracts a per-table column summary from a user workbook.
func Summarize(wb *Workbook) Summary {
	var out Summary
	for _, name := range wb.Names() {
		out = append(out, TableSummary{Name: name, Columns: append([]string(nil), wb.Sheet(name).Columns...)})
	}
	return out
}

// Columns returns the column list of the named table, or nil when the
// summary has no such table.
func (s Summary) Columns(table string) []string {
	for _, t := range s {
		if t.Name == table {
			return t.Columns
		}
	}
	return nil
}

// MarshalJSON renders the summary as a {"table": [columns]} object in table
// order, matching what the prompts embed.
func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Name)
		if err != nil {
			return nil, err
		}
		cols, err := json.Marshal(t.Columns)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(cols)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SheetProfile is the shape summary of one sheet: dimensions, column names,
// and per-column empty-cell counts. It feeds the dataset relevance check.
type SheetProfile struct {
	Name        string         `json:"-"`
	Rows        int            `json:"rows"`
	Cols        int            `json:"columns"`
	Columns     []string       `json:"columns_list"`
	NullColumns map[string]int `json:"null_columns"`
}

// Profile summarizes every sheet of a workbook.
func Profile(wb *Workbook) []SheetProfile {
	var out []SheetProfile
	for _, name := range wb.Names() {
		sheet := wb.Sheet(name)
		p := SheetProfile{
			Name:        name,
			Rows:        len(sheet.Rows),
			Cols:        len(sheet.Columns),
			Columns:     append([]string(nil), sheet.Columns...),
			NullColumns: map[string]int{},
		}
		for _, col := range sheet.Columns {
			empty := 0
			for _, row := range sheet.Rows {
				if row[col] == "" {
					empty++
				}
			}
			if empty > 0 {
				p.NullColumns[col] = empty
			}
		}
		out = append(out, p)
	}
	return out
}

// ProfileJSON renders sheet profiles as an ordered {"sheet": profile} object.
func ProfileJSON(profiles []SheetProfile) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, p := range profiles {
		if i > 0 {
			buf.WriteString(",\n")
		}
		key, err := json.Marshal(p.Name)
		if err != nil {
			return "", err
		}
		body, err := json.MarshalIndent(p, "  ", "  ")
		if err != nil {
			return "", err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
	}
	buf.WriteString("\n}")
	return buf.String(), nil
}
