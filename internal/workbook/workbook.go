// Package workbook handles the spreadsheet boundary of the generator: loading
// user and metadata workbooks into ordered tabular form, summarizing them for
// prompt context, exporting the generated metadata against fixed sheet
// schemas, and injecting dropdown validations into the result.
package workbook

// Sheet is one worksheet as ordered tabular data. Columns preserves header
// order as read; Rows preserve row order. Cells are strings throughout; the
// generator never does numeric work on loaded data.
type Sheet struct {
	Columns []string
	Rows    []map[string]string
}

// Cell returns the value at row i, column name, or "" when absent.
func (s *Sheet) Cell(i int, column string) string {
	if i < 0 || i >= len(s.Rows) {
		return ""
	}
	return s.Rows[i][column]
}

// Column returns all values of one column in row order. Missing cells come
// back as empty strings.
func (s *Sheet) Column(name string) []string {
	out := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		out[i] = row[name]
	}
	return out
}

// HasColumn reports whether the sheet declares the named column.
func (s *Sheet) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Workbook is an ordered collection of named sheets.
type Workbook struct {
	order  []string
	sheets map[string]*Sheet
}

// New returns an empty workbook.
func New() *Workbook {
	return &Workbook{sheets: make(map[string]*Sheet)}
}

// Names returns sheet names in workbook order.
func (w *Workbook) Names() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Sheet returns the named sheet, or nil when absent.
func (w *Workbook) Sheet(name string) *Sheet {
	return w.sheets[name]
}

// Set stores a sheet under name, appending to the order on first sight.
func (w *Workbook) Set(name string, s *Sheet) {
	if _, ok := w.sheets[name]; !ok {
		w.order = append(w.order, name)
	}
	w.sheets[name] = s
}

// Len returns the number of sheets.
func (w *Workbook) Len() int { return len(w.order) }
