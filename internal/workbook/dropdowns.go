package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrSheetNotFound reports a dropdown target sheet missing from the workbook.
// Callers treat it as recoverable: log and continue with the other sheets.
var ErrSheetNotFound = errors.New("sheet not found")

// lastSheetRow is the bottom row an .xlsx worksheet can address; dropdowns
// cover the full column below the header.
const lastSheetRow = 1048576

// InjectDropdowns attaches list-constrained input rules to every configured
// column of one sheet, from row 2 down. Columns absent from the sheet header
// are skipped silently; a missing sheet returns ErrSheetNotFound.
func InjectDropdowns(path, sheet string, options map[string][]string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	injected := 0
	for col, list := range options {
		pos := indexOf(header, col)
		if pos < 0 {
			continue
		}
		letter, err := excelize.ColumnNumberToName(pos + 1)
		if err != nil {
			return fmt.Errorf("column %s: %w", col, err)
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", letter, letter, lastSheetRow)
		if err := dv.SetDropList(list); err != nil {
			return fmt.Errorf("dropdown for %s: %w", col, err)
		}
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return fmt.Errorf("dropdown for %s: %w", col, err)
		}
		injected++
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	log.Debug("dropdowns injected", zap.String("sheet", sheet), zap.Int("columns", injected))
	return nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
