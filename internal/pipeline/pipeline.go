// Package pipeline wires the generation stages together: load workbooks,
// call the stage generators in dependency order, run the dashboard layout
// passes, and export the metadata workbook with its dropdown validations.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflow/internal/completion"
	"tableflow/internal/config"
	"tableflow/internal/metadata"
	"tableflow/internal/workbook"
)

// Options locate the workbooks a stage reads and writes. OutputPath defaults
// to MetadataPath, so stages rewrite the metadata workbook in place.
type Options struct {
	MetadataPath string
	InputPath    string
	OutputPath   string
}

func (o Options) outputPath() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return o.MetadataPath
}

// Runner executes generation stages against one completion client. Every
// Runner carries a fresh run id so concurrent or repeated runs stay apart in
// the logs.
type Runner struct {
	cfg    *config.Config
	client completion.Client
	log    *zap.Logger
	runID  string
}

// NewRunner returns a Runner logging under a fresh run id. A nil logger
// disables logging.
func NewRunner(cfg *config.Config, client completion.Client, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.NewString()
	return &Runner{
		cfg:    cfg,
		client: client,
		log:    log.With(zap.String("run", runID)),
		runID:  runID,
	}
}

// RunID returns the identifier stamped on this runner's log entries.
func (r *Runner) RunID() string { return r.runID }

// loadMetadata loads the metadata workbook, or starts an empty one when the
// file does not exist yet.
func (r *Runner) loadMetadata(path string) (*workbook.Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return workbook.New(), nil
	}
	wb, err := workbook.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load metadata workbook: %w", err)
	}
	return wb, nil
}

// export writes the metadata workbook and injects dropdown validations into
// the named sheets.
func (r *Runner) export(path string, wb *workbook.Workbook, dropdownSheets []string) error {
	if err := workbook.Write(path, wb, metadata.MetadataSheets, metadata.SheetSchemas); err != nil {
		return fmt.Errorf("export metadata: %w", err)
	}
	if err := r.injectDropdowns(path, dropdownSheets); err != nil {
		return err
	}
	r.log.Info("metadata workbook written", zap.String("path", path))
	return nil
}

// injectDropdowns applies the configured list validations sheet by sheet. A
// sheet missing from the written file is logged and skipped so the remaining
// sheets still get their dropdowns.
func (r *Runner) injectDropdowns(path string, sheets []string) error {
	for _, sheet := range sheets {
		options := metadata.DropdownConfigs[sheet]
		if len(options) == 0 {
			continue
		}
		err := workbook.InjectDropdowns(path, sheet, options, r.log)
		if errors.Is(err, workbook.ErrSheetNotFound) {
			r.log.Warn("dropdown sheet missing, skipping", zap.String("sheet", sheet))
			continue
		}
		if err != nil {
			return fmt.Errorf("inject dropdowns on %s: %w", sheet, err)
		}
	}
	return nil
}
