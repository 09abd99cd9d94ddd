package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflow/internal/completion"
	"tableflow/internal/config"
	"tableflow/internal/metadata"
	"tableflow/internal/prompt"
	"tableflow/internal/workbook"
)

// TableGenerator produces the Table sheet: one metadata row per field of
// every user table, repaired against the real columns.
type TableGenerator struct {
	client completion.Client
	cfg    *config.Config
	log    *zap.Logger
}

// NewTableGenerator wires a table generator. A nil logger disables logging.
func NewTableGenerator(client completion.Client, cfg *config.Config, log *zap.Logger) *TableGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &TableGenerator{client: client, cfg: cfg, log: log}
}

// Generate proposes table metadata for the user tables, constrained to the
// given module hierarchy, then defaults and repairs every row.
func (g *TableGenerator) Generate(ctx context.Context, modules []metadata.ModuleRow, summary workbook.Summary) ([]metadata.TableRow, error) {
	p := prompt.Tables(ModuleNames(modules), summary)
	reply, err := g.client.Complete(ctx, completion.Request{
		System:      p.System,
		User:        p.User,
		Temperature: g.cfg.Stages.Table.Temperature,
		MaxTokens:   g.cfg.Stages.Table.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("table generation: %w", err)
	}

	var rows []metadata.TableRow
	if err := json.Unmarshal([]byte(completion.ExtractPayload(reply)), &rows); err != nil {
		return nil, fmt.Errorf("parse table payload: %w", err)
	}

	columns := columnSets(summary)
	for i := range rows {
		applyTableDefaults(&rows[i])
		g.repairFields(&rows[i], columns[rows[i].TableName])
	}
	g.log.Info("tables generated", zap.Int("rows", len(rows)))
	return rows, nil
}

// applyTableDefaults fills the defaults the model tends to omit and
// normalizes the conditional columns.
func applyTableDefaults(r *metadata.TableRow) {
	if r.DisplayField == "" {
		r.DisplayField = metadata.RecordID
	}
	if r.UniqueID == "" {
		r.UniqueID = metadata.RecordID
	}

	// Format stays blank unless the model asked for a custom mask.
	if !strings.EqualFold(strings.TrimSpace(r.Format.String()), "custom") {
		r.Format = ""
	}

	if bool(r.AutoIncrement) && r.AutoIncrementStart == "" {
		r.AutoIncrementStart = "1"
	}

	switch strings.ToLower(strings.TrimSpace(r.DataType)) {
	case "decimal", "integer":
		if r.DecimalPlace == "" {
			r.DecimalPlace = "0"
		}
	default:
		r.DecimalPlace = ""
	}
}

// repairFields reconciles the proposed Field and Display Field against the
// table's real columns, substituting the fallback identifier on a miss.
func (g *TableGenerator) repairFields(r *metadata.TableRow, valid metadata.ColumnSet) {
	repaired, ok := metadata.ValidateField(r.Field, valid)
	if !ok {
		g.log.Warn("field not in table, defaulting",
			zap.String("table", r.TableName),
			zap.String("field", r.Field),
			zap.String("fallback", metadata.RecordID))
	}
	r.Field = repaired

	display, ok := metadata.ValidateDisplayField(r.DisplayField, valid)
	if !ok {
		g.log.Debug("display field not in table, defaulting",
			zap.String("table", r.TableName),
			zap.String("display_field", r.DisplayField))
	}
	r.DisplayField = display
}

// columnSets builds the sanitized column membership set of every user table.
func columnSets(summary workbook.Summary) map[string]metadata.ColumnSet {
	out := make(map[string]metadata.ColumnSet, len(summary))
	for _, t := range summary {
		out[t.Name] = metadata.NewColumnSet(t.Columns)
	}
	return out
}

// TableNamesByModule groups the distinct table names under their module, in
// first-seen row order, preserving module encounter order in keys.
func TableNamesByModule(rows []metadata.TableRow) (keys []string, byModule map[string][]string) {
	byModule = make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, r := range rows {
		if _, ok := seen[r.Module]; !ok {
			seen[r.Module] = make(map[string]struct{})
			keys = append(keys, r.Module)
		}
		if _, dup := seen[r.Module][r.TableName]; dup {
			continue
		}
		seen[r.Module][r.TableName] = struct{}{}
		byModule[r.Module] = append(byModule[r.Module], r.TableName)
	}
	return keys, byModule
}
