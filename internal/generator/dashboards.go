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

// DashboardGenerator produces the Dashboard sheet rows: the model proposes
// one row per displayed field, and the generator cleans names, normalizes
// the enum columns, and repairs field references before the layout passes
// run.
type DashboardGenerator struct {
	client completion.Client
	cfg    *config.Config
	log    *zap.Logger
}

// NewDashboardGenerator wires a dashboard generator. A nil logger disables
// logging.
func NewDashboardGenerator(client completion.Client, cfg *config.Config, log *zap.Logger) *DashboardGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardGenerator{client: client, cfg: cfg, log: log}
}

// Generate proposes dashboard metadata constrained to the module hierarchy,
// the module-to-table mapping, and the sanitized user columns.
func (g *DashboardGenerator) Generate(ctx context.Context, modules []metadata.ModuleRow, tables []metadata.TableRow, summary workbook.Summary) ([]metadata.DashboardRow, error) {
	moduleKeys, byModule := TableNamesByModule(tables)

	sanitizedCols := make(map[string][]string, len(summary))
	tableKeys := make([]string, 0, len(summary))
	for _, t := range summary {
		cols := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cols[i] = metadata.Sanitize(c)
		}
		sanitizedCols[t.Name] = cols
		tableKeys = append(tableKeys, t.Name)
	}

	p := prompt.Dashboards(
		ModuleNames(modules),
		orderedJSON(moduleKeys, byModule),
		orderedJSON(tableKeys, sanitizedCols),
		metadata.DropdownConfigs[metadata.SheetDashboard]["View Type"],
		metadata.DropdownConfigs[metadata.SheetDashboard]["Object Type"],
	)
	reply, err := g.client.Complete(ctx, completion.Request{
		System:      p.System,
		User:        p.User,
		Temperature: g.cfg.Stages.Dashboard.Temperature,
		MaxTokens:   g.cfg.Stages.Dashboard.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard generation: %w", err)
	}

	var rows []metadata.DashboardRow
	if err := json.Unmarshal([]byte(completion.ExtractPayload(reply)), &rows); err != nil {
		return nil, fmt.Errorf("parse dashboard payload: %w", err)
	}

	columns := columnSets(summary)
	for i := range rows {
		rows[i].ApplyGeometryDefaults()
		g.normalizeEnums(&rows[i])
		cleanNames(&rows[i])
		g.repairField(&rows[i], columns[rows[i].ObjectName])
	}
	g.log.Info("dashboards generated", zap.Int("rows", len(rows)))
	return rows, nil
}

// normalizeEnums folds the enum-like columns onto their canonical spellings.
// Values outside the known sets pass through verbatim but are logged, so a
// drifting model shows up in the logs before it shows up in the workbook.
func (g *DashboardGenerator) normalizeEnums(r *metadata.DashboardRow) {
	vt, ok := metadata.ParseViewType(string(r.ViewType))
	if !ok && vt != "" {
		g.log.Warn("unexpected view type", zap.String("dashboard", r.Dashboard), zap.String("view_type", string(vt)))
	}
	r.ViewType = vt

	ot, ok := metadata.ParseObjectType(string(r.ObjectType))
	if !ok && ot != "" {
		g.log.Warn("unexpected object type", zap.String("dashboard", r.Dashboard), zap.String("object_type", string(ot)))
	}
	r.ObjectType = ot

	if strings.EqualFold(strings.TrimSpace(string(r.FieldType)), string(metadata.FieldTypeStaticText)) {
		r.FieldType = metadata.FieldTypeStaticText
	} else if r.FieldType != "" {
		r.FieldType = metadata.FieldTypeField
	}
}

// cleanNames strips the decorative " Dashboard" suffix and surrounding
// whitespace the model likes to add, and sanitizes the field reference.
func cleanNames(r *metadata.DashboardRow) {
	r.Dashboard = strings.TrimSpace(strings.ReplaceAll(r.Dashboard, " Dashboard", ""))
	r.Module = strings.TrimSpace(r.Module)
	r.ObjectName = strings.TrimSpace(r.ObjectName)
	if r.Field.Text {
		r.Field.Value = strings.TrimSpace(metadata.Sanitize(r.Field.Value))
	}
}

// repairField reconciles a bound field row against its object's real
// columns. Static text and non-text references are left alone.
func (g *DashboardGenerator) repairField(r *metadata.DashboardRow, valid metadata.ColumnSet) {
	if r.FieldType != metadata.FieldTypeField || !r.Field.Text || r.Field.Value == "" {
		return
	}
	repaired, ok := metadata.ValidateField(r.Field.Value, valid)
	if !ok {
		g.log.Warn("field not in table, defaulting",
			zap.String("dashboard", r.Dashboard),
			zap.String("object", r.ObjectName),
			zap.String("field", r.Field.Value),
			zap.String("fallback", metadata.RecordID))
	}
	r.Field.Value = repaired
}
