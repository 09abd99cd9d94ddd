package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tableflow/internal/generator"
	"tableflow/internal/layout"
	"tableflow/internal/metadata"
	"tableflow/internal/workbook"
)

// RunModules profiles the input workbook, gates on relevance, and writes the
// generated Modules sheet. An irrelevant input still exports the workbook,
// with the Modules sheet left empty. Other sheets of an existing metadata
// workbook pass through untouched.
func (r *Runner) RunModules(ctx context.Context, opts Options) error {
	input, err := workbook.Load(opts.InputPath)
	if err != nil {
		return fmt.Errorf("load input workbook: %w", err)
	}
	gen := generator.NewModuleGenerator(r.client, r.cfg, r.log)
	rows, _, err := r.generateModules(ctx, gen, input)
	if err != nil {
		return err
	}
	meta, err := r.loadMetadata(opts.MetadataPath)
	if err != nil {
		return err
	}
	meta.Set(metadata.SheetModules, metadata.ModulesSheet(rows))
	return r.export(opts.outputPath(), meta, []string{metadata.SheetModules})
}

// RunTables generates the Table sheet from the Modules sheet of the metadata
// workbook and the input data. Both workbooks load concurrently.
func (r *Runner) RunTables(ctx context.Context, opts Options) error {
	meta, input, err := r.loadBoth(opts)
	if err != nil {
		return err
	}
	modules := metadata.ModuleRowsFromSheet(meta.Sheet(metadata.SheetModules))
	if len(modules) == 0 {
		return fmt.Errorf("metadata workbook %s has no module rows; run the modules stage first", opts.MetadataPath)
	}
	rows, err := r.generateTables(ctx, modules, input)
	if err != nil {
		return err
	}
	meta.Set(metadata.SheetTable, metadata.TablesSheet(rows))
	return r.export(opts.outputPath(), meta, []string{metadata.SheetTable})
}

// RunDashboards generates the Dashboard sheet from the Modules and Table
// sheets plus the input data, then runs the layout passes over it.
func (r *Runner) RunDashboards(ctx context.Context, opts Options) error {
	meta, input, err := r.loadBoth(opts)
	if err != nil {
		return err
	}
	modules := metadata.ModuleRowsFromSheet(meta.Sheet(metadata.SheetModules))
	if len(modules) == 0 {
		return fmt.Errorf("metadata workbook %s has no module rows; run the modules stage first", opts.MetadataPath)
	}
	tables := metadata.TableRowsFromSheet(meta.Sheet(metadata.SheetTable))
	if len(tables) == 0 {
		return fmt.Errorf("metadata workbook %s has no table rows; run the tables stage first", opts.MetadataPath)
	}
	rows, err := r.generateDashboards(ctx, modules, tables, input)
	if err != nil {
		return err
	}
	meta.Set(metadata.SheetDashboard, metadata.DashboardsSheet(rows))
	return r.export(opts.outputPath(), meta, metadata.MetadataSheets)
}

// RunAll executes every stage against a fresh metadata workbook: relevance
// gate, modules, tables, dashboards, export with all dropdowns.
func (r *Runner) RunAll(ctx context.Context, opts Options) error {
	input, err := workbook.Load(opts.InputPath)
	if err != nil {
		return fmt.Errorf("load input workbook: %w", err)
	}
	modGen := generator.NewModuleGenerator(r.client, r.cfg, r.log)
	modules, relevant, err := r.generateModules(ctx, modGen, input)
	if err != nil {
		return err
	}
	if !relevant {
		meta := workbook.New()
		meta.Set(metadata.SheetModules, metadata.ModulesSheet(nil))
		return r.export(opts.outputPath(), meta, metadata.MetadataSheets)
	}
	tables, err := r.generateTables(ctx, modules, input)
	if err != nil {
		return err
	}
	dashboards, err := r.generateDashboards(ctx, modules, tables, input)
	if err != nil {
		return err
	}

	meta := workbook.New()
	meta.Set(metadata.SheetModules, metadata.ModulesSheet(modules))
	meta.Set(metadata.SheetTable, metadata.TablesSheet(tables))
	meta.Set(metadata.SheetDashboard, metadata.DashboardsSheet(dashboards))
	return r.export(opts.outputPath(), meta, metadata.MetadataSheets)
}

// generateModules gates on relevance before generating. An irrelevant input
// is not an error: the stage returns no rows with relevant false, and the
// caller exports the metadata workbook with an empty Modules sheet.
func (r *Runner) generateModules(ctx context.Context, gen *generator.ModuleGenerator, input *workbook.Workbook) (rows []metadata.ModuleRow, relevant bool, err error) {
	profiles := workbook.Profile(input)
	relevant, err = gen.CheckRelevance(ctx, profiles)
	if err != nil {
		return nil, false, fmt.Errorf("relevance check: %w", err)
	}
	if !relevant {
		r.log.Warn("input workbook does not look like tabular business data, skipping module generation")
		return nil, false, nil
	}
	rows, err = gen.Generate(ctx, profiles)
	if err != nil {
		return nil, false, fmt.Errorf("generate modules: %w", err)
	}
	r.log.Info("modules stage complete", zap.Int("rows", len(rows)))
	return rows, true, nil
}

func (r *Runner) generateTables(ctx context.Context, modules []metadata.ModuleRow, input *workbook.Workbook) ([]metadata.TableRow, error) {
	summary := workbook.Summarize(input)
	rows, err := generator.NewTableGenerator(r.client, r.cfg, r.log).Generate(ctx, modules, summary)
	if err != nil {
		return nil, fmt.Errorf("generate tables: %w", err)
	}
	r.log.Info("tables stage complete", zap.Int("rows", len(rows)))
	return rows, nil
}

func (r *Runner) generateDashboards(ctx context.Context, modules []metadata.ModuleRow, tables []metadata.TableRow, input *workbook.Workbook) ([]metadata.DashboardRow, error) {
	summary := workbook.Summarize(input)
	rows, err := generator.NewDashboardGenerator(r.client, r.cfg, r.log).Generate(ctx, modules, tables, summary)
	if err != nil {
		return nil, fmt.Errorf("generate dashboards: %w", err)
	}
	rows = FinishDashboards(rows)
	r.log.Info("dashboards stage complete", zap.Int("rows", len(rows)))
	return rows, nil
}

// FinishDashboards runs the post-generation passes in their required order:
// element ids, panel layout, field layout, view attributes, final sanitize.
func FinishDashboards(rows []metadata.DashboardRow) []metadata.DashboardRow {
	rows = metadata.NewIDAssigner().Assign(rows)
	rows = layout.PositionPanels(rows)
	rows = layout.PositionFields(rows)
	rows = layout.SerializeViewAttributes(rows)
	return layout.ResanitizeViewAttributes(rows)
}

// loadBoth loads the metadata and input workbooks concurrently.
func (r *Runner) loadBoth(opts Options) (meta, input *workbook.Workbook, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		meta, err = r.loadMetadata(opts.MetadataPath)
		return err
	})
	g.Go(func() error {
		var err error
		input, err = workbook.Load(opts.InputPath)
		if err != nil {
			return fmt.Errorf("load input workbook: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return meta, input, nil
}
