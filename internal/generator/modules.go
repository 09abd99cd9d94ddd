package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"tableflow/internal/completion"
	"tableflow/internal/config"
	"tableflow/internal/metadata"
	"tableflow/internal/prompt"
	"tableflow/internal/workbook"
)

// ModuleGenerator produces the Modules sheet: the two-level module/dashboard
// navigation hierarchy proposed from a dataset profile.
type ModuleGenerator struct {
	client completion.Client
	cfg    *config.Config
	log    *zap.Logger
}

// NewModuleGenerator wires a module generator. A nil logger disables logging.
func NewModuleGenerator(client completion.Client, cfg *config.Config, log *zap.Logger) *ModuleGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &ModuleGenerator{client: client, cfg: cfg, log: log}
}

type relevanceVerdict struct {
	Relevant bool `json:"relevant"`
}

// CheckRelevance asks the model whether the dataset is business data worth
// generating ERP metadata for. An unparseable verdict counts as not
// relevant; only transport failures are errors.
func (g *ModuleGenerator) CheckRelevance(ctx context.Context, profiles []workbook.SheetProfile) (bool, error) {
	profileJSON, err := workbook.ProfileJSON(profiles)
	if err != nil {
		return false, fmt.Errorf("render dataset profile: %w", err)
	}

	p := prompt.Relevance(profileJSON)
	reply, err := g.client.Complete(ctx, completion.Request{
		System:      p.System,
		User:        p.User,
		Temperature: g.cfg.Stages.Structure.Temperature,
		MaxTokens:   g.cfg.Stages.Structure.MaxTokens,
	})
	if err != nil {
		return false, fmt.Errorf("relevance check: %w", err)
	}

	payload := completion.ExtractObject(reply)
	if payload == "" {
		g.log.Warn("relevance reply had no JSON verdict, treating dataset as not relevant")
		return false, nil
	}
	var verdict relevanceVerdict
	if err := json.Unmarshal([]byte(payload), &verdict); err != nil {
		g.log.Warn("relevance verdict unparseable, treating dataset as not relevant", zap.Error(err))
		return false, nil
	}
	return verdict.Relevant, nil
}

// Generate proposes the module hierarchy for a dataset profile.
func (g *ModuleGenerator) Generate(ctx context.Context, profiles []workbook.SheetProfile) ([]metadata.ModuleRow, error) {
	profileJSON, err := workbook.ProfileJSON(profiles)
	if err != nil {
		return nil, fmt.Errorf("render dataset profile: %w", err)
	}

	p := prompt.Modules(profileJSON)
	reply, err := g.client.Complete(ctx, completion.Request{
		System:      p.System,
		User:        p.User,
		Temperature: g.cfg.Stages.Module.Temperature,
		MaxTokens:   g.cfg.Stages.Module.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("module generation: %w", err)
	}

	var rows []metadata.ModuleRow
	if err := json.Unmarshal([]byte(completion.ExtractPayload(reply)), &rows); err != nil {
		return nil, fmt.Errorf("parse module payload: %w", err)
	}
	g.log.Info("modules generated", zap.Int("rows", len(rows)))
	return rows, nil
}

// ModuleNames returns the names of rows typed as modules, in row order.
func ModuleNames(rows []metadata.ModuleRow) []string {
	var out []string
	for _, r := range rows {
		if r.Kind == metadata.KindModule {
			out = append(out, r.Module)
		}
	}
	return out
}
