package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflow/internal/completion"
	"tableflow/internal/config"
	"tableflow/internal/pipeline"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiKey     string
	timeout    time.Duration

	// Workbook locations
	metadataPath string
	inputPath    string
	outputPath   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tableflow",
	Short: "TableFlow - AI metadata workbook generator",
	Long: `TableFlow turns a raw spreadsheet of business data into a platform-ready
metadata workbook: modules, table schemas, and laid-out dashboards.

Each generation stage prompts an AI model, validates the proposed field
names against the real data columns, and writes its sheet back into the
metadata workbook. Run the stages one at a time or all at once.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd groups the generation stages
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate metadata workbook sheets",
	Long: `Generates metadata sheets from the input workbook, one stage at a time:

  tableflow generate modules     # Modules sheet (navigation hierarchy)
  tableflow generate tables      # Table sheet (needs modules)
  tableflow generate dashboards  # Dashboard sheet (needs modules + tables)
  tableflow generate all         # Every stage into a fresh workbook`,
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Generate the Modules sheet from the input workbook",
	RunE:  stageRunE((*pipeline.Runner).RunModules),
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Generate the Table sheet from the modules and input data",
	RunE:  stageRunE((*pipeline.Runner).RunTables),
}

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Generate and lay out the Dashboard sheet",
	RunE:  stageRunE((*pipeline.Runner).RunDashboards),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every generation stage into a fresh metadata workbook",
	RunE:  stageRunE((*pipeline.Runner).RunAll),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Provider API key (or set OPENAI_API_KEY / GEMINI_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Minute, "Stage timeout")

	// Stage flags
	generateCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Input data workbook (.xlsx)")
	generateCmd.PersistentFlags().StringVarP(&metadataPath, "metadata", "m", "metadata.xlsx", "Metadata workbook to read and update")
	generateCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output path (default: the metadata workbook)")
	generateCmd.MarkPersistentFlagRequired("input")

	generateCmd.AddCommand(modulesCmd)
	generateCmd.AddCommand(tablesCmd)
	generateCmd.AddCommand(dashboardsCmd)
	generateCmd.AddCommand(allCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stageRunE adapts a pipeline stage into a cobra RunE: timeout context,
// graceful shutdown, config load, provider detection.
func stageRunE(stage func(*pipeline.Runner, context.Context, pipeline.Options) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			logger.Info("Received shutdown signal")
			cancel()
		}()

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if apiKey != "" {
			cfg.Provider.APIKey = apiKey
		}
		client, err := completion.Detect(cfg, logger)
		if err != nil {
			return err
		}

		runner := pipeline.NewRunner(cfg, client, logger)
		logger.Info("Starting stage",
			zap.String("stage", cmd.Name()),
			zap.String("input", inputPath),
			zap.String("metadata", metadataPath))
		return stage(runner, ctx, pipeline.Options{
			MetadataPath: metadataPath,
			InputPath:    inputPath,
			OutputPath:   outputPath,
		})
	}
}
