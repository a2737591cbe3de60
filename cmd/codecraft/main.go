package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/codecraft/cmd/codecraft/commands"
	"github.com/teranos/codecraft/config"
	"github.com/teranos/codecraft/logger"
)

var rootCmd = &cobra.Command{
	Use:   "codecraft",
	Short: "codecraft - Python source generation from declarative models",
	Long: `codecraft emits structured Python source text.

It builds modules through an indentation-aware scope engine: models declare
enums and dataclasses, the engine renders them, and an optional syntax check
and external formatter run over the result.

Available commands:
  generate - Generate a Python module from a TOML/YAML model
  check    - Syntax-check a Python file
  fmt      - Run the configured formatter over a Python file
  version  - Show version information

Examples:
  codecraft generate model.toml -o models.py   # Generate to a file
  codecraft generate model.toml --watch        # Regenerate on model change
  codecraft check models.py                    # Structural syntax check`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.FmtCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
