package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/codecraft/config"
	"github.com/teranos/codecraft/logger"
)

// FmtCmd represents the fmt command
var FmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Run the configured formatter over a Python file",
	Long: `Reformat a Python file in place using the configured external
formatter (black in pipe mode by default; see formatter.command in
codecraft.toml).

Examples:
  codecraft fmt models.py
  codecraft fmt --write=false models.py   # Print instead of rewriting`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

var fmtWrite bool

func init() {
	FmtCmd.Flags().BoolVar(&fmtWrite, "write", true, "Rewrite the file (false prints to stdout)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	formatted, err := formatterFromConfig(cfg).Format(string(data))
	if err != nil {
		return err
	}

	if !fmtWrite {
		fmt.Print(formatted)
		return nil
	}
	if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Infow("formatted file", "path", path)
	return nil
}
