package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/codecraft/pycheck"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Syntax-check a Python file",
	Long: `Run the structural syntax checker over a Python file.

The check covers indentation discipline, block structure, bracket balance
and string termination. Exit status is 1 when the file does not parse.

Examples:
  codecraft check models.py
  codecraft check -q models.py   # Status only, no diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkQuiet bool

func init() {
	CheckCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Suppress diagnostics, report via exit status only")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := pycheck.Check(string(data))
	if res.OK {
		if !checkQuiet {
			fmt.Printf("%s: ok\n", path)
		}
		return nil
	}
	if !checkQuiet {
		fmt.Printf("%s:%d:%d: %s\n", path, res.Line, res.Col, res.Message)
	}
	cmd.SilenceUsage = true
	return fmt.Errorf("%s does not parse", path)
}
