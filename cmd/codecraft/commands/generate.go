package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/teranos/codecraft/builder"
	"github.com/teranos/codecraft/config"
	"github.com/teranos/codecraft/logger"
	"github.com/teranos/codecraft/pyfmt"
	"github.com/teranos/codecraft/pygen"
)

var (
	generateOutput string
	generateIndent int
	generateFormat bool
	generateWatch  bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <model>",
	Short: "Generate a Python module from a declarative model",
	Long: `Generate Python source from a TOML or YAML model file.

The model declares a package with enums and dataclasses. Output is built
through the scope engine, syntax-checked, and optionally run through the
configured external formatter.

Examples:
  codecraft generate model.toml                # Write to stdout
  codecraft generate model.toml -o models.py   # Write to a file
  codecraft generate model.toml --format       # Format with the configured formatter
  codecraft generate model.yaml --watch -o out.py`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	GenerateCmd.Flags().IntVar(&generateIndent, "indent", 0, "Indent width (default: from config)")
	GenerateCmd.Flags().BoolVar(&generateFormat, "format", false, "Run the configured formatter over the output")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever the model file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	modelPath := args[0]
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := generateOnce(modelPath, cfg); err != nil {
		if !generateWatch {
			return err
		}
		// In watch mode a broken model is reported, not fatal; the next
		// change gets another run.
		logger.Errorw("generation failed", "model", modelPath, "error", err)
	}
	if !generateWatch {
		return nil
	}
	return watchModel(modelPath, cfg)
}

func generateOnce(modelPath string, cfg *config.Config) error {
	model, err := pygen.Load(modelPath)
	if err != nil {
		return err
	}

	opts := []builder.Option{
		builder.WithIndent(cfg.Indent.Width),
		builder.WithIndentChar(cfg.Indent.IndentRune()),
	}
	if generateIndent > 0 {
		opts = append(opts, builder.WithIndent(generateIndent))
	}

	src, err := pygen.Generate(model, opts...)
	if err != nil {
		return err
	}

	if generateFormat || cfg.Formatter.Enabled {
		formatter := formatterFromConfig(cfg)
		formatted, err := formatter.Format(src)
		if err != nil {
			return err
		}
		src = formatted
	}

	if generateOutput == "" {
		fmt.Println(src)
		return nil
	}
	if dir := filepath.Dir(generateOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if src != "" && src[len(src)-1] != '\n' {
		src += "\n"
	}
	if err := os.WriteFile(generateOutput, []byte(src), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateOutput, err)
	}
	logger.Infow("wrote generated module", "model", modelPath, "output", generateOutput)
	return nil
}

// watchModel blocks, regenerating on every write to the model file.
func watchModel(modelPath string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save, which
	// drops a watch registered on the path itself.
	dir := filepath.Dir(modelPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(modelPath)
	logger.Infow("watching model", "path", target)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugw("model changed", "event", event.Op.String())
			if err := generateOnce(modelPath, cfg); err != nil {
				logger.Errorw("generation failed", "model", modelPath, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watch error", "error", err)
		}
	}
}

func formatterFromConfig(cfg *config.Config) pyfmt.Formatter {
	if cfg.Formatter.Command != "" && cfg.Formatter.Command != config.DefaultFormatter {
		return pyfmt.New(cfg.Formatter.Command)
	}
	return pyfmt.Black(cfg.Formatter.LineLength)
}
