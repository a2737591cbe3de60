// Package config loads codecraft configuration from TOML files and
// environment variables (prefix CODECRAFT) via Viper.
package config

// Config is the root codecraft configuration.
type Config struct {
	Indent    IndentConfig    `mapstructure:"indent"`
	Formatter FormatterConfig `mapstructure:"formatter"`
	Log       LogConfig       `mapstructure:"log"`
}

// IndentConfig configures indentation rendering.
type IndentConfig struct {
	Width int    `mapstructure:"width"` // indent characters per nesting level (default: 4)
	Char  string `mapstructure:"char"`  // "space" or "tab" (default: space)
}

// FormatterConfig configures the external formatter collaborator.
type FormatterConfig struct {
	Enabled    bool   `mapstructure:"enabled"`     // run the formatter on save (default: false)
	Command    string `mapstructure:"command"`     // command line, shell-quoted
	LineLength int    `mapstructure:"line_length"` // passed to the default formatter (default: 88)
}

// LogConfig configures log output.
type LogConfig struct {
	JSON bool `mapstructure:"json"` // structured JSON instead of console output
}

// IndentRune returns the configured indentation character.
func (c IndentConfig) IndentRune() rune {
	if c.Char == "tab" {
		return '\t'
	}
	return ' '
}
