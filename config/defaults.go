package config

import "github.com/spf13/viper"

// Defaults
const (
	DefaultIndentWidth = 4
	DefaultLineLength  = 88
	DefaultFormatter   = "black -q -"
)

// SetDefaults registers the default values on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("indent.width", DefaultIndentWidth)
	v.SetDefault("indent.char", "space")
	v.SetDefault("formatter.enabled", false)
	v.SetDefault("formatter.command", DefaultFormatter)
	v.SetDefault("formatter.line_length", DefaultLineLength)
	v.SetDefault("log.json", false)
}
