package am

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/xcsettings/typegen/jsondoc"
	"github.com/teranos/xcsettings/typegen/swift"
	"github.com/teranos/xcsettings/xcspec"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	layout := xcspec.DefaultLayout()

	// Extract defaults
	v.SetDefault("extract.search_dirs", layout.SearchDirs)
	v.SetDefault("extract.patterns", layout.Patterns)
	v.SetDefault("extract.version_manifest", xcspec.DefaultVersionManifest)
	v.SetDefault("extract.allow_non_app", false)
	v.SetDefault("extract.min_version", "")

	// Converter defaults
	v.SetDefault("converter.command", xcspec.DefaultConverterCommand)
	v.SetDefault("converter.temp_dir", "")

	// Output defaults (empty path = target not written)
	v.SetDefault("output.json", "")
	v.SetDefault("output.swift", "")
	v.SetDefault("output.format", string(jsondoc.FormatJSON))

	// Swift defaults
	v.SetDefault("swift.exclusions", []string{})
	v.SetDefault("swift.enum_name", swift.DefaultEnumName)
	v.SetDefault("swift.module", swift.DefaultModule)
}

// Default returns the configuration produced by the defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode
		panic(err)
	}
	return cfg
}

// Layout returns the discovery layout described by the extract section.
func (c *Config) Layout() xcspec.Layout {
	return xcspec.Layout{
		SearchDirs:  c.Extract.SearchDirs,
		Patterns:    c.Extract.Patterns,
		AllowNonApp: c.Extract.AllowNonApp,
	}
}

// String returns a one-line summary for debug logs
func (c *Config) String() string {
	return fmt.Sprintf("search_dirs=[%s] converter=%q json=%q swift=%q format=%s exclusions=%d",
		strings.Join(c.Extract.SearchDirs, ","),
		c.Converter.Command,
		c.Output.JSON,
		c.Output.Swift,
		c.Output.Format,
		len(c.Swift.Exclusions))
}
