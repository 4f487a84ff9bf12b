// Package am loads xcsettings configuration.
//
// Values come from built-in defaults, TOML files and XCSETTINGS_* environment
// variables, merged in that order (see load.go). Command-line flags are
// applied on top by the commands themselves.
package am

import (
	"github.com/teranos/xcsettings/naming"
)

// Config represents the xcsettings configuration
type Config struct {
	Extract   ExtractConfig   `mapstructure:"extract" toml:"extract"`
	Converter ConverterConfig `mapstructure:"converter" toml:"converter"`
	Output    OutputConfig    `mapstructure:"output" toml:"output"`
	Swift     SwiftConfig     `mapstructure:"swift" toml:"swift"`
	Naming    NamingConfig    `mapstructure:"naming" toml:"naming"`
}

// ExtractConfig configures where spec files are found inside an installation
type ExtractConfig struct {
	SearchDirs      []string `mapstructure:"search_dirs" toml:"search_dirs"`           // Relative to the installation root
	Patterns        []string `mapstructure:"patterns" toml:"patterns"`                 // Base name globs (e.g., "*.xcspec")
	VersionManifest string   `mapstructure:"version_manifest" toml:"version_manifest"` // Relative to the installation root
	AllowNonApp     bool     `mapstructure:"allow_non_app" toml:"allow_non_app"`       // Accept roots without the .app suffix
	MinVersion      string   `mapstructure:"min_version" toml:"min_version"`           // semver constraint, e.g. ">= 11.0" (empty = any)
}

// ConverterConfig configures the external plist converter
type ConverterConfig struct {
	Command string `mapstructure:"command" toml:"command"`   // Must contain {input} and {output}
	TempDir string `mapstructure:"temp_dir" toml:"temp_dir"` // Parent of conversion directories (empty = system temp)
}

// OutputConfig configures the generated files
type OutputConfig struct {
	JSON   string `mapstructure:"json" toml:"json"`     // Data document path (empty = not written)
	Swift  string `mapstructure:"swift" toml:"swift"`   // Swift source path (empty = not written)
	Format string `mapstructure:"format" toml:"format"` // Data document format: json, yaml
}

// SwiftConfig configures the Swift emitter
type SwiftConfig struct {
	Exclusions []string `mapstructure:"exclusions" toml:"exclusions"` // Keys without a BuildSetting case
	EnumName   string   `mapstructure:"enum_name" toml:"enum_name"`
	Module     string   `mapstructure:"module" toml:"module"`
}

// NamingConfig extends the built-in identifier tables.
// Entries are arrays of tables because viper folds map keys to lower case.
type NamingConfig struct {
	Acronyms         []AcronymEntry     `mapstructure:"acronyms" toml:"acronyms,omitempty"`
	KeyReplacements  []ReplacementEntry `mapstructure:"key_replacements" toml:"key_replacements,omitempty"`
	EnumOverrides    []OverrideEntry    `mapstructure:"enum_overrides" toml:"enum_overrides,omitempty"`
	PlatformPrefixes []string           `mapstructure:"platform_prefixes" toml:"platform_prefixes,omitempty"`
	ReservedWords    []string           `mapstructure:"reserved_words" toml:"reserved_words,omitempty"`
}

// AcronymEntry expands one key token, e.g. token = "OBJC", words = ["Objective", "C"]
type AcronymEntry struct {
	Token string   `mapstructure:"token" toml:"token"`
	Words []string `mapstructure:"words" toml:"words"`
}

// ReplacementEntry names a setting after a single token
type ReplacementEntry struct {
	Token       string `mapstructure:"token" toml:"token"`
	Replacement string `mapstructure:"replacement" toml:"replacement"`
}

// OverrideEntry fixes the case name of one enum value
type OverrideEntry struct {
	Value      string `mapstructure:"value" toml:"value"`
	Name       string `mapstructure:"name" toml:"name"`
	IgnoreCase bool   `mapstructure:"ignore_case" toml:"ignore_case"`
}

// Tables returns the built-in naming tables extended with the configured entries.
func (n NamingConfig) Tables() naming.Tables {
	extra := naming.Tables{
		PlatformPrefixes: n.PlatformPrefixes,
		ReservedWords:    n.ReservedWords,
	}
	if len(n.Acronyms) > 0 {
		extra.Acronyms = make(map[string][]string, len(n.Acronyms))
		for _, a := range n.Acronyms {
			extra.Acronyms[a.Token] = a.Words
		}
	}
	if len(n.KeyReplacements) > 0 {
		extra.KeyReplacements = make(map[string]string, len(n.KeyReplacements))
		for _, r := range n.KeyReplacements {
			extra.KeyReplacements[r.Token] = r.Replacement
		}
	}
	for _, o := range n.EnumOverrides {
		extra.EnumOverrides = append(extra.EnumOverrides, naming.Override{
			Value:      o.Value,
			Name:       o.Name,
			IgnoreCase: o.IgnoreCase,
		})
	}
	return naming.DefaultTables().Extend(extra)
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// Config file names
const (
	ProjectConfigName = "xcsettings.toml" // Found by walking up from the working directory
	UserConfigDir     = ".xcsettings"     // Under the home directory
	UserConfigName    = "am.toml"
	SystemConfigPath  = "/etc/xcsettings/am.toml"
	EnvPrefix         = "XCSETTINGS"
)
