// Package commands implements the xcsettings command line.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/xcsettings/am"
	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
)

// rootOptions holds the global flags
type rootOptions struct {
	verbosity  int
	logJSON    bool
	configPath string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "xcsettings",
		Short: "Extract Xcode build settings into JSON and typed Swift",
		Long: `xcsettings reads the build-setting declarations shipped in an Xcode
installation (.xcspec and .plist spec files) and generates:

  - a data document listing every setting (JSON or YAML)
  - a Swift file exposing each setting as a typed BuildSetting case

Available commands:
  extract  - Generate the data document and Swift source
  check    - Verify generated files are up to date
  inspect  - Print the settings as a tree
  schema   - Print the JSON schema of the data document
  am       - Manage xcsettings configuration ("I am")
  version  - Show version information

Examples:
  xcsettings extract /Applications/Xcode.app -j settings.json -s BuildSetting.swift
  xcsettings check /Applications/Xcode.app -s BuildSetting.swift
  xcsettings inspect /Applications/Xcode.app -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.logJSON, opts.verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
	}

	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Emit logs and progress as JSON")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: xcsettings.toml, ~/.xcsettings/am.toml)")

	root.AddCommand(newExtractCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newInspectCmd(opts))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newAmCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig returns the validated configuration. An explicit --config file
// replaces the usual system/user/project cascade.
func (o *rootOptions) loadConfig() (*am.Config, *viper.Viper, error) {
	var v *viper.Viper
	if o.configPath != "" {
		var err error
		v, err = am.ViperFromFile(o.configPath)
		if err != nil {
			return nil, nil, errors.Mark(err, errors.ErrInputNotFound)
		}
	} else {
		v = am.GetViper()
	}

	cfg, err := am.LoadWithViper(v)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.WithHint(
			errors.Wrap(err, "invalid configuration"),
			"run `xcsettings am validate` for details")
	}

	logger.Logger.Debugw("Loaded configuration", "config", cfg.String())
	return cfg, v, nil
}
