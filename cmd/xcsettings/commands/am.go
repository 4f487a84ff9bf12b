package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/xcsettings/am"
	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/errors"
)

func newAmCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage xcsettings configuration",
		Long: `am - Manage xcsettings configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (XCSETTINGS_* prefix, e.g. XCSETTINGS_OUTPUT_JSON)
3. Project config (./xcsettings.toml, searched upwards)
4. User config (~/.xcsettings/am.toml)
5. System config (/etc/xcsettings/am.toml)
6. Default values

--config replaces sources 3 to 5 with a single file.

Examples:
  xcsettings am show                    # Show current configuration
  xcsettings am show --format json      # Show configuration in JSON format
  xcsettings am show --sources          # Show where each value came from
  xcsettings am validate                # Validate configuration and report unknown keys
  xcsettings am init                    # Write ./xcsettings.toml with the defaults`,
	}

	cmd.AddCommand(newAmShowCmd(opts))
	cmd.AddCommand(newAmValidateCmd(opts))
	cmd.AddCommand(newAmInitCmd())
	return cmd
}

func newAmShowCmd(opts *rootOptions) *cobra.Command {
	var (
		format  string
		sources bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective xcsettings configuration from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, v, err := opts.loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if sources {
				return printSources(w, am.Introspect(v), format)
			}

			switch format {
			case "json":
				return display.OutputJSON(w, cfg)
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(w, "# xcsettings configuration\n%s", data)
			case "toml":
				data, err := am.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "# xcsettings configuration\n%s", data)
			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show the source of every value")
	return cmd
}

func printSources(w io.Writer, settings []am.SettingInfo, format string) error {
	if format == "json" {
		return display.OutputJSON(w, settings)
	}
	for _, s := range settings {
		valueStr := fmt.Sprintf("%v", s.Value)
		if len(valueStr) > 50 {
			valueStr = valueStr[:47] + "..."
		}
		origin := string(s.Source)
		if s.SourcePath != "" {
			origin += " " + s.SourcePath
		}
		fmt.Fprintf(w, "%s = %s  [%s]\n", s.Key, valueStr, origin)
	}
	return nil
}

func newAmValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long: `Validate the effective configuration and report keys in config files that
xcsettings does not read, which are usually typos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var unknown int
			for _, path := range configFiles(opts) {
				keys, err := am.UnknownKeys(path)
				if err != nil {
					return err
				}
				for _, k := range keys {
					pterm.Warning.Printf("%s: unknown key %s\n", path, k)
				}
				unknown += len(keys)
			}

			if _, _, err := opts.loadConfig(); err != nil {
				return err
			}
			if unknown > 0 {
				return errors.Newf("configuration has %d unknown key(s)", unknown)
			}

			pterm.Success.Println("Configuration is valid")
			return nil
		},
	}
}

// configFiles lists the config files that exist for the current invocation.
func configFiles(opts *rootOptions) []string {
	if opts.configPath != "" {
		return []string{opts.configPath}
	}

	var files []string
	for _, path := range []string{am.SystemConfigPath, am.UserConfigPath(), am.FindProjectConfig()} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files
}

func newAmInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default values",
		Long: `Write the default configuration as TOML. An existing file is only
replaced with --force, and is then kept as <file>.back1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Newf("%s already exists", path),
					"pass --force to overwrite it (a backup is kept)")
			}
			if err := am.WriteConfig(am.Default(), path); err != nil {
				return err
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			pterm.Success.Printf("Wrote %s\n", abs)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", am.ProjectConfigName, "Where to write the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
