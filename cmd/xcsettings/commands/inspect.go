package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/setting"
	"github.com/teranos/xcsettings/typegen/jsondoc"
)

func newInspectCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		prefix     string
	)

	cmd := &cobra.Command{
		Use:   "inspect <Xcode.app>",
		Short: "Print the settings of an Xcode installation as a tree",
		Long: `Print every setting grouped by category with its type, default,
enum cases and generated Swift case. Nothing is written to disk.

Examples:
  xcsettings inspect /Applications/Xcode.app
  xcsettings inspect /Applications/Xcode.app --prefix SWIFT_
  xcsettings inspect /Applications/Xcode.app --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig()
			if err != nil {
				return err
			}

			// Progress would interleave with the tree on stdout
			progress := display.NewJSONEmitter(cmd.ErrOrStderr())
			doc, err := newPipeline(cfg, "inspect", progress).run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if prefix != "" {
				var filtered []*setting.Setting
				for _, s := range doc.Settings {
					if strings.HasPrefix(s.Key, prefix) {
						filtered = append(filtered, s)
					}
				}
				doc.Settings = filtered
			}

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), jsondoc.NewFile(doc))
			}

			caseNames := swiftGenerator(cfg, logger.Named("inspect")).CaseNames(doc.Settings)
			fmt.Fprint(cmd.OutOrStdout(), display.SettingsTree("Xcode "+doc.XcodeVersion, doc.Settings, caseNames))
			if opts.verbosity >= logger.VerbosityInfo {
				pterm.Info.Printf("%d settings in %d categories\n",
					len(doc.Settings), len(display.CategoryCounts(doc.Settings)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the data document as JSON instead of a tree")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only show keys starting with this prefix")
	return cmd
}
