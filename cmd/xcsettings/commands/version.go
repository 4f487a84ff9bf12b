package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show xcsettings version information",
		Long:  `Display version, build time, commit hash, and platform information for the xcsettings binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, info.String())
			fmt.Fprintf(w, "Platform: %s\n", info.Platform)
			fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output version info as JSON")
	return cmd
}
