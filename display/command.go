package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether a command should print JSON: either its
// own --json bool flag is set or the global --log-json flag is.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if f := cmd.Flags().Lookup("json"); f != nil && f.Value.Type() == "bool" {
		if v, _ := cmd.Flags().GetBool("json"); v {
			return true
		}
	}

	if globalFlag, err := cmd.Root().PersistentFlags().GetBool("log-json"); err == nil && globalFlag {
		return true
	}
	return false
}

// NewProgressEmitter picks the JSON or terminal emitter for cmd.
func NewProgressEmitter(cmd *cobra.Command, verbosity int) ProgressEmitter {
	if ShouldOutputJSON(cmd) {
		return NewJSONEmitter(cmd.OutOrStdout())
	}
	return NewCLIEmitter(verbosity)
}
