package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/xcsettings/typegen"
	"github.com/teranos/xcsettings/typegen/jsondoc"
)

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the data document",
		Long: `Print the JSON schema describing the data document written by extract.

Examples:
  xcsettings schema
  xcsettings schema -o settings.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := jsondoc.SchemaJSON()
			if err != nil {
				return err
			}
			if output != "" {
				return typegen.WriteFile(output, data)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to a file instead of stdout")
	return cmd
}
