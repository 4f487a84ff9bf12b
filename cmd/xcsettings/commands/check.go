package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/typegen"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "check <Xcode.app>",
		Short: "Verify generated files are up to date",
		Long: `Regenerate the outputs in memory and compare them with the files on disk.

Header lines recording the Xcode or generator version are ignored. Exits
non-zero when any file is missing or differs, for use in CI.

Examples:
  xcsettings check /Applications/Xcode.app -j settings.json -s BuildSetting.swift`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, &out, args[0])
		},
	}
	out.register(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *rootOptions, out *outputFlags, root string) error {
	cfg, _, err := opts.loadConfig()
	if err != nil {
		return err
	}
	log := logger.Named("check")

	targets, err := buildTargets(cfg, out.resolve(cfg), log)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.WithHint(
			errors.New("nothing to check"),
			"pass --json and/or --swift, or set output.json / output.swift")
	}

	doc, err := newPipeline(cfg, "check", display.NewProgressEmitter(cmd, opts.verbosity)).run(cmd.Context(), root)
	if err != nil {
		return err
	}

	result, err := typegen.Check(doc, targets)
	if err != nil {
		return err
	}

	if result.UpToDate {
		pterm.Success.Println("Generated files are up to date")
		return nil
	}

	for _, d := range result.Differences {
		pterm.Warning.Printf("Out of date: %s\n", d)
	}
	return errors.WithHint(
		errors.Newf("%d generated file(s) out of date", len(result.Differences)),
		"run `xcsettings extract` with the same arguments")
}
