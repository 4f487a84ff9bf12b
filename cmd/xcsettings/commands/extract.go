package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/typegen"
	"github.com/teranos/xcsettings/typegen/jsondoc"
)

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "extract <Xcode.app>",
		Short: "Generate the data document and Swift source from an Xcode installation",
		Long: `Read every spec file of an Xcode installation and write the outputs.

Spec files are discovered under extract.search_dirs. .xcspec files are
converted with converter.command before parsing. When two files declare the
same key, the file that sorts first wins.

Outputs are rendered in memory and each file is replaced atomically, so a
failed run leaves existing files untouched. Without any output path the data
document is printed to stdout.

Examples:
  xcsettings extract /Applications/Xcode.app -j settings.json
  xcsettings extract /Applications/Xcode.app -s Sources/BuildSetting.swift
  xcsettings extract /Applications/Xcode.app -j settings.yaml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, &out, args[0])
		},
	}
	out.register(cmd)
	return cmd
}

func runExtract(cmd *cobra.Command, opts *rootOptions, out *outputFlags, root string) error {
	cfg, _, err := opts.loadConfig()
	if err != nil {
		return err
	}
	log := logger.Named("extract")

	outputs := out.resolve(cfg)
	targets, err := buildTargets(cfg, outputs, log)
	if err != nil {
		return err
	}

	var progress display.ProgressEmitter
	if len(targets) == 0 {
		// stdout carries the document
		progress = display.NewJSONEmitter(cmd.ErrOrStderr())
	} else {
		progress = display.NewProgressEmitter(cmd, opts.verbosity)
	}

	p := newPipeline(cfg, "extract", progress)
	doc, err := p.run(cmd.Context(), root)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		format, err := jsondoc.ParseFormat(outputs.Format)
		if err != nil {
			return err
		}
		data, err := jsondoc.NewEmitter(format).Emit(doc)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	progress.EmitStage("emit", "rendering outputs")
	rendered, err := typegen.Render(doc, targets)
	if err != nil {
		progress.EmitError("emit", err)
		return err
	}
	if err := typegen.WriteOutputs(rendered); err != nil {
		progress.EmitError("emit", err)
		return errors.Wrap(err, "failed to write outputs")
	}

	written := make([]string, 0, len(rendered))
	for _, r := range rendered {
		log.Infow("Wrote output", logger.FieldOutput, r.Path, "emitter", r.Emitter.Name())
		written = append(written, r.Path)
	}

	progress.EmitComplete(map[string]interface{}{
		"xcode_version": doc.XcodeVersion,
		"spec_files":    len(p.files),
		"settings":      len(doc.Settings),
		"duplicates":    p.duplicates,
		"outputs":       written,
	})
	return nil
}
