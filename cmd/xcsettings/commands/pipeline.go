package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/xcsettings/am"
	"github.com/teranos/xcsettings/display"
	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/naming"
	"github.com/teranos/xcsettings/typegen"
	"github.com/teranos/xcsettings/typegen/jsondoc"
	"github.com/teranos/xcsettings/typegen/swift"
	"github.com/teranos/xcsettings/xcspec"
)

// outputFlags are shared by extract and check
type outputFlags struct {
	json   string
	swift  string
	format string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.json, "json", "j", "", "Data document path (default: output.json)")
	cmd.Flags().StringVarP(&f.swift, "swift", "s", "", "Swift source path (default: output.swift)")
	cmd.Flags().StringVar(&f.format, "format", "", "Data document format: json, yaml (default: output.format)")
}

// resolve applies flags over the configured output section.
func (f *outputFlags) resolve(cfg *am.Config) am.OutputConfig {
	out := cfg.Output
	if f.json != "" {
		out.JSON = f.json
	}
	if f.swift != "" {
		out.Swift = f.swift
	}
	if f.format != "" {
		out.Format = f.format
	}
	return out
}

// pipeline reads an installation into a typegen document.
type pipeline struct {
	cfg      *am.Config
	log      *zap.SugaredLogger
	progress display.ProgressEmitter

	// filled by run
	files      []string
	duplicates int
}

func newPipeline(cfg *am.Config, component string, progress display.ProgressEmitter) *pipeline {
	return &pipeline{cfg: cfg, log: logger.Named(component), progress: progress}
}

// run discovers spec files under root, reads the Xcode version and merges every setting.
func (p *pipeline) run(ctx context.Context, root string) (*typegen.Document, error) {
	layout := p.cfg.Layout()

	p.progress.EmitStage("discover", root)
	files, err := xcspec.Discover(root, layout, p.log)
	if err != nil {
		p.progress.EmitError("discover", err)
		return nil, err
	}
	p.files = files
	p.progress.EmitProgress(len(files), map[string]interface{}{"type": "spec files"})

	manifest := filepath.Join(root, p.cfg.Extract.VersionManifest)
	version, err := xcspec.ReadVersion(manifest)
	if err != nil {
		p.progress.EmitError("version", err)
		return nil, err
	}
	if err := xcspec.CheckVersion(version, p.cfg.Extract.MinVersion); err != nil {
		p.progress.EmitError("version", err)
		return nil, err
	}
	p.log.Infow("Read Xcode version", logger.FieldVersion, version, logger.FieldPath, manifest)

	converter := xcspec.NewConverter(p.cfg.Converter.Command, p.log)
	converter.TempDir = p.cfg.Converter.TempDir
	importer := xcspec.NewImporter(p.log,
		xcspec.NewNativeSource(p.log),
		xcspec.NewConvertedSource(converter, p.log),
	)

	p.progress.EmitStage("read", "parsing spec files")
	collection, err := importer.Import(ctx, files)
	if err != nil {
		p.progress.EmitError("read", err)
		return nil, err
	}
	p.duplicates = collection.Duplicates()
	p.progress.EmitProgress(collection.Len(), map[string]interface{}{"type": "settings"})

	return typegen.NewDocument(version, collection), nil
}

// swiftGenerator builds the Swift emitter from configuration.
func swiftGenerator(cfg *am.Config, log *zap.SugaredLogger) *swift.Generator {
	g := swift.NewGenerator(naming.New(cfg.Naming.Tables()), cfg.Swift.Exclusions, log)
	if cfg.Swift.EnumName != "" {
		g.EnumName = cfg.Swift.EnumName
	}
	if cfg.Swift.Module != "" {
		g.Module = cfg.Swift.Module
	}
	return g
}

// buildTargets returns one target per configured output path.
func buildTargets(cfg *am.Config, out am.OutputConfig, log *zap.SugaredLogger) ([]typegen.Target, error) {
	var targets []typegen.Target

	if out.JSON != "" {
		format, err := jsondoc.ParseFormat(out.Format)
		if err != nil {
			return nil, err
		}
		targets = append(targets, typegen.Target{Path: out.JSON, Emitter: jsondoc.NewEmitter(format)})
	}
	if out.Swift != "" {
		targets = append(targets, typegen.Target{Path: out.Swift, Emitter: swiftGenerator(cfg, log)})
	}
	if out.JSON != "" && out.JSON == out.Swift {
		return nil, errors.Newf("data document and Swift source both point at %s", out.JSON)
	}
	return targets, nil
}
