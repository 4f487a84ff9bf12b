// Package xcspec reads Xcode spec files into canonical settings.
//
// Each accepted file format is a Source variant: NativeSource decodes
// property lists directly and ConvertedSource hands .xcspec files to an
// external converter first. An Importer picks the variant by extension and
// merges everything into a setting.Collection.
package xcspec

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/setting"
)

// Source produces settings from one spec file.
type Source interface {
	// Name identifies the source variant in logs
	Name() string

	// Accepts reports whether the file extension can be ingested
	Accepts(path string) bool

	// Read returns one setting per option record in the file
	Read(ctx context.Context, path string) ([]*setting.Setting, error)
}

// Importer reads many spec files through the first Source that accepts each.
type Importer struct {
	sources []Source
	log     *zap.SugaredLogger
}

// NewImporter creates an importer over the given sources, tried in order.
func NewImporter(log *zap.SugaredLogger, sources ...Source) *Importer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Importer{sources: sources, log: log}
}

// SourceFor returns the source that accepts path.
func (im *Importer) SourceFor(path string) (Source, error) {
	for _, s := range im.sources {
		if s.Accepts(path) {
			return s, nil
		}
	}
	return nil, errors.WithHint(
		errors.NewUnsupportedFormat("cannot ingest %s", path),
		"spec files must end in .plist or .xcspec")
}

// Import reads every path in order and merges the results.
// The first failure aborts the import and no partial collection is returned.
// When two files declare the same key the one read first wins, so callers
// should pass paths in a stable order.
func (im *Importer) Import(ctx context.Context, paths []string) (*setting.Collection, error) {
	collection := setting.NewCollection()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src, err := im.SourceFor(path)
		if err != nil {
			return nil, err
		}

		settings, err := src.Read(ctx, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		im.log.Infow("Read spec file",
			logger.FieldPath, path,
			"source", src.Name(),
			logger.FieldCount, len(settings))
		collection.Add(settings...)
	}

	if d := collection.Duplicates(); d > 0 {
		im.log.Debugw("Collapsed duplicate setting keys", logger.FieldCount, d)
	}
	return collection, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
