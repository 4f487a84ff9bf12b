package xcspec

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/setting"
)

// ConvertedSource reads vendor spec files that need converting to a
// property list before they can be decoded.
type ConvertedSource struct {
	Extensions []string

	converter *Converter
	decoder   *NativeSource
}

// NewConvertedSource accepts .xcspec files and converts them with converter.
func NewConvertedSource(converter *Converter, log *zap.SugaredLogger) *ConvertedSource {
	return &ConvertedSource{
		Extensions: []string{".xcspec"},
		converter:  converter,
		decoder:    NewNativeSource(log),
	}
}

// Name returns "xcspec"
func (s *ConvertedSource) Name() string {
	return "xcspec"
}

// Accepts reports whether path has a convertible extension.
func (s *ConvertedSource) Accepts(path string) bool {
	return hasExtension(path, s.Extensions)
}

// Read converts path and decodes the converted property list.
func (s *ConvertedSource) Read(ctx context.Context, path string) ([]*setting.Setting, error) {
	if !s.Accepts(path) {
		return nil, errors.NewUnsupportedFormat("cannot ingest %s", path)
	}

	var settings []*setting.Setting
	err := s.converter.Convert(ctx, path, func(converted string) error {
		var err error
		settings, err = s.decoder.decodeFile(converted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}
