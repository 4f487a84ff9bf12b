package xcspec

import (
	"context"
	"os"

	"go.uber.org/zap"
	"howett.net/plist"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/setting"
)

// NativeSource decodes property list files (XML, binary or OpenStep).
type NativeSource struct {
	Extensions []string
	log        *zap.SugaredLogger
}

// NewNativeSource accepts .plist files.
func NewNativeSource(log *zap.SugaredLogger) *NativeSource {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &NativeSource{Extensions: []string{".plist"}, log: log}
}

// Name returns "plist"
func (s *NativeSource) Name() string {
	return "plist"
}

// Accepts reports whether path has a property list extension.
func (s *NativeSource) Accepts(path string) bool {
	return hasExtension(path, s.Extensions)
}

// Read decodes path and builds its settings.
func (s *NativeSource) Read(ctx context.Context, path string) ([]*setting.Setting, error) {
	if !s.Accepts(path) {
		return nil, errors.NewUnsupportedFormat("cannot ingest %s", path)
	}
	return s.decodeFile(path)
}

// decodeFile reads path without checking its extension; converted sources
// call it on their temporary output.
func (s *NativeSource) decodeFile(path string) ([]*setting.Setting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputNotFound("spec file %s does not exist", path)
		}
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrInputNotFound), "failed to read %s", path)
	}

	var doc interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(errors.Mark(err, errors.ErrUnsupportedFormat), "%s is not a property list", path)
	}

	raws := decodeRecords(doc, path, s.log)
	settings := make([]*setting.Setting, 0, len(raws))
	for _, raw := range raws {
		settings = append(settings, setting.New(raw))
	}
	return settings, nil
}
