package xcspec

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/logger"
)

// Layout describes where spec files live inside an installation.
type Layout struct {
	// SearchDirs are walked recursively, relative to the root
	SearchDirs []string
	// Patterns are matched against file base names (filepath.Match syntax)
	Patterns []string
	// AllowNonApp accepts roots that are not .app bundles
	AllowNonApp bool
}

// DefaultLayout covers the platform and plug-in spec locations of Xcode.
func DefaultLayout() Layout {
	return Layout{
		SearchDirs: []string{
			"Contents/Developer/Platforms",
			"Contents/PlugIns",
			"Contents/SharedFrameworks",
		},
		Patterns: []string{"*.xcspec"},
	}
}

// CheckInstallation verifies that root exists and looks like an application bundle.
func CheckInstallation(root string, layout Layout) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewInputNotFound("installation %s does not exist", root)
		}
		return errors.Wrapf(errors.Mark(err, errors.ErrInputNotFound), "failed to stat %s", root)
	}
	if !info.IsDir() {
		return errors.NewInputNotFound("installation %s is not a directory", root)
	}
	if !layout.AllowNonApp && !strings.HasSuffix(filepath.Clean(root), ".app") {
		return errors.WithHint(
			errors.NewUnsupportedFormat("%s is not an application bundle", root),
			"pass the path to Xcode.app or set extract.allow_non_app")
	}
	return nil
}

// Discover returns the spec files under root, sorted by path.
// Missing search directories are skipped.
func Discover(root string, layout Layout, log *zap.SugaredLogger) ([]string, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if err := CheckInstallation(root, layout); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var paths []string

	for _, dir := range layout.SearchDirs {
		base := filepath.Join(root, dir)
		if _, err := os.Stat(base); err != nil {
			log.Debugw("Search directory not present", logger.FieldPath, base)
			continue
		}

		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !matchesAny(d.Name(), layout.Patterns) {
				return nil
			}
			if _, dup := seen[path]; !dup {
				seen[path] = struct{}{}
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInputNotFound), "failed to walk %s", base)
		}
	}

	sort.Strings(paths)
	log.Debugw("Discovered spec files", logger.FieldPath, root, logger.FieldCount, len(paths))
	return paths, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}
