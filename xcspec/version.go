package xcspec

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"howett.net/plist"

	"github.com/teranos/xcsettings/errors"
)

// VersionKey is the manifest field holding the marketing version.
const VersionKey = "CFBundleShortVersionString"

// DefaultVersionManifest is the manifest path relative to the installation root.
const DefaultVersionManifest = "Contents/version.plist"

// ReadVersion returns the version string recorded in a version manifest,
// exactly as written. The manifest must be a .plist file.
func ReadVersion(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".plist") {
		return "", errors.NewUnsupportedFormat("version manifest %s is not a .plist file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputNotFound("version manifest %s does not exist", path)
		}
		return "", errors.Wrapf(errors.Mark(err, errors.ErrInputNotFound), "failed to read %s", path)
	}

	var manifest map[string]interface{}
	if _, err := plist.Unmarshal(data, &manifest); err != nil {
		return "", errors.Wrapf(errors.Mark(err, errors.ErrUnsupportedFormat), "%s is not a property list", path)
	}

	version, _ := manifest[VersionKey].(string)
	if strings.TrimSpace(version) == "" {
		return "", errors.WithHintf(
			errors.Wrapf(errors.ErrMissingVersion, "%s has no %s", path, VersionKey),
			"point extract.version_manifest at the installation's version.plist")
	}
	return version, nil
}

// CheckVersion verifies that version satisfies constraint, e.g. ">= 11.0".
// An empty constraint accepts everything.
func CheckVersion(version, constraint string) error {
	if constraint == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", version)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}

	if !c.Check(v) {
		return errors.WithHintf(
			errors.Newf("version %s does not satisfy %s", version, constraint),
			"adjust extract.min_version or point at another installation")
	}
	return nil
}
