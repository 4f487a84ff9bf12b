package am

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/typegen/jsondoc"
	"github.com/teranos/xcsettings/xcspec"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Extract.Patterns) == 0 {
		return errors.New("extract.patterns cannot be empty")
	}
	if c.Extract.VersionManifest == "" {
		return errors.New("extract.version_manifest cannot be empty")
	}
	if c.Extract.MinVersion != "" {
		if _, err := semver.NewConstraint(c.Extract.MinVersion); err != nil {
			return errors.Wrapf(err, "extract.min_version %q is not a version constraint", c.Extract.MinVersion)
		}
	}

	// Converter command needs both placeholders
	if !strings.Contains(c.Converter.Command, xcspec.InputPlaceholder) ||
		!strings.Contains(c.Converter.Command, xcspec.OutputPlaceholder) {
		return errors.Newf("converter.command must contain %s and %s, got %q",
			xcspec.InputPlaceholder, xcspec.OutputPlaceholder, c.Converter.Command)
	}
	if _, err := xcspec.NewConverter(c.Converter.Command, nil).Args("in", "out"); err != nil {
		return errors.Wrap(err, "converter.command")
	}

	if _, err := jsondoc.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}
	if c.Output.JSON != "" && c.Output.JSON == c.Output.Swift {
		return errors.Newf("output.json and output.swift both point at %s", c.Output.JSON)
	}

	for i, a := range c.Naming.Acronyms {
		if a.Token == "" || len(a.Words) == 0 {
			return errors.Newf("naming.acronyms[%d] needs a token and at least one word", i)
		}
	}
	for i, r := range c.Naming.KeyReplacements {
		if r.Token == "" || r.Replacement == "" {
			return errors.Newf("naming.key_replacements[%d] needs a token and a replacement", i)
		}
	}
	for i, o := range c.Naming.EnumOverrides {
		if o.Name == "" {
			return errors.Newf("naming.enum_overrides[%d] needs a name", i)
		}
	}

	return nil
}

// UnknownKeys returns the keys in a TOML file that no Config field reads,
// typically typos such as "output.jsn".
func UnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys, nil
}
