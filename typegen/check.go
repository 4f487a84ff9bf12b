package typegen

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/teranos/xcsettings/errors"
)

// MetadataPrefixes mark generated header lines that change between runs
// without any change to the settings themselves.
var MetadataPrefixes = []string{
	"// Source version:",
	"// Generator version:",
}

// CheckResult holds the result of comparing rendered output with files on disk
type CheckResult struct {
	UpToDate    bool
	Differences []string // paths that are missing or differ
}

// Check renders every target and compares it with the file at its path.
// Metadata header lines are ignored.
func Check(doc *Document, targets []Target) (*CheckResult, error) {
	outputs, err := Render(doc, targets)
	if err != nil {
		return nil, err
	}

	var diffs []string
	for _, o := range outputs {
		different, err := differsFromFile(o.Data, o.Path)
		if err != nil {
			diffs = append(diffs, o.Path+" ("+err.Error()+")")
		} else if different {
			diffs = append(diffs, o.Path)
		}
	}

	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

// differsFromFile compares generated bytes with an existing file, ignoring metadata lines.
func differsFromFile(generated []byte, path string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.New("missing")
		}
		return false, errors.Wrapf(err, "failed to read %s", path)
	}

	if bytes.Equal(generated, existing) {
		return false, nil
	}
	want, err := filterMetadataLines(generated)
	if err != nil {
		return false, errors.Wrap(err, "failed to scan generated output")
	}
	got, err := filterMetadataLines(existing)
	if err != nil {
		return false, errors.Wrapf(err, "failed to scan %s", path)
	}
	return want != got, nil
}

// filterMetadataLines removes metadata comment lines from content.
// Lines over 4 MiB fail the scan.
func filterMetadataLines(content []byte) (string, error) {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if isMetadataLine(strings.TrimSpace(line)) {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}
	return result.String(), nil
}

func isMetadataLine(trimmed string) bool {
	for _, p := range MetadataPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}
