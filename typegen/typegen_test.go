package typegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/setting"
)

// staticEmitter renders a fixed body under a version header.
type staticEmitter struct {
	body string
	err  error
}

func (e *staticEmitter) Name() string          { return "static" }
func (e *staticEmitter) FileExtension() string { return "txt" }
func (e *staticEmitter) Emit(doc *Document) ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []byte("// Source version: " + doc.XcodeVersion + "\n" + e.body), nil
}

func TestNewDocumentSortsSettings(t *testing.T) {
	c := setting.NewCollection()
	c.Add(
		setting.New(setting.Raw{Name: "b", Key: "B"}),
		setting.New(setting.Raw{Name: "a", Key: "A"}),
	)

	doc := NewDocument("15.2", c)
	assert.Equal(t, "15.2", doc.XcodeVersion)
	require.Len(t, doc.Settings, 2)
	assert.Equal(t, "A", doc.Settings[0].Key)
	assert.Equal(t, "B", doc.Settings[1].Key)
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	require.NoError(t, WriteFile(path, []byte("one")))
	require.NoError(t, WriteFile(path, []byte("two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestRenderFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	targets := []Target{
		{Path: filepath.Join(dir, "a.txt"), Emitter: &staticEmitter{body: "a"}},
		{Path: filepath.Join(dir, "b.txt"), Emitter: &staticEmitter{err: errors.New("boom")}},
	}

	outputs, err := Render(&Document{XcodeVersion: "15.2"}, targets)
	require.Error(t, err)
	assert.Nil(t, outputs)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	targets := []Target{{Path: path, Emitter: &staticEmitter{body: "case foo\n"}}}

	t.Run("missing file", func(t *testing.T) {
		result, err := Check(&Document{XcodeVersion: "15.2"}, targets)
		require.NoError(t, err)
		assert.False(t, result.UpToDate)
		require.Len(t, result.Differences, 1)
		assert.Contains(t, result.Differences[0], "missing")
	})

	t.Run("metadata only", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("// Source version: 14.0\ncase foo\n"), 0644))
		result, err := Check(&Document{XcodeVersion: "15.2"}, targets)
		require.NoError(t, err)
		assert.True(t, result.UpToDate)
	})

	t.Run("functional change", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("// Source version: 15.2\ncase bar\n"), 0644))
		result, err := Check(&Document{XcodeVersion: "15.2"}, targets)
		require.NoError(t, err)
		assert.False(t, result.UpToDate)
		assert.Equal(t, []string{path}, result.Differences)
	})
}

func TestFilterMetadataLines(t *testing.T) {
	content := "// Code generated by xcsettings. DO NOT EDIT.\n// Source version: Xcode 15.2\n  // Generator version: 1.0\nimport ProjectDescription\n"
	filtered, err := filterMetadataLines([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by xcsettings. DO NOT EDIT.\nimport ProjectDescription\n", filtered)
}

func TestCheckReportsUnscannableFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	huge := strings.Repeat("x", 5*1024*1024)
	require.NoError(t, os.WriteFile(path, []byte("// Source version: 1\n"+huge), 0644))

	// Both sides exceed the scanner limit; they must not compare equal
	target := Target{Path: path, Emitter: &staticEmitter{body: huge + "y"}}
	result, err := Check(&Document{XcodeVersion: "2"}, []Target{target})
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	require.Len(t, result.Differences, 1)
	assert.Contains(t, result.Differences[0], path+" (")
}
