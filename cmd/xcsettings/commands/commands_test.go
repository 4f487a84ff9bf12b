package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/xcsettings/errors"
)

const versionPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleShortVersionString</key>
	<string>15.2</string>
</dict>
</plist>
`

const coreSpec = `(
    {
        Identifier = "com.example.core";
        Options = (
            {
                Name = "CLANG_ENABLE_OBJC_ARC";
                Type = Boolean;
                DefaultValue = NO;
                Category = LanguageObjC;
                Description = "Enables automatic reference counting.";
            },
            {
                Name = "GCC_OPTIMIZATION_LEVEL";
                Type = Enumeration;
                Values = ( 0, 1, 2, 3, s, fast );
                DefaultValue = s;
                Category = CodeGeneration;
            }
        );
    }
)
`

const iosSpec = `(
    {
        Options = (
            {
                Name = "CLANG_ENABLE_OBJC_ARC";
                Type = Boolean;
                DefaultValue = YES;
            },
            {
                Name = "LD_RUNPATH_SEARCH_PATHS";
                Type = PathList;
            }
        );
    }
)
`

// fixture is a fake installation plus a config that converts with cp.
type fixture struct {
	root   string
	config string
	dir    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "Xcode.app")

	files := map[string]string{
		"Contents/version.plist": versionPlist,
		"Contents/PlugIns/Core.ideplugin/Contents/Resources/Core.xcspec":                                          coreSpec,
		"Contents/Developer/Platforms/iPhoneOS.platform/Developer/Library/Xcode/Specifications/iOS Device.xcspec": iosSpec,
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	tmp := filepath.Join(dir, "tmp")
	require.NoError(t, os.MkdirAll(tmp, 0755))
	config := filepath.Join(dir, "xcsettings.toml")
	require.NoError(t, os.WriteFile(config, []byte(`
[converter]
command = "cp {input} {output}"
temp_dir = "`+filepath.ToSlash(tmp)+`"

[swift]
exclusions = ["GCC_OPTIMIZATION_LEVEL"]
`), 0644))

	return fixture{root: root, config: config, dir: dir}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExtractWritesBothOutputs(t *testing.T) {
	f := newFixture(t)
	jsonPath := filepath.Join(f.dir, "out", "settings.json")
	swiftPath := filepath.Join(f.dir, "out", "BuildSetting.swift")

	_, _, err := execute(t, "extract", f.root, "--config", f.config, "-j", jsonPath, "-s", swiftPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, `"xcode_version": "15.2"`)
	assert.Contains(t, doc, `"key": "LD_RUNPATH_SEARCH_PATHS"`)

	// iOS Device.xcspec sorts before Core.xcspec by full path, so its YES wins
	assert.Contains(t, doc, `"default_value": "YES"`)
	assert.Less(t, strings.Index(doc, "CLANG_ENABLE_OBJC_ARC"), strings.Index(doc, "GCC_OPTIMIZATION_LEVEL"))

	src, err := os.ReadFile(swiftPath)
	require.NoError(t, err)
	code := string(src)
	assert.Contains(t, code, "// Source version: Xcode 15.2")
	assert.Contains(t, code, "public enum BuildSetting {")
	assert.Contains(t, code, `return ("LD_RUNPATH_SEARCH_PATHS", .array(paths))`)

	entries, err := os.ReadDir(filepath.Join(f.dir, "tmp"))
	require.NoError(t, err)
	assert.Empty(t, entries, "conversion directories are removed")
}

func TestExtractExclusionsOnlyAffectSwift(t *testing.T) {
	f := newFixture(t)
	jsonPath := filepath.Join(f.dir, "settings.json")
	swiftPath := filepath.Join(f.dir, "BuildSetting.swift")

	_, _, err := execute(t, "extract", f.root, "--config", f.config, "-j", jsonPath, "-s", swiftPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"key": "GCC_OPTIMIZATION_LEVEL"`)
	assert.Contains(t, string(data), `"fast"`)

	src, err := os.ReadFile(swiftPath)
	require.NoError(t, err)
	code := string(src)
	assert.NotContains(t, code, "gccOptimizationLevel(")
	assert.NotContains(t, code, `"GCC_OPTIMIZATION_LEVEL"`)
	assert.Contains(t, code, "enum GccOptimizationLevelValue: String {")
	assert.Contains(t, code, `case fast = "fast"`)
}

func TestExtractWithoutOutputsPrintsDocument(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := execute(t, "extract", f.root, "--config", f.config)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "{\n    \"settings\": ["), stdout)
	assert.Contains(t, stdout, `"xcode_version": "15.2"`)
}

func TestExtractYAML(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.dir, "settings.yaml")

	_, _, err := execute(t, "extract", f.root, "--config", f.config, "-j", out, "--format", "yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "xcode_version: \"15.2\"")
}

func TestExtractFailsWithoutWriting(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "Contents", "version.plist"), []byte(`{ ProductBuildVersion = 16C5032a; }`), 0644))
	out := filepath.Join(f.dir, "settings.json")

	_, _, err := execute(t, "extract", f.root, "--config", f.config, "-j", out)
	require.Error(t, err)
	assert.Equal(t, errors.KindMissingVersion, errors.KindOf(err))
	assert.NoFileExists(t, out)
}

func TestExtractRejectsNonApp(t *testing.T) {
	f := newFixture(t)

	_, _, err := execute(t, "extract", f.dir, "--config", f.config)
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedFormat(err))
}

func TestExtractConverterFailure(t *testing.T) {
	f := newFixture(t)
	config := filepath.Join(f.dir, "failing.toml")
	require.NoError(t, os.WriteFile(config, []byte("[converter]\ncommand = \"false {input} {output}\"\n"), 0644))

	_, _, err := execute(t, "extract", f.root, "--config", config)
	require.Error(t, err)
	assert.True(t, errors.IsConversionFailed(err))
}

func TestCheckDetectsDrift(t *testing.T) {
	f := newFixture(t)
	swiftPath := filepath.Join(f.dir, "BuildSetting.swift")
	args := []string{f.root, "--config", f.config, "-s", swiftPath}

	_, _, err := execute(t, append([]string{"check"}, args...)...)
	require.Error(t, err, "missing output is drift")

	_, _, err = execute(t, append([]string{"extract"}, args...)...)
	require.NoError(t, err)

	_, _, err = execute(t, append([]string{"check"}, args...)...)
	require.NoError(t, err)

	// A different Xcode version alone is not drift
	src, err := os.ReadFile(swiftPath)
	require.NoError(t, err)
	edited := strings.Replace(string(src), "Xcode 15.2", "Xcode 16.0", 1)
	require.NoError(t, os.WriteFile(swiftPath, []byte(edited), 0644))
	_, _, err = execute(t, append([]string{"check"}, args...)...)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(swiftPath, []byte(edited+"// local edit\n"), 0644))
	_, _, err = execute(t, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
}

func TestCheckRequiresTarget(t *testing.T) {
	f := newFixture(t)
	_, _, err := execute(t, "check", f.root, "--config", f.config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to check")
}

func TestInspect(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := execute(t, "inspect", f.root, "--config", f.config)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Xcode 15.2")
	assert.Contains(t, stdout, "CodeGeneration")
	assert.Contains(t, stdout, "GCC_OPTIMIZATION_LEVEL")

	stdout, _, err = execute(t, "inspect", f.root, "--config", f.config, "--json", "--prefix", "LD_")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"LD_RUNPATH_SEARCH_PATHS"`)
	assert.NotContains(t, stdout, "GCC_OPTIMIZATION_LEVEL")
}

func TestSchema(t *testing.T) {
	stdout, _, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"xcode_version"`)

	out := filepath.Join(t.TempDir(), "schema.json")
	_, _, err = execute(t, "schema", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(data))
}

func TestAmInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xcsettings.toml")

	_, _, err := execute(t, "am", "init", "--path", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[converter]")

	_, _, err = execute(t, "am", "init", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "am", "init", "--path", path, "--force")
	require.NoError(t, err)
	assert.FileExists(t, path+".back1")
}

func TestAmShowAndValidate(t *testing.T) {
	f := newFixture(t)

	stdout, _, err := execute(t, "am", "show", "--config", f.config, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cp {input} {output}")

	_, _, err = execute(t, "am", "validate", "--config", f.config)
	require.NoError(t, err)

	typo := filepath.Join(f.dir, "typo.toml")
	require.NoError(t, os.WriteFile(typo, []byte("[output]\njsn = \"x.json\"\n"), 0644))
	_, _, err = execute(t, "am", "validate", "--config", typo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"go_version"`)
}
