package jsondoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/xcsettings/setting"
	"github.com/teranos/xcsettings/typegen"
)

func strPtr(s string) *string { return &s }

func testDocument() *typegen.Document {
	c := setting.NewCollection()
	c.Add(
		setting.New(setting.Raw{Name: "Foo", Key: "FOO_BAR", Type: "bool", DefaultValue: strPtr("YES")}),
		setting.New(setting.Raw{
			Name:        "Swift Version",
			Key:         "SWIFT_VERSION",
			Type:        "string",
			Description: strPtr(`Uses "<swift>" & friends`),
			Category:    strPtr("Language"),
		}),
	)
	return typegen.NewDocument("15.2", c)
}

func TestEmitJSON(t *testing.T) {
	data, err := NewEmitter(FormatJSON).Emit(testDocument())
	require.NoError(t, err)

	want := `{
    "settings": [
        {
            "category": null,
            "default_value": "YES",
            "description": null,
            "enum_cases": [
                "YES"
            ],
            "key": "FOO_BAR",
            "name": "Foo",
            "type": "Boolean"
        },
        {
            "category": "Language",
            "default_value": null,
            "description": "Uses \"<swift>\" & friends",
            "enum_cases": [],
            "key": "SWIFT_VERSION",
            "name": "Swift Version",
            "type": "String"
        }
    ],
    "xcode_version": "15.2"
}
`
	assert.Equal(t, want, string(data))
}

func TestEmitJSONIsStable(t *testing.T) {
	e := NewEmitter(FormatJSON)
	first, err := e.Emit(testDocument())
	require.NoError(t, err)
	second, err := e.Emit(testDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmitJSONEmptyDocument(t *testing.T) {
	data, err := NewEmitter(FormatJSON).Emit(&typegen.Document{XcodeVersion: "15.2"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []interface{}{}, decoded["settings"])
}

func TestEmitYAML(t *testing.T) {
	e := NewEmitter(FormatYAML)
	assert.Equal(t, "yaml", e.FileExtension())

	data, err := e.Emit(testDocument())
	require.NoError(t, err)

	var decoded File
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "15.2", decoded.XcodeVersion)
	require.Len(t, decoded.Settings, 2)
	assert.Equal(t, "FOO_BAR", decoded.Settings[0].Key)
	assert.Nil(t, decoded.Settings[0].Category)
	assert.Equal(t, []string{"YES"}, decoded.Settings[0].EnumCases)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, SchemaID, schema["$id"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "settings")
	assert.Contains(t, props, "xcode_version")
	assert.ElementsMatch(t, []interface{}{"settings", "xcode_version"}, schema["required"])
}
