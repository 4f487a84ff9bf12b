package jsondoc

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/teranos/xcsettings/errors"
)

// SchemaID identifies the data document schema.
const SchemaID = "https://github.com/teranos/xcsettings/settings.schema.json"

// Schema returns the JSON schema of the data document.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true
	schema := r.Reflect(&File{})

	schema.ID = SchemaID
	schema.Title = "Xcode build settings"
	schema.Description = "Build settings declared by the spec files of an Xcode installation"
	return schema
}

// SchemaJSON returns the indented schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal schema")
	}
	return append(data, '\n'), nil
}
