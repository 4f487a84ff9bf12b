// Package jsondoc emits the data document: the Xcode version plus every
// setting record, as JSON (default) or YAML.
package jsondoc

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/teranos/xcsettings/errors"
	"github.com/teranos/xcsettings/setting"
	"github.com/teranos/xcsettings/typegen"
)

// Format selects the serialization of the data document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Indent is the indentation unit of both formats.
const Indent = 4

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", errors.WithHint(
		errors.Newf("unknown data format %q", s),
		"use json or yaml")
}

// File is the data document. Fields are declared in key order so the
// encoded object keys come out sorted.
type File struct {
	Settings     []Record `json:"settings" yaml:"settings" jsonschema:"description=Build settings sorted by key"`
	XcodeVersion string   `json:"xcode_version" yaml:"xcode_version" jsonschema:"description=Version of the Xcode installation the settings were read from"`
}

// Record is one setting. Absent optionals encode as null and a setting
// without cases has an empty list.
type Record struct {
	Category     *string  `json:"category" yaml:"category" jsonschema:"oneof_type=string;null"`
	DefaultValue *string  `json:"default_value" yaml:"default_value" jsonschema:"oneof_type=string;null"`
	Description  *string  `json:"description" yaml:"description" jsonschema:"oneof_type=string;null"`
	EnumCases    []string `json:"enum_cases" yaml:"enum_cases"`
	Key          string   `json:"key" yaml:"key" jsonschema:"minLength=1"`
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
}

// NewFile converts a typegen document into its serializable form.
func NewFile(doc *typegen.Document) *File {
	records := make([]Record, 0, len(doc.Settings))
	for _, s := range doc.Settings {
		records = append(records, newRecord(s))
	}
	return &File{Settings: records, XcodeVersion: doc.XcodeVersion}
}

func newRecord(s *setting.Setting) Record {
	cases := s.EnumCases
	if cases == nil {
		cases = []string{}
	}
	return Record{
		Category:     s.Category,
		DefaultValue: s.DefaultValue,
		Description:  s.Description,
		EnumCases:    cases,
		Key:          s.Key,
		Name:         s.Name,
		Type:         string(s.Type),
	}
}

// Emitter writes the data document.
type Emitter struct {
	Format Format
}

// NewEmitter creates an emitter for format.
func NewEmitter(format Format) *Emitter {
	if format == "" {
		format = FormatJSON
	}
	return &Emitter{Format: format}
}

// Name returns "json" or "yaml"
func (e *Emitter) Name() string {
	return string(e.Format)
}

// FileExtension returns "json" or "yaml"
func (e *Emitter) FileExtension() string {
	return string(e.Format)
}

// Emit implements typegen.Emitter.
func (e *Emitter) Emit(doc *typegen.Document) ([]byte, error) {
	file := NewFile(doc)
	switch e.Format {
	case FormatYAML:
		return encodeYAML(file)
	case FormatJSON:
		return encodeJSON(file)
	}
	return nil, errors.Newf("unknown data format %q", e.Format)
}

func encodeJSON(file *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(file); err != nil {
		return nil, errors.Wrap(err, "failed to encode data document")
	}
	return buf.Bytes(), nil
}

func encodeYAML(file *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(file); err != nil {
		return nil, errors.Wrap(err, "failed to encode data document")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode data document")
	}
	return buf.Bytes(), nil
}
