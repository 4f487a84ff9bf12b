package xcspec

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/xcsettings/logger"
	"github.com/teranos/xcsettings/setting"
)

// Field names inside spec records.
const (
	fieldOptions      = "Options"
	fieldName         = "Name"
	fieldKey          = "Key"
	fieldDescription  = "Description"
	fieldType         = "Type"
	fieldCategory     = "Category"
	fieldDefaultValue = "DefaultValue"
	fieldValues       = "Values"
	fieldValue        = "Value"
)

// decodeRecords turns a decoded property list into raw option tuples.
//
// The document is a list of records (a lone dict counts as one record).
// Records without an Options list and options without a Name are skipped:
// a malformed record never fails the source.
func decodeRecords(doc interface{}, path string, log *zap.SugaredLogger) []setting.Raw {
	var records []interface{}
	switch d := doc.(type) {
	case []interface{}:
		records = d
	case map[string]interface{}:
		records = []interface{}{d}
	default:
		log.Debugw("Spec document is not a list of records, skipping",
			logger.FieldPath, path,
			logger.FieldType, fmt.Sprintf("%T", doc))
		return nil
	}

	var raws []setting.Raw
	for i, r := range records {
		record, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		options, ok := record[fieldOptions].([]interface{})
		if !ok {
			continue
		}

		for j, o := range options {
			option, ok := o.(map[string]interface{})
			if !ok {
				log.Debugw("Skipping option that is not a dictionary",
					logger.FieldPath, path, "record", i, "option", j)
				continue
			}
			raw, ok := decodeOption(option)
			if !ok {
				log.Debugw("Skipping option without a name",
					logger.FieldPath, path, "record", i, "option", j)
				continue
			}
			raws = append(raws, raw)
		}
	}
	return raws
}

func decodeOption(option map[string]interface{}) (setting.Raw, bool) {
	name, _ := scalar(option[fieldName])
	if name == "" {
		return setting.Raw{}, false
	}
	key, _ := scalar(option[fieldKey])
	typ, _ := scalar(option[fieldType])

	return setting.Raw{
		Name:         name,
		Key:          key,
		Description:  optional(option[fieldDescription]),
		Type:         typ,
		Category:     optional(option[fieldCategory]),
		DefaultValue: optional(option[fieldDefaultValue]),
		Values:       enumValues(option[fieldValues]),
	}, true
}

// enumValues accepts plain strings and dicts exposing a Value field.
func enumValues(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(list))
	for _, item := range list {
		switch it := item.(type) {
		case map[string]interface{}:
			if s, ok := scalar(it[fieldValue]); ok {
				values = append(values, s)
			}
		default:
			if s, ok := scalar(it); ok {
				values = append(values, s)
			}
		}
	}
	return values
}

func optional(v interface{}) *string {
	s, ok := scalar(v)
	if !ok {
		return nil
	}
	return &s
}

// scalar renders a plist leaf as the text Xcode would show.
// Booleans become YES/NO and string lists are space-joined, matching how
// list defaults are written in the specs.
func scalar(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		if t {
			return "YES", true
		}
		return "NO", true
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := scalar(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), true
	case map[string]interface{}:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}
