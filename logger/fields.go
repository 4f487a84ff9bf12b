package logger

// Standard field names for consistent structured logging across xcsettings.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldComponent = "component"
	FieldPath      = "path"
	FieldKey       = "key"
	FieldType      = "type"
	FieldKind      = "kind"
	FieldCount     = "count"
	FieldError     = "error"
	FieldCommand   = "command"
	FieldVersion   = "version"
	FieldOutput    = "output"
)
