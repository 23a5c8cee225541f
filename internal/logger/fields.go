package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"
	FieldPackage   = "package"
	FieldFile      = "file"
	FieldOutput    = "output"
	FieldTemplate  = "template"
	FieldCode      = "code"
	FieldPosition  = "position"
	FieldCount     = "count"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)
