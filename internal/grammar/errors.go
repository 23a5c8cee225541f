package grammar

import (
	"fmt"

	"either-generator/internal/diagnostic"
)

// Error is a grammar error located at a byte offset of the parsed text.
type Error struct {
	Code    diagnostic.Code
	Offset  int
	Message string
	// Hint optionally suggests a fix.
	Hint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Message)
}

func errorf(code diagnostic.Code, offset int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
