package template

import (
	"fmt"
	"go/token"

	"either-generator/internal/diagnostic"
)

// Error is a template error located at a source position.
type Error struct {
	Code    diagnostic.Code
	Pos     token.Pos
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func errorf(code diagnostic.Code, pos token.Pos, format string, args ...any) *Error {
	return &Error{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
