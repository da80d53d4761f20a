package mangoerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gomango/internal/token"
)

var (
	ErrRuntimeUndefinedVariable = errors.New("undefined variable")
)

func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok, cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] at %s: %v", r.tok.Line, r.tok.Lexeme, r.cause)
}

func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ wrapper = (*RuntimeError)(nil)
