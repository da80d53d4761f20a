package mangoerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/gomango/internal/token"
)

var (
	ErrParseUnexpectedToken                       = errors.New("expected expression.")
	ErrParseUnexpectedVariableName                = errors.New("expect variable name.")
	ErrParseExpectedEqualAfterVariableName        = errors.New("expect '=' after variable name.")
	ErrParseInvalidAssignmentTarget               = errors.New("invalid assignment target.")
	ErrParseExpectedRightParenToken               = errors.New("expected ')' after expression.")
	ErrParseExpectedLeftParentWhileToken          = errors.New("expected '(' after while.")
	ErrParseExpectedRightParentWhileToken         = errors.New("expected ')' after condition.")
	ErrParseExpectedLeftBraceWhileBody            = errors.New("expect '{' before while body.")
	ErrParseExpectedRightCurlyBlockToken          = errors.New("expect '}' after block.")
	ErrParseExpectedSemicolonTokenAfterPrintValue = errors.New("expect ';' after print value.")
	ErrParseExpectedSemicolonTokenAfterExpr       = errors.New("expect ';' after value.")
	ErrParseExpectedSemicolonTokenAfterVar        = errors.New("expect ';' after variable declaration.")
	ErrParseExpectedEndOfExpression               = errors.New("expect end of input after expression.")
)

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Token() *token.Token {
	return p.tok
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ wrapper = (*ParserError)(nil)
