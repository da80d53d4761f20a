package mangoerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("unexpected character.")
	ErrScanUnterminatedString  = errors.New("unterminated string.")
)

type ScannerError struct {
	line    int
	cause   error
	details string
}

func NewScanError(line int, cause error, details string) error {
	return &ScannerError{line: line, cause: cause, details: details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] scan error: %v%s", s.line, s.cause, details)
}

func (s *ScannerError) Line() int {
	return s.line
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ wrapper = (*ScannerError)(nil)
