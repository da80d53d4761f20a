package mangoerrors

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes reported by the host program, sysexits style.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL %v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR %v\n", err)
}

// ExitCode maps an error to the process exit status.
// Scan and parse errors are data errors, runtime errors are software errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var scanErr *ScannerError
	var parseErr *ParserError
	var runtimeErr *RuntimeError
	switch {
	case errors.As(err, &scanErr), errors.As(err, &parseErr):
		return ExitDataErr
	case errors.As(err, &runtimeErr):
		return ExitSoftware
	}

	return ExitUsage
}

var _ ErrReporter = (*errReporter)(nil)
