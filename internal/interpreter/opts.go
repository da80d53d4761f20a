package interpreter

import (
	"io"
	"os"
)

type interpreterOpts struct {
	env    *Environment
	stdout io.Writer
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
}

type InterpreterOption func(*interpreterOpts)

// WithEnvironment sets the root environment, shared across Interpret calls.
func WithEnvironment(env *Environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = env
	}
}

// WithStdout sets the print destination.
func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.env == nil {
		opts.env = NewEnvironment()
	}

	return &opts
}
