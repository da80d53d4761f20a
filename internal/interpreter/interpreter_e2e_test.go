package interpreter_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leonardinius/gomango/internal/interpreter"
	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/parser"
	"github.com/leonardinius/gomango/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretReplMultiline(t *testing.T) {
	testcases := []struct {
		name string
		in   []string // Input lines
		out  string   // Expected output
		errs []string // Expected error per line, "" for none
	}{
		{
			name: `var repl`,
			in:   []string{`var dd = 1;print dd;`, `dd = dd + 4;`, `print dd;`},
			out:  "1\n5\n",
			errs: []string{"", "", ""},
		},
		{
			name: `error does not leak scope`,
			in:   []string{`var a = 1;`, `{ var a = 2; { missing = 3; } }`, `print a;`},
			out:  "1\n",
			errs: []string{"", "undefined variable 'missing'.", ""},
		},
		{
			name: `error in while body`,
			in:   []string{`var i = 0;`, `while (i < 3) { i = i + 1; { oops = i; } }`, `print i;`},
			out:  "1\n",
			errs: []string{"", "undefined variable 'oops'.", ""},
		},
		{
			name: `partial effects are kept`,
			in:   []string{`var a = 1;`, `a = 2; b = 3;`, `print a;`},
			out:  "2\n",
			errs: []string{"", "undefined variable 'b'.", ""},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			env := interpreter.NewEnvironment()
			stdout := strings.Builder{}
			eval := interpreter.NewInterpreter(
				interpreter.WithEnvironment(env),
				interpreter.WithStdout(&stdout),
			)

			for idx, line := range tc.in {
				program := mustParse(t, line)
				err := eval.Interpret(context.TODO(), program)
				if tc.errs[idx] != "" {
					assert.ErrorContains(t, err, tc.errs[idx])
					assert.ErrorIs(t, err, mangoerrors.ErrRuntimeUndefinedVariable)
				} else {
					assert.NoError(t, err)
				}
				assert.Equal(t, 1, env.Depth(), "scope depth after line %d", idx)
			}

			assert.Equal(t, tc.out, stdout.String())
		})
	}
}

func TestEvaluateSharesEnvironment(t *testing.T) {
	eval := interpreter.NewInterpreter(interpreter.WithStdout(new(strings.Builder)))
	require.NoError(t, eval.Interpret(context.TODO(), mustParse(t, `var x = 6;`)))

	tokens, err := scanner.NewScanner(`x = x!`).Scan()
	require.NoError(t, err)
	expr, err := parser.NewParser(tokens).ParseExpression()
	require.NoError(t, err)

	value, err := eval.Evaluate(context.TODO(), expr)
	require.NoError(t, err)
	assert.Equal(t, "720", value.String())

	out := new(strings.Builder)
	eval = interpreter.NewInterpreter(interpreter.WithStdout(out))
	require.NoError(t, eval.Interpret(context.TODO(), mustParse(t, `print x;`)))
	assert.Equal(t, "None\n", out.String())
}

func TestInterpretCancelledLoop(t *testing.T) {
	env := interpreter.NewEnvironment()
	eval := interpreter.NewInterpreter(
		interpreter.WithEnvironment(env),
		interpreter.WithStdout(new(strings.Builder)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := eval.Interpret(ctx, mustParse(t, `var n = 0; while (true) { { n = n + 1; } }`))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, env.Depth())
}

func mustParse(t *testing.T, source string) *parser.StmtProgram {
	t.Helper()

	tokens, err := scanner.NewScanner(source).Scan()
	require.NoError(t, err)

	program, err := parser.NewParser(tokens).Parse()
	require.NoError(t, err)

	return program
}
