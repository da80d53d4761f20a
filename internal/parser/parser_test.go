package parser_test

import (
	"testing"

	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/parser"
	"github.com/leonardinius/gomango/internal/scanner"
	"github.com/leonardinius/gomango/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string
		ast  string
	}{
		{name: `term right assoc`, in: `2 - 3 - 4`, ast: `(- 2 (- 3 4))`},
		{name: `term mixed`, in: `1 + 2 - 3`, ast: `(+ 1 (- 2 3))`},
		{name: `factor over term`, in: `1 + 2 * 3`, ast: `(+ 1 (* 2 3))`},
		{name: `factor right assoc`, in: `8 / 4 / 2`, ast: `(/ 8 (/ 4 2))`},
		{name: `exponent over factor`, in: `2 * 3 ** 2`, ast: `(* 2 (** 3 2))`},
		{name: `exponent right assoc`, in: `2 ** 2 ** 3`, ast: `(** 2 (** 2 3))`},
		{name: `prefix minus`, in: `-2 ** 2`, ast: `(** (- 2) 2)`},
		{name: `prefix bang`, in: `!!true`, ast: `(! (! true))`},
		{name: `postfix factorial`, in: `5!`, ast: `(postfix! 5)`},
		{name: `postfix factorial in term`, in: `3! + 1`, ast: `(+ (postfix! 3) 1)`},
		{name: `prefix and postfix`, in: `-3!`, ast: `(- (postfix! 3))`},
		{name: `grouping`, in: `(1 + 2) * 3`, ast: `(* (group (+ 1 2)) 3)`},
		{name: `grouping nested`, in: `((1))`, ast: `(group (group 1))`},
		{name: `string`, in: `"a" + 1`, ast: `(+ a 1)`},
		{name: `variable`, in: `a + b`, ast: `(+ a b)`},
		{name: `assignment`, in: `a = b = 1 + 2`, ast: `(= a (= b (+ 1 2)))`},
		{name: `comparison below term`, in: `1 + 2 < 4`, ast: `(< (+ 1 2) 4)`},
		{name: `comparison right assoc`, in: `1 == 2 == false`, ast: `(== 1 (== 2 false))`},
		{name: `comparison ops`, in: `a <= b`, ast: `(<= a b)`},
		{name: `comparison gte`, in: `a >= b`, ast: `(>= a b)`},
		{name: `comparison gt`, in: `a > b`, ast: `(> a b)`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := parseExpression(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.ast, parser.NewAstPrinter().Print(expr))
		})
	}
}

func TestParseProgram(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string
		ast  string
		err  string
	}{
		{name: `empty`, in: ``, ast: `(program)`},
		{name: `print`, in: `print 1;`, ast: `(program (print 1))`},
		{name: `var`, in: `var a = 1; var b = 2; print a + b;`, ast: `(program (var a 1) (var b 2) (print (+ a b)))`},
		{name: `expression`, in: `1 + 2;`, ast: `(program (expr (+ 1 2)))`},
		{name: `assign`, in: `a = 1;`, ast: `(program (expr (= a 1)))`},
		{name: `block`, in: `var a = 1; { var a = 2; print a; } print a;`, ast: `(program (var a 1) (block (var a 2) (print a)) (print a))`},
		{name: `empty block`, in: `{}`, ast: `(program (block))`},
		{name: `nested block`, in: `{{print 1;}}`, ast: `(program (block (block (print 1))))`},
		{name: `while`, in: `while (a < 3) { a = a + 1; }`, ast: `(program (while (< a 3) (block (expr (= a (+ a 1))))))`},

		{name: `missing semicolon print`, in: `print 1`, err: `[line 1] parse error at end: expect ';' after print value.`},
		{name: `missing semicolon expr`, in: `1 + 2`, err: `[line 1] parse error at end: expect ';' after value.`},
		{name: `missing semicolon var`, in: `var a = 1 print a;`, err: `parse error at 'print': expect ';' after variable declaration.`},
		{name: `var keyword name`, in: `var print = 1;`, err: `parse error at 'print': expect variable name.`},
		{name: `var missing equal`, in: `var a;`, err: `parse error at ';': expect '=' after variable name.`},
		{name: `var missing initializer`, in: `var a = ;`, err: `parse error at ';': expected expression.`},
		{name: `missing paren`, in: `(1 + 2;`, err: `parse error at ';': expected ')' after expression.`},
		{name: `dangling operator`, in: `1 + 2 +;`, err: `parse error at ';': expected expression.`},
		{name: `invalid assignment`, in: `(a) = 1;`, err: `parse error at '=': invalid assignment target.`},
		{name: `while without paren`, in: `while true { }`, err: `parse error at 'true': expected '(' after while.`},
		{name: `while unclosed paren`, in: `while (true { }`, err: `parse error at '{': expected ')' after condition.`},
		{name: `while without block`, in: `while (true) print 1;`, err: `parse error at 'print': expect '{' before while body.`},
		{name: `unclosed block`, in: `{ print 1;`, err: `parse error at end: expect '}' after block.`},
		{name: `first error wins`, in: "print 1\nprint (;", err: `[line 2] parse error at 'print': expect ';' after print value.`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			program, err := parseProgram(tc.in)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				assert.Nil(t, program)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ast, parser.NewAstPrinter().PrintStmt(program))
		})
	}
}

func TestParseErrorKinds(t *testing.T) {
	_, err := parseProgram(`var 1 = 2;`)
	assert.ErrorIs(t, err, mangoerrors.ErrParseUnexpectedVariableName)

	var parseErr *mangoerrors.ParserError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, token.NUMBER, parseErr.Token().Type)

	_, err = parseExpression(`1 2`)
	assert.ErrorIs(t, err, mangoerrors.ErrParseExpectedEndOfExpression)

	_, err = parseExpression(``)
	assert.ErrorIs(t, err, mangoerrors.ErrParseUnexpectedToken)
}

func TestNewParserPanicsWithoutEOF(t *testing.T) {
	assert.Panics(t, func() { parser.NewParser(nil) })
	assert.Panics(t, func() {
		parser.NewParser([]token.Token{token.NewToken(token.NUMBER, "1", token.ValueNumber(1), 1)})
	})
}

func parseProgram(source string) (*parser.StmtProgram, error) {
	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		return nil, err
	}
	return parser.NewParser(tokens).Parse()
}

func parseExpression(source string) (parser.Expr, error) {
	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		return nil, err
	}
	return parser.NewParser(tokens).ParseExpression()
}
