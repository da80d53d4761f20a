package interpreter

import (
	"context"
	"fmt"
	"io"

	"github.com/leonardinius/gomango/internal/parser"
	"github.com/leonardinius/gomango/internal/token"
)

type Interpreter interface {
	// Interpret executes the given statement, usually a *parser.StmtProgram.
	// Print output goes to the configured stdout.
	//
	// Not thread safe.
	// Bindings persist between calls, a failed call leaves the scope depth where it found it.
	Interpret(ctx context.Context, stmt parser.Stmt) error

	// Evaluate evaluates the given expression and returns its value.
	//
	// Not thread safe.
	Evaluate(ctx context.Context, expr parser.Expr) (token.Value, error)
}

type interpreter struct {
	env    *Environment
	stdout io.Writer
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		env:    opts.env,
		stdout: opts.stdout,
	}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, stmt parser.Stmt) error {
	_, err := i.execute(ctx, stmt)
	return err
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expr parser.Expr) (token.Value, error) {
	return i.evaluate(ctx, expr)
}

// VisitStmtProgram implements parser.StmtVisitor.
func (i *interpreter) VisitStmtProgram(ctx context.Context, stmt *parser.StmtProgram) (token.Value, error) {
	return i.executeStatements(ctx, stmt.Statements)
}

// VisitStmtBlock implements parser.StmtVisitor.
func (i *interpreter) VisitStmtBlock(ctx context.Context, stmt *parser.StmtBlock) (token.Value, error) {
	i.env.Push()
	defer i.env.Pop()

	return i.executeStatements(ctx, stmt.Statements)
}

// VisitStmtExpression implements parser.StmtVisitor.
func (i *interpreter) VisitStmtExpression(ctx context.Context, stmt *parser.StmtExpression) (token.Value, error) {
	return i.evaluate(ctx, stmt.Expression)
}

// VisitStmtPrint implements parser.StmtVisitor.
func (i *interpreter) VisitStmtPrint(ctx context.Context, stmt *parser.StmtPrint) (token.Value, error) {
	value, err := i.evaluate(ctx, stmt.Expression)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintln(i.stdout, value.String()); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}

	return token.NoneValue, nil
}

// VisitStmtVar implements parser.StmtVisitor.
func (i *interpreter) VisitStmtVar(ctx context.Context, stmt *parser.StmtVar) (token.Value, error) {
	value, err := i.evaluate(ctx, stmt.Initializer)
	if err != nil {
		return nil, err
	}

	i.env.Define(stmt.Name.Lexeme, value)
	return token.NoneValue, nil
}

// VisitStmtWhile implements parser.StmtVisitor.
// Only Boolean(true) continues the loop, any other condition value ends it.
func (i *interpreter) VisitStmtWhile(ctx context.Context, stmt *parser.StmtWhile) (token.Value, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		condition, err := i.evaluate(ctx, stmt.Condition)
		if err != nil {
			return nil, err
		}
		if condition != token.TrueValue {
			return token.NoneValue, nil
		}

		if _, err := i.execute(ctx, stmt.Body); err != nil {
			return nil, err
		}
	}
}

// VisitExprAssign implements parser.ExprVisitor.
func (i *interpreter) VisitExprAssign(ctx context.Context, expr *parser.ExprAssign) (token.Value, error) {
	value, err := i.evaluate(ctx, expr.Value)
	if err != nil {
		return nil, err
	}

	return i.env.Assign(expr.Name, value)
}

// VisitExprBinary implements parser.ExprVisitor.
func (i *interpreter) VisitExprBinary(ctx context.Context, expr *parser.ExprBinary) (token.Value, error) {
	left, err := i.evaluate(ctx, expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.PLUS:
		return add(left, right), nil
	case token.MINUS:
		return subtract(left, right), nil
	case token.STAR:
		return multiply(left, right), nil
	case token.SLASH:
		return divide(left, right), nil
	case token.STAR_STAR:
		return power(left, right), nil
	case token.LESS:
		return less(left, right), nil
	case token.LESS_EQUAL:
		return lessEqual(left, right), nil
	case token.GREATER:
		return greater(left, right), nil
	case token.GREATER_EQUAL:
		return greaterEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return equal(left, right), nil
	}

	return i.unreachable(expr.Operator)
}

// VisitExprGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitExprGrouping(ctx context.Context, expr *parser.ExprGrouping) (token.Value, error) {
	return i.evaluate(ctx, expr.Expression)
}

// VisitExprLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitExprLiteral(ctx context.Context, expr *parser.ExprLiteral) (token.Value, error) {
	if expr.Value == nil {
		return token.NoneValue, nil
	}
	return expr.Value, nil
}

// VisitExprUnary implements parser.ExprVisitor.
func (i *interpreter) VisitExprUnary(ctx context.Context, expr *parser.ExprUnary) (token.Value, error) {
	right, err := i.evaluate(ctx, expr.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case expr.Operator.Type == token.BANG && expr.IsPrefix:
		return not(right), nil
	case expr.Operator.Type == token.MINUS && expr.IsPrefix:
		return negate(right), nil
	case expr.Operator.Type == token.BANG:
		return factorial(right), nil
	}

	return i.unreachable(expr.Operator)
}

// VisitExprVariable implements parser.ExprVisitor.
// Reading an unbound name is not an error, it yields None.
func (i *interpreter) VisitExprVariable(ctx context.Context, expr *parser.ExprVariable) (token.Value, error) {
	if value, ok := i.env.Get(expr.Name.Lexeme); ok {
		return value, nil
	}
	return token.NoneValue, nil
}

func (i *interpreter) execute(ctx context.Context, stmt parser.Stmt) (token.Value, error) {
	return stmt.Accept(ctx, i)
}

func (i *interpreter) executeStatements(ctx context.Context, statements []parser.Stmt) (token.Value, error) {
	for _, stmt := range statements {
		if _, err := i.execute(ctx, stmt); err != nil {
			return nil, err
		}
	}
	return token.NoneValue, nil
}

func (i *interpreter) evaluate(ctx context.Context, expr parser.Expr) (token.Value, error) {
	return expr.Accept(ctx, i)
}

func (i *interpreter) unreachable(operator *token.Token) (token.Value, error) {
	panic(fmt.Sprintf("unreachable: unsupported operator %s", operator.Type))
}

var _ parser.ExprVisitor = (*interpreter)(nil)
var _ parser.StmtVisitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
