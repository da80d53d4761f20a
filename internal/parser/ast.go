package parser

import (
	"context"

	"github.com/leonardinius/gomango/internal/token"
)

// ExprVisitor is the interface that wraps the Visit methods for expressions.
//
// Every Expr implementation dispatches to exactly one method.
type ExprVisitor interface {
	VisitExprAssign(ctx context.Context, expr *ExprAssign) (token.Value, error)
	VisitExprBinary(ctx context.Context, expr *ExprBinary) (token.Value, error)
	VisitExprGrouping(ctx context.Context, expr *ExprGrouping) (token.Value, error)
	VisitExprLiteral(ctx context.Context, expr *ExprLiteral) (token.Value, error)
	VisitExprUnary(ctx context.Context, expr *ExprUnary) (token.Value, error)
	VisitExprVariable(ctx context.Context, expr *ExprVariable) (token.Value, error)
}

type Expr interface {
	Accept(ctx context.Context, v ExprVisitor) (token.Value, error)
}

type ExprAssign struct {
	Name  *token.Token
	Value Expr
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

type ExprLiteral struct {
	Value token.Value
}

// ExprUnary is either a prefix operator (! or -) or the postfix factorial (!).
type ExprUnary struct {
	Operator *token.Token
	Right    Expr
	IsPrefix bool
}

type ExprVariable struct {
	Name *token.Token
}

func (e *ExprAssign) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprAssign(ctx, e)
}

func (e *ExprBinary) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprBinary(ctx, e)
}

func (e *ExprGrouping) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprGrouping(ctx, e)
}

func (e *ExprLiteral) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprLiteral(ctx, e)
}

func (e *ExprUnary) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprUnary(ctx, e)
}

func (e *ExprVariable) Accept(ctx context.Context, v ExprVisitor) (token.Value, error) {
	return v.VisitExprVariable(ctx, e)
}

var (
	_ Expr = (*ExprAssign)(nil)
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprVariable)(nil)
)
