package parser

import (
	"context"

	"github.com/leonardinius/gomango/internal/token"
)

// StmtVisitor is the interface that wraps the Visit methods for statements.
type StmtVisitor interface {
	VisitStmtBlock(ctx context.Context, stmt *StmtBlock) (token.Value, error)
	VisitStmtExpression(ctx context.Context, stmt *StmtExpression) (token.Value, error)
	VisitStmtPrint(ctx context.Context, stmt *StmtPrint) (token.Value, error)
	VisitStmtProgram(ctx context.Context, stmt *StmtProgram) (token.Value, error)
	VisitStmtVar(ctx context.Context, stmt *StmtVar) (token.Value, error)
	VisitStmtWhile(ctx context.Context, stmt *StmtWhile) (token.Value, error)
}

type Stmt interface {
	Accept(ctx context.Context, v StmtVisitor) (token.Value, error)
}

// StmtBlock introduces a new lexical scope.
type StmtBlock struct {
	Statements []Stmt
}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

// StmtProgram is the root produced by one Parse call.
type StmtProgram struct {
	Statements []Stmt
}

type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

type StmtWhile struct {
	Condition Expr
	Body      Stmt
}

func (s *StmtBlock) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtBlock(ctx, s)
}

func (s *StmtExpression) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtExpression(ctx, s)
}

func (s *StmtPrint) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtPrint(ctx, s)
}

func (s *StmtProgram) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtProgram(ctx, s)
}

func (s *StmtVar) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtVar(ctx, s)
}

func (s *StmtWhile) Accept(ctx context.Context, v StmtVisitor) (token.Value, error) {
	return v.VisitStmtWhile(ctx, s)
}

var (
	_ Stmt = (*StmtBlock)(nil)
	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtProgram)(nil)
	_ Stmt = (*StmtVar)(nil)
	_ Stmt = (*StmtWhile)(nil)
)
