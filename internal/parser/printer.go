package parser

import (
	"context"
	"strings"

	"github.com/leonardinius/gomango/internal/token"
)

// AstPrinter renders a tree as parenthesized prefix notation, e.g. (* (- 123) (group 45.67)).
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitExprAssign implements ExprVisitor.
func (p *AstPrinter) VisitExprAssign(ctx context.Context, expr *ExprAssign) (token.Value, error) {
	return p.parenthesize(ctx, "= "+expr.Name.Lexeme, expr.Value), nil
}

// VisitExprBinary implements ExprVisitor.
func (p *AstPrinter) VisitExprBinary(ctx context.Context, expr *ExprBinary) (token.Value, error) {
	return p.parenthesize(ctx, expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *AstPrinter) VisitExprGrouping(ctx context.Context, expr *ExprGrouping) (token.Value, error) {
	return p.parenthesize(ctx, "group", expr.Expression), nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *AstPrinter) VisitExprLiteral(ctx context.Context, expr *ExprLiteral) (token.Value, error) {
	if expr.Value == nil {
		return token.ValueString(token.NoneText), nil
	}
	return token.ValueString(expr.Value.String()), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *AstPrinter) VisitExprUnary(ctx context.Context, expr *ExprUnary) (token.Value, error) {
	if expr.IsPrefix {
		return p.parenthesize(ctx, expr.Operator.Lexeme, expr.Right), nil
	}
	return p.parenthesize(ctx, "postfix"+expr.Operator.Lexeme, expr.Right), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *AstPrinter) VisitExprVariable(ctx context.Context, expr *ExprVariable) (token.Value, error) {
	return token.ValueString(expr.Name.Lexeme), nil
}

// VisitStmtBlock implements StmtVisitor.
func (p *AstPrinter) VisitStmtBlock(ctx context.Context, stmt *StmtBlock) (token.Value, error) {
	return p.parenthesizeStmts(ctx, "block", stmt.Statements), nil
}

// VisitStmtExpression implements StmtVisitor.
func (p *AstPrinter) VisitStmtExpression(ctx context.Context, stmt *StmtExpression) (token.Value, error) {
	return p.parenthesize(ctx, "expr", stmt.Expression), nil
}

// VisitStmtPrint implements StmtVisitor.
func (p *AstPrinter) VisitStmtPrint(ctx context.Context, stmt *StmtPrint) (token.Value, error) {
	return p.parenthesize(ctx, "print", stmt.Expression), nil
}

// VisitStmtProgram implements StmtVisitor.
func (p *AstPrinter) VisitStmtProgram(ctx context.Context, stmt *StmtProgram) (token.Value, error) {
	return p.parenthesizeStmts(ctx, "program", stmt.Statements), nil
}

// VisitStmtVar implements StmtVisitor.
func (p *AstPrinter) VisitStmtVar(ctx context.Context, stmt *StmtVar) (token.Value, error) {
	return p.parenthesize(ctx, "var "+stmt.Name.Lexeme, stmt.Initializer), nil
}

// VisitStmtWhile implements StmtVisitor.
func (p *AstPrinter) VisitStmtWhile(ctx context.Context, stmt *StmtWhile) (token.Value, error) {
	out := new(strings.Builder)
	_, _ = out.WriteString("(while ")
	_, _ = out.WriteString(p.Print(stmt.Condition))
	_, _ = out.WriteString(" ")
	_, _ = out.WriteString(p.PrintStmt(stmt.Body))
	_, _ = out.WriteString(")")
	return token.ValueString(out.String()), nil
}

func (p *AstPrinter) parenthesize(ctx context.Context, name string, exprs ...Expr) token.Value {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.print(ctx, expr))
	}
	_, _ = out.WriteString(")")
	return token.ValueString(out.String())
}

func (p *AstPrinter) parenthesizeStmts(ctx context.Context, name string, stmts []Stmt) token.Value {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, stmt := range stmts {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.printStmt(ctx, stmt))
	}
	_, _ = out.WriteString(")")
	return token.ValueString(out.String())
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.print(context.Background(), expr)
}

func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	return p.printStmt(context.Background(), stmt)
}

func (p *AstPrinter) print(ctx context.Context, expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	v, _ := expr.Accept(ctx, p)
	return v.String()
}

func (p *AstPrinter) printStmt(ctx context.Context, stmt Stmt) string {
	if stmt == nil {
		return "<nil>"
	}
	v, _ := stmt.Accept(ctx, p)
	return v.String()
}

var _ ExprVisitor = (*AstPrinter)(nil)
var _ StmtVisitor = (*AstPrinter)(nil)
