package parser

import (
	"fmt"

	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/token"
)

var (
	nilExpr Expr = nil
	nilStmt Stmt = nil
)

type Parser interface {
	// Parse parses the whole token stream as a program.
	// The first syntax error aborts the parse.
	Parse() (*StmtProgram, error)

	// ParseExpression parses the whole token stream as a single expression.
	ParseExpression() (Expr, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() (*StmtProgram, error) {
	var statements []Stmt
	for !p.isDone() {
		stmt := p.statement()
		if p.err != nil {
			break
		}
		statements = append(statements, stmt)
	}

	// no partial trees on error
	if p.err != nil {
		return nil, p.err
	}

	return &StmtProgram{Statements: statements}, nil
}

// ParseExpression implements Parser.
func (p *parser) ParseExpression() (Expr, error) {
	expr := p.expression()
	if p.err == nil && !p.isAtEnd() {
		p.reportExprError(mangoerrors.ErrParseExpectedEndOfExpression)
	}

	if p.err != nil {
		return nilExpr, p.err
	}

	return expr, nil
}

func (p *parser) statement() Stmt {
	if p.match(token.PRINT) {
		return p.printStatement()
	}

	if p.match(token.VAR) {
		return p.varDeclaration()
	}

	if p.match(token.WHILE) {
		return p.whileStatement()
	}

	if p.match(token.LEFT_BRACE) {
		return p.blockStatement()
	}

	return p.expressionStatement()
}

func (p *parser) printStatement() Stmt {
	expr := p.expression()

	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedSemicolonTokenAfterPrintValue)
	}

	return &StmtPrint{Expression: expr}
}

func (p *parser) varDeclaration() Stmt {
	if !p.match(token.IDENTIFIER) {
		return p.reportStmtError(mangoerrors.ErrParseUnexpectedVariableName)
	}
	name := p.previous()

	if !p.match(token.EQUAL) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedEqualAfterVariableName)
	}
	initializer := p.expression()

	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedSemicolonTokenAfterVar)
	}

	return &StmtVar{Name: name, Initializer: initializer}
}

func (p *parser) whileStatement() Stmt {
	if !p.match(token.LEFT_PAREN) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedLeftParentWhileToken)
	}
	condition := p.expression()
	if !p.match(token.RIGHT_PAREN) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedRightParentWhileToken)
	}

	if !p.match(token.LEFT_BRACE) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedLeftBraceWhileBody)
	}
	body := p.blockStatement()

	return &StmtWhile{Condition: condition, Body: body}
}

func (p *parser) blockStatement() Stmt {
	var stmts []Stmt

	for !p.check(token.RIGHT_BRACE) && !p.isDone() {
		stmts = append(stmts, p.statement())
	}

	if !p.match(token.RIGHT_BRACE) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedRightCurlyBlockToken)
	}

	return &StmtBlock{Statements: stmts}
}

func (p *parser) expressionStatement() Stmt {
	expr := p.expression()
	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(mangoerrors.ErrParseExpectedSemicolonTokenAfterExpr)
	}
	return &StmtExpression{Expression: expr}
}

func (p *parser) expression() Expr {
	return p.assignment()
}

func (p *parser) assignment() Expr {
	expr := p.comparison()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ExprVariable); ok {
			return &ExprAssign{Name: v.Name, Value: value}
		}

		return p.reportTokenExprError(equals, mangoerrors.ErrParseInvalidAssignmentTarget)
	}

	return expr
}

// The binary levels below recurse on the right operand instead of looping,
// so a - b - c groups as a - (b - c).

func (p *parser) comparison() Expr {
	return p.binary(p.term, p.comparison, token.EQUAL_EQUAL, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *parser) term() Expr {
	return p.binary(p.factor, p.term, token.MINUS, token.PLUS)
}

func (p *parser) factor() Expr {
	return p.binary(p.exponent, p.factor, token.SLASH, token.STAR)
}

func (p *parser) exponent() Expr {
	return p.binary(p.unary, p.exponent, token.STAR_STAR)
}

func (p *parser) binary(operand, self func() Expr, operators ...token.TokenType) Expr {
	expr := operand()

	if p.anyMatch(operators...) {
		operator := p.previous()
		right := self()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ExprUnary{
			Operator: operator,
			Right:    right,
			IsPrefix: true,
		}
	}

	expr := p.primary()

	if p.match(token.BANG) {
		operator := p.previous()
		expr = &ExprUnary{
			Operator: operator,
			Right:    expr,
			IsPrefix: false,
		}
	}

	return expr
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: token.FalseValue}
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: token.TrueValue}
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		tok := p.previous()
		return &ExprLiteral{Value: tok.Literal}
	}

	if p.match(token.IDENTIFIER) {
		tok := p.previous()
		return &ExprVariable{Name: tok}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(mangoerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(mangoerrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd does not check for parse errors, use isDone instead.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

// Only the first error is kept, later ones are follow-ups of it.
func (p *parser) reportStmtError(err error) Stmt {
	if p.err != nil {
		return nilStmt
	}

	p.err = mangoerrors.NewParseError(p.peek(), err)

	return nilStmt
}

func (p *parser) reportExprError(err error) Expr {
	return p.reportTokenExprError(p.peek(), err)
}

func (p *parser) reportTokenExprError(tok *token.Token, err error) Expr {
	if p.err != nil {
		return nilExpr
	}
	p.err = mangoerrors.NewParseError(tok, err)
	return nilExpr
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
