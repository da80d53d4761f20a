package scanner

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/token"
)

// Scanner turns source text into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"false": token.FALSE,
	"print": token.PRINT,
	"true":  token.TRUE,
	"var":   token.VAR,
	"while": token.WHILE,
}

type scanner struct {
	source               []rune
	tokens               []token.Token
	start, current, line int
	err                  error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, line: 1}
}

// Scan implements Scanner.
// The returned tokens always end with EOF unless an error is returned.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	if s.err != nil {
		return nil, s.err
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))

	return s.tokens, nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.err != nil
}

func (s *scanner) scanToken() {
	var c = s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '!':
		s.addToken(token.BANG)
	case '*':
		s.addMatchToken('*', token.STAR_STAR, token.STAR)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	case '"':
		s.string()
	default:
		if s.isDigit(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharater(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	if s.source[s.current] == '\n' {
		s.line++
	}
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) match(expected rune) bool {
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, token.NoneValue)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal token.Value) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), literal, s.line))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// string consumes a literal up to the next unescaped quote.
// Line is the line where the literal starts.
func (s *scanner) string() {
	line := s.line
	value := new(strings.Builder)

	for !s.isAtEnd() && s.peek() != '"' {
		c := s.advance()
		if c != '\\' || s.isAtEnd() {
			value.WriteRune(c)
			continue
		}

		switch escaped := s.advance(); escaped {
		case '"', '\\':
			value.WriteRune(escaped)
		case 'n':
			value.WriteRune('\n')
		case 't':
			value.WriteRune('\t')
		default:
			value.WriteRune(c)
			value.WriteRune(escaped)
		}
	}

	if s.isAtEnd() {
		s.err = mangoerrors.NewScanError(line, mangoerrors.ErrScanUnterminatedString, "")
		return
	}

	// The closing ".
	s.advance()

	s.tokens = append(s.tokens, token.NewToken(token.STRING, string(s.source[s.start:s.current]), token.ValueString(value.String()), line))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && s.isDigit(s.peekNext()) {
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		value = 0
	}
	s.addTokenLiteral(token.NUMBER, token.ValueNumber(value))
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := string(s.source[s.start:s.current])
	if _type, ok := s.reserved(name); ok {
		tokenType = _type
	}
	s.addTokenLiteral(tokenType, token.ValueString(name))
}

func (s *scanner) reserved(identifier string) (tokenType token.TokenType, ok bool) {
	tokenType, ok = reservedKeywords[identifier]
	return
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return unicode.IsLetter(c)
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || unicode.IsDigit(c)
}

func (s *scanner) reportUnexpectedCharater(c rune) {
	s.err = mangoerrors.NewScanError(s.line, mangoerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

var _ Scanner = (*scanner)(nil)
