package token

type TokenType int

const (
	// Single-character tokens.
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR
	BANG
	EQUAL

	// One or two character tokens.
	STAR_STAR
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	FALSE
	PRINT
	TRUE
	VAR
	WHILE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	BANG:          "BANG",
	EQUAL:         "EQUAL",
	STAR_STAR:     "STAR_STAR",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	FALSE:         "FALSE",
	PRINT:         "PRINT",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
}

// String implements fmt.Stringer.
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "TokenType(?)"
	}
	return tokenTypeNames[t]
}
