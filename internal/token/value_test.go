package token_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/leonardinius/gomango/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestValueCanonicalText(t *testing.T) {
	testcases := []struct {
		name  string
		value token.Value
		text  string
		gostr string
	}{
		{"none", token.NoneValue, "None", "None"},
		{"true", token.TrueValue, "true", "true"},
		{"false", token.FalseValue, "false", "false"},
		{"integral", token.ValueNumber(3), "3", "3"},
		{"negative", token.ValueNumber(-42), "-42", "-42"},
		{"fraction", token.ValueNumber(4.5), "4.5", "4.5"},
		{"small", token.ValueNumber(0.001), "0.001", "0.001"},
		{"infinity", token.ValueNumber(math.Inf(1)), "+Inf", "+Inf"},
		{"string", token.ValueString("a b"), "a b", `"a b"`},
		{"empty string", token.ValueString(""), "", `""`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.text, tc.value.String())
			assert.Equal(t, tc.gostr, fmt.Sprintf("%#v", tc.value))
		})
	}
}

func TestValueTypes(t *testing.T) {
	assert.Equal(t, token.ValueNoneType, token.NoneValue.Type())
	assert.Equal(t, token.ValueBoolType, token.TrueValue.Type())
	assert.Equal(t, token.ValueNumberType, token.ValueNumber(1).Type())
	assert.Equal(t, token.ValueStringType, token.ValueString("").Type())
}

func TestToken(t *testing.T) {
	tok := token.NewToken(token.SEMICOLON, ";", nil, 2)
	assert.Equal(t, token.NoneValue, tok.Literal)
	assert.Equal(t, `{Type: SEMICOLON, Lexeme: ";", Literal: None, Line: 2}`, tok.GoString())
	assert.Equal(t, "SEMICOLON ; None", tok.String())

	num := token.NewTokenHeap(token.NUMBER, "1.50", token.ValueNumber(1.5), 1)
	assert.Equal(t, "NUMBER 1.50 1.5", num.String())
	assert.Equal(t, "STAR_STAR", token.STAR_STAR.String())
	assert.Equal(t, "TokenType(?)", token.TokenType(-1).String())
}
