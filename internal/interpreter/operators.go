package interpreter

import (
	"math"

	"github.com/leonardinius/gomango/internal/token"
)

// Operators never fail. Operands of the wrong kind yield None.

func add(left, right token.Value) token.Value {
	switch l := left.(type) {
	case token.ValueNumber:
		switch r := right.(type) {
		case token.ValueNumber:
			return l + r
		case token.ValueString:
			return token.ValueString(l.String()) + r
		}
	case token.ValueString:
		switch r := right.(type) {
		case token.ValueString:
			return l + r
		case token.ValueNumber:
			return l + token.ValueString(r.String())
		}
	}

	return token.NoneValue
}

func subtract(left, right token.Value) token.Value {
	if l, r, ok := numbers(left, right); ok {
		return l - r
	}
	return token.NoneValue
}

func multiply(left, right token.Value) token.Value {
	if l, r, ok := numbers(left, right); ok {
		return l * r
	}
	return token.NoneValue
}

func divide(left, right token.Value) token.Value {
	if l, r, ok := numbers(left, right); ok && r != 0 {
		return l / r
	}
	return token.NoneValue
}

func power(left, right token.Value) token.Value {
	if l, r, ok := numbers(left, right); ok {
		return token.ValueNumber(math.Pow(float64(l), float64(r)))
	}
	return token.NoneValue
}

// less orders numbers numerically and strings bytewise.
// Any other pair is unordered and compares false.
func less(left, right token.Value) token.ValueBool {
	if l, r, ok := numbers(left, right); ok {
		return l < r
	}
	if l, r, ok := texts(left, right); ok {
		return l < r
	}
	return token.FalseValue
}

func lessEqual(left, right token.Value) token.ValueBool {
	if l, r, ok := numbers(left, right); ok {
		return l <= r
	}
	if l, r, ok := texts(left, right); ok {
		return l <= r
	}
	return token.FalseValue
}

func greater(left, right token.Value) token.ValueBool {
	return less(right, left)
}

func greaterEqual(left, right token.Value) token.ValueBool {
	return lessEqual(right, left)
}

// equal is true only for the same variant holding the same value, None == None included.
func equal(left, right token.Value) token.ValueBool {
	if left.Type() != right.Type() {
		return token.FalseValue
	}
	return token.ValueBool(left == right)
}

func negate(right token.Value) token.Value {
	if r, ok := right.(token.ValueNumber); ok {
		return -r
	}
	return token.NoneValue
}

func not(right token.Value) token.ValueBool {
	if r, ok := right.(token.ValueBool); ok {
		return !r
	}
	return token.FalseValue
}

// factorial truncates its operand; anything below 1 is 0.
func factorial(right token.Value) token.Value {
	r, ok := right.(token.ValueNumber)
	if !ok {
		return token.NoneValue
	}

	n := math.Trunc(float64(r))
	if !(n >= 1) {
		return token.ValueNumber(0)
	}

	result := 1.0
	for k := 2.0; k <= n && !math.IsInf(result, 1); k++ {
		result *= k
	}
	return token.ValueNumber(result)
}

func numbers(left, right token.Value) (token.ValueNumber, token.ValueNumber, bool) {
	l, lok := left.(token.ValueNumber)
	r, rok := right.(token.ValueNumber)
	return l, r, lok && rok
}

func texts(left, right token.Value) (token.ValueString, token.ValueString, bool) {
	l, lok := left.(token.ValueString)
	r, rok := right.(token.ValueString)
	return l, r, lok && rok
}
