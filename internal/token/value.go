package token

import (
	"fmt"
	"strconv"
)

type ValueType uint

const (
	ValueNoneType ValueType = iota
	ValueBoolType
	ValueNumberType
	ValueStringType
)

// Value is the runtime datum every expression evaluates to.
// The set of implementations is closed: ValueNone, ValueBool, ValueNumber, ValueString.
type Value interface {
	Type() ValueType
	// String returns the canonical text form used by print.
	String() string
	isValue()
}

type (
	ValueNone   struct{}
	ValueBool   bool
	ValueNumber float64
	ValueString string
)

var (
	NoneValue  = ValueNone{}
	TrueValue  = ValueBool(true)
	FalseValue = ValueBool(false)
)

// NoneText is printed for the absent value.
const NoneText = "None"

// Type implements Value.
func (v ValueNone) Type() ValueType {
	return ValueNoneType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueNumber) Type() ValueType {
	return ValueNumberType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

// String implements fmt.Stringer.
func (v ValueNone) String() string {
	return NoneText
}

// String implements fmt.Stringer.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String implements fmt.Stringer.
// Integral numbers print without a fractional part, e.g. 3 and 4.5.
func (v ValueNumber) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// String implements fmt.Stringer.
func (v ValueString) String() string {
	return string(v)
}

// GoString implements fmt.GoStringer.
func (v ValueNone) GoString() string {
	return NoneText
}

// GoString implements fmt.GoStringer.
func (v ValueBool) GoString() string {
	return v.String()
}

// GoString implements fmt.GoStringer.
func (v ValueNumber) GoString() string {
	return v.String()
}

// GoString implements fmt.GoStringer.
func (v ValueString) GoString() string {
	return strconv.Quote(string(v))
}

func (ValueNone) isValue()   {}
func (ValueBool) isValue()   {}
func (ValueNumber) isValue() {}
func (ValueString) isValue() {}

var (
	_ Value          = ValueNone{}
	_ Value          = ValueBool(false)
	_ Value          = ValueNumber(0)
	_ Value          = ValueString("")
	_ fmt.GoStringer = ValueNone{}
	_ fmt.GoStringer = ValueString("")
)
