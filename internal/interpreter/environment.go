package interpreter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/leonardinius/gomango/internal/mangoerrors"
	"github.com/leonardinius/gomango/internal/token"
)

// Environment is a stack of scope frames. Frame 0 is the root scope and
// lives as long as the environment, every block pushes and pops one frame.
//
// Not thread safe.
type Environment struct {
	frames []map[string]token.Value
}

func NewEnvironment() *Environment {
	return &Environment{frames: make([]map[string]token.Value, 1, 8)}
}

// Define binds name in the innermost frame, shadowing outer bindings.
// Redefinition in the same frame overwrites.
func (e *Environment) Define(name string, value token.Value) {
	top := len(e.frames) - 1
	if e.frames[top] == nil {
		e.frames[top] = make(map[string]token.Value)
	}
	e.frames[top][name] = value
}

// Get returns the nearest binding of name, walking frames outward.
func (e *Environment) Get(name string) (token.Value, bool) {
	for depth := len(e.frames) - 1; depth >= 0; depth-- {
		if value, ok := e.frames[depth][name]; ok {
			return value, true
		}
	}

	return nil, false
}

// Assign rebinds the nearest existing binding of name.
// It never creates a binding.
func (e *Environment) Assign(name *token.Token, value token.Value) (token.Value, error) {
	for depth := len(e.frames) - 1; depth >= 0; depth-- {
		if _, ok := e.frames[depth][name.Lexeme]; ok {
			e.frames[depth][name.Lexeme] = value
			return value, nil
		}
	}

	return nil, e.undefinedVariable(name)
}

// Push enters a new innermost scope.
func (e *Environment) Push() {
	e.frames = append(e.frames, nil)
}

// Pop leaves the innermost scope, dropping its bindings.
func (e *Environment) Pop() {
	if len(e.frames) == 1 {
		panic("cannot pop the root scope")
	}
	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth is the number of frames, 1 at the root scope.
func (e *Environment) Depth() int {
	return len(e.frames)
}

func (e *Environment) undefinedVariable(name *token.Token) error {
	return mangoerrors.NewRuntimeError(name, mangoerrors.ErrRuntimeUndefinedVariableName(name.Lexeme))
}

// String renders frames innermost first, keys sorted: {b=2} -> {a=1}.
func (e *Environment) String() string {
	w := new(strings.Builder)

	for depth := len(e.frames) - 1; depth >= 0; depth-- {
		frame := e.frames[depth]
		keys := maps.Keys(frame)
		slices.Sort(keys)

		w.WriteString("{")
		for idx, k := range keys {
			if idx > 0 {
				w.WriteString(",")
			}
			fmt.Fprintf(w, "%s=%#v", k, frame[k])
		}
		w.WriteString("}")
		if depth > 0 {
			w.WriteString(" -> ")
		}
	}

	return w.String()
}

var _ fmt.Stringer = (*Environment)(nil)
