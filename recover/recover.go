// file:kvtrie/recover/recover.go
package recover

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// ErrPanic is matched by every error produced from a recovered panic.
var ErrPanic = errors.New("panic recovered")

// PanicError carries the recovered value and the stack at recovery time.
type PanicError struct {
	Component string
	Function  string
	Value     any
	Stack     []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic recovered in %s.%s: %v", e.Component, e.Function, e.Value)
}

func (e *PanicError) Unwrap() error { return ErrPanic }

// ----------------------------------------------------
// Wrappers
// ----------------------------------------------------

// Guard runs fn and turns a panic into a *PanicError, logged on log.
// Errors returned by fn pass through untouched.
func Guard(log zerolog.Logger, component, function string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			log.Error().
				Str("component", component).
				Str("function", function).
				Interface("panic", r).
				Bytes("stack", stack).
				Msg("panic recovered")
			err = &PanicError{Component: component, Function: function, Value: r, Stack: stack}
		}
	}()
	return fn()
}
