// pkg/hoist/errors.go

package hoist

import (
	"errors"
	"fmt"
)

var (
	// ErrReference matches every failure to read a name.
	ErrReference = errors.New("reference error")
	// ErrType matches using a value as something it is not.
	ErrType = errors.New("type error")
	// ErrInvalidProgram wraps every model validation failure.
	ErrInvalidProgram = errors.New("invalid program")
)

// UninitializedAccessError is an access inside a binding's dead zone.
type UninitializedAccessError struct {
	Name       string
	Position   int // where the access happened
	Definition int // where the binding becomes readable
}

func (e *UninitializedAccessError) Error() string {
	return fmt.Sprintf("cannot access %q before initialization (position %d, defined at %d)",
		e.Name, e.Position, e.Definition)
}

func (e *UninitializedAccessError) Is(target error) bool { return target == ErrReference }

// UndefinedError is an access to a name with no binding in the scope chain.
type UndefinedError struct {
	Name  string
	Scope string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("%q is not defined in scope %q", e.Name, e.Scope)
}

func (e *UndefinedError) Is(target error) bool { return target == ErrReference }

// NotCallableError is a call through a binding that still holds Undefined.
type NotCallableError struct {
	Name     string
	Position int
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("%q is not a function (position %d)", e.Name, e.Position)
}

func (e *NotCallableError) Is(target error) bool { return target == ErrType }
