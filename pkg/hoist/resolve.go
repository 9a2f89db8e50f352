// pkg/hoist/resolve.go

package hoist

import (
	"errors"

	"github.com/Feralthedogg/semantics/pkg/contract"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is what a DeferredZero binding holds before its definition
// point. It is a value, not an error, and compares equal only to itself.
var Undefined any = undefined{}

// Function is the value of an Immediate declaration that carries no
// explicit value.
type Function struct {
	Name string
}

func (f Function) String() string { return "function " + f.Name }

// Verdict classifies the result of one access.
type Verdict string

const (
	VerdictValue         Verdict = "value"
	VerdictUndefined     Verdict = "undefined"
	VerdictUninitialized Verdict = "uninitialized"
	VerdictNotDefined    Verdict = "not-defined"
	VerdictNotCallable   Verdict = "not-callable"
)

func (v Verdict) known() bool {
	switch v {
	case VerdictValue, VerdictUndefined, VerdictUninitialized, VerdictNotDefined, VerdictNotCallable:
		return true
	}
	return false
}

// Resolve reports what access a observes in p: the bound value, the
// Undefined sentinel, or one of *UninitializedAccessError,
// *UndefinedError and *NotCallableError. An invalid p yields an error
// wrapping ErrInvalidProgram.
func Resolve(p *Program, a Access) (any, error) {
	envs, err := p.compile()
	if err != nil {
		return nil, err
	}
	e, ok := envs[a.Scope]
	if !ok {
		return nil, &UndefinedError{Name: a.Name, Scope: a.Scope}
	}
	return resolve(e, a)
}

func resolve(e *env, a Access) (any, error) {
	b, ok := e.lookup(a.Name)
	if !ok {
		return nil, &UndefinedError{Name: a.Name, Scope: a.Scope}
	}
	if b.block {
		contract.Assert(len(b.decls) == 1, "block binding "+b.name+" has several declarations")
		d := b.decls[0]
		if a.Position <= d.Position {
			return nil, &UninitializedAccessError{Name: a.Name, Position: a.Position, Definition: d.Position}
		}
		return d.Value, nil
	}

	v := Undefined
	for _, d := range b.decls {
		if d.Kind != Immediate {
			continue
		}
		if d.Value != nil {
			v = d.Value
		} else {
			v = Function{Name: d.Name}
		}
	}
	for _, d := range b.decls {
		// A declaration without an initialiser assigns nothing.
		if d.Kind == DeferredZero && d.Position < a.Position && d.Value != nil {
			v = d.Value
		}
	}
	if a.Call && v == Undefined {
		return nil, &NotCallableError{Name: a.Name, Position: a.Position}
	}
	return v, nil
}

// Outcome is the result of resolving one access.
type Outcome struct {
	Access  Access
	Value   any
	Err     error
	Verdict Verdict
}

// Expected reports whether the outcome agrees with Access.Expect. An
// access with no expectation always agrees.
func (o Outcome) Expected() bool {
	return o.Access.Expect == "" || o.Access.Expect == o.Verdict
}

// Check resolves every access listed in p, in order.
func (p *Program) Check() ([]Outcome, error) {
	envs, err := p.compile()
	if err != nil {
		return nil, err
	}
	out := make([]Outcome, 0, len(p.Accesses))
	for _, a := range p.Accesses {
		v, err := resolve(envs[a.Scope], a)
		out = append(out, Outcome{Access: a, Value: v, Err: err, Verdict: verdictOf(v, err)})
	}
	return out, nil
}

func verdictOf(v any, err error) Verdict {
	var (
		uninit      *UninitializedAccessError
		notDef      *UndefinedError
		notCallable *NotCallableError
	)
	switch {
	case errors.As(err, &uninit):
		return VerdictUninitialized
	case errors.As(err, &notDef):
		return VerdictNotDefined
	case errors.As(err, &notCallable):
		return VerdictNotCallable
	case v == Undefined:
		return VerdictUndefined
	default:
		return VerdictValue
	}
}
