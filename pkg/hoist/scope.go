// pkg/hoist/scope.go

package hoist

import (
	"cmp"
	"fmt"
	"slices"
)

// binding is every declaration of one name attached to one scope.
// A DeferredError binding has exactly one declaration; hoisted bindings
// may mix Immediate and DeferredZero declarations, sorted by position.
type binding struct {
	name  string
	block bool
	decls []*Declaration
}

// env is a scope with its bindings and a link to the enclosing scope.
type env struct {
	parent   *env
	scope    *Scope
	bindings map[string]*binding
}

func newEnv(parent *env, scope *Scope) *env {
	return &env{
		parent:   parent,
		scope:    scope,
		bindings: make(map[string]*binding),
	}
}

// lookup walks outwards and returns the innermost binding of name.
func (e *env) lookup(name string) (*binding, bool) {
	if b, ok := e.bindings[name]; ok {
		return b, true
	}
	if e.parent != nil {
		return e.parent.lookup(name)
	}
	return nil, false
}

// attachTarget is the env a declaration of the given kind made in e
// belongs to.
func (e *env) attachTarget(k Kind) *env {
	rule, _ := RuleFor(k)
	if rule.Attach == BlockScope {
		return e
	}
	target := e
	for target.scope.Kind != FunctionScope && target.parent != nil {
		target = target.parent
	}
	return target
}

func (e *env) bind(d *Declaration) error {
	block := d.Kind == DeferredError
	b, ok := e.bindings[d.Name]
	if !ok {
		e.bindings[d.Name] = &binding{name: d.Name, block: block, decls: []*Declaration{d}}
		return nil
	}
	if block || b.block {
		return fmt.Errorf("identifier %q has already been declared in scope %q", d.Name, e.scope.Name)
	}
	b.decls = append(b.decls, d)
	return nil
}

// link builds one env per scope and attaches every declaration according
// to the rule table. Scopes must already be known to be well formed.
func (p *Program) link() (map[string]*env, error) {
	envs := make(map[string]*env, len(p.Scopes))
	for i := range p.Scopes {
		s := &p.Scopes[i]
		envs[s.Name] = newEnv(envs[s.Parent], s)
	}
	for i := range p.Declarations {
		d := &p.Declarations[i]
		target := envs[d.Scope].attachTarget(d.Kind)
		if err := target.bind(d); err != nil {
			return nil, err
		}
	}
	for _, e := range envs {
		for _, b := range e.bindings {
			slices.SortStableFunc(b.decls, func(x, y *Declaration) int {
				return cmp.Compare(x.Position, y.Position)
			})
		}
	}
	return envs, nil
}
