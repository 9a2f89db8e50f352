// pkg/hoist/program.go

// Package hoist models how names become visible before the line that
// defines them. It is a static checker over an abstract program, not an
// interpreter: a Program lists scopes, declarations and accesses, each
// placed at an integer position in execution order, and Resolve decides
// what every access observes.
package hoist

import (
	"fmt"

	"github.com/Feralthedogg/semantics/pkg/contract"
)

// Scope is a function body or a block. Exactly one scope, the first,
// has no parent; it is the top level and must be a function scope.
type Scope struct {
	Name   string    `yaml:"name"`
	Parent string    `yaml:"parent,omitempty"`
	Kind   ScopeKind `yaml:"kind"`
}

// Declaration introduces Name in Scope. Position is the definition point:
// where the initialiser runs in execution order.
type Declaration struct {
	Name     string `yaml:"name"`
	Kind     Kind   `yaml:"kind"`
	Scope    string `yaml:"scope"`
	Position int    `yaml:"position"`
	Value    any    `yaml:"value,omitempty"`
}

// Access reads, or calls, Name from Scope at Position. Expect optionally
// records the verdict the access should produce.
type Access struct {
	Name     string  `yaml:"name"`
	Scope    string  `yaml:"scope"`
	Position int     `yaml:"position"`
	Call     bool    `yaml:"call,omitempty"`
	Expect   Verdict `yaml:"expect,omitempty"`
}

// Program is the abstract program the resolver works on.
type Program struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description,omitempty"`
	Scopes       []Scope       `yaml:"scopes"`
	Declarations []Declaration `yaml:"declarations"`
	Accesses     []Access      `yaml:"accesses,omitempty"`
}

// Validate reports the first structural problem in p, wrapped in
// ErrInvalidProgram.
func (p *Program) Validate() error {
	_, err := p.compile()
	return err
}

// compile validates p and links its declarations into scope environments.
func (p *Program) compile() (map[string]*env, error) {
	envs, err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProgram, p.label(), err)
	}
	return envs, nil
}

func (p *Program) label() string {
	if p.Name == "" {
		return "<unnamed>"
	}
	return p.Name
}

func (p *Program) validate() (map[string]*env, error) {
	if err := contract.Check(len(p.Scopes) > 0, "no scopes"); err != nil {
		return nil, err
	}
	seen := make(map[string]*Scope, len(p.Scopes))
	for i := range p.Scopes {
		s := &p.Scopes[i]
		if err := contract.Check(s.Name != "", "scope %d has no name", i); err != nil {
			return nil, err
		}
		if err := contract.Check(seen[s.Name] == nil, "scope %q declared twice", s.Name); err != nil {
			return nil, err
		}
		if i == 0 {
			if err := contract.Check(s.Parent == "", "top-level scope %q has a parent", s.Name); err != nil {
				return nil, err
			}
			if err := contract.Check(s.Kind == FunctionScope, "top-level scope %q is a %s scope", s.Name, s.Kind); err != nil {
				return nil, err
			}
		} else {
			// Parents must come first, which also rules out cycles.
			if err := contract.Check(seen[s.Parent] != nil, "scope %q has unknown parent %q", s.Name, s.Parent); err != nil {
				return nil, err
			}
		}
		seen[s.Name] = s
	}

	for i, d := range p.Declarations {
		if err := contract.Check(d.Name != "", "declaration %d has no name", i); err != nil {
			return nil, err
		}
		if _, ok := RuleFor(d.Kind); !ok {
			return nil, fmt.Errorf("declaration %q has kind %s", d.Name, d.Kind)
		}
		if err := contract.Check(seen[d.Scope] != nil, "declaration %q in unknown scope %q", d.Name, d.Scope); err != nil {
			return nil, err
		}
		if err := contract.Check(d.Position >= 0, "declaration %q at negative position %d", d.Name, d.Position); err != nil {
			return nil, err
		}
	}

	for i, a := range p.Accesses {
		if err := contract.Check(a.Name != "", "access %d has no name", i); err != nil {
			return nil, err
		}
		if err := contract.Check(seen[a.Scope] != nil, "access to %q from unknown scope %q", a.Name, a.Scope); err != nil {
			return nil, err
		}
		if err := contract.Check(a.Position >= 0, "access to %q at negative position %d", a.Name, a.Position); err != nil {
			return nil, err
		}
		if err := contract.Check(a.Expect == "" || a.Expect.known(), "access to %q expects unknown verdict %q", a.Name, a.Expect); err != nil {
			return nil, err
		}
	}

	return p.link()
}
