// pkg/hoist/kind.go

package hoist

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind classifies a declaration by what an access sees before the
// declaration's definition point has executed.
type Kind uint8

const (
	InvalidKind   Kind = iota
	Immediate          // function-declaration-like: fully usable everywhere in its scope
	DeferredZero       // var-like: reads as Undefined until defined
	DeferredError      // let/const-like: reading before definition fails
)

var kindNames = [...]string{
	InvalidKind:   "invalid",
	Immediate:     "immediate",
	DeferredZero:  "deferred-zero",
	DeferredError: "deferred-error",
}

// Source-level spellings accepted alongside the canonical names.
var kindAliases = map[string]Kind{
	"function": Immediate,
	"var":      DeferredZero,
	"let":      DeferredError,
	"const":    DeferredError,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts a canonical kind name or a source alias.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s && Kind(k) != InvalidKind {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return InvalidKind, fmt.Errorf("unknown declaration kind %q", s)
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// ScopeKind tells function scopes from block scopes.
type ScopeKind uint8

const (
	FunctionScope ScopeKind = iota // function body or top level
	BlockScope                     // braces inside a function
)

var scopeKindNames = [...]string{
	FunctionScope: "function",
	BlockScope:    "block",
}

func (s ScopeKind) String() string {
	if int(s) < len(scopeKindNames) {
		return scopeKindNames[s]
	}
	return fmt.Sprintf("ScopeKind(%d)", uint8(s))
}

func (s *ScopeKind) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	for k, n := range scopeKindNames {
		if n == name {
			*s = ScopeKind(k)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown scope kind %q", node.Line, name)
}
