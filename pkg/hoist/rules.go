// pkg/hoist/rules.go

package hoist

// Rule is one row of the hoisting rule table.
type Rule struct {
	Kind Kind
	// Hoisted reports whether the name is in scope before its declaration.
	Hoisted bool
	// BeforeDefinition is what a read observes before the definition point.
	BeforeDefinition Verdict
	// Attach is the kind of scope the binding belongs to: the nearest
	// enclosing scope of that kind, starting from the declaring scope.
	Attach ScopeKind
}

var rules = [...]Rule{
	Immediate: {
		Kind:             Immediate,
		Hoisted:          true,
		BeforeDefinition: VerdictValue,
		Attach:           FunctionScope,
	},
	DeferredZero: {
		Kind:             DeferredZero,
		Hoisted:          true,
		BeforeDefinition: VerdictUndefined,
		Attach:           FunctionScope,
	},
	DeferredError: {
		Kind:             DeferredError,
		Hoisted:          true,
		BeforeDefinition: VerdictUninitialized,
		Attach:           BlockScope,
	},
}

// RuleFor returns the rule for k. ok is false for InvalidKind and unknown kinds.
func RuleFor(k Kind) (r Rule, ok bool) {
	if k == InvalidKind || int(k) >= len(rules) {
		return Rule{}, false
	}
	return rules[k], true
}

// Rules returns the whole table in Kind order.
func Rules() []Rule {
	return append([]Rule(nil), rules[1:]...)
}
