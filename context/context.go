// Package context carries the bookkeeping a PropertyHandler needs beyond
// its own state: which features the configured browser targets support,
// and two forms of deferred output the handler cannot emit directly into a
// DeclarationList — logical-property rule duplication and unparsed-value
// fallbacks — because both require the upstream rule/selector machinery
// this module's core does not implement (see spec §1, "out of scope").
package context

import (
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/properties"
)

// Handler is the PropertyHandler interface of spec.md §6: implemented by
// the border handler and its embedded border-image/border-radius
// handlers, and consumed recursively (the border handler delegates to its
// two embedded handlers through this same interface).
type Handler interface {
	HandleProperty(p properties.Property, out *properties.DeclarationList, ctx *PropertyHandlerContext) bool
	Finalize(out *properties.DeclarationList, ctx *PropertyHandlerContext)
}

// LogicalRule is a pair of physical property assignments that must be
// emitted under `[dir=ltr]`/`[dir=rtl]` selector guards by the (out of
// scope) logical-property rule rewriter.
type LogicalRule struct {
	LTR properties.Property
	RTL properties.Property
}

// PropertyHandlerContext is the Context interface's concrete
// implementation: it knows the compiler's browser targets and collects the
// logical rules and unparsed fallbacks that handlers register as they run.
type PropertyHandlerContext struct {
	Targets           *compat.Browsers
	LogicalRules      []LogicalRule
	UnparsedFallbacks []*properties.Unparsed
}

// New returns a context configured for targets. targets may be nil to mean
// "no specific browser targets" (every feature is then vacuously
// supported).
func New(targets *compat.Browsers) *PropertyHandlerContext {
	return &PropertyHandlerContext{Targets: targets}
}

// IsSupported reports whether f is compatible with the configured targets.
func (c *PropertyHandlerContext) IsSupported(f compat.Feature) bool {
	if c.Targets == nil {
		return true
	}
	return f.IsCompatible(*c.Targets)
}

// AddLogicalRule registers a physical-property pair to be emitted under
// direction-selector guards by the upstream rule rewriter.
func (c *PropertyHandlerContext) AddLogicalRule(ltr, rtl properties.Property) {
	c.LogicalRules = append(c.LogicalRules, LogicalRule{LTR: ltr, RTL: rtl})
}

// AddUnparsedFallbacks appends fallback variants for variables referenced
// inside an unparsed declaration.
func (c *PropertyHandlerContext) AddUnparsedFallbacks(u *properties.Unparsed) {
	c.UnparsedFallbacks = append(c.UnparsedFallbacks, u)
}
