// Package properties is the minimal Property/PropertyId model this module
// needs: the border family (every positional shorthand and longhand, the
// axis and four-side shorthands, border-image and border-radius tokens)
// plus a passthrough Unparsed/Custom slot for everything else a real CSS
// property enumeration would otherwise cover.
package properties

import (
	"github.com/tawesoft/cssbox/css/tokenizer/token"
)

// PropertyId identifies a CSS property this module knows how to handle, or
// stands in for one it doesn't (Unparsed, Custom).
type PropertyId int

const (
	Unparsed PropertyId = iota
	Custom

	// Per-side longhands, one triple per physical/logical side.
	BorderTopWidth
	BorderTopStyle
	BorderTopColor
	BorderRightWidth
	BorderRightStyle
	BorderRightColor
	BorderBottomWidth
	BorderBottomStyle
	BorderBottomColor
	BorderLeftWidth
	BorderLeftStyle
	BorderLeftColor
	BorderBlockStartWidth
	BorderBlockStartStyle
	BorderBlockStartColor
	BorderBlockEndWidth
	BorderBlockEndStyle
	BorderBlockEndColor
	BorderInlineStartWidth
	BorderInlineStartStyle
	BorderInlineStartColor
	BorderInlineEndWidth
	BorderInlineEndStyle
	BorderInlineEndColor

	// Per-side shorthands.
	BorderTop
	BorderRight
	BorderBottom
	BorderLeft
	BorderBlockStart
	BorderBlockEnd
	BorderInlineStart
	BorderInlineEnd

	// Per-axis shorthands and their sub-property forms.
	BorderBlock
	BorderBlockColor
	BorderBlockStyle
	BorderBlockWidth
	BorderInline
	BorderInlineColor
	BorderInlineStyle
	BorderInlineWidth

	// Four-side shorthands.
	BorderColor
	BorderWidth
	BorderStyle

	// The border shorthand.
	Border

	// Outline reuses the same GenericBorder(S) shape.
	OutlineWidth
	OutlineStyle
	OutlineColor
	Outline

	// border-image family.
	BorderImage
	BorderImageSource
	BorderImageSlice
	BorderImageWidth
	BorderImageOutset
	BorderImageRepeat

	// border-radius family.
	BorderRadius
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderBottomRightRadius
	BorderBottomLeftRadius
)

var names = map[PropertyId]string{
	Unparsed:                "unparsed",
	Custom:                  "custom",
	BorderTopWidth:          "border-top-width",
	BorderTopStyle:          "border-top-style",
	BorderTopColor:          "border-top-color",
	BorderRightWidth:        "border-right-width",
	BorderRightStyle:        "border-right-style",
	BorderRightColor:        "border-right-color",
	BorderBottomWidth:       "border-bottom-width",
	BorderBottomStyle:       "border-bottom-style",
	BorderBottomColor:       "border-bottom-color",
	BorderLeftWidth:         "border-left-width",
	BorderLeftStyle:         "border-left-style",
	BorderLeftColor:         "border-left-color",
	BorderBlockStartWidth:   "border-block-start-width",
	BorderBlockStartStyle:   "border-block-start-style",
	BorderBlockStartColor:   "border-block-start-color",
	BorderBlockEndWidth:     "border-block-end-width",
	BorderBlockEndStyle:     "border-block-end-style",
	BorderBlockEndColor:     "border-block-end-color",
	BorderInlineStartWidth:  "border-inline-start-width",
	BorderInlineStartStyle:  "border-inline-start-style",
	BorderInlineStartColor:  "border-inline-start-color",
	BorderInlineEndWidth:    "border-inline-end-width",
	BorderInlineEndStyle:    "border-inline-end-style",
	BorderInlineEndColor:    "border-inline-end-color",
	BorderTop:               "border-top",
	BorderRight:             "border-right",
	BorderBottom:            "border-bottom",
	BorderLeft:              "border-left",
	BorderBlockStart:        "border-block-start",
	BorderBlockEnd:          "border-block-end",
	BorderInlineStart:       "border-inline-start",
	BorderInlineEnd:         "border-inline-end",
	BorderBlock:             "border-block",
	BorderBlockColor:        "border-block-color",
	BorderBlockStyle:        "border-block-style",
	BorderBlockWidth:        "border-block-width",
	BorderInline:            "border-inline",
	BorderInlineColor:       "border-inline-color",
	BorderInlineStyle:       "border-inline-style",
	BorderInlineWidth:       "border-inline-width",
	BorderColor:             "border-color",
	BorderWidth:             "border-width",
	BorderStyle:             "border-style",
	Border:                  "border",
	OutlineWidth:            "outline-width",
	OutlineStyle:            "outline-style",
	OutlineColor:            "outline-color",
	Outline:                 "outline",
	BorderImage:             "border-image",
	BorderImageSource:       "border-image-source",
	BorderImageSlice:        "border-image-slice",
	BorderImageWidth:        "border-image-width",
	BorderImageOutset:       "border-image-outset",
	BorderImageRepeat:       "border-image-repeat",
	BorderRadius:            "border-radius",
	BorderTopLeftRadius:     "border-top-left-radius",
	BorderTopRightRadius:    "border-top-right-radius",
	BorderBottomRightRadius: "border-bottom-right-radius",
	BorderBottomLeftRadius:  "border-bottom-left-radius",
}

func (id PropertyId) String() string {
	if s, ok := names[id]; ok {
		return s
	}
	return "unknown"
}

var idsByName = func() map[string]PropertyId {
	m := make(map[string]PropertyId, len(names))
	for id, n := range names {
		m[n] = id
	}
	return m
}()

// ParseID looks up the PropertyId for a CSS property name, e.g.
// "border-top-width". It reports ok=false for a name this module's
// property enumeration doesn't cover, which the caller should treat as
// a custom property.
func ParseID(name string) (id PropertyId, ok bool) {
	id, ok = idsByName[name]
	return id, ok
}

// Property pairs a PropertyId with its value. The concrete type of Value
// depends on ID: a border.Triple for per-side/per-axis/"border" shorthands,
// a border.WidthRect/StyleRect/ColorRect or border.WidthPair/StylePair/
// ColorPair for the four-side and axis-pair shorthands, a border.Width for
// the *-width longhands, a border.LineStyle for the *-style longhands, a
// color.Color for the *-color longhands, a *Unparsed for an opaque token
// run, or the raw []token.Token that border.ParseDeclaration keeps for ids
// it has no typed value model for.
type Property struct {
	ID    PropertyId
	Value any
}

// Unparsed is an opaque, preserved run of tokens for a declaration this
// module's limited Property model could not (or should not) fully resolve
// — typically because it contains a var() reference.
type Unparsed struct {
	ID        PropertyId
	Tokens    []token.Token
	Important bool
}

// Declaration is one emitted property assignment.
type Declaration struct {
	Property  Property
	Important bool
}

// DeclarationList is the growing, ordered output sequence that handlers
// append to. Order is significant: see the border package's cascade
// discussion.
type DeclarationList struct {
	Items []Declaration
}

// Push appends a non-important declaration.
func (d *DeclarationList) Push(p Property) {
	d.Items = append(d.Items, Declaration{Property: p})
}

// PushImportant appends a declaration, propagating the !important flag.
func (d *DeclarationList) PushImportant(p Property, important bool) {
	d.Items = append(d.Items, Declaration{Property: p, Important: important})
}

// Len reports the number of declarations pushed so far.
func (d *DeclarationList) Len() int { return len(d.Items) }
