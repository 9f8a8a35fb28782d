// Package compat is a small, hand-curated browser-compatibility database.
//
// It stands in for the "browser-targeting and feature-compatibility
// database" that the border handler and color fallback planner consume but
// do not themselves implement (that full database, built from caniuse.com
// data, is out of scope for this module; only the Feature values below are
// modelled here).
package compat

// Browsers is a set of minimum browser versions to support. A zero value for
// a given field means that browser is not targeted at all.
type Browsers struct {
	Chrome  uint32
	Firefox uint32
	Safari  uint32
	Edge    uint32
	IE      uint32
}

// Feature is a CSS feature whose browser support this package knows about.
type Feature int

const (
	LogicalBorders Feature = iota
	LogicalBorderShorthand
	ColorFunction
	LabColors
	OklabColors
	P3Colors
	CssRrggbbaa
)

// requirement gives the minimum version of each browser that supports a
// Feature. A zero means the browser never supports it.
type requirement struct {
	Chrome, Firefox, Safari, Edge, IE uint32
}

// table is hand-curated from caniuse.com; it is not the full caniuse
// dataset but covers exactly the features this module's
// components query.
var table = map[Feature]requirement{
	LogicalBorders:         {Chrome: 69, Firefox: 41, Safari: 12, Edge: 79},
	LogicalBorderShorthand: {Chrome: 87, Firefox: 66, Safari: 15, Edge: 87},
	ColorFunction:          {Chrome: 111, Firefox: 113, Safari: 15, Edge: 111},
	LabColors:              {Chrome: 111, Firefox: 113, Safari: 15, Edge: 111},
	OklabColors:            {Chrome: 111, Firefox: 113, Safari: 15, Edge: 111},
	P3Colors:               {Chrome: 111, Firefox: 113, Safari: 15, Edge: 111},
	CssRrggbbaa:            {Chrome: 62, Firefox: 49, Safari: 9, Edge: 79},
}

// targeted reports whether a browser is one of the compiler's targets.
func targeted(version uint32) bool { return version > 0 }

// IsCompatible reports whether every targeted browser in b meets the
// feature's minimum version requirement. A feature with no targeted
// browsers at all is vacuously compatible.
func (f Feature) IsCompatible(b Browsers) bool {
	req, ok := table[f]
	if !ok {
		return false
	}
	checks := []struct{ have, need uint32 }{
		{b.Chrome, req.Chrome},
		{b.Firefox, req.Firefox},
		{b.Safari, req.Safari},
		{b.Edge, req.Edge},
		{b.IE, req.IE},
	}
	for _, c := range checks {
		if !targeted(c.have) {
			continue
		}
		if c.need == 0 || c.have < c.need {
			return false
		}
	}
	return true // every targeted browser met the requirement (or none targeted)
}

// IsPartiallyCompatible reports whether at least one targeted browser meets
// the feature's minimum version requirement, even if not all do.
func (f Feature) IsPartiallyCompatible(b Browsers) bool {
	req, ok := table[f]
	if !ok {
		return false
	}
	checks := []struct{ have, need uint32 }{
		{b.Chrome, req.Chrome},
		{b.Firefox, req.Firefox},
		{b.Safari, req.Safari},
		{b.Edge, req.Edge},
		{b.IE, req.IE},
	}
	for _, c := range checks {
		if targeted(c.have) && c.need != 0 && c.have >= c.need {
			return true
		}
	}
	return false
}
