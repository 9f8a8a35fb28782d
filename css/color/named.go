package color

// namedColors is a hand-curated subset of the 147 CSS named colors. The
// parser resolves named-color idents through it, and serialization emits a
// name from it only where the name is shorter than the hex form (see
// shortestRGBForm in serialize.go); names such as "white" or "blue" are
// never shorter than their hex and so are never emitted. This is deliberately not the full W3C named-color table —
// that full table belongs to the out-of-scope "general Property/PropertyId
// enumeration" lexer named in spec §1; this module only needs enough of it
// to exercise and test the shortening rule itself.
var namedColors = map[[3]uint8]string{
	{255, 0, 0}:     "red",
	{128, 0, 0}:     "maroon",
	{0, 128, 0}:     "green",
	{0, 255, 0}:     "lime",
	{0, 0, 255}:     "blue",
	{0, 0, 128}:     "navy",
	{255, 255, 0}:   "yellow",
	{0, 255, 255}:   "cyan",
	{255, 0, 255}:   "magenta",
	{0, 0, 0}:       "black",
	{255, 255, 255}: "white",
	{128, 128, 128}: "gray",
	{192, 192, 192}: "silver",
	{255, 165, 0}:   "orange",
	{255, 192, 203}: "pink",
	{165, 42, 42}:   "brown",
	{128, 0, 128}:   "purple",
	{0, 128, 128}:   "teal",
	{255, 215, 0}:   "gold",
}
