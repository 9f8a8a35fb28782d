package border_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawesoft/cssbox/border"
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/css/color"
	"github.com/tawesoft/cssbox/css/tokenizer"
	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
	"github.com/tawesoft/cssbox/properties"
)

// tokenize is the test helper every case below uses to turn a CSS value
// string into the token slice ParseDeclaration expects.
func tokenize(s string) []token.Token {
	tok := tokenizer.New(bytes.NewReader([]byte(s)))
	var toks []token.Token
	for {
		t := tok.NextToken()
		if t.Is(token.TypeEOF) {
			break
		}
		toks = append(toks, t)
	}
	return toks
}

func parse(t *testing.T, id properties.PropertyId, value string) properties.Property {
	t.Helper()
	p, err := border.ParseDeclaration(id, tokenize(value))
	require.NoError(t, err, value)
	return p
}

func render(t *testing.T, out *properties.DeclarationList, targets *compat.Browsers) string {
	t.Helper()
	var buf bytes.Buffer
	p := printer.New(&buf, true, targets)
	require.NoError(t, out.Serialize(p))
	require.NoError(t, p.Flush())
	return buf.String()
}

func feed(t *testing.T, h *border.Handler, ctx *context.PropertyHandlerContext, out *properties.DeclarationList, id properties.PropertyId, value string) {
	t.Helper()
	require.True(t, h.HandleProperty(parse(t, id, value), out, ctx), value)
}

func TestHandlerMergesFourEqualSidesIntoShorthand(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTop, "1px solid red")
	feed(t, h, ctx, out, properties.BorderRight, "1px solid red")
	feed(t, h, ctx, out, properties.BorderBottom, "1px solid red")
	feed(t, h, ctx, out, properties.BorderLeft, "1px solid red")
	h.Finalize(out, ctx)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, "border:1px solid red;\n", render(t, out, nil))
}

func TestHandlerThreeEqualPlusOneEmitsShorthandAndDiff(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTop, "1px solid red")
	feed(t, h, ctx, out, properties.BorderBottom, "1px solid red")
	feed(t, h, ctx, out, properties.BorderLeft, "1px solid red")
	feed(t, h, ctx, out, properties.BorderRight, "2px dashed blue")
	h.Finalize(out, ctx)

	require.Equal(t, 2, out.Len())
	assert.Equal(t, properties.Border, out.Items[0].Property.ID)
	assert.Equal(t, properties.BorderRight, out.Items[1].Property.ID)
}

func TestHandlerCollapsesWidthRectWhenOnlyWidthsSet(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTopWidth, "1px")
	feed(t, h, ctx, out, properties.BorderRightWidth, "2px")
	feed(t, h, ctx, out, properties.BorderBottomWidth, "3px")
	feed(t, h, ctx, out, properties.BorderLeftWidth, "2px")
	h.Finalize(out, ctx)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, properties.BorderWidth, out.Items[0].Property.ID)
	assert.Equal(t, "border-width:1px 2px 3px;\n", render(t, out, nil))
}

func TestHandlerColorFallbackChainForLabTargetingOldSafari(t *testing.T) {
	old := &compat.Browsers{Safari: 10}
	h := border.New(old)
	ctx := context.New(old)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTopColor, "lab(50% 40 59.5)")
	h.Finalize(out, ctx)

	require.GreaterOrEqual(t, out.Len(), 2, "expected an rgb fallback ahead of the lab declaration")
	assert.Equal(t, properties.BorderTopColor, out.Items[0].Property.ID)
	first := out.Items[0].Property.Value.(color.Color)
	assert.Equal(t, color.RGBA, first.Kind)
	last := out.Items[len(out.Items)-1].Property.Value.(color.Color)
	assert.Equal(t, color.Lab, last.Kind)
}

func TestHandlerNoFallbackForLabTargetingModernBrowsers(t *testing.T) {
	modern := &compat.Browsers{Safari: 16, Chrome: 120, Firefox: 120}
	h := border.New(modern)
	ctx := context.New(modern)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTopColor, "lab(50% 40 59.5)")
	h.Finalize(out, ctx)

	require.Equal(t, 1, out.Len())
	v := out.Items[0].Property.Value.(color.Color)
	assert.Equal(t, color.Lab, v.Kind)
}

func TestHandlerLowersLogicalBorderToPhysicalPairWithoutLogicalSupport(t *testing.T) {
	ie := &compat.Browsers{IE: 11}
	h := border.New(ie)
	ctx := context.New(ie)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderInlineStart, "1px solid green")
	h.Finalize(out, ctx)

	assert.Equal(t, 0, out.Len(), "an inline-axis triple with no logical support becomes a direction-guarded rule, not a direct declaration")
	require.Len(t, ctx.LogicalRules, 1)
	assert.Equal(t, properties.BorderLeft, ctx.LogicalRules[0].LTR.ID)
	assert.Equal(t, properties.BorderRight, ctx.LogicalRules[0].RTL.ID)
}

func TestHandlerKeepsLogicalBorderWhenSupported(t *testing.T) {
	modern := &compat.Browsers{Chrome: 120, Firefox: 120, Safari: 16, Edge: 120}
	h := border.New(modern)
	ctx := context.New(modern)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderInlineStart, "1px solid green")
	h.Finalize(out, ctx)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, properties.BorderInlineStart, out.Items[0].Property.ID)
	assert.Empty(t, ctx.LogicalRules)
}

func TestHandlerBorderShorthandResetsPendingBorderImage(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	require.True(t, h.HandleProperty(properties.Property{
		ID:    properties.BorderImageSource,
		Value: tokenize("url(foo.png)"),
	}, out, ctx))

	feed(t, h, ctx, out, properties.Border, "1px solid black")
	h.Finalize(out, ctx)

	for _, d := range out.Items {
		assert.NotEqual(t, properties.BorderImageSource, d.Property.ID,
			"border-image-source should have been discarded when border was set")
	}
}

func TestHandlerDelegatesBorderRadiusThroughToOutput(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	require.True(t, h.HandleProperty(properties.Property{
		ID:    properties.BorderTopLeftRadius,
		Value: tokenize("4px"),
	}, out, ctx))
	h.Finalize(out, ctx)

	require.Equal(t, 1, out.Len())
	assert.Equal(t, properties.BorderTopLeftRadius, out.Items[0].Property.ID)
}

func TestHandlerPreservesDeclarationOrderAcrossCategorySwitch(t *testing.T) {
	h := border.New(nil)
	ctx := context.New(nil)
	out := &properties.DeclarationList{}

	feed(t, h, ctx, out, properties.BorderTopWidth, "1px")
	feed(t, h, ctx, out, properties.BorderBlockStartWidth, "2px")
	feed(t, h, ctx, out, properties.BorderBottomWidth, "1px")
	h.Finalize(out, ctx)

	require.Len(t, out.Items, 3, "each category switch flushes the pending side before accumulating the next")
	assert.Equal(t, properties.BorderTopWidth, out.Items[0].Property.ID)
	assert.Equal(t, properties.BorderBlockStartWidth, out.Items[1].Property.ID)
	assert.Equal(t, properties.BorderBottomWidth, out.Items[2].Property.ID)
}

func TestParseTripleAcceptsAnyOrder(t *testing.T) {
	tr, err := border.ParseTriple(tokenize("solid 2px red"))
	require.NoError(t, err)
	assert.Equal(t, border.Solid, tr.Style)
	assert.Equal(t, border.WidthIsLength, tr.Width.Keyword)
	assert.Equal(t, float64(2), tr.Width.Length.Value)
}

func TestParseTripleRejectsTrailingGarbage(t *testing.T) {
	_, err := border.ParseTriple(tokenize("solid 2px red extra"))
	assert.Error(t, err)
}

func TestParseWidthRectOneToFourValues(t *testing.T) {
	rows := []struct {
		in                       string
		top, right, bottom, left int
	}{
		{"1px", 1, 1, 1, 1},
		{"1px 2px", 1, 2, 1, 2},
		{"1px 2px 3px", 1, 2, 3, 2},
		{"1px 2px 3px 4px", 1, 2, 3, 4},
	}
	for _, r := range rows {
		rect, err := border.ParseWidthRect(tokenize(r.in))
		require.NoError(t, err, r.in)
		assert.Equal(t, float64(r.top), rect.Top.Length.Value, r.in)
		assert.Equal(t, float64(r.right), rect.Right.Length.Value, r.in)
		assert.Equal(t, float64(r.bottom), rect.Bottom.Length.Value, r.in)
		assert.Equal(t, float64(r.left), rect.Left.Length.Value, r.in)
	}
}

func TestParseWidthRectRejectsFiveValues(t *testing.T) {
	_, err := border.ParseWidthRect(tokenize("1px 2px 3px 4px 5px"))
	assert.Error(t, err)
}

func TestParseDeclarationUnknownBorderFamilyPassesThroughRawTokens(t *testing.T) {
	p, err := border.ParseDeclaration(properties.OutlineColor, tokenize("red"))
	require.NoError(t, err)
	assert.Equal(t, properties.OutlineColor, p.ID)
	toks, ok := p.Value.([]token.Token)
	require.True(t, ok)
	assert.NotEmpty(t, toks)
}

func TestWidthRectSerializeCollapsesMirroredSides(t *testing.T) {
	rect, err := border.ParseWidthRect(tokenize("1px 2px 1px 2px"))
	require.NoError(t, err)
	var buf bytes.Buffer
	p := printer.New(&buf, true, nil)
	require.NoError(t, rect.Serialize(p))
	require.NoError(t, p.Flush())
	assert.Equal(t, "1px 2px", buf.String())
}
