// Command cssbox reads a CSS declaration block from stdin (or a file named
// with -f) and runs it through the border property handler, printing the
// minimal, browser-compatible declaration list it produces.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tawesoft/cssbox/border"
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/css/tokenizer"
	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
	"github.com/tawesoft/cssbox/properties"
)

func main() {
	targetsFlag := flag.String("targets", "", "comma list of browser=version, e.g. chrome=90,safari=14")
	fileFlag := flag.String("f", "", "read declarations from this file instead of stdin")
	minifyFlag := flag.Bool("minify", false, "omit whitespace cosmetic to a declaration's own value")
	flag.Parse()

	targets, err := parseTargets(*targetsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cssbox:", err)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if *fileFlag != "" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cssbox:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	src, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cssbox:", err)
		os.Exit(1)
	}

	out, warnings := run(string(src), targets)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "cssbox:", w)
	}

	p := printer.New(os.Stdout, *minifyFlag, targets)
	if err := out.Serialize(p); err != nil {
		fmt.Fprintln(os.Stderr, "cssbox:", err)
		os.Exit(1)
	}
	if err := p.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "cssbox:", err)
		os.Exit(1)
	}
}

// run feeds every declaration in src through a fresh border.Handler and
// returns the declarations it emits, plus one warning string per
// declaration it could not parse or place.
func run(src string, targets *compat.Browsers) (*properties.DeclarationList, []string) {
	h := border.New(targets)
	ctx := context.New(targets)
	out := &properties.DeclarationList{}
	var warnings []string

	for _, stmt := range splitStatements(src) {
		name, value, ok := splitDeclaration(stmt)
		if !ok {
			continue
		}
		value = strings.TrimSpace(trimImportant(value))

		id, known := properties.ParseID(name)
		if !known {
			warnings = append(warnings, fmt.Sprintf("unrecognised property %q, skipped", name))
			continue
		}

		toks := tokenizeValue(value)
		prop, err := border.ParseDeclaration(id, toks)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %s", name, err))
			continue
		}

		if !h.HandleProperty(prop, out, ctx) {
			warnings = append(warnings, fmt.Sprintf("%s: not a border, border-image or border-radius property", name))
		}
	}

	h.Finalize(out, ctx)
	applyLogicalRules(out, ctx)
	return out, warnings
}

// applyLogicalRules appends the LTR variant of every logical rule the
// handler deferred. A real rule rewriter would instead wrap each pair
// under `[dir=ltr]`/`[dir=rtl]` selector guards on a duplicated rule; this
// command has no concept of selectors, so it prints the LTR (left-to-right
// default) side only.
func applyLogicalRules(out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	for _, r := range ctx.LogicalRules {
		out.Push(r.LTR)
	}
}

// splitStatements splits a CSS declaration block on top-level semicolons,
// ignoring any that occur inside a balanced ( ) pair so a color-mix() or
// var() argument list survives intact.
func splitStatements(src string) []string {
	var stmts []string
	depth := 0
	start := 0
	for i, r := range src {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				stmts = append(stmts, src[start:i])
				start = i + 1
			}
		}
	}
	if start < len(src) {
		stmts = append(stmts, src[start:])
	}
	return stmts
}

// splitDeclaration splits "name: value" on the first top-level colon.
func splitDeclaration(stmt string) (name, value string, ok bool) {
	i := strings.IndexByte(stmt, ':')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(stmt[:i])
	value = stmt[i+1:]
	if name == "" {
		return "", "", false
	}
	return name, value, true
}

func trimImportant(value string) string {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "!important") {
		return trimmed[:len(trimmed)-len("!important")]
	}
	return trimmed
}

// tokenizeValue runs value through the tokenizer and collects every token
// up to EOF.
func tokenizeValue(value string) []token.Token {
	tok := tokenizer.New(strings.NewReader(value))
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

// parseTargets parses a comma list like "chrome=90,safari=14" into a
// compat.Browsers. An empty string means no specific targets, in which
// case every feature is treated as supported and no fallbacks emitted.
func parseTargets(s string) (*compat.Browsers, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var b compat.Browsers
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid -targets entry %q", pair)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(kv[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid -targets version in %q: %w", pair, err)
		}
		switch strings.ToLower(strings.TrimSpace(kv[0])) {
		case "chrome":
			b.Chrome = uint32(v)
		case "firefox":
			b.Firefox = uint32(v)
		case "safari":
			b.Safari = uint32(v)
		case "edge":
			b.Edge = uint32(v)
		case "ie":
			b.IE = uint32(v)
		default:
			return nil, fmt.Errorf("unknown browser %q in -targets", kv[0])
		}
	}
	return &b, nil
}
