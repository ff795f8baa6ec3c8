package markup

import (
	"strings"
	"unicode"

	"github.com/npillmayer/zhconv/locale"
)

// Directive is a flag of a markup block which tells the interpreter what to
// do with the block's rules.
type Directive int8

// Directives recognized in block flags.
const (
	NoDirective Directive = iota
	Append                // A: add rules to the rule table and output the block
	Hidden                // H: add rules to the rule table silently
	Remove                // -: remove rules from the rule table
	Raw                   // R: output the mapping text unchanged
	Describe              // D: output a description of the first rule
	VariantName           // N: output the name of a variant
	Title                 // T: title conversion, ignored
)

var directiveLetters = map[rune]Directive{
	'A': Append,
	'H': Hidden,
	'-': Remove,
	'R': Raw,
	'D': Describe,
	'N': VariantName,
	'T': Title,
}

func (d Directive) String() string {
	for r, x := range directiveLetters {
		if x == d {
			return string(r)
		}
	}
	return "<none>"
}

// parseDirectives collects the directives from flag tokens. A token counts
// as a directive token if it consists of directive letters only. If no token
// does, the flags are a list of locales and ok is false.
func parseDirectives(tokens []string) (directives []Directive, ok bool) {
	for _, token := range tokens {
		ds := make([]Directive, 0, len(token))
		for _, r := range token {
			d, isDirective := directiveLetters[r]
			if !isDirective {
				ds = nil
				break
			}
			ds = append(ds, d)
		}
		if len(ds) > 0 {
			directives = append(directives, ds...)
			ok = true
		}
	}
	return directives, ok
}

// block is the body of a top-level markup block, split into flags and
// mapping text. A block with a '|' has a flag, even if all its tokens are
// empty.
type block struct {
	flagged bool
	flags   []string
	mapping string
}

const blockTrimset = " \t\n\r\f\v;"

// parseBlock splits the body of a block (without delimiters) at the first
// top-level '|'.
func parseBlock(body string) block {
	body = strings.Trim(body, blockTrimset)
	flag, mapping, found := cutTop(body, "|")
	if !found {
		return block{mapping: body}
	}
	b := block{flagged: true, mapping: strings.TrimLeftFunc(mapping, unicode.IsSpace)}
	for _, token := range strings.Split(strings.Trim(flag, blockTrimset), ";") {
		if token = strings.TrimSpace(token); token != "" {
			b.flags = append(b.flags, token)
		}
	}
	return b
}

// segment is a single rule text of a mapping, i.e.
//
//	[key =>] [locale :] text
type segment struct {
	key     string
	unified bool
	loc     locale.Locale
	text    string
}

// parseSegments splits mapping text at top-level ';'. Empty segments are
// dropped, but an empty mapping yields a single empty segment for "zh".
func parseSegments(mapping string) []segment {
	var segments []segment
	for _, part := range splitTop(mapping, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var seg segment
		if key, rest, found := cutTop(part, "=>"); found {
			seg.key, seg.unified = strings.TrimSpace(key), true
			part = strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
		seg.loc, seg.text = locale.ZH, part
		if l, text, found := cutTop(part, ":"); found {
			if loc := locale.Locale(strings.TrimSpace(l)); loc.Valid() {
				seg.loc, seg.text = loc, strings.TrimLeftFunc(text, unicode.IsSpace)
			}
		}
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		segments = append(segments, segment{loc: locale.ZH})
	}
	return segments
}

// --- Splitting outside of nested blocks ------------------------------------

// indexTop returns the byte index of the first occurrence of sep in s which
// is not part of a nested block, or -1.
func indexTop(s, sep string) int {
	depth := 0
	for i := 0; i < len(s); {
		switch rest := s[i:]; {
		case strings.HasPrefix(rest, openDelim):
			depth++
			i += len(openDelim)
		case strings.HasPrefix(rest, closeDelim):
			if depth > 0 {
				depth--
			}
			i += len(closeDelim)
		case depth == 0 && strings.HasPrefix(rest, sep):
			return i
		default:
			i++
		}
	}
	return -1
}

func cutTop(s, sep string) (before, after string, found bool) {
	if i := indexTop(s, sep); i >= 0 {
		return strings.TrimRightFunc(s[:i], unicode.IsSpace), s[i+len(sep):], true
	}
	return s, "", false
}

func splitTop(s, sep string) []string {
	var parts []string
	for {
		i := indexTop(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
}
