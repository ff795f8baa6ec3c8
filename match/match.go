/*
Package match implements dictionary based conversion of Chinese text by
forward maximum matching.

At every position of the input the longest key of the locale's dictionary
(or of a caller supplied override dictionary) which is a prefix of the
remaining text is searched. If there is such a key, its replacement is
written to the output and the scan resumes directly after the key. Otherwise
a single code-point is copied unchanged. Output is never re-scanned.

Override entries beat dictionary entries of the same length, but a longer
dictionary key still beats a shorter override key: length always decides
first.

	store := dict.NewStore(tbls)
	m := match.NewMatcher(store)
	s := m.Convert("我幹什麼不干你事。", locale.ZhCN, nil) // "我干什么不干你事。"

Input which is not valid UTF-8 is tolerated: invalid bytes never take part
in a match and are copied to the output as they are.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package match

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhconv/dict"
	"github.com/npillmayer/zhconv/locale"
)

// tracer traces with key 'zhconv.match'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.match")
}

// Matcher converts text with the dictionaries of a store.
// Matchers are safe for concurrent use.
type Matcher struct {
	store *dict.Store
}

// NewMatcher creates a matcher for the dictionaries of a store.
func NewMatcher(store *dict.Store) *Matcher {
	return &Matcher{store: store}
}

// Convert converts text to locale l. Entries of override, if any, take
// precedence over entries of the locale's dictionary of equal length.
// For the neutral locale "zh" and for unrecognized locales text is returned
// unchanged.
func (m *Matcher) Convert(text string, l locale.Locale, override map[string]string) string {
	var ov *dict.Dictionary
	if len(override) > 0 {
		ov = dict.NewDictionary(override)
	}
	return m.ConvertWith(text, l, ov)
}

// ConvertWith is a variant of Convert for an override which has already been
// turned into a dictionary. ov may be nil.
func (m *Matcher) ConvertWith(text string, l locale.Locale, ov *dict.Dictionary) string {
	if text == "" || l.IsNeutral() || !l.Valid() {
		return text
	}
	d := m.store.Dictionary(l)
	if d.Empty() && ov.Empty() {
		return text
	}
	out := borrowBuffer()
	defer releaseBuffer(out)
	pos := 0
	for pos < len(text) {
		end, repl, _ := longestMatch(text, pos, d, ov)
		if end > pos {
			out.WriteString(repl)
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		out.WriteString(text[pos : pos+size])
		pos += size
	}
	return out.String()
}

// longestMatch searches the longest key of ov or d which is a prefix of
// src[pos:]. For keys of equal length ov wins. It returns the end position of
// the match (pos if there is none) and the replacement text.
//
// more is true if the scan hit the end of src (or an incomplete trailing
// rune) while a longer key still might have matched. Streaming clients have
// to wait for more input in that case.
func longestMatch(src string, pos int, d, ov *dict.Dictionary) (end int, repl string, more bool) {
	dit, oit := d.Prefixes().Iterator(), ov.Prefixes().Iterator()
	end = pos
	for i := pos; i < len(src); {
		if !utf8.FullRuneInString(src[i:]) {
			return end, repl, true
		}
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size == 1 {
			return end, repl, false
		}
		ind, ino := dit.Next(r), oit.Next(r)
		if !ind && !ino {
			return end, repl, false
		}
		i += size
		frag := src[pos:i]
		if ino {
			if t, ok := ov.Lookup(frag); ok {
				end, repl = i, t
				continue
			}
		}
		if ind {
			if t, ok := d.Lookup(frag); ok {
				end, repl = i, t
			}
		}
	}
	return end, repl, true
}
