package match

import (
	"unicode/utf8"

	"github.com/npillmayer/zhconv/dict"
	"github.com/npillmayer/zhconv/locale"
	"golang.org/x/text/transform"
)

// Transformer returns a transformer which converts a stream of text to
// locale l, with the same results as Convert would produce for the complete
// text. It may be used with transform.NewReader and transform.NewWriter.
//
// The transformer holds back input as long as a longer match is possible, so
// it needs a source buffer at least as large as the longest dictionary key.
func (m *Matcher) Transformer(l locale.Locale, override map[string]string) transform.Transformer {
	if l.IsNeutral() || !l.Valid() {
		return transform.Nop
	}
	t := &transformer{dict: m.store.Dictionary(l)}
	if len(override) > 0 {
		t.override = dict.NewDictionary(override)
	}
	return t
}

type transformer struct {
	transform.NopResetter
	dict     *dict.Dictionary
	override *dict.Dictionary
}

// Transform implements transform.Transformer.
func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := string(src)
	for nSrc < len(s) {
		end, repl, more := longestMatch(s, nSrc, t.dict, t.override)
		if more && !atEOF {
			err = transform.ErrShortSrc
			break
		}
		chunk := repl
		if end == nSrc {
			_, size := utf8.DecodeRuneInString(s[nSrc:])
			end, chunk = nSrc+size, s[nSrc:nSrc+size]
		}
		if len(dst)-nDst < len(chunk) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], chunk)
		nSrc = end
	}
	return nDst, nSrc, err
}
