package markup

import (
	"github.com/npillmayer/zhconv/dict"
	"github.com/npillmayer/zhconv/locale"
)

// Converter is the flat conversion used for everything outside of markup
// blocks. *match.Matcher implements it.
type Converter interface {
	ConvertWith(text string, l locale.Locale, override *dict.Dictionary) string
}

// Resolve selects the text of v to use for locale l. The fallback chain of l
// is searched for the first locale v has a text for. If there is none, the
// first text of v is converted to l. Resolving an empty mapping yields the
// empty string.
func Resolve(conv Converter, l locale.Locale, v *Variants) string {
	for _, c := range locale.Chain(l) {
		if text, ok := v.Get(c); ok {
			return text
		}
	}
	if first, ok := v.First(); ok {
		return conv.ConvertWith(first, l, nil)
	}
	return ""
}

// BuildOverride turns rules into an override mapping for locale l, starting
// from a copy of base. Later rules overwrite earlier ones.
//
// A unified rule contributes its key, if it has a text for l. A bare rule
// contributes every one of its texts as a key, all mapped to the rule's text
// for a script locale l, or else to the text the rule resolves to for l.
func BuildOverride(conv Converter, rules []Rule, l locale.Locale, base map[string]string) map[string]string {
	ov := make(map[string]string, len(base)+len(rules))
	for k, v := range base {
		ov[k] = v
	}
	for _, r := range rules {
		switch r := r.(type) {
		case *UnifiedRule:
			if text, ok := r.Texts.Get(l); ok && r.Key != "" {
				ov[r.Key] = text
			}
		case *BareRule:
			target, ok := "", false
			if l.IsScript() {
				target, ok = r.Texts.Get(l)
			}
			if !ok {
				target = Resolve(conv, l, &r.Texts)
			}
			for _, word := range r.Texts.Values() {
				if word != "" {
					ov[word] = target
				}
			}
		}
	}
	return ov
}

// limitOverride is like BuildOverride, but bare rules may only resolve to
// texts of the locales in allowed. Words of a bare rule without such a text
// are mapped to their own conversion.
func limitOverride(conv Converter, rules []Rule, l locale.Locale, allowed []locale.Locale,
	base map[string]string) map[string]string {
	//
	ov := make(map[string]string, len(base)+len(rules))
	for k, v := range base {
		ov[k] = v
	}
	for _, r := range rules {
		switch r := r.(type) {
		case *UnifiedRule:
			if text, ok := r.Texts.Get(l); ok && r.Key != "" {
				ov[r.Key] = text
			}
		case *BareRule:
			target := ""
			for _, c := range locale.Chain(l) {
				if text, ok := r.Texts.Get(c); ok && contains(allowed, c) {
					target = text
					break
				}
			}
			for _, word := range r.Texts.Values() {
				if word == "" {
					continue
				}
				if target != "" {
					ov[word] = target
				} else {
					ov[word] = conv.ConvertWith(word, l, nil)
				}
			}
		}
	}
	return ov
}

func contains(locales []locale.Locale, l locale.Locale) bool {
	for _, x := range locales {
		if x == l {
			return true
		}
	}
	return false
}
