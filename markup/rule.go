package markup

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/zhconv/locale"
)

// Variants is a mapping of locales to texts which remembers the order of
// insertion. Setting a locale a second time replaces its text, but keeps
// its position. The zero value is an empty mapping.
type Variants struct {
	texts *linkedhashmap.Map
}

// Set sets the text for locale l.
func (v *Variants) Set(l locale.Locale, text string) {
	if v.texts == nil {
		v.texts = linkedhashmap.New()
	}
	v.texts.Put(l, text)
}

// Get returns the text for locale l.
func (v *Variants) Get(l locale.Locale) (string, bool) {
	if v.Len() == 0 {
		return "", false
	}
	text, ok := v.texts.Get(l)
	if !ok {
		return "", false
	}
	return text.(string), true
}

// Len returns the number of locales with a text.
func (v *Variants) Len() int {
	if v == nil || v.texts == nil {
		return 0
	}
	return v.texts.Size()
}

// First returns the text which has been inserted first.
func (v *Variants) First() (string, bool) {
	if v.Len() == 0 {
		return "", false
	}
	it := v.texts.Iterator()
	it.First()
	return it.Value().(string), true
}

// Each calls f for every locale and its text, in order of insertion.
func (v *Variants) Each(f func(l locale.Locale, text string)) {
	if v.Len() == 0 {
		return
	}
	v.texts.Each(func(key, value interface{}) {
		f(key.(locale.Locale), value.(string))
	})
}

// Values returns all texts, in order of insertion.
func (v *Variants) Values() []string {
	values := make([]string, 0, v.Len())
	v.Each(func(_ locale.Locale, text string) {
		values = append(values, text)
	})
	return values
}

// Equal returns true if v and w carry the same texts for the same locales,
// regardless of order.
func (v *Variants) Equal(w *Variants) bool {
	if v.Len() != w.Len() {
		return false
	}
	equal := true
	v.Each(func(l locale.Locale, text string) {
		if t, ok := w.Get(l); !ok || t != text {
			equal = false
		}
	})
	return equal
}

// --- Rules -----------------------------------------------------------------

// Rule is a conversion rule declared by markup. It is either a *UnifiedRule
// or a *BareRule.
type Rule interface {
	Variants() *Variants
	Equal(Rule) bool
	isRule()
}

// UnifiedRule maps a single source word (the key) to a text per locale.
//
//	-{H|巨集=>zh-cn:宏;}-
type UnifiedRule struct {
	Key      string
	Texts    Variants
	declared Variants // texts as written, before interpretation
}

// BareRule is a rule without a key. Every one of its texts stands for all
// of the others.
//
//	-{H|zh-cn:博客; zh-hk:網誌; zh-tw:部落格;}-
type BareRule struct {
	Texts    Variants
	declared Variants
}

// Variants returns the per-locale texts of the rule.
func (r *UnifiedRule) Variants() *Variants { return &r.Texts }

// Variants returns the per-locale texts of the rule.
func (r *BareRule) Variants() *Variants { return &r.Texts }

// Equal is true for unified rules with the same key and the same texts.
// Rules read from markup compare by their texts as written.
func (r *UnifiedRule) Equal(other Rule) bool {
	o, ok := other.(*UnifiedRule)
	return ok && o.Key == r.Key && identity(&r.Texts, &r.declared).Equal(identity(&o.Texts, &o.declared))
}

// Equal is true for bare rules with the same texts.
// Rules read from markup compare by their texts as written.
func (r *BareRule) Equal(other Rule) bool {
	o, ok := other.(*BareRule)
	return ok && identity(&r.Texts, &r.declared).Equal(identity(&o.Texts, &o.declared))
}

func identity(texts, declared *Variants) *Variants {
	if declared.Len() > 0 {
		return declared
	}
	return texts
}

func (r *UnifiedRule) isRule() {}
func (r *BareRule) isRule()    {}
