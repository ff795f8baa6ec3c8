/*
Package locale knows about the Chinese variants zhconv converts between.

There is a closed set of nine locale tokens. Token "zh" is special: it
denotes "no conversion" and terminates every fallback chain. Any other
string may be stored in a Locale, but is treated as unrecognized by
clients of this package (which usually means: leave text untouched).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package locale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'zhconv.locale'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.locale")
}

// Locale is a token identifying a Chinese variant.
type Locale string

// The recognized locales.
const (
	ZH     Locale = "zh"      // no conversion
	ZhCN   Locale = "zh-cn"   // mainland China, Simplified
	ZhHK   Locale = "zh-hk"   // Hong Kong, Traditional
	ZhTW   Locale = "zh-tw"   // Taiwan, Traditional
	ZhSG   Locale = "zh-sg"   // Singapore, Simplified
	ZhMY   Locale = "zh-my"   // Malaysia, Simplified
	ZhMO   Locale = "zh-mo"   // Macau, Traditional
	ZhHans Locale = "zh-hans" // Simplified script
	ZhHant Locale = "zh-hant" // Traditional script
)

// All lists the recognized locales, neutral locale first.
var All = [...]Locale{ZH, ZhCN, ZhHK, ZhTW, ZhSG, ZhMY, ZhMO, ZhHans, ZhHant}

// fallback chains; every chain starts with its own locale and ends with ZH.
var chains = map[Locale][]Locale{
	ZhCN:   {ZhCN, ZhHans, ZhSG, ZH},
	ZhHK:   {ZhHK, ZhHant, ZhTW, ZH},
	ZhTW:   {ZhTW, ZhHant, ZhHK, ZH},
	ZhSG:   {ZhSG, ZhHans, ZhCN, ZH},
	ZhMY:   {ZhMY, ZhSG, ZhHans, ZhCN, ZH},
	ZhMO:   {ZhMO, ZhHK, ZhHant, ZhTW, ZH},
	ZhHant: {ZhHant, ZhTW, ZhHK, ZH},
	ZhHans: {ZhHans, ZhCN, ZhSG, ZH},
	ZH:     {ZH},
}

// names are the native names of the variants, as shown to readers.
var names = map[Locale]string{
	ZH:     "原文",
	ZhCN:   "大陆简体",
	ZhHK:   "香港繁體",
	ZhTW:   "臺灣正體",
	ZhSG:   "新加坡简体",
	ZhMY:   "大马简体",
	ZhMO:   "澳門繁體",
	ZhHans: "简体",
	ZhHant: "繁體",
}

// Valid returns true if l is one of the nine recognized locales.
func (l Locale) Valid() bool {
	_, ok := chains[l]
	return ok
}

// IsNeutral returns true for locale "zh", which stands for "no conversion".
func (l Locale) IsNeutral() bool {
	return l == ZH
}

// IsScript returns true for the script-level locales zh-hans and zh-hant,
// as opposed to regional ones.
func (l Locale) IsScript() bool {
	return l == ZhHans || l == ZhHant
}

// Name returns the native name of a variant, or the empty string for
// unrecognized locales.
func (l Locale) Name() string {
	return names[l]
}

func (l Locale) String() string {
	return string(l)
}

// Chain returns the fallback chain for l. The chain starts with l itself
// and ends with ZH. For unrecognized locales Chain returns nil.
//
// The returned slice is a copy and may be modified by the caller.
func Chain(l Locale) []Locale {
	c, ok := chains[l]
	if !ok {
		return nil
	}
	chain := make([]Locale, len(c))
	copy(chain, c)
	return chain
}
