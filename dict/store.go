/*
Package dict provides per-variant conversion dictionaries.

A Store builds the dictionary for a locale on first request, by copying the
applicable script table (to Simplified or to Traditional) and overlaying the
region table for the locale. Region entries win over script entries for the
same key. Script-level locales (zh-hans, zh-hant) use their script table
as-is, every other locale (including the neutral "zh") gets an empty
dictionary.

Every dictionary carries the prefix set of its keys, which lets a matcher
stop scanning as soon as no key can match any more.

Stores are safe for concurrent use. Every dictionary is built at most once
per store and is immutable afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dict

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhconv/locale"
	"github.com/npillmayer/zhconv/tables"
)

// tracer traces with key 'zhconv.dict'.
func tracer() tracing.Trace {
	return tracing.Select("zhconv.dict")
}

// Store builds and caches conversion dictionaries, one per locale.
type Store struct {
	tables tables.Tables
	slots  map[locale.Locale]*slot // fixed at construction time
}

type slot struct {
	once sync.Once
	dict *Dictionary
}

// which tables make up the dictionary for a locale: script table first, then
// an optional overlay
var layers = map[locale.Locale][2]string{
	locale.ZhCN:   {tables.Simplified, tables.Mainland},
	locale.ZhSG:   {tables.Simplified, tables.Singapore},
	locale.ZhMY:   {tables.Simplified, tables.Singapore},
	locale.ZhTW:   {tables.Traditional, tables.Taiwan},
	locale.ZhHK:   {tables.Traditional, tables.HongKong},
	locale.ZhMO:   {tables.Traditional, tables.HongKong},
	locale.ZhHans: {tables.Simplified, ""},
	locale.ZhHant: {tables.Traditional, ""},
}

var empty = NewDictionary(nil)

// NewStore creates a dictionary store for a set of loaded tables.
// Dictionaries will be built lazily.
func NewStore(t tables.Tables) *Store {
	s := &Store{
		tables: t,
		slots:  make(map[locale.Locale]*slot, len(layers)),
	}
	for l := range layers {
		s.slots[l] = &slot{}
	}
	return s
}

// Dictionary returns the conversion dictionary for a locale. For locales
// without conversion (including unrecognized ones) an empty dictionary is
// returned.
func (s *Store) Dictionary(l locale.Locale) *Dictionary {
	sl, ok := s.slots[l]
	if !ok {
		return empty
	}
	sl.once.Do(func() {
		sl.dict = s.build(l)
	})
	return sl.dict
}

func (s *Store) build(l locale.Locale) *Dictionary {
	layer := layers[l]
	base := s.tables[layer[0]]
	var d *Dictionary
	if layer[1] == "" {
		d = NewDictionary(base)
	} else {
		overlay := s.tables[layer[1]]
		merged := make(map[string]string, len(base)+len(overlay))
		for k, v := range base {
			merged[k] = v
		}
		for k, v := range overlay {
			merged[k] = v
		}
		d = NewDictionary(merged)
	}
	tracer().Debugf("built dictionary for %v: %d entries, %d prefixes, longest key %d",
		l, d.Len(), d.Prefixes().Len(), d.MaxKeyLen())
	return d
}
