package dict

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/zhconv/locale"
	"github.com/npillmayer/zhconv/tables"
)

func TestPrefixSet(t *testing.T) {
	ps := NewPrefixSet("体内存", "体", "内存", "")
	for _, p := range []string{"体", "体内", "体内存", "内", "内存"} {
		if !ps.Contains(p) {
			t.Errorf("expected prefix set to contain %q", p)
		}
	}
	for _, p := range []string{"", "存", "体内存在", "内体"} {
		if ps.Contains(p) {
			t.Errorf("expected prefix set not to contain %q", p)
		}
	}
	if ps.Len() != 5 {
		t.Errorf("expected 5 distinct prefixes, have %d", ps.Len())
	}
}

func TestPrefixIterator(t *testing.T) {
	ps := NewPrefixSet("计算机")
	it := ps.Iterator()
	if !it.Next('计') || !it.Next('算') {
		t.Fatalf("iterator should follow prefixes of 计算机")
	}
	if it.Next('器') {
		t.Errorf("计算器 is not a prefix")
	}
	if it.Next('机') {
		t.Errorf("exhausted iterator must stay exhausted")
	}
	var nilset *PrefixSet
	it = nilset.Iterator()
	if it.Next('计') {
		t.Errorf("nil prefix set must not contain anything")
	}
}

func TestDictionary(t *testing.T) {
	d := NewDictionary(map[string]string{"内存": "記憶體", "体": "體", "": "x"})
	if v, ok := d.Lookup("内存"); !ok || v != "記憶體" {
		t.Errorf("expected 内存 → 記憶體, have %q", v)
	}
	if _, ok := d.Lookup(""); ok {
		t.Errorf("empty key must never match")
	}
	if d.MaxKeyLen() != 2 {
		t.Errorf("expected longest key to have 2 code-points, is %d", d.MaxKeyLen())
	}
	var nildict *Dictionary
	if _, ok := nildict.Lookup("体"); ok || !nildict.Empty() {
		t.Errorf("nil dictionary must be empty")
	}
}

func TestEveryKeyPrefixIsInPrefixSet(t *testing.T) {
	tbls, err := tables.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(tbls)
	for _, l := range locale.All {
		d := store.Dictionary(l)
		for key := range d.entries {
			runes := []rune(key)
			for i := 1; i <= len(runes); i++ {
				if !d.Prefixes().Contains(string(runes[:i])) {
					t.Errorf("%v: prefix %q of key %q missing", l, string(runes[:i]), key)
				}
			}
		}
	}
}

func TestStoreLayers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tbls, err := tables.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(tbls)
	// region overlay wins over the script table
	if v, _ := store.Dictionary(locale.ZhTW).Lookup("软件"); v != "軟體" {
		t.Errorf("zh-tw: expected 软件 → 軟體, have %q", v)
	}
	if v, _ := store.Dictionary(locale.ZhHK).Lookup("软件"); v != "軟件" {
		t.Errorf("zh-hk: expected 软件 → 軟件, have %q", v)
	}
	if v, _ := store.Dictionary(locale.ZhMO).Lookup("计算机"); v != "電腦" {
		t.Errorf("zh-mo should share the Hong Kong overlay, have %q", v)
	}
	if v, _ := store.Dictionary(locale.ZhMY).Lookup("出租车"); v != "德士" {
		t.Errorf("zh-my should share the Singapore overlay, have %q", v)
	}
	// script-level locales use the script table as-is
	if _, ok := store.Dictionary(locale.ZhHant).Lookup("计算机"); ok {
		t.Errorf("zh-hant must not contain regional entries")
	}
	if store.Dictionary(locale.ZhHans).Len() != len(tbls[tables.Simplified]) {
		t.Errorf("zh-hans dictionary should be the Simplified table")
	}
	// no conversion
	if !store.Dictionary(locale.ZH).Empty() || !store.Dictionary("en").Empty() {
		t.Errorf("zh and unrecognized locales must have empty dictionaries")
	}
	// tables are not modified by overlaying
	if _, ok := tbls[tables.Traditional]["内存"]; ok {
		t.Errorf("overlay leaked into the Traditional table")
	}
}

func TestStoreBuildsOnce(t *testing.T) {
	tbls, err := tables.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(tbls)
	var wg sync.WaitGroup
	dicts := make([]*Dictionary, 16)
	for i := range dicts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dicts[i] = store.Dictionary(locale.ZhCN)
		}(i)
	}
	wg.Wait()
	for _, d := range dicts[1:] {
		if d != dicts[0] {
			t.Fatalf("concurrent first use must yield a single dictionary instance")
		}
	}
}
