package dict

// Dictionary is a conversion dictionary together with the prefix set of its
// keys. Dictionaries are immutable; a nil *Dictionary is a valid, empty
// dictionary.
type Dictionary struct {
	entries  map[string]string
	prefixes *PrefixSet
	maxlen   int // length of the longest key, in code-points
}

// NewDictionary creates a dictionary for a mapping of source strings to
// target strings. The dictionary takes ownership of m; clients must not
// modify m afterwards. An entry for the empty string is ignored.
func NewDictionary(m map[string]string) *Dictionary {
	d := &Dictionary{entries: m, prefixes: &PrefixSet{}}
	for w := range m {
		if w == "" {
			continue
		}
		d.prefixes.add(w)
		if l := len([]rune(w)); l > d.maxlen {
			d.maxlen = l
		}
	}
	return d
}

// Lookup returns the target string for a source string.
func (d *Dictionary) Lookup(src string) (string, bool) {
	if d == nil || src == "" {
		return "", false
	}
	target, ok := d.entries[src]
	return target, ok
}

// Prefixes returns the prefix set of the dictionary's keys.
func (d *Dictionary) Prefixes() *PrefixSet {
	if d == nil {
		return nil
	}
	return d.prefixes
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// MaxKeyLen returns the length of the longest key, in code-points. It
// bounds the number of code-points a matcher will ever have to look ahead.
func (d *Dictionary) MaxKeyLen() int {
	if d == nil {
		return 0
	}
	return d.maxlen
}

// Empty returns true if the dictionary has no entries.
func (d *Dictionary) Empty() bool {
	return d.Len() == 0
}
