package dict

// PrefixSet is the set of all non-empty prefixes of a set of words, where
// prefixes are counted in code-points, not in bytes. It is implemented as a
// trie over runes.
//
// A PrefixSet is suitable for write-once-read-many-times situations: it is
// filled when a dictionary is created and never changed afterwards. Lookups
// are safe for concurrent use.
type PrefixSet struct {
	root  node
	count int // number of distinct prefixes
}

type node struct {
	children map[rune]*node
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

// NewPrefixSet creates a prefix set for the given words. Empty words
// contribute nothing.
func NewPrefixSet(words ...string) *PrefixSet {
	ps := &PrefixSet{}
	for _, w := range words {
		ps.add(w)
	}
	return ps
}

func (ps *PrefixSet) add(word string) {
	n := &ps.root
	for _, r := range word {
		c := n.child(r)
		if c == nil {
			if n.children == nil {
				n.children = make(map[rune]*node)
			}
			c = &node{}
			n.children[r] = c
			ps.count++
		}
		n = c
	}
}

// Len returns the number of distinct prefixes in the set.
func (ps *PrefixSet) Len() int {
	if ps == nil {
		return 0
	}
	return ps.count
}

// Contains returns true if prefix is a prefix of one of the words the set
// has been created for. The empty string is not contained.
func (ps *PrefixSet) Contains(prefix string) bool {
	if prefix == "" {
		return false
	}
	it := ps.Iterator()
	for _, r := range prefix {
		if !it.Next(r) {
			return false
		}
	}
	return true
}

// Iterator will return an iterator to advance over the prefixes of a word
// to find in the set. Calling Iterator on a nil PrefixSet is legal and
// returns an iterator which never succeeds.
func (ps *PrefixSet) Iterator() Iterator {
	if ps == nil {
		return Iterator{}
	}
	return Iterator{position: &ps.root}
}

// --- Iterator --------------------------------------------------------------

// Iterator is a one-off iterator to test prefixes of a word, one rune at a
// time.
type Iterator struct {
	position *node
}

// Next extends the current prefix by r. It returns true if the extended
// prefix is contained in the set. Once Next has returned false, the
// iterator is exhausted and all further calls return false.
func (it *Iterator) Next(r rune) bool {
	if it.position == nil {
		return false
	}
	it.position = it.position.child(r)
	return it.position != nil
}
