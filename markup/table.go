package markup

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// RuleTable is the ordered collection of rules which are in effect during
// the interpretation of a document. Rules enter the table with directive H
// or A and leave it with directive '-'.
type RuleTable struct {
	rules *arraylist.List
}

// NewRuleTable creates an empty rule table.
func NewRuleTable() *RuleTable {
	return &RuleTable{rules: arraylist.New()}
}

// Add appends a rule, unless an equal rule is already present. It returns
// true if the table changed.
func (rt *RuleTable) Add(r Rule) bool {
	if rt.indexOf(r) >= 0 {
		return false
	}
	rt.rules.Add(r)
	return true
}

// Remove deletes a rule equal to r. It returns false if there is no such
// rule.
func (rt *RuleTable) Remove(r Rule) bool {
	i := rt.indexOf(r)
	if i < 0 {
		return false
	}
	rt.rules.Remove(i)
	return true
}

func (rt *RuleTable) indexOf(r Rule) int {
	i, _ := rt.rules.Find(func(_ int, value interface{}) bool {
		return value.(Rule).Equal(r)
	})
	return i
}

// Len returns the number of rules in the table.
func (rt *RuleTable) Len() int {
	return rt.rules.Size()
}

// Each calls f for every rule, in order of insertion.
func (rt *RuleTable) Each(f func(r Rule)) {
	rt.rules.Each(func(_ int, value interface{}) {
		f(value.(Rule))
	})
}

// Rules returns the rules of the table, in order of insertion.
func (rt *RuleTable) Rules() []Rule {
	rules := make([]Rule, 0, rt.rules.Size())
	rt.Each(func(r Rule) {
		rules = append(rules, r)
	})
	return rules
}
