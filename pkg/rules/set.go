package rules

import "iter"

// Set is an ordered container of exclude rules. Insertion order is also
// match-evaluation order. The set owns the rules added to it; callers
// should not reuse a rule across sets.
type Set struct {
	rules []*Rule
}

// NewSet returns an empty rule set.
func NewSet() *Set {
	return &Set{}
}

// Add appends rule to the end of the set.
func (s *Set) Add(rule *Rule) {
	s.rules = append(s.rules, rule)
}

// Match checks text against the rules in insertion order. It reports true
// if any enabled rule matches. An empty set matches nothing.
//
// Unlike matching, iteration via Rules is stateless, so Match has no
// observable side effects.
func (s *Set) Match(text string) bool {
	return s.MatchingRule(text) != nil
}

// MatchingRule returns the first enabled rule that matches text, or nil if
// none does. This is intended to explain to the user which rule matched.
func (s *Set) MatchingRule(text string) *Rule {
	for _, rule := range s.rules {
		if rule.Match(text) {
			return rule
		}
	}
	return nil
}

// Rules returns a restartable sequence over the set's rules in insertion
// order, independent of any matching calls.
func (s *Set) Rules() iter.Seq[*Rule] {
	return func(yield func(*Rule) bool) {
		for _, rule := range s.rules {
			if !yield(rule) {
				return
			}
		}
	}
}

// Len returns the number of rules in the set, enabled or not.
func (s *Set) Len() int {
	return len(s.rules)
}

// Clear removes all rules from the set.
func (s *Set) Clear() {
	s.rules = nil
}
