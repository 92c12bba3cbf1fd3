// Package rules provides regular-expression exclude rules for duscan.
//
// A Rule wraps one regular expression plus an enabled flag. Only enabled
// rules can ever match; a disabled exclude rule will never exclude anything.
// A Set is an ordered collection of rules, evaluated in insertion order with
// first-match-wins semantics.
//
// The scanner checks every file name against a Set and skips names that
// match. MatchingRule exists so the excluding rule can be shown to the user.
//
// # Configuration
//
// Rules are normally built from configuration by pkg/config:
//
//	[[rules]]
//	pattern = '\.bak$'
//
//	[[rules]]
//	pattern = '^core$'
//	enabled = false
//
// Patterns use Go regexp syntax with search (substring) semantics, not
// full-string anchoring. Anchor explicitly with ^ and $ where needed.
//
// The package promises nothing about concurrent use; callers sharing a Set
// across goroutines must serialize access themselves.
package rules
