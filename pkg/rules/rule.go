package rules

import "regexp"

// Rule is a single exclude rule: one regular expression plus an enabled
// flag. New rules start enabled.
type Rule struct {
	re      *regexp.Regexp
	enabled bool
}

// NewRule wraps an already compiled regular expression in an enabled rule.
func NewRule(re *regexp.Regexp) *Rule {
	return &Rule{re: re, enabled: true}
}

// New compiles pattern and wraps it in an enabled rule. A malformed pattern
// returns regexp.Compile's error untouched.
func New(pattern string) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return NewRule(re), nil
}

// Match checks text (usually a file name) against this rule. It reports
// true only when the rule is enabled and the pattern matches anywhere in
// text. A disabled rule returns false without evaluating the pattern.
func (r *Rule) Match(text string) bool {
	if !r.enabled {
		return false
	}
	return r.re.MatchString(text)
}

// Regexp returns this rule's regular expression.
func (r *Rule) Regexp() *regexp.Regexp {
	return r.re
}

// SetRegexp changes this rule's regular expression. The enabled state is
// not touched.
func (r *Rule) SetRegexp(re *regexp.Regexp) {
	r.re = re
}

// Pattern returns the source text of this rule's regular expression.
func (r *Rule) Pattern() string {
	return r.re.String()
}

// IsEnabled checks if this rule is enabled.
func (r *Rule) IsEnabled() bool {
	return r.enabled
}

// Enable enables or disables this rule.
func (r *Rule) Enable(enabled bool) {
	r.enabled = enabled
}
