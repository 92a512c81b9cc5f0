package router

import "strings"

// Access is the level a path requires.
type Access int

const (
	// AccessPublic allows anonymous requests.
	AccessPublic Access = iota
	// AccessAuthenticated requires a verified identity.
	AccessAuthenticated
)

// Rule maps a path pattern to an access level. A pattern ending in "/"
// matches every path under that prefix; any other pattern matches exactly.
type Rule struct {
	Pattern string
	Access  Access
}

// Policy is an ordered list of rules evaluated first-match. Paths that match
// no rule require authentication, so new endpoints are protected by default.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a Policy from rules in evaluation order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate returns the access level required for path.
func (p *Policy) Evaluate(path string) Access {
	for _, rule := range p.rules {
		if strings.HasSuffix(rule.Pattern, "/") {
			if strings.HasPrefix(path, rule.Pattern) {
				return rule.Access
			}
			continue
		}
		if path == rule.Pattern {
			return rule.Access
		}
	}

	return AccessAuthenticated
}
