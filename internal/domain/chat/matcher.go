// Package chat holds the career-guidance intent matcher and the error-streak
// rules that pick between the soft and the exhaustive fallback.
package chat

import "strings"

// EscalateAfter is the number of consecutive unmatched turns that triggers
// the exhaustive fallback.
const EscalateAfter = 2

// Result is the outcome of a single turn.
type Result struct {
	Intent  Intent
	Reply   string
	Matched bool
	// Streak is the consecutive-miss count to carry into the next turn.
	Streak int
}

// Matcher resolves free text to a canned reply using an ordered rule table.
// It holds no mutable state; callers carry the streak between turns.
type Matcher struct {
	rules     []Rule
	rephrase  string
	escalated string
}

// NewMatcher builds a matcher over the given rules. A nil slice selects DefaultRules.
func NewMatcher(rules []Rule) *Matcher {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Matcher{
		rules:     rules,
		rephrase:  replyRephrase,
		escalated: replyEscalated,
	}
}

// Normalize lower-cases and trims a raw message.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// Match evaluates the rules in order against the normalized message; the first
// hit wins and clears the streak. A miss increments the streak and returns the
// soft fallback, or the exhaustive one once the streak reaches EscalateAfter,
// after which the streak starts over at zero.
func (m *Matcher) Match(raw string, streak int) Result {
	text := Normalize(raw)
	for _, rule := range m.rules {
		if rule.When(text) {
			return Result{Intent: rule.Intent, Reply: rule.Reply, Matched: true, Streak: 0}
		}
	}

	streak++
	if streak >= EscalateAfter {
		return Result{Intent: IntentEscalated, Reply: m.escalated, Streak: 0}
	}
	return Result{Intent: IntentUnmatched, Reply: m.rephrase, Streak: streak}
}

