package utils

import (
	"regexp"
	"strings"
)

// Rule is one candidate pattern for a single logical field. The pattern
// must carry exactly one capture group for the field value. Validate, when
// set, can veto a successful match so the cascade moves on to the next
// rule instead of stopping.
type Rule struct {
	Pattern  *regexp.Regexp
	Validate func(value string) bool
}

// Resolve tries each rule in order against text and returns the first
// accepted capture, trimmed. An exhausted cascade is not an error: it
// returns "" and the caller applies the field's default.
func Resolve(text string, rules []Rule) string {
	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		value := strings.TrimSpace(m[1])
		if value == "" {
			continue
		}
		if rule.Validate != nil && !rule.Validate(value) {
			continue
		}
		return value
	}
	return ""
}

// ResolveClean runs the cascade and passes the winner through CleanText.
func ResolveClean(text string, rules []Rule) string {
	return CleanText(Resolve(text, rules))
}

// rules is shorthand for building a validator-free cascade from raw
// pattern strings, keeping the priority order readable as data.
func rules(patterns ...string) []Rule {
	out := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Rule{Pattern: regexp.MustCompile(p)})
	}
	return out
}

// withValidator attaches the same validator to every rule of a cascade.
func withValidator(list []Rule, validate func(string) bool) []Rule {
	out := make([]Rule, len(list))
	for i, r := range list {
		out[i] = Rule{Pattern: r.Pattern, Validate: validate}
	}
	return out
}
