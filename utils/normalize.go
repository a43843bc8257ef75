package utils

import (
	"regexp"
	"strings"
)

var (
	lineEndingRegex = regexp.MustCompile(`\r\n?`)
	hspaceRegex     = regexp.MustCompile(`[ \t]+`)
	blankLineRegex  = regexp.MustCompile(`\n *\n(?: *\n)+`)
	trailingPunct   = regexp.MustCompile(`[.,;:]+$`)
	doubleComma     = regexp.MustCompile(`,\s*,`)
	wspaceRegex     = regexp.MustCompile(`\s+`)
)

// NormalizeText canonicalizes OCR / PDF text before pattern matching:
// one newline form, runs of spaces and tabs collapsed to a single space,
// runs of blank lines collapsed to one blank line. Idempotent.
func NormalizeText(text string) string {
	text = lineEndingRegex.ReplaceAllString(text, "\n")
	text = hspaceRegex.ReplaceAllString(text, " ")
	text = blankLineRegex.ReplaceAllString(text, "\n\n")
	return text
}

// CleanText collapses internal whitespace, trims, and strips trailing
// punctuation from a free-text field value.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSpace(wspaceRegex.ReplaceAllString(text, " "))
	return strings.TrimSpace(trailingPunct.ReplaceAllString(text, ""))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// CleanAddress flattens a multi-line address into comma-joined segments
// and removes doubled commas left behind by empty lines.
func CleanAddress(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\n", ", ")
	text = wspaceRegex.ReplaceAllString(text, " ")
	text = doubleComma.ReplaceAllString(text, ",")
	text = strings.Trim(text, " ,")
	return text
}
