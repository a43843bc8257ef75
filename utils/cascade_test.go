package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePriorityOrder(t *testing.T) {
	cascade := rules(
		`(?i)Trading\s+As\s+(\w+)`,
		`(?i)Tenant\s+(\w+)`,
	)

	text := "Tenant Looser\nTrading As Winner"

	assert.Equal(t, "Winner", Resolve(text, cascade))
}

func TestResolveValidatorVetoContinuesCascade(t *testing.T) {
	cascade := withValidator(rules(
		`(?i)Bank\s+Name:\s+(\w+)`,
		`(?i)Company:\s+(\w+)`,
	), NotBankName)

	text := "Bank Name: Nedbank\nCompany: Acme"

	// The first rule matches but its capture is a banking institution,
	// so the cascade must move on rather than stop.
	assert.Equal(t, "Acme", Resolve(text, cascade))
}

func TestResolveExhaustedReturnsEmpty(t *testing.T) {
	cascade := rules(`(?i)Nothing\s+Here\s+(\w+)`)

	assert.Equal(t, "", Resolve("completely unrelated text", cascade))
}

func TestResolveSkipsEmptyCapture(t *testing.T) {
	cascade := []Rule{
		{Pattern: regexp.MustCompile(`Label:(\s*)`)},
		{Pattern: regexp.MustCompile(`Value:\s*(\w+)`)},
	}

	assert.Equal(t, "real", Resolve("Label:   \nValue: real", cascade))
}

func TestResolveCleanStripsTrailingPunctuation(t *testing.T) {
	cascade := rules(`Use:\s*([^\n]+)`)

	assert.Equal(t, "OFFICES AND STORAGE", ResolveClean("Use: OFFICES  AND STORAGE.", cascade))
}
