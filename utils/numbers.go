package utils

import (
	"regexp"
	"strings"
)

// Shared disambiguation heuristics. The same numeric shape means different
// things in different surroundings: a 13-digit span is an identity number
// only outside banking/phone context, and a 10-digit span is a VAT number
// only when it is not a slice of a longer identity number.

// Known banking institutions. A candidate company or person name that
// equals or contains one of these is a mislabeled bank detail, never a
// party to the lease.
var bankInstitutions = []string{
	"standard bank",
	"nedbank",
	"absa",
	"fnb",
	"capitec",
	"investec",
	"first national bank",
	"african bank",
}

// NotBankName vetoes candidates drawn from a bank-detail line.
func NotBankName(value string) bool {
	lower := strings.ToLower(value)
	for _, bank := range bankInstitutions {
		if lower == bank || strings.Contains(lower, bank) {
			return false
		}
	}
	return true
}

// contextWindow is how far around an unlabeled digit span we look for
// qualifying or disqualifying vocabulary.
const contextWindow = 50

var (
	identityContextRegex = regexp.MustCompile(`(?i)(?:id|identity|director|signatory)`)
	bankingContextRegex  = regexp.MustCompile(`(?i)(?:phone|mobile|account|bank)`)
	thirteenDigitsRegex  = regexp.MustCompile(`\b(\d{13})\b`)
)

// FindIdentityNumber scans every bare 13-digit span and accepts the first
// whose surrounding window reads like identity context and not like a
// phone number or bank account. Used when no labeled match exists.
func FindIdentityNumber(text string) string {
	for _, loc := range thirteenDigitsRegex.FindAllStringIndex(text, -1) {
		start := loc[0] - contextWindow
		if start < 0 {
			start = 0
		}
		end := loc[1] + contextWindow
		if end > len(text) {
			end = len(text)
		}
		window := text[start:end]
		if identityContextRegex.MatchString(window) && !bankingContextRegex.MatchString(window) {
			return text[loc[0]:loc[1]]
		}
	}
	return ""
}

var embeddedIdentityRegex = regexp.MustCompile(`\d{13}`)

var vatNumberRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)vat\s+registration\s+(?:number|no)[:\s#]+(\d{10})`),
	regexp.MustCompile(`(?i)vat\s+(?:number|no|reg)[:\s#]+(\d{10})`),
	regexp.MustCompile(`(?i)vat[:\s]+(\d{10})`),
}

// ExtractVATNumber resolves a labeled 10-digit VAT number, rejecting any
// capture that sits inside a 13-digit identity number.
func ExtractVATNumber(text string) string {
	for _, re := range vatNumberRules {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		value := text[m[2]:m[3]]
		start := m[2] - 5
		if start < 0 {
			start = 0
		}
		end := m[3] + 5
		if end > len(text) {
			end = len(text)
		}
		if embeddedIdentityRegex.MatchString(text[start:end]) {
			continue
		}
		return value
	}
	return ""
}

// Address vocabulary: a captured span must contain at least one of these
// tokens to be believed as an address rather than unrelated prose.
var addressKeywordRegex = regexp.MustCompile(`(?i)\b(?:street|road|lane|drive|avenue|crescent|close|place|park|estate|office|centre|center|box|township|woodmead)\b`)

// ContainsAddressKeyword is the cascade validator for address fields.
func ContainsAddressKeyword(value string) bool {
	return addressKeywordRegex.MatchString(value)
}
