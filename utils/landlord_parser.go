package utils

import (
	"regexp"
	"strings"

	"github.com/benavprops/lease-extraction-service/dto"
)

// Company names in the schedule carry a (Pty) Ltd suffix; the name
// cascades anchor on it so prose around the label cannot leak in.
const companyBody = `[A-Za-z0-9\-\.&'\s]+?`

var companySuffixRegex = regexp.MustCompile(`(?i)(` + companyBody + `\s*\(Pty\)\s*Ltd)`)

// Landlord name labels in priority order. "Owner/Lessor" is the schedule's
// own heading and outranks the looser variants.
var landlordNameRules = withValidator(rules(
	`(?i)Owner\s*[/\\]\s*Lessor\s*\n?\s*(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Owner\s*\n?\s*(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Lessor\s+(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Landlord\s*[:\s]\s*(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Property\s+Owner\s*[:\s]\s*(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
), NotBankName)

var landlordRegNoRules = rules(
	`(?i)Entity\s+Type\s+Company[^R]*Reference\s+No\s+([\d/]+)`,
	`(?i)Reference\s+No\s+([\d/]+)`,
	`(?i)Reg(?:istration)?\s*(?:No|Number)[:\s]+([\d/]+)`,
)

var landlordPhoneRules = rules(
	`(?i)Telephone\s+(\d[\d\s\-]+\d)`,
	`(?i)Tel[:\s]+(\d[\d\s\-]+\d)`,
	`(?i)Phone[:\s]+(\d[\d\s\-]+\d)`,
	`(?i)Mobile\s+(\d[\d\s\-]+\d)`,
)

var (
	landlordBankRegex    = regexp.MustCompile(`(?i)BANK\s*:\s*([^,\n]+),\s*([^\n]+)`)
	landlordAccountRegex = regexp.MustCompile(`(?i)A/C\s+NO:\s*([0-9\s]+?)[,\s]+BRANCH\s+CODE:\s*([0-9]+)`)
)

// ExtractLandlord populates the landlord record from normalized text.
// Every field resolves independently; a missing field stays empty.
func ExtractLandlord(text string) dto.LandlordData {
	landlord := dto.LandlordData{
		Name:  ResolveClean(text, landlordNameRules),
		RegNo: ResolveClean(text, landlordRegNoRules),
		VATNo: ExtractVATNumber(text),
		Phone: ResolveClean(text, landlordPhoneRules),
	}

	// No labeled company near an owner heading: fall back to the first
	// company-suffix span inside the owner section.
	if landlord.Name == "" {
		landlord.Name = companyNearKeyword(text, "owner")
	}

	// The Bank field legitimately holds an institution name, so the
	// party-name exclusion list does not apply here.
	if m := landlordBankRegex.FindStringSubmatch(text); m != nil {
		landlord.Bank = CleanText(m[1])
		landlord.Branch = CleanText(m[2])
	}
	if m := landlordAccountRegex.FindStringSubmatch(text); m != nil {
		landlord.AccountNo = CleanText(m[1])
		landlord.BranchCode = CleanText(m[2])
	}

	return landlord
}

// companyNearKeyword scans the 500 characters following the first
// occurrence of keyword for a company-suffix span.
func companyNearKeyword(text, keyword string) string {
	idx := strings.Index(strings.ToLower(text), keyword)
	if idx < 0 {
		return ""
	}
	end := idx + 500
	if end > len(text) {
		end = len(text)
	}
	m := companySuffixRegex.FindStringSubmatch(text[idx:end])
	if m == nil {
		return ""
	}
	name := CleanText(m[1])
	if !NotBankName(name) {
		return ""
	}
	return name
}
