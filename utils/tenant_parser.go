package utils

import (
	"regexp"

	"github.com/benavprops/lease-extraction-service/dto"
)

// Tenant name labels in priority order. The last rule catches the header
// layout where the company name opens a line and is followed by a
// parenthesized numeric identifier.
var tenantNameRules = withValidator(rules(
	`(?i)Trading\s+As\s+(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Tenant\s*[/\\]\s*Lessee\s+(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Tenant\s*[:\s]\s*(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?i)Lessee\s+(`+companyBody+`\s*\(Pty\)\s*Ltd)`,
	`(?mi)^(`+companyBody+`\s*\(Pty\)\s*Ltd)\s*\(\d+\)`,
), NotBankName)

var tenantRegNoRules = rules(
	`(?i)Ref\s+No\s+([\d/]+)`,
	`(?i)Registration\s+No[:\s]+([\d/]+)`,
	`(?i)Reg\s+No[:\s]+([\d/]+)`,
)

var tenantPhysicalAddressRules = withValidator(rules(
	`(?i)Domicile\s+([^\n]+)`,
	`(?i)Physical\s+Address[:\s]+([^\n]+)`,
), ContainsAddressKeyword)

var tenantPostalAddressRules = withValidator(rules(
	`(?i)Postal\s+Address[:\s]+([^\n]+)`,
	`(?i)Postal\s+([^\n]+)`,
	`(?i)(PO\s+Box[:\s]+[^\n]+)`,
), ContainsAddressKeyword)

var emailRegex = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.[a-zA-Z]{2,}`)

// Banking-detail cascades shared by the schedule's banking block. The
// bank-name rules veto captures containing "account" so a following
// "Account No" label cannot bleed into the name.
var tenantBankNameRules = withValidator(rules(
	`(?i)Bank\s+Name[:\s]+([A-Za-z ]+)`,
	`(?i)Banking\s*\n\s*Bank\s+([A-Za-z ]+)`,
	`(?i)\bBank[:\s]+([A-Za-z]+)`,
), func(value string) bool {
	return !containsFold(value, "account")
})

var tenantAccountNoRules = rules(
	`(?i)Account\s+No\s+(\d+)`,
	`(?i)Account\s+Number[:\s]+(\d+)`,
	`(?i)Acc\s+No[:\s]+(\d+)`,
)

var tenantBranchCodeRules = rules(
	`(?i)Branch\s+No\s+(\d+)`,
	`(?i)Branch\s+Code[:\s]+(\d+)`,
)

var tenantAccountTypeRules = rules(
	`(?i)Account\s+Type[:\s]+([A-Za-z\s]+?)(?:\n|Account\s+Number|Branch)`,
)

var tenantAccountHolderRules = withValidator(rules(
	`(?i)Account\s+Name\s+([A-Za-z0-9\s\(\)\-\.&']+?)(?:\s+Account|\s+Branch|\n)`,
	`(?i)Account\s+Holder[:\s]+([^\n]+)`,
), NotBankName)

// ExtractTenant populates the tenant record from normalized text.
func ExtractTenant(text string) dto.TenantData {
	tenant := dto.TenantData{
		Name:              ResolveClean(text, tenantNameRules),
		RegNo:             ResolveClean(text, tenantRegNoRules),
		VATNo:             ExtractVATNumber(text),
		PhysicalAddress:   CleanAddress(Resolve(text, tenantPhysicalAddressRules)),
		PostalAddress:     CleanAddress(Resolve(text, tenantPostalAddressRules)),
		BankName:          ResolveClean(text, tenantBankNameRules),
		BankAccountNumber: Resolve(text, tenantAccountNoRules),
		BankBranchCode:    Resolve(text, tenantBranchCodeRules),
		BankAccountType:   ResolveClean(text, tenantAccountTypeRules),
		BankAccountHolder: ResolveClean(text, tenantAccountHolderRules),
	}

	if tenant.Name == "" {
		tenant.Name = companyNearKeyword(text, "trading as")
	}
	// The schedule records the trading name on the same line as the
	// company name; absent a separate label the two are the same.
	tenant.TradingAs = tenant.Name

	if m := emailRegex.FindString(text); m != "" {
		tenant.Email = m
	}

	return tenant
}
