package utils

import (
	"github.com/benavprops/lease-extraction-service/dto"
)

// The surety is the tenant's authorised representative. Name captures cut
// at the first stop keyword so the following Capacity column stays out.
var suretyNameRules = withValidator(rules(
	`(?i)Authorised\s+Representative\s+([A-Za-z\s]+?)(?:\s+Capacity|\s+Director|\s+Member|\n)`,
	`(?i)Surety\s+Name[:\s]+([A-Za-z\s]+?)(?:\s+Capacity|\s+Director|\s+Member|\n)`,
	`(?i)Representative[:\s]+([A-Za-z\s]+?)(?:\s+Capacity|\n)`,
), NotBankName)

var suretyCapacityRules = rules(
	`(?i)Capacity\s+(Director|Member|Owner|Partner|Manager)`,
)

// Surety context is narrow enough that only an explicitly labeled
// 13-digit number is believed; there is no fallback scan here.
var suretyIDRules = rules(
	`(?i)ID\s*(?:Number|No)[:\s]*(\d{13})`,
	`(?i)Identity\s+Number[:\s]*(\d{13})`,
)

var suretyAddressRules = withValidator(rules(
	`(?i)Address[:\s]+([^\n]+)`,
), ContainsAddressKeyword)

// ExtractSurety populates the surety record from normalized text.
func ExtractSurety(text string) dto.SuretyData {
	return dto.SuretyData{
		Name:     ResolveClean(text, suretyNameRules),
		IDNumber: Resolve(text, suretyIDRules),
		Address:  CleanAddress(Resolve(text, suretyAddressRules)),
		Capacity: ResolveClean(text, suretyCapacityRules),
	}
}
