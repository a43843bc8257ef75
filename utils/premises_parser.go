package utils

import (
	"regexp"
	"strconv"

	"github.com/benavprops/lease-extraction-service/dto"
)

var premisesUnitRules = rules(
	`(?i)Unit\s+No\s+([A-Za-z0-9\s]+?)(?:\s+\d+\.|\s+Area|\n)`,
	`(?i)Unit[:\s]+([A-Za-z0-9\s]+?)(?:\s+Area|\n)`,
	`(?i)Property\s+([A-Za-z0-9\s,]+?)(?:\s+Stand|\s+Township|\s+Address|\n)`,
	`(?i)(?:Erf|Stand)\s+(\d+)`,
)

var premisesBuildingNameRules = withValidator(rules(
	`(?i)Property\s*\n?\s*([A-Za-z0-9\s,]+?(?:Woodmead|Park|Estate|Centre|Center|Office))`,
	`(?i)Stand\s+No\s+Township\s*\n?\s*([A-Za-z0-9\s,]+?)(?:\s+Address|\n)`,
	`(?i)Building(?:\s+Name)?[:\s]+([A-Za-z0-9\s,]+)`,
), ContainsAddressKeyword)

var premisesAddressRules = withValidator(rules(
	`(?i)Address\s*\n?\s*(\d+\s+[A-Za-z\s,]+(?:Park|Street|Road|Lane|Drive|Avenue|Office)[A-Za-z0-9\s,]*)`,
	`(?i)Address[:\s]+(\d+[^\n]+)`,
	`(?i)(\d+\s+[A-Za-z]+\s+(?:Street|Road|Lane|Drive|Avenue)[^\n]*)`,
), ContainsAddressKeyword)

// Size cascade: labeled readings outrank a bare decimal-with-unit span.
var premisesSizeRules = rules(
	`(?i)\*\s*Main\s+Unit\s+(\d+\.?\d*)`,
	`(?i)Area\s+(\d+\.?\d*)\s*(?:m²|m2|sqm|square)`,
	`(?i)Size[:\s]+(\d+\.?\d*)`,
	`(?i)(\d+\.?\d*)\s*(?:m²|m2|sqm|square\s*met)`,
	`(?i)Unit\s+No\s+[A-Za-z0-9\s]+\s+(\d+\.\d+)`,
)

var premisesUseRules = rules(
	`(?is)Permitted\s+Usage\s*\n?\s*([A-Za-z\s,.&]+?)(?:\n\n|Base|Recoveries|$)`,
	`(?i)Permitted\s+Use[:\s]+([^\n]+)`,
	`(?i)Usage[:\s]+([^\n]+)`,
)

var percentTokenRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

var premisesPercentageRules = rules(
	`(?i)Percentage[^:\n]*:\s*(\d+(?:\.\d+)?)\s*%`,
	`(?i)Proportionate\s+Share[^:\n]*:?\s*(\d+(?:\.\d+)?)\s*%`,
)

// ExtractPremises populates the premises record from normalized text.
func ExtractPremises(text string) dto.PremisesData {
	return dto.PremisesData{
		Unit:            ResolveClean(text, premisesUnitRules),
		BuildingName:    ResolveClean(text, premisesBuildingNameRules),
		BuildingAddress: CleanAddress(Resolve(text, premisesAddressRules)),
		Size:            Resolve(text, premisesSizeRules),
		Percentage:      extractSharePercentage(text),
		PermittedUse:    ResolveClean(text, premisesUseRules),
	}
}

// extractSharePercentage returns the first bare percentage token strictly
// below 100. Larger tokens are escalation or VAT rates, never the
// premises' proportionate share.
func extractSharePercentage(text string) string {
	if v := Resolve(text, premisesPercentageRules); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f < 100 {
			return v
		}
	}
	for _, m := range percentTokenRegex.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if value < 100 {
			return m[1]
		}
	}
	return ""
}
