package utils

import (
	"regexp"
	"strings"

	"github.com/benavprops/lease-extraction-service/dto"
)

// ParseOptions carries the engine's configurable heuristics. The defaults
// mirror the lease control schedule template: 6% annual escalation and a
// 1000-rand floor below which a bare "Rent" amount is treated as noise.
type ParseOptions struct {
	DefaultEscalationRate string
	MinRentAmount         float64
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		DefaultEscalationRate: "6",
		MinRentAmount:         1000,
	}
}

// Row extraction tiers, most structured first. Tier 1 is the full
// five-column schedule row; tier 2 drops the rate and escalation columns;
// tier 3 falls back to bare labeled rent amounts.
var (
	fullRowRegex    = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+([\d,]+\.?\d*)\s+([\d.]+)\s+([\d.]+)`)
	partialRowRegex = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+([\d,]+\.\d{2})`)
	bareRentRegex   = regexp.MustCompile(`(?i)(?:basic\s+)?rent(?:al)?\s*:\s*R?\s*([\d,]+\.?\d*)`)
)

var depositRules = rules(
	`(?i)Cash\s+Amount\s+Required\s+([\d,]+\.?\d*)`,
	`(?i)Security\s+Deposit[:\s]+R?\s*([\d,]+\.?\d*)`,
	`(?i)Deposit[:\s-]+R?\s*([\d,]+\.?\d*)`,
)

var depositDispositionRules = rules(
	`(?i)Deposit[^\n]*\b(held|payable)\b`,
)

var leaseFeeRules = rules(
	`(?i)Lease\s+Fees?\s+Amount\s+([\d,]+\.?\d*)`,
	`(?i)Lease\s+Fee[:\s]+R?\s*([\d,]+\.?\d*)`,
)

var escalationRules = rules(
	`(?i)Escalation[:\s]+(\d+(?:\.\d+)?)\s*%`,
	`(?i)(\d+(?:\.\d+)?)\s*%\s*(?:annual|escalation)`,
)

var utilitiesRules = rules(
	`(?is)SEWERAGE\s+&\s+WATER\s+(.+?)(?:\n|\*)`,
)

// rowMatch is one extracted table row paired with its 1-based year index.
type rowMatch struct {
	year int
	from string
	to   string
	rent string
}

// assignYears pairs raw row matches with 1-based year positions, capped
// at the table size, as a pure fold over the match list.
func assignYears(matches [][]string) []rowMatch {
	rows := make([]rowMatch, 0, dto.MaxFinancialYears)
	for i, m := range matches {
		if i >= dto.MaxFinancialYears {
			break
		}
		rows = append(rows, rowMatch{
			year: i + 1,
			from: NormalizeDate(m[1]),
			to:   NormalizeDate(m[2]),
			rent: NormalizeCurrency(m[3]),
		})
	}
	return rows
}

// ExtractFinancial populates the rental table from normalized text.
// Only year 1 (plus whatever later rows the tiers matched directly) is
// filled here; ProjectFinancials derives the rest.
func ExtractFinancial(text string, opts ParseOptions) dto.FinancialData {
	financial := dto.NewFinancialData()
	financial.EscalationRate = opts.DefaultEscalationRate
	escalationFromRow := false

	// Tier 1: full five-column rows. The first row's escalation column
	// becomes the table's escalation rate.
	fullMatches := fullRowRegex.FindAllStringSubmatch(text, -1)
	for _, row := range assignYears(fullMatches) {
		entry := financial.Year(row.year)
		entry.BasicRent = row.rent
		entry.From = row.from
		entry.To = row.to
	}
	if len(fullMatches) > 0 && fullMatches[0][5] != "" {
		financial.EscalationRate = fullMatches[0][5]
		escalationFromRow = true
	}

	// Tier 2: three-column rows, only when tier 1 found nothing.
	if len(fullMatches) == 0 {
		partialMatches := partialRowRegex.FindAllStringSubmatch(text, -1)
		for _, row := range assignYears(partialMatches) {
			entry := financial.Year(row.year)
			entry.BasicRent = row.rent
			entry.From = row.from
			entry.To = row.to
		}

		// Tier 3: bare labeled rent amounts, filtered against the noise
		// floor, assigned to years in order of appearance.
		if len(partialMatches) == 0 {
			yearIndex := 1
			for _, m := range bareRentRegex.FindAllStringSubmatch(text, -1) {
				if yearIndex > dto.MaxFinancialYears {
					break
				}
				amount, ok := ParseAmount(m[1])
				if !ok || amount < opts.MinRentAmount {
					continue
				}
				financial.Year(yearIndex).BasicRent = NormalizeCurrency(m[1])
				yearIndex++
			}
		}
	}

	if v := Resolve(text, depositRules); v != "" {
		financial.Deposit = NormalizeCurrency(v)
	}
	if v := Resolve(text, depositDispositionRules); v != "" {
		financial.DepositDisposition = strings.ToUpper(v)
	}
	if v := Resolve(text, leaseFeeRules); v != "" {
		financial.LeaseFee = NormalizeCurrency(v)
	}
	if v := ResolveClean(text, utilitiesRules); v != "" {
		financial.Utilities = v
	}
	if !escalationFromRow {
		if v := Resolve(text, escalationRules); v != "" {
			financial.EscalationRate = v
		}
	}

	return financial
}
