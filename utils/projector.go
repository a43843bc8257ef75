package utils

import (
	"math"
	"strconv"

	"github.com/benavprops/lease-extraction-service/dto"
)

// Compound derives the value for a 1-based lease year from the anchor
// value by annual percentage compounding, rounded to two decimals.
// Year 1 returns the anchor exactly.
func Compound(anchor, rate float64, yearIndex int) float64 {
	if yearIndex <= 1 {
		return anchor
	}
	v := anchor * math.Pow(1+rate/100, float64(yearIndex-1))
	return math.Round(v*100) / 100
}

// ProjectFinancials fills the rental table's later years from the year-1
// anchor. Rent, refuse and rates compound independently at the table's
// escalation rate. Security does not compound: the year-1 security-to-rent
// ratio is computed once and reapplied to each later year's rent, so the
// two series keep their original proportion. Directly extracted values are
// never overwritten.
func ProjectFinancials(financial *dto.FinancialData, leaseYears int, opts ParseOptions) {
	years := leaseYears
	if years < 1 {
		years = 1
	}
	if years > dto.MaxFinancialYears {
		years = dto.MaxFinancialYears
	}

	rate := parseRate(financial.EscalationRate, opts.DefaultEscalationRate)
	anchor := financial.Year(1)

	anchorRent, hasRent := ParseAmount(anchor.BasicRent)
	anchorRefuse, hasRefuse := ParseAmount(anchor.Refuse)
	anchorRates, hasRates := ParseAmount(anchor.Rates)

	securityRatio := 0.0
	if sec, ok := ParseAmount(anchor.Security); ok && hasRent && anchorRent > 0 {
		securityRatio = sec / anchorRent
	}

	for n := 2; n <= years; n++ {
		entry := financial.Year(n)

		if entry.BasicRent == "" && hasRent {
			entry.BasicRent = FormatAmount(Compound(anchorRent, rate, n))
		}
		if entry.Refuse == "" && hasRefuse {
			entry.Refuse = FormatAmount(Compound(anchorRefuse, rate, n))
		}
		if entry.Rates == "" && hasRates {
			entry.Rates = FormatAmount(Compound(anchorRates, rate, n))
		}
		if entry.Security == "" && securityRatio > 0 {
			if rent, ok := ParseAmount(entry.BasicRent); ok {
				entry.Security = FormatAmount(math.Round(rent*securityRatio*100) / 100)
			}
		}

		if entry.From == "" && anchor.From != "" {
			entry.From = AddYearsISO(anchor.From, n-1)
			entry.To = anniversaryEnd(anchor.From, n)
		}
	}
}

func parseRate(rate, fallback string) float64 {
	if v, err := strconv.ParseFloat(rate, 64); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(fallback, 64)
	if err != nil {
		return 0
	}
	return v
}
