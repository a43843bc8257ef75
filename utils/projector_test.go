package utils

import (
	"testing"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/stretchr/testify/assert"
)

func TestCompoundYearOneIsAnchor(t *testing.T) {
	assert.Equal(t, 22730.0, Compound(22730, 6, 1))
	assert.Equal(t, 22730.0, Compound(22730, 6, 0))
}

func TestCompoundRoundsToCents(t *testing.T) {
	assert.Equal(t, 24093.8, Compound(22730, 6, 2))
	assert.Equal(t, 25539.43, Compound(22730, 6, 3))
}

func TestProjectFinancialsFillsLaterYears(t *testing.T) {
	financial := dto.NewFinancialData()
	financial.EscalationRate = "6"
	financial.Year1 = dto.FinancialYearData{
		BasicRent: "22730.00",
		Security:  "45460.00",
		Refuse:    "450.00",
		Rates:     "1200.00",
		From:      "2026-03-01",
		To:        "2027-02-28",
	}

	ProjectFinancials(&financial, 3, DefaultParseOptions())

	assert.Equal(t, "24093.80", financial.Year2.BasicRent)
	assert.Equal(t, "25539.43", financial.Year3.BasicRent)
	assert.Equal(t, "477.00", financial.Year2.Refuse)
	assert.Equal(t, "1272.00", financial.Year2.Rates)

	// Security keeps the year-1 security-to-rent ratio (here 2:1)
	// instead of compounding on its own.
	assert.Equal(t, "48187.60", financial.Year2.Security)
	assert.Equal(t, "51078.86", financial.Year3.Security)

	// Year boundaries follow the commencement anniversary, minus a day.
	assert.Equal(t, "2027-03-01", financial.Year2.From)
	assert.Equal(t, "2028-02-29", financial.Year2.To)
	assert.Equal(t, "2028-03-01", financial.Year3.From)
	assert.Equal(t, "2029-02-28", financial.Year3.To)

	// Beyond the lease term nothing is projected.
	assert.Equal(t, "", financial.Year4.BasicRent)
}

func TestProjectFinancialsNeverOverwritesExtractedValues(t *testing.T) {
	financial := dto.NewFinancialData()
	financial.EscalationRate = "6"
	financial.Year1 = dto.FinancialYearData{
		BasicRent: "22730.00",
		Security:  "45460.00",
		From:      "2026-03-01",
	}
	financial.Year2 = dto.FinancialYearData{
		BasicRent: "30000.00",
		From:      "2027-04-01",
		To:        "2028-03-31",
	}

	ProjectFinancials(&financial, 2, DefaultParseOptions())

	assert.Equal(t, "30000.00", financial.Year2.BasicRent)
	assert.Equal(t, "2027-04-01", financial.Year2.From)
	assert.Equal(t, "2028-03-31", financial.Year2.To)

	// The ratio rule still applies, on the extracted rent.
	assert.Equal(t, "60000.00", financial.Year2.Security)
}

func TestProjectFinancialsFallsBackToDefaultRate(t *testing.T) {
	financial := dto.NewFinancialData()
	financial.EscalationRate = "not a number"
	financial.Year1.BasicRent = "10000.00"

	ProjectFinancials(&financial, 2, ParseOptions{DefaultEscalationRate: "10"})

	assert.Equal(t, "11000.00", financial.Year2.BasicRent)
}

func TestProjectFinancialsClampsYears(t *testing.T) {
	financial := dto.NewFinancialData()
	financial.EscalationRate = "6"
	financial.Year1.BasicRent = "10000.00"

	ProjectFinancials(&financial, 99, DefaultParseOptions())

	assert.NotEmpty(t, financial.Year5.BasicRent)
}
