package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scheduleTableText = `BASIC RENTAL
From To Amount Rate Escalation
01/03/2026 28/02/2027 22,730.00 187.05 6
01/03/2027 29/02/2028 24,093.80 198.27 6

Cash Amount Required 45,460.00
Deposit to be held in trust
Lease Fees Amount 750.00
SEWERAGE & WATER METERED OR % OF EXPENSE
`

func TestExtractFinancialFullRows(t *testing.T) {
	financial := ExtractFinancial(scheduleTableText, DefaultParseOptions())

	assert.Equal(t, "22730.00", financial.Year1.BasicRent)
	assert.Equal(t, "2026-03-01", financial.Year1.From)
	assert.Equal(t, "2027-02-28", financial.Year1.To)
	assert.Equal(t, "24093.80", financial.Year2.BasicRent)
	assert.Equal(t, "2027-03-01", financial.Year2.From)

	// The first row's escalation column wins over the configured default.
	assert.Equal(t, "6", financial.EscalationRate)

	assert.Equal(t, "45460.00", financial.Deposit)
	assert.Equal(t, "HELD", financial.DepositDisposition)
	assert.Equal(t, "750.00", financial.LeaseFee)
	assert.Equal(t, "METERED OR % OF EXPENSE", financial.Utilities)
}

func TestExtractFinancialBareRentFallback(t *testing.T) {
	text := `Parking rent: R350.00
Basic Rent: R22,730.00
Escalation: 7.5%
`

	financial := ExtractFinancial(text, DefaultParseOptions())

	// The parking amount sits below the noise floor, so the labeled rent
	// becomes year 1.
	assert.Equal(t, "22730.00", financial.Year1.BasicRent)
	assert.Equal(t, "", financial.Year2.BasicRent)
	assert.Equal(t, "7.5", financial.EscalationRate)
}

func TestExtractFinancialEmptyTextKeepsDefaults(t *testing.T) {
	financial := ExtractFinancial("no money mentioned anywhere", DefaultParseOptions())

	assert.Equal(t, "", financial.Year1.BasicRent)
	assert.Equal(t, "6", financial.EscalationRate)
	assert.Equal(t, "750.00", financial.LeaseFee)
	assert.Equal(t, "METERED OR % OF EXPENSE", financial.Utilities)
	assert.Equal(t, "HELD", financial.DepositDisposition)
	assert.Equal(t, "N/A", financial.TurnoverPercentage)
}

func TestExtractFinancialCapsAtFiveYears(t *testing.T) {
	text := `Rent: R10,000.00
Rent: R11,000.00
Rent: R12,000.00
Rent: R13,000.00
Rent: R14,000.00
Rent: R15,000.00
`

	financial := ExtractFinancial(text, DefaultParseOptions())

	assert.Equal(t, "10000.00", financial.Year1.BasicRent)
	assert.Equal(t, "14000.00", financial.Year5.BasicRent)
}
