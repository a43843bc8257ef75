package utils

import (
	"testing"

	"github.com/benavprops/lease-extraction-service/dto"
	"github.com/stretchr/testify/assert"
)

const sampleScheduleText = `LEASE CONTROL SCHEDULE

Owner / Lessor
Benav Properties (Pty) Ltd
Reference No 2001/012345/07
VAT: 4123456789
Telephone 011 234 5678
BANK: Standard Bank, Sandton City
A/C NO: 123456789, BRANCH CODE: 051001

Tenant / Lessee Acme Trading (Pty) Ltd (12345)
Ref No 2015/098765/07
Domicile Unit 4B Woodmead Office Park, 105 Western Services Road
Email: info@acmetrading.co.za

Banking
Bank Nedbank
Account No 1122334455
Branch No 198765
Account Name Acme Trading (Pty) Ltd

Authorised Representative John Smith Capacity Director
ID Number: 8001015009087

Unit No 4B
Area 120.50 m2
Proportionate Share of Expenses: 4.325%
Permitted Usage
OFFICES AND STORAGE

Lease Starts 01/03/2026
Lease Ends 28/02/2029
Period in Months 36
Option Period (in months) 36
Exercise By 31/08/2028

01/03/2026 28/02/2027 22,730.00 187.05 6
Cash Amount Required 45,460.00
`

func TestParseLeaseControlFullSchedule(t *testing.T) {
	data := ParseLeaseControl(sampleScheduleText, DefaultParseOptions())

	assert.Equal(t, "Benav Properties (Pty) Ltd", data.Landlord.Name)
	assert.Equal(t, "2001/012345/07", data.Landlord.RegNo)
	assert.Equal(t, "4123456789", data.Landlord.VATNo)
	assert.Equal(t, "011 234 5678", data.Landlord.Phone)
	assert.Equal(t, "Standard Bank", data.Landlord.Bank)
	assert.Equal(t, "Sandton City", data.Landlord.Branch)
	assert.Equal(t, "123456789", data.Landlord.AccountNo)
	assert.Equal(t, "051001", data.Landlord.BranchCode)

	assert.Equal(t, "Acme Trading (Pty) Ltd", data.Tenant.Name)
	assert.Equal(t, "Acme Trading (Pty) Ltd", data.Tenant.TradingAs)
	assert.Equal(t, "2015/098765/07", data.Tenant.RegNo)
	assert.Equal(t, "info@acmetrading.co.za", data.Tenant.Email)
	assert.Equal(t, "Unit 4B Woodmead Office Park, 105 Western Services Road", data.Tenant.PhysicalAddress)
	assert.Equal(t, "Nedbank", data.Tenant.BankName)
	assert.Equal(t, "1122334455", data.Tenant.BankAccountNumber)
	assert.Equal(t, "198765", data.Tenant.BankBranchCode)
	assert.Equal(t, "Acme Trading (Pty) Ltd", data.Tenant.BankAccountHolder)

	assert.Equal(t, "John Smith", data.Surety.Name)
	assert.Equal(t, "Director", data.Surety.Capacity)
	assert.Equal(t, "8001015009087", data.Surety.IDNumber)

	assert.Equal(t, "4B", data.Premises.Unit)
	assert.Equal(t, "120.50", data.Premises.Size)
	assert.Equal(t, "4.325", data.Premises.Percentage)
	assert.Equal(t, "OFFICES AND STORAGE", data.Premises.PermittedUse)

	assert.Equal(t, 3, data.Lease.Years)
	assert.Equal(t, 0, data.Lease.Months)
	assert.Equal(t, "2026-03-01", data.Lease.CommencementDate)
	assert.Equal(t, "2029-02-28", data.Lease.TerminationDate)
	assert.Equal(t, 3, data.Lease.OptionYears)
	assert.Equal(t, "2028-08-31", data.Lease.OptionExerciseDate)

	assert.Equal(t, "22730.00", data.Financial.Year1.BasicRent)
	assert.Equal(t, "2026-03-01", data.Financial.Year1.From)
	assert.Equal(t, "6", data.Financial.EscalationRate)
	assert.Equal(t, "45460.00", data.Financial.Deposit)

	// Years 2 and 3 are projected off year 1 at the table's escalation.
	assert.Equal(t, "24093.80", data.Financial.Year2.BasicRent)
	assert.Equal(t, "2027-03-01", data.Financial.Year2.From)
	assert.Equal(t, "2028-02-29", data.Financial.Year2.To)
	assert.Equal(t, "25539.43", data.Financial.Year3.BasicRent)
	assert.Equal(t, "", data.Financial.Year4.BasicRent)
}

func TestParseLeaseControlEmptyInput(t *testing.T) {
	data := ParseLeaseControl("   \n  ", DefaultParseOptions())

	assert.Equal(t, dto.LandlordData{}, data.Landlord)
	assert.Equal(t, 3, data.Lease.Years)
	assert.Equal(t, 3, data.Lease.OptionYears)
	assert.Equal(t, "6", data.Financial.EscalationRate)
	assert.Equal(t, "750.00", data.Financial.LeaseFee)
	assert.Equal(t, "METERED OR % OF EXPENSE", data.Financial.Utilities)
	assert.Equal(t, "HELD", data.Financial.DepositDisposition)
	assert.Equal(t, "N/A", data.Financial.TurnoverPercentage)
	assert.Equal(t, "N/A", data.Financial.TenantBankAccount)
}

func TestExtractTenantNeverNamesABank(t *testing.T) {
	text := `Banking
Bank Name: Nedbank
Account No 1122334455
`

	tenant := ExtractTenant(text)

	assert.Equal(t, "", tenant.Name)
	assert.Equal(t, "Nedbank", tenant.BankName)
}

func TestExtractPremisesPercentageGuard(t *testing.T) {
	text := `Escalation: 150%
Proportionate Share: 4.325%
`

	premises := ExtractPremises(text)

	// A token at or above 100 is a rate, never the proportionate share.
	assert.Equal(t, "4.325", premises.Percentage)
}

func TestExtractLeaseTermPeriodOverridesDates(t *testing.T) {
	text := `Lease Starts 01/03/2026
Lease Ends 28/02/2031
Period in Months 30
`

	lease := ExtractLeaseTerm(text)

	assert.Equal(t, 2, lease.Years)
	assert.Equal(t, 6, lease.Months)
	assert.Equal(t, "2026-03-01", lease.CommencementDate)
	assert.Equal(t, "2031-02-28", lease.TerminationDate)
}
