package ficadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const cipcCertificateText = `COMPANIES AND INTELLECTUAL PROPERTY COMMISSION
Registration Certificate

Company Name: Acme Trading (Pty) Ltd
Registration Number: 2015/098765/07
VAT No: 4123456789
Trading As: Acme Stores

Postal Address:
PO Box 123
Sandton
2196

Physical Address:
Unit 4B Woodmead Office Park
105 Western Services Road
Sandton
`

func TestParseCIPC(t *testing.T) {
	data := ParseCIPC(cipcCertificateText)

	assert.Equal(t, "ACME TRADING (PTY) LTD", data.Name)
	assert.Equal(t, "2015/098765/07", data.RegNo)
	assert.Equal(t, "4123456789", data.VATNo)
	assert.Equal(t, "ACME STORES", data.TradingAs)
	assert.Equal(t, "PO Box 123, Sandton, 2196", data.PostalAddress)
	assert.Equal(t, "Unit 4B Woodmead Office Park, 105 Western Services Road, Sandton", data.PhysicalAddress)
	assert.True(t, data.Valid)
}

func TestParseCIPCRejectsUnrelatedText(t *testing.T) {
	data := ParseCIPC("an invoice for garden services, due on receipt")

	assert.False(t, data.Valid)
}

func TestParseID(t *testing.T) {
	text := `REPUBLIC OF SOUTH AFRICA
IDENTITY DOCUMENT

Name: JOHN SMITH
ID Number: 8001015009087
`

	data := ParseID(text)

	assert.Equal(t, "JOHN SMITH", data.Name)
	assert.Equal(t, "8001015009087", data.IDNumber)
}

func TestParseIDUnlabeledNumberNeedsIdentityContext(t *testing.T) {
	data := ParseID("the director identity 8001015009087 appears here")
	assert.Equal(t, "8001015009087", data.IDNumber)

	data = ParseID("transfer to account 8001015009087 before month end")
	assert.Equal(t, "", data.IDNumber)
}

const ficaFormText = `FICA VERIFICATION FORM

Company Name: Acme Trading (Pty) Ltd
Director ID: 8001015009087
Email: info@acmetrading.co.za
Registered office at 105 Western Services Road

PART E: BANKING DETAILS
Bank Name: Nedbank
Account Type: Current
Account Number: 11 2233 4455
Branch Code: 198765
Account Holder: Acme Trading
`

func TestParseFICA(t *testing.T) {
	data := ParseFICA(ficaFormText)

	assert.Equal(t, "Acme Trading (Pty) Ltd", data.CompanyName)
	assert.Equal(t, "8001015009087", data.IDNumber)
	assert.Equal(t, "info@acmetrading.co.za", data.Email)
	assert.Equal(t, "Nedbank", data.BankName)
	assert.Equal(t, "Current", data.BankAccountType)
	assert.Equal(t, "1122334455", data.BankAccountNumber)
	assert.Equal(t, "198765", data.BankBranchCode)
	assert.Equal(t, "Acme Trading", data.BankAccountHolder)
}

func TestParseFICACompanyNameNeverABank(t *testing.T) {
	text := `Company Name: Nedbank
Bank Name: Nedbank
`

	data := ParseFICA(text)

	assert.Equal(t, "", data.CompanyName)
	assert.Equal(t, "Nedbank", data.BankName)
}
