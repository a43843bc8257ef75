package dto

// Sentinel placeholder for fields whose absence is business-meaningful
// (turnover clauses etc). Distinct from "", which means "not extracted".
const NotApplicable = "N/A"

// Defaults carried over from the lease control schedule template.
const (
	DefaultLeaseFee    = "750.00"
	DefaultUtilities   = "METERED OR % OF EXPENSE"
	DefaultDisposition = "HELD"
)

type LandlordData struct {
	Name       string `json:"name"`
	RegNo      string `json:"reg_no"`
	VATNo      string `json:"vat_no"`
	Phone      string `json:"phone"`
	Bank       string `json:"bank"`
	Branch     string `json:"branch"`
	AccountNo  string `json:"account_no"`
	BranchCode string `json:"branch_code"`
}

type TenantData struct {
	Name              string `json:"name"`
	RegNo             string `json:"reg_no"`
	VATNo             string `json:"vat_no"`
	TradingAs         string `json:"trading_as"`
	PostalAddress     string `json:"postal_address"`
	PhysicalAddress   string `json:"physical_address"`
	Email             string `json:"email"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankBranchCode    string `json:"bank_branch_code"`
	BankAccountType   string `json:"bank_account_type"`
	BankAccountHolder string `json:"bank_account_holder"`
}

type SuretyData struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
	Capacity string `json:"capacity"`
}

type PremisesData struct {
	Unit            string `json:"unit"`
	BuildingName    string `json:"building_name"`
	BuildingAddress string `json:"building_address"`
	Size            string `json:"size"`
	Percentage      string `json:"percentage"`
	PermittedUse    string `json:"permitted_use"`
}

type LeaseTermData struct {
	Years              int    `json:"years"`
	Months             int    `json:"months"`
	CommencementDate   string `json:"commencement_date"`
	TerminationDate    string `json:"termination_date"`
	OptionYears        int    `json:"option_years"`
	OptionMonths       int    `json:"option_months"`
	OptionExerciseDate string `json:"option_exercise_date"`
}

// FinancialYearData holds one year of the rental table. All amounts are
// decimal strings ("22730.00"); dates are ISO (YYYY-MM-DD).
type FinancialYearData struct {
	BasicRent     string `json:"basic_rent"`
	Security      string `json:"security"`
	Refuse        string `json:"refuse"`
	Rates         string `json:"rates"`
	SewerageWater string `json:"sewerage_water"`
	From          string `json:"from"`
	To            string `json:"to"`
}

type FinancialData struct {
	Year1 FinancialYearData `json:"year1"`
	Year2 FinancialYearData `json:"year2"`
	Year3 FinancialYearData `json:"year3"`
	Year4 FinancialYearData `json:"year4"`
	Year5 FinancialYearData `json:"year5"`

	Deposit            string `json:"deposit"`
	DepositDisposition string `json:"deposit_disposition"`
	LeaseFee           string `json:"lease_fee"`
	Utilities          string `json:"utilities"`
	EscalationRate     string `json:"escalation_rate"`

	TurnoverPercentage      string `json:"turnover_percentage"`
	FinancialYearEnd        string `json:"financial_year_end"`
	MinimumTurnover         string `json:"minimum_turnover"`
	AdvertisingContribution string `json:"advertising_contribution"`
	TenantBankAccount       string `json:"tenant_bank_account"`
}

// Year gives addressable access to the table rows by 1-based index.
// Out-of-range indexes return nil.
func (f *FinancialData) Year(n int) *FinancialYearData {
	switch n {
	case 1:
		return &f.Year1
	case 2:
		return &f.Year2
	case 3:
		return &f.Year3
	case 4:
		return &f.Year4
	case 5:
		return &f.Year5
	}
	return nil
}

// MaxFinancialYears caps the rental table, matching the five-year layout
// of the lease control schedule.
const MaxFinancialYears = 5

type LeaseData struct {
	Landlord  LandlordData  `json:"landlord"`
	Tenant    TenantData    `json:"tenant"`
	Surety    SuretyData    `json:"surety"`
	Premises  PremisesData  `json:"premises"`
	Lease     LeaseTermData `json:"lease"`
	Financial FinancialData `json:"financial"`
}

// NewLeaseData returns a record with every field present and defaulted.
// Consumers never check for absence, only for emptiness or the N/A
// sentinel. The escalation rate is set by the financial extractor, which
// owns the configured default.
func NewLeaseData() LeaseData {
	return LeaseData{
		Lease: LeaseTermData{
			Years:       3,
			Months:      0,
			OptionYears: 3,
		},
		Financial: NewFinancialData(),
	}
}

// NewFinancialData returns a defaulted rental table. The N/A sentinel
// marks clauses that are business-meaningfully absent and must survive
// untouched through assembly and projection.
func NewFinancialData() FinancialData {
	return FinancialData{
		DepositDisposition:      DefaultDisposition,
		LeaseFee:                DefaultLeaseFee,
		Utilities:               DefaultUtilities,
		TurnoverPercentage:      NotApplicable,
		FinancialYearEnd:        NotApplicable,
		MinimumTurnover:         NotApplicable,
		AdvertisingContribution: NotApplicable,
		TenantBankAccount:       NotApplicable,
	}
}
