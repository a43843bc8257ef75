// Package ficadoc parses the companion documents uploaded alongside a
// lease: CIPC registration certificates, identity documents and FICA
// forms. The fields feed the tenant and surety sections of the lease
// record.
package ficadoc

import (
	"regexp"
	"strings"

	"github.com/benavprops/lease-extraction-service/utils"
)

type CIPCData struct {
	Name            string `json:"name"`
	RegNo           string `json:"reg_no"`
	VATNo           string `json:"vat_no"`
	TradingAs       string `json:"trading_as"`
	PostalAddress   string `json:"postal_address"`
	PhysicalAddress string `json:"physical_address"`
	Valid           bool   `json:"valid"`
}

type IDData struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Address  string `json:"address"`
}

type FICAData struct {
	CompanyName       string `json:"company_name"`
	IDNumber          string `json:"id_number"`
	Email             string `json:"email"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankBranchCode    string `json:"bank_branch_code"`
	BankAccountType   string `json:"bank_account_type"`
	BankAccountHolder string `json:"bank_account_holder"`
}

var cipcNameRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)(?:company\s+name|entity\s+name|registered\s+name)[:\s]+(.+?)(?:\n|registration|reg\s+no|vat)`)},
	{Pattern: regexp.MustCompile(`(?mi)^([A-Z][A-Z\s&()]+(?:PTY|LTD|CC|PROPRIETARY|LIMITED|CLOSE\s+CORPORATION))$`)},
	{Pattern: regexp.MustCompile(`([A-Z][A-Z\s&()]+(?:PTY|LTD|CC|PROPRIETARY|LIMITED|CLOSE\s+CORPORATION))`)},
}

var cipcRegNoRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)(?:registration\s+number|reg\s+no|reg\s+number|company\s+reg)[:\s#]+(\d{4}/\d{6,8}/\d{2})`)},
	{Pattern: regexp.MustCompile(`(\d{4}/\d{6,8}/\d{2})`)},
}

var cipcTradingAsRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)(?:trading\s+as|trading\s+name|trade\s+name)[:\s]+(.+?)(?:\n|postal|physical|address|registration)`)},
}

var (
	regNoShapeRegex   = regexp.MustCompile(`^\d{4}/\d{6,8}/\d{2}$`)
	cipcKeywordsRegex = regexp.MustCompile(`(?i)(cipc|companies\s+and\s+intellectual\s+property|certificate\s+of\s+incorporation|registration\s+certificate)`)
	addressNoiseRegex = regexp.MustCompile(`(?i)^(same|postal|physical|contact|south\s+africa)$`)
)

// ParseCIPC extracts company details from a CIPC certificate text. Valid
// reports whether the text plausibly is a CIPC document at all.
func ParseCIPC(text string) CIPCData {
	data := CIPCData{
		Name:            strings.ToUpper(utils.ResolveClean(text, cipcNameRules)),
		RegNo:           utils.Resolve(text, cipcRegNoRules),
		VATNo:           utils.ExtractVATNumber(text),
		TradingAs:       strings.ToUpper(utils.ResolveClean(text, cipcTradingAsRules)),
		PostalAddress:   multilineAddress(text, `(?i)(?:postal\s+address|postal)`),
		PhysicalAddress: multilineAddress(text, `(?i)(?:physical\s+address|physical)`),
	}

	if data.TradingAs == "" {
		data.TradingAs = data.Name
	}

	hasRegNo := regNoShapeRegex.MatchString(data.RegNo)
	hasName := len(data.Name) > 3
	data.Valid = (hasRegNo || hasName) && (cipcKeywordsRegex.MatchString(text) || hasRegNo)

	return data
}

var idNameRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)(?:full\s+name|name|surname)[:\s]+([A-Z][A-Z\s]{2,}[A-Z])`)},
	{Pattern: regexp.MustCompile(`(?:full\s+name|name)[:\s]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)},
	{Pattern: regexp.MustCompile(`(?m)^([A-Z][A-Z\s]{2,}[A-Z])$`)},
}

var idNumberRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)(?:id\s+number|identity\s+number|id\s+no)[:\s#]+(\d{13})`)},
}

// ParseID extracts personal details from an identity document text. An
// unlabeled 13-digit number is only believed when its surroundings read
// like identity context.
func ParseID(text string) IDData {
	data := IDData{
		Name:     strings.ToUpper(utils.ResolveClean(text, idNameRules)),
		IDNumber: utils.Resolve(text, idNumberRules),
		Address:  multilineAddress(text, `(?i)(?:residential\s+address|physical\s+address|address)`),
	}
	if data.IDNumber == "" {
		data.IDNumber = utils.FindIdentityNumber(text)
	}
	return data
}

var ficaCompanyLineRegex = regexp.MustCompile(`(?i)^company\s+name\s*[:\s]+\s*(.+)$`)

var ficaBankNameRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?is)PART\s+E[:\s]*BANKING\s+DETAILS.*?Bank\s+Name[:\s]+(.+?)(?:\n|Account\s+Type|Account\s+Number)`)},
	{Pattern: regexp.MustCompile(`(?i)Bank\s+Name[:\s]+(.+?)(?:\n|Account\s+Type|Account\s+Number|Branch\s+Code)`)},
}

var ficaAccountNumberRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)Account\s+(?:Number|No)[:\s]+([0-9\s-]+?)(?:\n|Branch|Account\s+Type|Account\s+Holder)`)},
}

var ficaBranchCodeRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)Branch\s+Code[:\s]+(\d+)`)},
}

var ficaAccountTypeRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)Account\s+Type[:\s]+(.+?)(?:\n|Account\s+Number|Branch\s+Code)`)},
}

var ficaAccountHolderRules = []utils.Rule{
	{Pattern: regexp.MustCompile(`(?i)Account\s+Holder[:\s]+(.+?)(?:\n|PART|SIGNATURE|DIRECTOR)`)},
}

var emailRegex = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.[a-zA-Z]{2,}`)

// ParseFICA extracts the company and banking sections of a FICA form.
func ParseFICA(text string) FICAData {
	data := FICAData{
		CompanyName:       ficaCompanyName(text),
		IDNumber:          utils.FindIdentityNumber(text),
		Email:             emailRegex.FindString(text),
		BankName:          utils.ResolveClean(text, ficaBankNameRules),
		BankBranchCode:    utils.Resolve(text, ficaBranchCodeRules),
		BankAccountType:   utils.ResolveClean(text, ficaAccountTypeRules),
		BankAccountHolder: utils.ResolveClean(text, ficaAccountHolderRules),
	}
	if v := utils.Resolve(text, ficaAccountNumberRules); v != "" {
		data.BankAccountNumber = strings.ReplaceAll(strings.ReplaceAll(v, " ", ""), "-", "")
	}
	return data
}

// ficaCompanyName walks the form line by line: only a line that itself
// starts with "Company Name" counts, a "Bank Name" line never does, and a
// value that names a banking institution is rejected outright.
func ficaCompanyName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		if strings.Contains(lower, "bank name") {
			continue
		}
		if !strings.HasPrefix(lower, "company name") {
			continue
		}
		m := ficaCompanyLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := utils.CleanText(m[1])
		if !utils.NotBankName(name) {
			continue
		}
		if len(name) > 2 && len(name) < 200 {
			return name
		}
	}
	return ""
}

// multilineAddress captures the 2-6 lines after an address label, drops
// filler lines, and joins the rest with commas.
func multilineAddress(text, labelPattern string) string {
	re := regexp.MustCompile(labelPattern + `[:\s]*\n((?:[^\n]+\n?){2,6})`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	var kept []string
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || addressNoiseRegex.MatchString(line) {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 6 {
			break
		}
	}
	return strings.Join(kept, ", ")
}
