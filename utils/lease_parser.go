package utils

import (
	"strings"

	"github.com/benavprops/lease-extraction-service/dto"
)

// ParseLeaseControl runs the full extraction pipeline over one lease
// control schedule text: normalize, run the six extractors independently,
// assemble, then project the later financial years. It is total: empty or
// unusable input yields a fully defaulted record, never an error.
func ParseLeaseControl(text string, opts ParseOptions) dto.LeaseData {
	if strings.TrimSpace(text) == "" {
		data := dto.NewLeaseData()
		data.Financial.EscalationRate = opts.DefaultEscalationRate
		return data
	}

	normalized := NormalizeText(text)

	data := dto.LeaseData{
		Landlord:  ExtractLandlord(normalized),
		Tenant:    ExtractTenant(normalized),
		Surety:    ExtractSurety(normalized),
		Premises:  ExtractPremises(normalized),
		Lease:     ExtractLeaseTerm(normalized),
		Financial: ExtractFinancial(normalized, opts),
	}

	ProjectFinancials(&data.Financial, data.Lease.Years, opts)

	return data
}
