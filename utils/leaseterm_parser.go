package utils

import (
	"strconv"

	"github.com/benavprops/lease-extraction-service/dto"
)

// Date captures accept both schedule forms: DD/MM/YYYY and the long
// textual "01 MARCH 2026". NormalizeDate sorts them out afterwards.
const dateCapture = `(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}\s+[A-Za-z]+\s+\d{4})`

var leaseStartRules = rules(
	`(?i)Lease\s+Starts?\s+`+dateCapture,
	`(?i)Commencement\s+Date[:\s]+`+dateCapture,
	`(?i)Start\s+Date[:\s]+`+dateCapture,
)

var leaseEndRules = rules(
	`(?i)Lease\s+Ends?\s+`+dateCapture,
	`(?i)Termination\s+Date[:\s]+`+dateCapture,
	`(?i)End\s+Date[:\s]+`+dateCapture,
)

var leasePeriodRules = rules(
	`(?i)Period\s+in\s+Months\s+(\d+)`,
	`(?i)Lease\s+Period[:\s]+(\d+)\s*months`,
	`(?i)Duration[:\s]+(\d+)\s*months`,
)

var optionPeriodRules = rules(
	`(?i)Option\s+Period\s*\(?in\s*months\)?\s*(\d+)`,
	`(?i)Option[:\s]+(\d+)\s*months`,
)

var optionExerciseRules = rules(
	`(?i)Exercise\s+By\s+`+dateCapture,
	`(?i)Exercise\s+Date[:\s]+`+dateCapture,
	`(?i)To\s+Be\s+Exercised\s+By\s+`+dateCapture,
)

// ExtractLeaseTerm populates the lease term record. Defaults: three
// initial years, three option years. An explicit period-in-months figure
// overrides any duration implied by the start/end dates.
func ExtractLeaseTerm(text string) dto.LeaseTermData {
	lease := dto.LeaseTermData{
		Years:       3,
		Months:      0,
		OptionYears: 3,
	}

	lease.CommencementDate = NormalizeDate(Resolve(text, leaseStartRules))
	lease.TerminationDate = NormalizeDate(Resolve(text, leaseEndRules))
	lease.OptionExerciseDate = NormalizeDate(Resolve(text, optionExerciseRules))

	if v := Resolve(text, leasePeriodRules); v != "" {
		if total, err := strconv.Atoi(v); err == nil {
			lease.Years = total / 12
			lease.Months = total % 12
		}
	}

	if v := Resolve(text, optionPeriodRules); v != "" {
		if total, err := strconv.Atoi(v); err == nil {
			lease.OptionYears = total / 12
			lease.OptionMonths = total % 12
		}
	}

	return lease
}
