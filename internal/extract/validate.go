package extract

import "fmt"

// DefaultMaxInvoiceLen is the invoice-number length beyond which a value is
// flagged as probably misclassified.
const DefaultMaxInvoiceLen = 7

// ValidateRecord runs the cross-field checks and returns warnings in a
// fixed order. It never blocks output; suspicious values stay in the record
// for operator inspection.
func ValidateRecord(rec *Record, maxInvoiceLen int) []string {
	if maxInvoiceLen <= 0 {
		maxInvoiceLen = DefaultMaxInvoiceLen
	}

	var warnings []string

	if rec.Amount != "" && rec.AccountNo == "" {
		warnings = append(warnings, "Amount found but no Bank Account Number detected")
	}
	if rec.AccountNo != "" && rec.IFSCCode == "" {
		warnings = append(warnings, "Account Number found but no IFSC Code detected")
	}
	if rec.IFSCCode != "" && !reIFSCStrict.MatchString(rec.IFSCCode) {
		warnings = append(warnings, fmt.Sprintf("IFSC Code '%s' doesn't match expected format (4 letters + 7 digits)", rec.IFSCCode))
	}
	if rec.InvoiceNo != "" && len(rec.InvoiceNo) > maxInvoiceLen {
		warnings = append(warnings, fmt.Sprintf("Invoice No. '%s' is unusually long - may be misclassified", rec.InvoiceNo))
	}
	if rec.AccountNo != "" && rec.PhoneNumber != "" && rec.AccountNo == rec.PhoneNumber {
		warnings = append(warnings, "Bank Account No and Phone Number are identical - one may be wrong")
	}
	if rec.AccountNo != "" && rec.InvoiceNo != "" && rec.AccountNo == rec.InvoiceNo {
		warnings = append(warnings, "Bank Account No and Invoice No. are identical - one may be wrong")
	}
	if rec.PartyName == "" {
		warnings = append(warnings, "Party name could not be detected")
	}
	if rec.InvoiceDate == "" {
		warnings = append(warnings, "Invoice Date could not be detected")
	}
	if rec.Amount == "" {
		warnings = append(warnings, "Amount could not be detected")
	}

	return warnings
}
