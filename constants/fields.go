package constants

// Output field names for one extracted invoice record.
const (
	FieldPartyName   = "Party name"
	FieldInvoiceDate = "Invoice Date"
	FieldInvoiceNo   = "Invoice No."
	FieldAmount      = "Amount"
	FieldPhoneNumber = "Phone Number"
	FieldBankName    = "Bank Name"
	FieldAccountNo   = "Bank Account No"
	FieldIFSCCode    = "IFSC Code"
	FieldTaxID       = "PAN Number / GST"
)

// RecordColumns is the fixed column order for exports and reports.
var RecordColumns = []string{
	FieldPartyName,
	FieldInvoiceDate,
	FieldInvoiceNo,
	FieldAmount,
	FieldPhoneNumber,
	FieldBankName,
	FieldAccountNo,
	FieldIFSCCode,
	FieldTaxID,
}
