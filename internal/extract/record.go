package extract

import "github.com/invoicelens/invoicelens/constants"

// Record is the structured result for one document. Empty string means the
// field was not found. Amount and account numbers carry no separators.
type Record struct {
	PartyName   string
	InvoiceDate string
	InvoiceNo   string
	Amount      string
	PhoneNumber string
	BankName    string
	AccountNo   string
	IFSCCode    string
	TaxID       string
}

// Get returns the value for one of the constants.Field* names.
func (r *Record) Get(field string) string {
	switch field {
	case constants.FieldPartyName:
		return r.PartyName
	case constants.FieldInvoiceDate:
		return r.InvoiceDate
	case constants.FieldInvoiceNo:
		return r.InvoiceNo
	case constants.FieldAmount:
		return r.Amount
	case constants.FieldPhoneNumber:
		return r.PhoneNumber
	case constants.FieldBankName:
		return r.BankName
	case constants.FieldAccountNo:
		return r.AccountNo
	case constants.FieldIFSCCode:
		return r.IFSCCode
	case constants.FieldTaxID:
		return r.TaxID
	}
	return ""
}

// Row returns the field values in constants.RecordColumns order.
func (r *Record) Row() []string {
	row := make([]string, 0, len(constants.RecordColumns))
	for _, col := range constants.RecordColumns {
		row = append(row, r.Get(col))
	}
	return row
}
