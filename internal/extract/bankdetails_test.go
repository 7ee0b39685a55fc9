package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBankDetailsInlineTriple(t *testing.T) {
	text := "BANK DETAILS - NAME - SHARMA TRADERS, BANK ACCOUNT NO - 450010110017123, IFSC CODE - BKID0004500"
	d := ParseBankDetails(text)
	assert.Equal(t, "450010110017123", d.AccountNo)
	assert.Equal(t, "BKID0004500", d.IFSC)
}

func TestParseBankDetailsMultiline(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		account string
	}{
		{"account number label", "Account Number: 450010110017123", "450010110017123"},
		{"ac no", "A/C No. - 450010110017123", "450010110017123"},
		{"saving ac", "Saving A/C No: 450010110017123", "450010110017123"},
		{"acct", "Acct No: 450010110017123", "450010110017123"},
		{"beneficiary", "Beneficiary Account No - 450010110017123", "450010110017123"},
		{"pay to", "Pay to: 450010110017123", "450010110017123"},
		{"spaced digits collapse", "Account No - 4500 1011 0017 123", "450010110017123"},
		{"too short rejected", "Account No: 12345678", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.account, ParseBankDetails(tt.in).AccountNo)
		})
	}
}

func TestParseBankDetailsIFSC(t *testing.T) {
	assert.Equal(t, "BKID0004500", ParseBankDetails("IFSC Code: BKID0004500").IFSC)
	assert.Equal(t, "HDFC0001234", ParseBankDetails("IFSC - HDFC0001234").IFSC)
	// Bare routing code anywhere is the last resort.
	assert.Equal(t, "SBIN0001234", ParseBankDetails("Remit via SBIN0001234 branch").IFSC)
	assert.Empty(t, ParseBankDetails("IFSC: pending").IFSC)
}

func TestParseBankDetailsBankName(t *testing.T) {
	assert.Equal(t, "Bank of India", ParseBankDetails("BANK NAME - Bank of India, BRANCH - Pune").BankName)
	assert.Equal(t, "HDFC Bank", ParseBankDetails("Bank: HDFC Bank\nBranch: Andheri").BankName)
	assert.Empty(t, ParseBankDetails("no bank details here").BankName)
}
