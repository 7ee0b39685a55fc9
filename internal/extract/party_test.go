package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPartyNameAccountHolder(t *testing.T) {
	name, score := ExtractPartyName("Account Holder Name: SHARMA TRADERS\nBank: HDFC Bank")
	assert.Equal(t, "SHARMA TRADERS", name)
	assert.Equal(t, 60.0, score)

	// Mixed case still wins, just without the all-caps bonus.
	name, score = ExtractPartyName("Account Holder: Sharma Traders")
	assert.Equal(t, "Sharma Traders", name)
	assert.Equal(t, 50.0, score)
}

func TestExtractPartyNamePayeeLabel(t *testing.T) {
	name, score := ExtractPartyName("Payee: Gupta Electricals,\nTotal 5,000")
	assert.Equal(t, "Gupta Electricals", name)
	assert.Equal(t, 42.0, score)
}

func TestExtractPartyNameInlineBankDetails(t *testing.T) {
	name, score := ExtractPartyName("BANK DETAILS - NAME - SHARMA TRADERS, BANK ACCOUNT NO - 450010110017123")
	assert.Equal(t, "SHARMA TRADERS", name)
	assert.Equal(t, 38.0, score)
}

func TestExtractPartyNameBillTo(t *testing.T) {
	name, score := ExtractPartyName("Bill To: Mehta Constructions\nSite Office")
	assert.Equal(t, "Mehta Constructions", name)
	assert.Equal(t, 36.0, score)

	// Value on the following line.
	name, score = ExtractPartyName("Bill To:\nMehta Constructions\nPune")
	assert.Equal(t, "Mehta Constructions", name)
	assert.Equal(t, 34.0, score)
}

func TestExtractPartyNameAfterInvoiceHeading(t *testing.T) {
	name, score := ExtractPartyName("INVOICE\nGupta Electricals\nNo: 42")
	assert.Equal(t, "Gupta Electricals", name)
	assert.Equal(t, 40.0, score)
}

func TestExtractPartyNameHeaderLine(t *testing.T) {
	name, score := ExtractPartyName("SHARMA TRADERS\nGST No: 06AAFCI1834E1ZX\nDate: 28-11-2025")
	assert.Equal(t, "SHARMA TRADERS", name)
	assert.Equal(t, 38.0, score)
}

func TestExtractPartyNameBlocklist(t *testing.T) {
	// A bank name in the header block must never become the party.
	name, _ := ExtractPartyName("HDFC Bank\nGST No: 06AAFCI1834E1ZX")
	assert.Empty(t, name)

	name, _ = ExtractPartyName("Authorised Signatory\nDate: 28-11-2025")
	assert.Empty(t, name)
}

func TestExtractPartyNamePriority(t *testing.T) {
	// The labelled holder beats the header line even when the header comes first.
	text := "GUPTA ELECTRICALS\nInvoice No: 42\nAccount Holder Name: SHARMA TRADERS"
	name, _ := ExtractPartyName(text)
	assert.Equal(t, "SHARMA TRADERS", name)
}
