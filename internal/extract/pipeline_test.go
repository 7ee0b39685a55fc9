package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullInvoiceText = `SHARMA TRADERS
Invoice No: INV-2025-42
Date: 28-11-2025
Total ₹ 10,000/-
Phone: +91 9876543210
BANK DETAILS - NAME - SHARMA TRADERS, BANK ACCOUNT NO - 450010110017123, IFSC CODE - BKID0004500
GST No: 06AAFCI1834E1ZX`

func TestPipelineDefaults(t *testing.T) {
	p := NewPipeline(nil, Config{}, nil)
	require.NotNil(t, p.Logger)
	assert.Equal(t, DefaultContextWindow, p.Cfg.ContextWindow)
	assert.Equal(t, DefaultTopN, p.Cfg.TopN)
	assert.Equal(t, DefaultMaxInvoiceLen, p.Cfg.MaxInvoiceLen)
	assert.NotNil(t, p.Registry)
}

func TestPipelineFullInvoice(t *testing.T) {
	p := NewPipeline(nil, Config{}, nil)
	res := p.Extract(Input{Text: fullInvoiceText})

	require.NotNil(t, res.Record)
	rec := res.Record
	assert.Equal(t, "SHARMA TRADERS", rec.PartyName)
	assert.Equal(t, "28-11-2025", rec.InvoiceDate)
	assert.Equal(t, "2025-42", rec.InvoiceNo)
	assert.Equal(t, "10000", rec.Amount)
	assert.Equal(t, "9876543210", rec.PhoneNumber)
	assert.Equal(t, "Bank of India", rec.BankName)
	assert.Equal(t, "450010110017123", rec.AccountNo)
	assert.Equal(t, "BKID0004500", rec.IFSCCode)
	assert.Equal(t, "06AAFCI1834E1ZX", rec.TaxID)
	assert.Empty(t, res.Warnings)
}

func TestPipelineDeterministic(t *testing.T) {
	p := NewPipeline(nil, Config{}, nil)
	first := p.Extract(Input{Text: fullInvoiceText})
	for i := 0; i < 10; i++ {
		again := p.Extract(Input{Text: fullInvoiceText})
		assert.Equal(t, first.Record, again.Record)
		assert.Equal(t, first.Warnings, again.Warnings)
	}
}

func TestPipelineBareTotalInvoice(t *testing.T) {
	text := "GUPTA ELECTRICALS\nBill No: 7\nGrand Total: Rs. 10,000/-\nPayment due 28 November 2025"
	p := NewPipeline(nil, Config{}, nil)
	res := p.Extract(Input{Text: text})

	require.NotNil(t, res.Record)
	rec := res.Record
	assert.Equal(t, "GUPTA ELECTRICALS", rec.PartyName)
	assert.Equal(t, "7", rec.InvoiceNo)
	assert.Equal(t, "28-11-2025", rec.InvoiceDate)
	assert.Equal(t, "10000", rec.Amount)
	assert.Equal(t, []string{"Amount found but no Bank Account Number detected"}, res.Warnings)
}

func TestPipelineTableAmount(t *testing.T) {
	text := "INVOICE\nMehta Constructions\nPayment due 05 December 2024\nInvoice No: INV/2025/001"
	tables := [][][]string{{
		{"Description", "Qty", "Amount"},
		{"Paint work", "2", "540"},
		{"Labour", "1", "3,000.00"},
	}}
	p := NewPipeline(nil, Config{MaxInvoiceLen: 12}, nil)
	res := p.Extract(Input{Text: text, Tables: tables})

	require.NotNil(t, res.Record)
	rec := res.Record
	assert.Equal(t, "Mehta Constructions", rec.PartyName)
	assert.Equal(t, "2025/001", rec.InvoiceNo)
	assert.Equal(t, "05-12-2024", rec.InvoiceDate)
	assert.Equal(t, "3000.00", rec.Amount)
	assert.Equal(t, []string{"Amount found but no Bank Account Number detected"}, res.Warnings)
}

func TestPipelineNoText(t *testing.T) {
	p := NewPipeline(nil, Config{}, nil)
	for _, text := range []string{"", "   \n\t\n"} {
		res := p.Extract(Input{Text: text})
		assert.Nil(t, res.Record)
		assert.Equal(t, []string{"No text extracted - document may be scanned or image-based"}, res.Warnings)
	}
}

func TestPipelineAccountInvoiceCollision(t *testing.T) {
	p := NewPipeline(nil, Config{MaxInvoiceLen: 20}, nil)

	t.Run("fallback fills the shared value", func(t *testing.T) {
		res := p.Extract(Input{Text: "INV-450010110017123\nAccount No: 450010110017123"})
		require.NotNil(t, res.Record)
		assert.Equal(t, "450010110017123", res.Record.InvoiceNo)
		assert.Equal(t, "450010110017123", res.Record.AccountNo)
		assert.Contains(t, res.Warnings,
			"Bank Account No and Invoice No. are identical - one may be wrong")
	})

	t.Run("last resort keeps the collision", func(t *testing.T) {
		res := p.Extract(Input{Text: "INV-123456789\nBeneficiary 123456789"})
		require.NotNil(t, res.Record)
		assert.Equal(t, "123456789", res.Record.InvoiceNo)
		assert.Equal(t, "123456789", res.Record.AccountNo)
		assert.Contains(t, res.Warnings,
			"Bank Account No and Invoice No. are identical - one may be wrong")
	})
}

func TestPipelinePhoneAccountStaySeparate(t *testing.T) {
	text := "Account No: 9876543210\nPhone: 9123456780"
	p := NewPipeline(nil, Config{}, nil)
	res := p.Extract(Input{Text: text})

	require.NotNil(t, res.Record)
	assert.Equal(t, "9876543210", res.Record.AccountNo)
	assert.Equal(t, "9123456780", res.Record.PhoneNumber)
}

func TestPipelineDebugTrace(t *testing.T) {
	p := NewPipeline(nil, Config{Debug: true}, nil)
	res := p.Extract(Input{Text: fullInvoiceText})
	assert.Contains(t, res.Debug, "ACCOUNT_NUMBER candidates:")
	assert.Contains(t, res.Debug, "RAW TEXT")

	p = NewPipeline(nil, Config{}, nil)
	res = p.Extract(Input{Text: fullInvoiceText})
	assert.Empty(t, res.Debug)
}
