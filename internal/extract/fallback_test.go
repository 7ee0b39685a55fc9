package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAlphanumericInvoice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"inv dash", "Ref INV-1024 enclosed", "1024"},
		{"inv slashes", "INV/2025/001", "2025/001"},
		{"bill prefix", "BILL-2025-99", "2025-99"},
		{"invoice no code", "Invoice No: INV-2025-42", "2025-42"},
		{"invoice no alnum", "Invoice No. AB12CD", "AB12CD"},
		{"label word rejected", "Invoice No: Dated", ""},
		{"digitless rejected", "Invoice No: ABC", ""},
		{"nothing", "Total 5,000.00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAlphanumericInvoice(tt.in))
		})
	}
}

func TestExtractBareAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"grand total", "Grand Total: Rs. 12,500.00", "12500.00"},
		{"total with rupee", "Total ₹ 10,000", "10000"},
		{"net amount", "Net Amount - 2500.50", "2500.50"},
		{"balance due", "Balance Due: 990", "990"},
		{"below minimum rejected", "Total: 5", ""},
		{"no label", "12,500.00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBareAmount(tt.in))
		})
	}
}

func TestExtractTableAmount(t *testing.T) {
	t.Run("no tables", func(t *testing.T) {
		val, score := ExtractTableAmount(nil)
		assert.Empty(t, val)
		assert.Zero(t, score)
	})

	t.Run("no amount header", func(t *testing.T) {
		val, _ := ExtractTableAmount([][][]string{{
			{"Description", "Qty"},
			{"Paint work", "3"},
		}})
		assert.Empty(t, val)
	})

	t.Run("canonical decimal beats bare integer", func(t *testing.T) {
		val, score := ExtractTableAmount([][][]string{{
			{"Description", "Qty", "Amount"},
			{"Paint work", "2", "540"},
			{"Labour", "1", "3,000.00"},
		}})
		assert.Equal(t, "3000.00", val)
		assert.Equal(t, 45.0, score)
	})

	t.Run("equal score ties go to the larger value", func(t *testing.T) {
		val, _ := ExtractTableAmount([][][]string{{
			{"Item", "Total"},
			{"A", "540.00"},
			{"Grand", "3,000.00"},
		}})
		assert.Equal(t, "3000.00", val)
	})

	t.Run("cell cleanup strips currency and dash suffix", func(t *testing.T) {
		val, _ := ExtractTableAmount([][][]string{{
			{"Particulars", "Amount"},
			{"Total", "Rs. 10,000/-"},
		}})
		assert.Equal(t, "10000", val)
	})

	t.Run("tiny and huge values rejected", func(t *testing.T) {
		val, _ := ExtractTableAmount([][][]string{{
			{"Sl", "Amount"},
			{"1", "2"},
			{"2", "999999999"},
		}})
		assert.Empty(t, val)
	})
}
