package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhones(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"parens with country code", "Call (+91-9876543210)", "Call 9876543210"},
		{"parens without plus", "Contact (91-9876543210)", "Contact 9876543210"},
		{"plus prefix", "Phone: +91 9876543210", "Phone: 9876543210"},
		{"bare country code near phone word", "Phone: 919876543210", "Phone: 9876543210"},
		{"bare country code without phone word stays", "Ref 919876543210", "Ref 919876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeAmounts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing dash suffix", "Total 10,000/-", "Total 10,000"},
		{"currency prefix", "Rs. 5,000", "5,000"},
		{"rupee glyph", "Total ₹ 10,000/-", "Total 10,000"},
		{"inr prefix", "INR 2500.00", "2500.00"},
		{"parenthesised amount", "Amount (3,000.00)", "Amount 3,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeDates(t *testing.T) {
	assert.Equal(t, "Date: 28/11/2025", Normalize("Date: 28 / 11 / 2025"))
	assert.Equal(t, "Dated 28-Nov-25", Normalize("Dated 28 - Nov - 25"))
}

func TestNormalizeAccountDigits(t *testing.T) {
	// Label line: spaced digits collapse.
	assert.Equal(t, "Account No. 450010110017123", Normalize("Account No. 4500 1011 0017 123"))
	// Standalone numeric line collapses too.
	assert.Equal(t, "450010110017123", Normalize("4500 1011 0017 123"))
	// Too short to be an account number: untouched.
	assert.Equal(t, "12 34", Normalize("12 34"))
	// Date-shaped standalone lines never collapse.
	assert.Equal(t, "28.11.2025", Normalize("28.11.2025"))
}

func TestNormalizeKeepsLineCount(t *testing.T) {
	in := "SHARMA TRADERS\n\nTotal ₹ 10,000/-\nPhone: 919876543210\n"
	assert.Equal(t, strings.Count(in, "\n"), strings.Count(Normalize(in), "\n"))
}
