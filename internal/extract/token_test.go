package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGlued(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"no.-450010110017123", []string{"no.", "450010110017123"}},
		{"Code-BKID0004500", []string{"Code", "BKID0004500"}},
		{"IFSC:BKID0004500", []string{"IFSC", "BKID0004500"}},
		{"No:-06AAFCI1834E1ZX", []string{"No", "06AAFCI1834E1ZX"}},
		{"Name-", []string{"Name"}},
		{"(9876543210)", []string{"9876543210"}},
		{"(+91-9876543210)", []string{"9876543210"}},
		// Protected shapes stay whole.
		{"28-Nov-25", []string{"28-Nov-25"}},
		{"05-Dec-2024", []string{"05-Dec-2024"}},
		{"PHASE-III", []string{"PHASE-III"}},
		{"well-known", []string{"well-known"}},
		{"self-employed", []string{"self-employed"}},
		// Hyphenated, but the left side is a field label: split.
		{"ref-1001", []string{"ref", "1001"}},
		{"3,000.00", []string{"3,000.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitGlued(tt.in))
		})
	}
}

func TestTokenizeContextStaysOnLine(t *testing.T) {
	text := "IFSC Code: BKID0004500\nAccount no.- 450010110017123"
	tokens := Tokenize(text, 5)

	var ifscTok, accTok *Token
	for i := range tokens {
		switch tokens[i].Text {
		case "BKID0004500":
			ifscTok = &tokens[i]
		case "450010110017123":
			accTok = &tokens[i]
		}
	}
	require.NotNil(t, ifscTok)
	require.NotNil(t, accTok)

	assert.Equal(t, []string{"IFSC", "Code"}, ifscTok.Prev)
	assert.Empty(t, ifscTok.Next, "context must not cross the line boundary")
	assert.Equal(t, 0, ifscTok.LineIdx)

	assert.Equal(t, []string{"Account", "no."}, accTok.Prev)
	assert.Equal(t, 1, accTok.LineIdx)
}

func TestTokenizeOffsets(t *testing.T) {
	tokens := Tokenize("a b a", 5)
	require.Len(t, tokens, 3)
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 2, tokens[1].Pos)
	assert.Equal(t, 4, tokens[2].Pos, "repeated text must advance to the next occurrence")
}

func TestTokenizeWindowSize(t *testing.T) {
	tokens := Tokenize("one two three four five six seven eight", 2)
	require.Len(t, tokens, 8)
	mid := tokens[4] // "five"
	assert.Equal(t, []string{"three", "four"}, mid.Prev)
	assert.Equal(t, []string{"six", "seven"}, mid.Next)
}
