package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Words that can never stand alone as an invoice number.
var invoiceLabelWords = map[string]struct{}{
	"dated": {}, "date": {}, "no": {}, "number": {}, "amount": {},
	"total": {}, "description": {}, "particulars": {}, "service": {},
	"qty": {}, "rate": {}, "tax": {}, "gst": {}, "pan": {}, "ifsc": {},
	"bank": {}, "account": {},
}

var alphanumericInvoicePatterns = []*regexp.Regexp{
	// INV/INVOICE/BILL/REF prefix followed by digits with optional / or -.
	regexp.MustCompile(`(?i)(?:INV(?:OICE)?|BILL|REF)\s*[-/#:]?\s*(\d[\d/\-]*\d)`),
	// "Invoice No" / "Bill No" followed by a code that must carry a digit.
	regexp.MustCompile(`(?i)(?:Invoice|Bill)\s+No\.?\s*[:\-]?\s*([A-Z0-9][\w/\-]{0,20})`),
}

var reHasDigit = regexp.MustCompile(`\d`)

// ExtractAlphanumericInvoice catches invoice numbers the pure-digit scorer
// misses: INV-1024, INV/2025/001, BILL-2025-99, "Invoice No. ABC-123".
// It never returns a bare label word.
func ExtractAlphanumericInvoice(text string) string {
	for _, re := range alphanumericInvoicePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := strings.Trim(strings.TrimSpace(m[1]), "/-")
		if val == "" || !reHasDigit.MatchString(val) {
			continue
		}
		if _, blocked := invoiceLabelWords[strings.ToLower(val)]; blocked {
			continue
		}
		return val
	}
	return ""
}

var bareAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Grand\s+)?Total\s*[:\-]?\s*(?:Rs\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`),
	regexp.MustCompile(`(?i)(?:Net\s+)?Amount\s*[:\-]?\s*(?:Rs\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`),
	regexp.MustCompile(`(?i)Amount\s+Payable\s*[:\-]?\s*(?:Rs\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`),
	regexp.MustCompile(`(?i)Amount\s+Chargeable\s*[:\-]?\s*(?:Rs\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`),
	regexp.MustCompile(`(?i)Balance\s+(?:Due|Amount)\s*[:\-]?\s*(?:Rs\.?|INR|₹)?\s*([\d,]+(?:\.\d{1,2})?)\b`),
}

// ExtractBareAmount catches labelled totals the scorer missed. A value only
// qualifies when it parses and is at least 10, which filters out column
// indices and quantity cells.
func ExtractBareAmount(text string) string {
	for _, re := range bareAmountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := strings.ReplaceAll(m[1], ",", "")
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 10 {
			return val
		}
	}
	return ""
}

var (
	reAmountHeader    = regexp.MustCompile(`(?i)amount|total`)
	reCellDashSuffix  = regexp.MustCompile(`/[-–—]`)
	reCellCurrency    = regexp.MustCompile(`(?:Rs\.?|₹|INR)\s*`)
	reCellNonNumeric  = regexp.MustCompile(`[^\d,.]`)
	reCanonicalAmount = regexp.MustCompile(`^\d{1,3}(,\d{3})*\.\d{2}$`)
)

// ExtractTableAmount finds every Amount/Total column across the given row
// grids, collects the numeric cells beneath those headers, and returns the
// best value (separators stripped) with its score. Decimal presence and the
// canonical "X,XXX.XX" shape score higher; ties go to the largest value,
// since the grand total is usually the largest number in its column.
func ExtractTableAmount(tables [][][]string) (string, float64) {
	type cellCandidate struct {
		value string
		score float64
		num   float64
	}
	var candidates []cellCandidate

	for _, table := range tables {
		if len(table) == 0 {
			continue
		}

		amountCols := make(map[int]struct{})
		for _, row := range table {
			for colIdx, cell := range row {
				if cell != "" && reAmountHeader.MatchString(cell) {
					amountCols[colIdx] = struct{}{}
				}
			}
		}
		if len(amountCols) == 0 {
			continue
		}
		cols := make([]int, 0, len(amountCols))
		for c := range amountCols {
			cols = append(cols, c)
		}
		sort.Ints(cols)

		for _, row := range table {
			for _, colIdx := range cols {
				if colIdx >= len(row) || row[colIdx] == "" {
					continue
				}
				raw := strings.TrimSpace(row[colIdx])
				raw = reCellDashSuffix.ReplaceAllString(raw, "")
				raw = reCellCurrency.ReplaceAllString(raw, "")
				raw = reCellNonNumeric.ReplaceAllString(raw, "")
				if raw == "" {
					continue
				}
				num, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
				if err != nil || num < 10 || num >= 1e8 {
					continue
				}
				score := 10.0
				if strings.Contains(raw, ".") {
					score += 15
				}
				if reCanonicalAmount.MatchString(raw) {
					score += 20
				}
				candidates = append(candidates, cellCandidate{
					value: strings.ReplaceAll(raw, ",", ""),
					score: score,
					num:   num,
				})
			}
		}
	}

	if len(candidates) == 0 {
		return "", 0
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].num > candidates[j].num
	})
	return candidates[0].value, candidates[0].score
}
