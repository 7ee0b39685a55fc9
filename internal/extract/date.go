package extract

import (
	"regexp"
	"strings"
)

var monthNumber = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "sept": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

var (
	reISODate       = regexp.MustCompile(`^(\d{4})[-./](\d{1,2})[-./](\d{1,2})$`)
	reDayMonthName  = regexp.MustCompile(`^(\d{1,2})[-./]\s*([A-Za-z]{3,9})\s*[-./](\d{2,4})`)
	reDayMonthDigit = regexp.MustCompile(`^(\d{1,2})[-./]\s*(\d{1,2})\s*[-./](\d{2,4})`)

	reFullDateDayFirst   = regexp.MustCompile(`\b(\d{1,2})\s+([A-Za-z]{3,9})\s+(\d{2,4})\b`)
	reFullDateMonthFirst = regexp.MustCompile(`\b([A-Za-z]{3,9})\s+(\d{1,2}),?\s+(\d{2,4})\b`)
)

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func expandYear(y string) string {
	if len(y) == 2 {
		return "20" + y
	}
	return y
}

// NormalizeDate renders any recognized date shape to DD-MM-YYYY.
// Unrecognized input passes through unchanged; this never fails.
func NormalizeDate(s string) string {
	if s == "" {
		return ""
	}

	if m := reISODate.FindStringSubmatch(s); m != nil {
		return pad2(m[3]) + "-" + pad2(m[2]) + "-" + m[1]
	}

	if m := reDayMonthName.FindStringSubmatch(s); m != nil {
		month, ok := monthNumber[strings.ToLower(m[2])]
		if !ok {
			month = "01"
		}
		return pad2(m[1]) + "-" + month + "-" + expandYear(m[3])
	}

	if m := reDayMonthDigit.FindStringSubmatch(s); m != nil {
		return pad2(m[1]) + "-" + pad2(m[2]) + "-" + expandYear(m[3])
	}

	return s
}

// ExtractFullMonthDate scans for space-separated dates with month names, in
// both day-first ("28 November 2025") and month-first ("Nov 28, 2025")
// order. Matches within ~100 characters after a date/invoice keyword score
// higher; position breaks ties, later wins, because invoice dates usually
// trail the supplier header block.
func ExtractFullMonthDate(text string) string {
	type order int
	const (
		dayFirst order = iota
		monthFirst
	)

	patterns := []struct {
		re  *regexp.Regexp
		ord order
	}{
		{reFullDateDayFirst, dayFirst},
		{reFullDateMonthFirst, monthFirst},
	}

	bestScore := -1.0
	var bestDay, bestMonth, bestYear string

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			g := func(i int) string { return text[m[2*i]:m[2*i+1]] }
			var day, month, year string
			if p.ord == dayFirst {
				day, month, year = g(1), g(2), g(3)
			} else {
				month, day, year = g(1), g(2), g(3)
			}

			monthKey := strings.ToLower(month)
			if _, ok := monthNumber[monthKey]; !ok {
				continue
			}

			start := m[0]
			ctxStart := start - 100
			if ctxStart < 0 {
				ctxStart = 0
			}
			ctx := strings.ToLower(text[ctxStart:start])

			score := 0.0
			if strings.Contains(ctx, "date") || strings.Contains(ctx, "dated") {
				score += 10
			}
			if strings.Contains(ctx, "invoice") {
				score += 5
			}
			score += float64(start) * 0.0001

			if score > bestScore {
				bestScore = score
				bestDay, bestMonth, bestYear = day, monthKey, year
			}
		}
	}

	if bestScore < 0 {
		return ""
	}
	return pad2(bestDay) + "-" + monthNumber[bestMonth] + "-" + expandYear(bestYear)
}
