package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	reAccountHolder      = regexp.MustCompile(`(?i)account\s+holder`)
	reAccountHolderStrip = regexp.MustCompile(`(?i)(account\s+holder|name|:|-)`)
	rePartyNameShape     = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.&'\-\d]*$`)
	rePartyLabel         = regexp.MustCompile(`(?i)(?:payee|beneficiary|supplier|from|raised\s+by|prepared\s+by)\s*[:\-]?\s*([A-Za-z][A-Za-z\s.&,'\-\d]+)`)
	reBankDetailsLine    = regexp.MustCompile(`(?i)bank\s+details|your\s+bank`)
	reInlineName         = regexp.MustCompile(`(?i)NAME\s*[-–—:]\s*([A-Za-z][A-Za-z\s.&'\-\d]+?)(?:,|$)`)
	reBillTo             = regexp.MustCompile(`(?i)Bill\s+To\s*[:\-]?\s*(.*)`)
	reBillToNextLine     = regexp.MustCompile(`^[A-Za-z][A-Za-z\s.&,'\-\d]+$`)
	reInvoiceHeading     = regexp.MustCompile(`(?i)^INVOICE\b`)
	reHeadingFollower    = regexp.MustCompile(`^[A-Z][A-Za-z\s.&'\-\d]+$`)
	reHeaderLine         = regexp.MustCompile(`^[A-Z][A-Za-z\s.&,'\-\d]+$`)
)

// Label vocabulary that disqualifies a header line from being a party name.
var partySkipWords = []string{
	"invoice", "phone", "email", "address", "gst", "pan",
	"date", "total", "amount", "bank", "ifsc",
	"place", "supply", "description", "service",
	"bill to", "ship to", "payee", "beneficiary",
}

// Values that are never a party name, exact or prefix match: bank names and
// structural labels that routinely sit in the header block.
var partyBlocklist = []string{
	"bank of india", "hdfc bank", "icici bank", "sbi", "axis bank",
	"kotak mahindra bank", "punjab national bank", "union bank",
	"bank of baroda", "canara bank", "indusind bank", "yes bank",
	"federal bank", "bandhan bank", "rbl bank",
	"account", "amount", "total", "invoice", "bank", "ifsc",
	"description", "particulars", "remarks", "authorised signatory",
	"authorized signatory", "signature",
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func partyBlocked(name string) bool {
	n := strings.TrimSpace(strings.ToLower(name))
	for _, b := range partyBlocklist {
		if n == b || strings.HasPrefix(n, b) {
			return true
		}
	}
	return false
}

// ExtractPartyName tries, in priority order: an "Account Holder" block, a
// payee/beneficiary/supplier label, an inline NAME inside a bank-details
// line, a "Bill To:" label (same line, else the next non-empty line), the
// lines right after an INVOICE heading, and finally a capitalized non-label
// line within the first nine lines. Candidates pass through the blocklist
// before the best survivor is returned with its score.
func ExtractPartyName(text string) (string, float64) {
	type partyCandidate struct {
		name  string
		score float64
	}
	var candidates []partyCandidate
	add := func(name string, score float64) {
		candidates = append(candidates, partyCandidate{name, score})
	}
	lines := strings.Split(text, "\n")

	// Account Holder label and the two lines beneath it.
	for i, line := range lines {
		if !reAccountHolder.MatchString(line) {
			continue
		}
		for j := i; j < i+3 && j < len(lines); j++ {
			c := strings.TrimSpace(reAccountHolderStrip.ReplaceAllString(lines[j], ""))
			if c != "" && rePartyNameShape.MatchString(c) && len(c) > 3 && len(c) < 80 {
				score := 50.0
				if isUpper(c) {
					score += 10
				}
				add(c, score)
			}
		}
	}

	// Payee / Beneficiary / Supplier / From / Raised by / Prepared by.
	for _, line := range lines {
		if m := rePartyLabel.FindStringSubmatch(line); m != nil {
			c := strings.TrimRight(strings.TrimSpace(m[1]), ",")
			if len(c) > 3 && len(c) < 80 {
				add(c, 42)
			}
		}
	}

	// NAME inside an inline bank-details line.
	for _, line := range lines {
		if !reBankDetailsLine.MatchString(line) {
			continue
		}
		if m := reInlineName.FindStringSubmatch(line); m != nil {
			c := strings.TrimSpace(m[1])
			if len(c) > 3 && len(c) < 80 {
				add(c, 38)
			}
		}
	}

	// Bill To: value on the same line, else the next non-empty line.
	for i, line := range lines {
		m := reBillTo.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		c := strings.TrimRight(strings.TrimSpace(m[1]), ",")
		if reBillToNextLine.MatchString(c) && len(c) > 3 && len(c) < 80 {
			add(c, 36)
			continue
		}
		for j := i + 1; j < i+3 && j < len(lines); j++ {
			c2 := strings.TrimSpace(lines[j])
			if c2 != "" && reBillToNextLine.MatchString(c2) && len(c2) > 3 && len(c2) < 80 {
				add(c2, 34)
				break
			}
		}
	}

	// Name right after an INVOICE heading.
	for i, line := range lines {
		if !reInvoiceHeading.MatchString(strings.TrimSpace(line)) {
			continue
		}
		for j := i + 1; j < i+3 && j < len(lines); j++ {
			c := strings.TrimSpace(lines[j])
			if c != "" && reHeadingFollower.MatchString(c) && len(c) > 3 && len(c) < 60 {
				add(c, 40)
				break
			}
		}
	}

	// Capitalized header lines 0-8 without label vocabulary.
	limit := len(lines)
	if limit > 9 {
		limit = 9
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !reHeaderLine.MatchString(line) || len(line) <= 3 || len(line) >= 60 {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, sw := range partySkipWords {
			if strings.Contains(lower, sw) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		score := 25.0
		if i <= 2 {
			score += 8
		}
		if isUpper(line) {
			score += 5
		}
		add(line, score)
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if !partyBlocked(c.name) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return "", 0
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].score > filtered[j].score
	})
	return filtered[0].name, filtered[0].score
}
