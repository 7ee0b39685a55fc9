package extract

import (
	"regexp"
	"strings"
)

var (
	rePhoneParen = regexp.MustCompile(`\(\+?91[-\s]?([6-9]\d{9})\)`)
	rePhonePlus  = regexp.MustCompile(`\+91[-\s]?([6-9]\d{9})`)
	rePhoneWords = regexp.MustCompile(`(?i)phone|mob|tel|call|contact`)
	rePhoneBare  = regexp.MustCompile(`\b91[-\s]?([6-9]\d{9})\b`)

	reAmountDashSuffix = regexp.MustCompile(`([\d,.]+)\s*/\s*[-–—]`)
	reCurrencyPrefix   = regexp.MustCompile(`(?:Rs\.?|₹|INR)\s*([\d,.]+)`)
	reParenAmount      = regexp.MustCompile(`\(([\d,.]+)\)`)

	reSpacedDate = regexp.MustCompile(`\b(\d{1,2})\s*([/\-.])\s*([A-Za-z]{3,9}|\d{1,2})\s*([/\-.])\s*(\d{2,4})\b`)

	reAccountWords = regexp.MustCompile(`(?i)account|a\s*/?\s*c|acc|beneficiary|pay\s+to|transfer`)
	reDigitRun     = regexp.MustCompile(`\d[\d\s\-.]{8,25}\d`)
	reSeparators   = regexp.MustCompile(`[\s\-.]`)
	reDateShape    = regexp.MustCompile(`\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4}`)
	reNumericLine  = regexp.MustCompile(`^[\d\s\-.]+$`)
	reAllDigits    = regexp.MustCompile(`^\d+$`)
)

// Normalize rewrites raw document text line by line so the tokenizer sees
// canonical numeric shapes: bare 10-digit phones, amounts without currency
// markers or "/-" suffixes, dates without internal spaces, and account
// numbers collapsed to pure digit runs. The line count never changes.
//
// The date check must run before the standalone digit collapse: a line like
// "28.11.2025" is 8 digits with separators and would otherwise be eaten by
// the account rule once it grows a 4-digit year and a time suffix.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		// Phone: strip parens and country code.
		line = rePhoneParen.ReplaceAllString(line, "$1")
		line = rePhonePlus.ReplaceAllString(line, "$1")
		if rePhoneWords.MatchString(line) {
			line = rePhoneBare.ReplaceAllString(line, "$1")
		}

		// Amount: trailing /-, currency prefix, surrounding parens.
		line = reAmountDashSuffix.ReplaceAllString(line, "$1")
		line = reCurrencyPrefix.ReplaceAllString(line, "$1")
		line = reParenAmount.ReplaceAllString(line, "$1")

		// Date: "28 / 11 / 2025" -> "28/11/2025", "28 - Nov - 25" -> "28-Nov-25".
		line = reSpacedDate.ReplaceAllString(line, "${1}${2}${3}${4}${5}")

		// Account: collapse spaced/dashed/dotted digit runs into pure digits.
		if reAccountWords.MatchString(line) {
			line = reDigitRun.ReplaceAllStringFunc(line, collapseDigitRun)
		} else {
			// Without a label keyword, only collapse a standalone spaced
			// number totalling 9-18 digits, and never one shaped like a date.
			stripped := strings.TrimSpace(line)
			if stripped != "" && !reDateShape.MatchString(stripped) && reNumericLine.MatchString(stripped) {
				digits := reSeparators.ReplaceAllString(stripped, "")
				if len(digits) >= 9 && len(digits) <= 18 && reAllDigits.MatchString(digits) {
					line = digits
				}
			}
		}

		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func collapseDigitRun(run string) string {
	digits := reSeparators.ReplaceAllString(run, "")
	if len(digits) >= 9 && len(digits) <= 18 {
		return digits
	}
	return run
}
