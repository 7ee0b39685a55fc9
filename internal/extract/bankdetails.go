package extract

import (
	"regexp"
	"strings"
)

// BankDetails holds whatever the inline bank-detail parser could recover.
// Empty fields were not found.
type BankDetails struct {
	AccountNo string
	IFSC      string
	BankName  string
}

// Account label variants, tried in priority order: explicit bank-account
// labels first, loose keyword-near-digits last.
var bankAccountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BANK\s+ACCOUNT\s+NO\.?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)Account\s+(?:Number|No\.?)\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)(?:Saving|Current)\s+A\s*/?\s*C\s*(?:No\.?|Number)?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)A\s*[/.]\s*C\s*(?:No\.?|Number)?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)Acc(?:ount|t)?\s*(?:No\.?|Number)?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)Beneficiary\s+(?:Account|A\s*/?\s*C)\s*(?:No\.?)?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)Credit\s+(?:Account|A\s*/?\s*C)\s*(?:No\.?)?\s*[-–—:]\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)(?:Pay|Transfer)\s+[Tt]o\s*[:\-]?\s*(\d{9,18})`),
	regexp.MustCompile(`(?i)(?:account|a\s*/?\s*c|acc)\D{0,15}(\d{9,18})`),
	// Spaced/dashed/dotted account digits after a label; collapsed below.
	regexp.MustCompile(`(?i)(?:account|a\s*/?\s*c|acc)\D{0,15}(\d[\d\s\-.]{8,25}\d)`),
}

var bankIFSCPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)IFSC\s*(?:Code)?\s*[-–—:]\s*([A-Z]{4}\d{7})`),
	regexp.MustCompile(`(?i)IFSC\s*[-–—:]?\s*([A-Z]{4}\d{7})`),
	// Bare routing code anywhere, last resort.
	regexp.MustCompile(`(?i)\b([A-Z]{4}\d{7})\b`),
}

var bankNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BANK\s+NAME\s*[-–—:]\s*([A-Za-z\s.&]+?)(?:,|\n|$)`),
	regexp.MustCompile(`(?i)Bank\s*[-–—:]\s*([A-Za-z][A-Za-z\s.&]+?)(?:,|\n|$)`),
}

// ParseBankDetails recognizes bank details in the common Indian invoice
// layouts: single-line comma-separated triples ("BANK ACCOUNT NO - ...,
// IFSC CODE - ..."), multiline label-value pairs in all their Ac No / A/C /
// Acct / Saving A/C / Beneficiary / Pay to spellings, and as a last resort
// a bare IFSC anywhere in the text.
func ParseBankDetails(text string) BankDetails {
	var d BankDetails

	for _, re := range bankAccountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := reSeparators.ReplaceAllString(strings.TrimSpace(m[1]), "")
		if len(digits) >= 9 && len(digits) <= 18 && reAllDigits.MatchString(digits) {
			d.AccountNo = digits
			break
		}
	}

	for _, re := range bankIFSCPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			d.IFSC = strings.ToUpper(strings.TrimSpace(m[1]))
			break
		}
	}

	for _, re := range bankNamePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			name := strings.TrimRight(strings.TrimSpace(m[1]), ",")
			if len(name) > 2 {
				d.BankName = name
				break
			}
		}
	}

	return d
}
