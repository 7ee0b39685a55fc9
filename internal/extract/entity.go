package extract

import "regexp"

// Kind identifies one extractable entity kind.
type Kind int

const (
	KindIFSC Kind = iota
	KindPAN
	KindGST
	KindAccountNumber
	KindInvoiceNumber
	KindAmount
	KindDate
	KindPhoneNumber
)

// Kinds lists every entity kind in a stable order. The scorer and the
// cross-entity penalty loop iterate this slice, never a map.
var Kinds = []Kind{
	KindIFSC,
	KindPAN,
	KindGST,
	KindAccountNumber,
	KindInvoiceNumber,
	KindAmount,
	KindDate,
	KindPhoneNumber,
}

func (k Kind) String() string {
	switch k {
	case KindIFSC:
		return "IFSC"
	case KindPAN:
		return "PAN"
	case KindGST:
		return "GST"
	case KindAccountNumber:
		return "ACCOUNT_NUMBER"
	case KindInvoiceNumber:
		return "INVOICE_NUMBER"
	case KindAmount:
		return "AMOUNT"
	case KindDate:
		return "DATE"
	case KindPhoneNumber:
		return "PHONE_NUMBER"
	}
	return "UNKNOWN"
}

// KindFromString maps a kind name back to its Kind. Used by the weight
// override loader; returns false for unknown names.
func KindFromString(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Definition describes how one entity kind is recognized and scored:
// format patterns are a hard gate (logical OR), keywords are soft weighted
// evidence, Validate re-checks a committed value, Bonus is a fixed priority
// added on top of the base score.
type Definition struct {
	Formats  []*regexp.Regexp
	Keywords map[string]float64
	Validate func(string) bool
	Bonus    float64
}

// Registry is the full set of entity definitions. It is built once and
// never mutated afterward, so it is safe to share across workers.
type Registry map[Kind]*Definition

var reIFSCStrict = regexp.MustCompile(`^[A-Z]{4}\d{7}$`)

// DefaultRegistry returns the built-in entity table. Keyword weights are
// tuned against sample invoices; changing them is a behavior change.
func DefaultRegistry() Registry {
	return Registry{
		KindIFSC: {
			Formats: []*regexp.Regexp{regexp.MustCompile(`(?i)^[A-Z]{4}[0-9]{7}$`)},
			Keywords: map[string]float64{
				"ifsc": 8, "code": 3, "bank": 4, "branch": 3,
			},
			Validate: reIFSCStrict.MatchString,
		},
		KindPAN: {
			Formats: []*regexp.Regexp{regexp.MustCompile(`(?i)^[A-Z]{5}[0-9]{4}[A-Z]$`)},
			Keywords: map[string]float64{
				"pan": 9, "permanent": 5, "account": 3, "number": 2, "tin": 4,
			},
		},
		KindGST: {
			// 15-char GSTIN: state code + PAN + entity digit + Z + checksum.
			Formats: []*regexp.Regexp{regexp.MustCompile(`(?i)^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z][Z][0-9A-Z]$`)},
			Keywords: map[string]float64{
				"gst": 9, "gstin": 10, "tin": 5, "tax": 4, "identification": 3, "no": 2,
			},
		},
		KindAccountNumber: {
			Formats: []*regexp.Regexp{regexp.MustCompile(`^\d{9,18}$`)},
			Keywords: map[string]float64{
				"account": 8, "number": 4, "ac": 7, "a/c": 9, "acc": 7,
				"acct": 7, "bank": 5, "holder": 3, "no": 3, "no.": 3,
				"beneficiary": 4, "credit": 3, "saving": 3, "current": 3,
				"pay": 2, "transfer": 3,
			},
		},
		KindInvoiceNumber: {
			// Single digit allowed; many small invoices use "1".
			Formats: []*regexp.Regexp{regexp.MustCompile(`^\d{1,7}$`)},
			Keywords: map[string]float64{
				"invoice": 9, "no": 5, "number": 4, "bill": 6, "#": 5, "dated": 3,
				"ref": 4, "reference": 4,
			},
		},
		KindAmount: {
			// Comma-formatted, decimal, or bare integer of 2+ digits. Bare
			// integers rely on strong keywords to outscore other kinds.
			Formats: []*regexp.Regexp{regexp.MustCompile(`^(\d{1,3}(,\d{3})+(\.\d{1,2})?|\d+\.\d{1,2}|\d{2,})$`)},
			Keywords: map[string]float64{
				"amount": 9, "total": 7, "grand": 5, "net": 4, "payable": 6,
				"balance": 5, "due": 4, "rs": 3, "inr": 3, "₹": 4, "rate": 2,
				"rs.": 3, "charges": 3, "chargeable": 4,
			},
		},
		KindDate: {
			// DD-Mon-YY, DD/MM/YYYY, DD.MM.YYYY, YYYY-MM-DD.
			Formats: []*regexp.Regexp{regexp.MustCompile(`^(\d{1,2}[-./]\s*([A-Za-z]{3,9}|\d{1,2})\s*[-./]\d{2,4}|\d{4}[-./]\d{1,2}[-./]\d{1,2})$`)},
			Keywords: map[string]float64{
				"date": 8, "dated": 9, "invoice": 4, "on": 2, "day": 3,
			},
		},
		KindPhoneNumber: {
			// Indian mobile: 10 digits starting 6-9.
			Formats: []*regexp.Regexp{regexp.MustCompile(`^[6-9]\d{9}$`)},
			Keywords: map[string]float64{
				"phone": 9, "ph": 7, "tel": 7, "mobile": 9, "mob": 8,
				"cell": 6, "contact": 5, "fax": 5, "whatsapp": 7,
				"helpline": 4, "toll": 4, "call": 4,
				"phone:": 9, "ph:": 7, "tel:": 7, "mobile:": 9, "mob:": 8,
				"fax:": 5, "contact:": 5, "whatsapp:": 7,
			},
		},
	}
}

// phoneContext hard-suppresses phone-adjacent numbers from being read as
// account or invoice numbers (or anything else that is not a phone).
var phoneContext = map[string]struct{}{
	"phone": {}, "ph": {}, "ph.": {}, "tel": {}, "tel.": {}, "mobile": {},
	"mob": {}, "mob.": {}, "cell": {}, "contact": {}, "fax": {}, "fax.": {},
	"helpline": {}, "toll": {}, "whatsapp": {}, "call": {}, "sms": {},
	"isd": {}, "std": {},
	"phone:": {}, "ph:": {}, "tel:": {}, "mobile:": {}, "mob:": {},
	"fax:": {}, "contact:": {}, "whatsapp:": {}, "helpline:": {},
}

// accountContext is the mirror suppression for the phone kind: a number
// sitting under an account label is never a phone unless a phone keyword
// also appears nearby.
var accountContext = map[string]struct{}{
	"account": {}, "a/c": {}, "ac": {}, "acc": {}, "acct": {},
	"beneficiary": {},
}
