package extract

import "strings"

// ifscBankName maps the leading four letters of an IFSC routing code to the
// issuing institution.
var ifscBankName = map[string]string{
	"HDFC": "HDFC Bank",
	"ICIC": "ICICI Bank",
	"SBIN": "SBI",
	"AXIS": "Axis Bank",
	"KKBK": "Kotak Mahindra Bank",
	"BKID": "Bank of India",
	"PUNB": "Punjab National Bank",
	"UBIN": "Union Bank of India",
	"BARB": "Bank of Baroda",
	"CNRB": "Canara Bank",
	"INDB": "IndusInd Bank",
	"UTIB": "Axis Bank",
	"YESB": "Yes Bank",
	"RATN": "RBL Bank",
	"BAND": "Bandhan Bank",
	"FEDL": "Federal Bank",
	"SIBL": "South Indian Bank",
	"KVBL": "KVB Bank",
	"TMBL": "TMB Bank",
	"CITI": "Citibank",
	"HSBC": "HSBC",
	"AUBL": "AU Small Finance Bank",
	"ESAF": "ESAF Small Finance Bank",
	"DCBL": "DCB Bank",
	"IBKL": "IDBI Bank",
	"UCOB": "UCO Bank",
	"JKBK": "J&K Bank",
	"PMCB": "PMC Bank",
	"NWOS": "North Western Co-op Bank",
	"MHCB": "Maharashtra Co-op Bank",
	"FIBL": "First International Bank",
}

// ResolveBankName returns the institution behind an IFSC code, or the bare
// uppercased prefix when the table has no entry. Short input yields "".
func ResolveBankName(ifsc string) string {
	if len(ifsc) < 4 {
		return ""
	}
	prefix := strings.ToUpper(ifsc[:4])
	if name, ok := ifscBankName[prefix]; ok {
		return name
	}
	return prefix
}
