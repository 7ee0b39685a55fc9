package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Config holds the tunable knobs of the extraction pipeline.
type Config struct {
	ContextWindow int  // neighbor tokens kept per side, default 5
	TopN          int  // ranked candidates kept per entity kind, default 3
	MaxInvoiceLen int  // validator threshold, default 7
	Debug         bool // emit a per-entity candidate trace
}

// Input is the contract with the document-text collaborator: reading-order
// text plus zero or more row/column grids. Rows may be ragged.
type Input struct {
	Text   string
	Tables [][][]string
}

// Result is the contract with the presentation collaborator. A document
// that yielded no usable text has a nil Record and exactly one warning.
type Result struct {
	Record   *Record
	Warnings []string
	Debug    string
}

// Pipeline drives normalize -> tokenize -> score -> disambiguate ->
// fallbacks -> validate for one document at a time. It holds no per-document
// state, so one Pipeline may serve concurrent workers.
type Pipeline struct {
	Logger   *slog.Logger
	Cfg      Config
	Registry Registry
}

func NewPipeline(logger *slog.Logger, cfg Config, reg Registry) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ContextWindow <= 0 {
		cfg.ContextWindow = DefaultContextWindow
	}
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	if cfg.MaxInvoiceLen <= 0 {
		cfg.MaxInvoiceLen = DefaultMaxInvoiceLen
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Pipeline{Logger: logger, Cfg: cfg, Registry: reg}
}

var reInvoiceHeaderLine = regexp.MustCompile(`(?i)invoice|bill\s+no|inv\s+no`)

// Extract runs the full pipeline over one document. It never returns an
// error: malformed input degrades to warnings, and a panic while scanning
// is converted to the no-data result so one bad document cannot abort a
// batch.
func (p *Pipeline) Extract(in Input) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("extract.panic", "cause", r)
			res = Result{Warnings: []string{fmt.Sprintf("extraction failed: %v", r)}}
		}
	}()

	if strings.TrimSpace(in.Text) == "" {
		return Result{Warnings: []string{"No text extracted - document may be scanned or image-based"}}
	}

	cleaned := Normalize(in.Text)
	tokens := Tokenize(cleaned, p.Cfg.ContextWindow)
	lines := strings.Split(cleaned, "\n")

	candidates := make(map[Kind][]Candidate, len(Kinds))
	for _, kind := range Kinds {
		candidates[kind] = p.Registry.FindCandidates(tokens, kind, p.Cfg.TopN)
	}

	topText := func(kind Kind) string {
		if c := candidates[kind]; len(c) > 0 {
			return strings.TrimSpace(c[0].Token.Text)
		}
		return ""
	}

	rec := &Record{}
	rec.IFSCCode = strings.ToUpper(topText(KindIFSC))
	pan := strings.ToUpper(topText(KindPAN))
	gst := strings.ToUpper(topText(KindGST))

	// Invoice number: scored pick needs real invoice context and must not
	// sit right after a total/amount label; otherwise the alphanumeric
	// fallback takes over.
	rec.InvoiceNo = p.pickInvoiceNumber(candidates[KindInvoiceNumber], cleaned, lines)
	if rec.InvoiceNo == "" {
		rec.InvoiceNo = ExtractAlphanumericInvoice(cleaned)
	}

	// Account number: never rebind the value committed to the invoice
	// number while an alternative exists.
	for _, c := range candidates[KindAccountNumber] {
		if v := strings.TrimSpace(c.Token.Text); v != rec.InvoiceNo {
			rec.AccountNo = v
			break
		}
	}

	// Date: scored pick, else full-month fallback.
	if d := topText(KindDate); d != "" {
		rec.InvoiceDate = NormalizeDate(d)
	}
	if rec.InvoiceDate == "" {
		rec.InvoiceDate = ExtractFullMonthDate(cleaned)
	}

	// Amount: scored pick, else table columns, else bare labelled amount.
	if a := topText(KindAmount); a != "" {
		raw := strings.ReplaceAll(a, ",", "")
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= 10 {
			rec.Amount = raw
		}
	}
	if rec.Amount == "" && len(in.Tables) > 0 {
		rec.Amount, _ = ExtractTableAmount(in.Tables)
	}
	if rec.Amount == "" {
		rec.Amount = ExtractBareAmount(cleaned)
	}

	rec.PartyName, _ = ExtractPartyName(cleaned)

	// Phone: skip the value already committed as the account number.
	for _, c := range candidates[KindPhoneNumber] {
		if v := strings.TrimSpace(c.Token.Text); v != rec.AccountNo {
			rec.PhoneNumber = v
			break
		}
	}

	// Bank-details fallback fills whatever scoring missed.
	details := ParseBankDetails(cleaned)
	if rec.AccountNo == "" && details.AccountNo != "" {
		rec.AccountNo = details.AccountNo
	}
	if rec.IFSCCode == "" && details.IFSC != "" {
		rec.IFSCCode = details.IFSC
	}

	// Last resort: if every scored account candidate collided with the
	// invoice number and no fallback filled the gap, keep the collision and
	// let the validator flag it.
	if rec.AccountNo == "" && len(candidates[KindAccountNumber]) > 0 {
		rec.AccountNo = strings.TrimSpace(candidates[KindAccountNumber][0].Token.Text)
	}

	rec.BankName = ResolveBankName(rec.IFSCCode)
	if rec.BankName == "" && details.BankName != "" {
		rec.BankName = details.BankName
	}

	// PAN preferred over GST for the merged tax-ID field.
	if pan != "" {
		rec.TaxID = pan
	} else {
		rec.TaxID = gst
	}

	warnings := ValidateRecord(rec, p.Cfg.MaxInvoiceLen)

	var debug string
	if p.Cfg.Debug {
		debug = p.debugTrace(in.Text, cleaned, candidates, details, warnings)
	}

	p.Logger.Info("extract.done",
		"fields_found", countFound(rec),
		"warnings", len(warnings),
	)

	return Result{Record: rec, Warnings: warnings, Debug: debug}
}

// pickInvoiceNumber applies the sanity rules on the scored candidate: a
// strong-context pick (score above base) wins unless it directly follows a
// total/amount label; a one/two-digit pick additionally needs an
// invoice/bill header on the previous line.
func (p *Pipeline) pickInvoiceNumber(cands []Candidate, cleaned string, lines []string) string {
	if len(cands) == 0 {
		return ""
	}
	top := cands[0]
	candidate := strings.TrimSpace(top.Token.Text)

	nearAmount := regexp.MustCompile(`(?i)(?:total|amount|grand|net|balance)\s*[:\-]?\s*` + regexp.QuoteMeta(candidate)).
		MatchString(cleaned)

	if top.Score > baseScore && !nearAmount {
		return candidate
	}
	if len(candidate) <= 2 && !nearAmount {
		prevLine := ""
		if top.Token.LineIdx > 0 && top.Token.LineIdx-1 < len(lines) {
			prevLine = strings.ToLower(lines[top.Token.LineIdx-1])
		}
		if reInvoiceHeaderLine.MatchString(prevLine) {
			return candidate
		}
	}
	return ""
}

func (p *Pipeline) debugTrace(rawText, cleaned string, candidates map[Kind][]Candidate, details BankDetails, warnings []string) string {
	var b strings.Builder
	for _, kind := range Kinds {
		fmt.Fprintf(&b, "--- %s candidates:", kind)
		for _, c := range candidates[kind] {
			fmt.Fprintf(&b, " (%q %.1f)", c.Token.Text, c.Score)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "--- Alphanumeric inv: %q\n", ExtractAlphanumericInvoice(cleaned))
	fmt.Fprintf(&b, "--- Full-month date:  %q\n", ExtractFullMonthDate(cleaned))
	fmt.Fprintf(&b, "--- Bare amount:      %q\n", ExtractBareAmount(cleaned))
	fmt.Fprintf(&b, "--- Bank fallback:    %+v\n", details)
	fmt.Fprintf(&b, "--- Warnings:         %v\n", warnings)
	head := rawText
	if len(head) > 3000 {
		head = head[:3000]
	}
	fmt.Fprintf(&b, "\n--- RAW TEXT (first 3000 chars) ---\n%s", head)
	return b.String()
}

func countFound(rec *Record) int {
	n := 0
	for _, v := range rec.Row() {
		if v != "" {
			n++
		}
	}
	return n
}
