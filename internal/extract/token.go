package extract

import (
	"regexp"
	"strings"
)

// Token is one lexical unit of the normalized text. Prev and Next hold up to
// the configured number of neighboring token texts on the same line; context
// never crosses a line boundary.
type Token struct {
	Text    string
	Pos     int // byte offset into the normalized text
	LineIdx int
	Line    string
	Prev    []string
	Next    []string
}

// DefaultContextWindow is the neighbor count kept on each side of a token.
const DefaultContextWindow = 5

var (
	reTokenParenPhone = regexp.MustCompile(`^\(\+?(?:91[-\s]?)?([6-9]\d{9})\)$`)
	reProtectedDate   = regexp.MustCompile(`^\d{1,2}[-–—][A-Za-z]{3,9}[-–—]\d{2,4}$`)
	reProtectedPhase  = regexp.MustCompile(`(?i)^PHASE[-–—][IVX]+$`)
	reHyphenatedWord  = regexp.MustCompile(`^[A-Za-z]{2,8}-[A-Za-z]{2,8}$`)
	reGluedLabel      = regexp.MustCompile(`^(.*?[A-Za-z.])[-–—:]+([A-Za-z0-9].*)$`)
	reTrailingSep     = regexp.MustCompile(`^(.*?[A-Za-z.])[-–—:]+$`)
)

// Left-hand sides that mark a hyphenated token as label:value, not a word.
var gluedLabelWords = map[string]struct{}{
	"no": {}, "code": {}, "ifsc": {}, "pan": {}, "gst": {}, "tin": {},
	"acc": {}, "name": {}, "bank": {}, "branch": {}, "date": {},
	"invoice": {}, "bill": {}, "ref": {}, "amount": {},
}

// splitGlued expands a label-separator-value token ("Code:BKID0004500") into
// its parts. Protected shapes pass through whole: day-month-year dates,
// PHASE-<roman> markers, and ordinary hyphenated words whose left side is
// not a known field label. A token ending in a bare separator drops it.
func splitGlued(tok string) []string {
	if m := reTokenParenPhone.FindStringSubmatch(tok); m != nil {
		return []string{m[1]}
	}

	if reProtectedDate.MatchString(tok) || reProtectedPhase.MatchString(tok) {
		return []string{tok}
	}
	if reHyphenatedWord.MatchString(tok) {
		left := strings.ToLower(strings.SplitN(tok, "-", 2)[0])
		if _, known := gluedLabelWords[left]; !known {
			return []string{tok}
		}
	}

	if m := reGluedLabel.FindStringSubmatch(tok); m != nil {
		label := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		parts := make([]string, 0, 2)
		if label != "" {
			parts = append(parts, label)
		}
		if value != "" {
			parts = append(parts, value)
		}
		if len(parts) > 0 {
			return parts
		}
		return []string{tok}
	}

	if m := reTrailingSep.FindStringSubmatch(tok); m != nil {
		if label := strings.TrimSpace(m[1]); label != "" {
			return []string{label}
		}
	}

	return []string{tok}
}

// Tokenize splits normalized text into positional tokens. Offsets are found
// by forward search from the previous offset, so repeated token texts land
// on distinct positions.
func Tokenize(text string, contextWindow int) []Token {
	if contextWindow <= 0 {
		contextWindow = DefaultContextWindow
	}

	var tokens []Token
	lines := strings.Split(text, "\n")
	cursor := 0
	lineStart := 0

	for lineIdx, line := range lines {
		var lineTokens []string
		for _, raw := range strings.Fields(line) {
			lineTokens = append(lineTokens, splitGlued(raw)...)
		}

		for i, tokText := range lineTokens {
			pos := cursor
			if idx := strings.Index(text[cursor:], tokText); idx >= 0 {
				pos = cursor + idx
			}

			lo := i - contextWindow
			if lo < 0 {
				lo = 0
			}
			hi := i + 1 + contextWindow
			if hi > len(lineTokens) {
				hi = len(lineTokens)
			}

			tokens = append(tokens, Token{
				Text:    tokText,
				Pos:     pos,
				LineIdx: lineIdx,
				Line:    line,
				Prev:    append([]string(nil), lineTokens[lo:i]...),
				Next:    append([]string(nil), lineTokens[i+1:hi]...),
			})
			cursor = pos + len(tokText)
		}

		lineStart += len(line) + 1
		cursor = lineStart
	}

	return tokens
}
