package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Tuned scoring constants. Relative ordering matters more than the exact
// literals; any change requires re-validation against the invoice corpus.
const (
	baseScore           = 50.0
	adjacencyBonus      = 5.0
	lineWeightFraction  = 0.4
	crossEntityPenalty  = 20.0
	crossEntityMinScore = 5.0
	shortInvoicePenalty = 20.0
)

// DefaultTopN is how many ranked candidates are kept per entity kind.
const DefaultTopN = 3

// Candidate is one token scored against one entity kind.
type Candidate struct {
	Token Token
	Score float64
}

func normWord(s string) string {
	return strings.TrimRight(strings.ToLower(s), ".")
}

func matchesAny(formats []*regexp.Regexp, raw, clean string) bool {
	for _, re := range formats {
		if re.MatchString(raw) || re.MatchString(clean) {
			return true
		}
	}
	return false
}

// Score rates one token for one entity kind. A token that fails every
// format pattern scores exactly 0 no matter what surrounds it; context can
// only adjust a format match, never create one.
func (r Registry) Score(tok Token, kind Kind) float64 {
	def := r[kind]
	if def == nil {
		return 0
	}

	raw := strings.TrimSpace(tok.Text)
	clean := strings.TrimRight(raw, ".")
	if !matchesAny(def.Formats, raw, clean) {
		return 0
	}

	score := baseScore + def.Bonus

	surrounding := make([]string, 0, len(tok.Prev)+len(tok.Next))
	for _, t := range tok.Prev {
		surrounding = append(surrounding, normWord(t))
	}
	for _, t := range tok.Next {
		surrounding = append(surrounding, normWord(t))
	}
	surroundingSet := make(map[string]struct{}, len(surrounding))
	for _, w := range surrounding {
		surroundingSet[w] = struct{}{}
	}

	lineWords := make(map[string]struct{})
	for _, w := range strings.Fields(tok.Line) {
		lineWords[normWord(w)] = struct{}{}
	}

	inContext := func(set map[string]struct{}) bool {
		for w := range surroundingSet {
			if _, ok := set[w]; ok {
				return true
			}
		}
		for w := range lineWords {
			if _, ok := set[w]; ok {
				return true
			}
		}
		return false
	}

	// Negative context kills non-phone kinds near phone vocabulary, and the
	// phone kind near account vocabulary (unless a phone word is present).
	if kind != KindPhoneNumber && inContext(phoneContext) {
		return 0
	}
	if kind == KindPhoneNumber && inContext(accountContext) && !inContext(phoneContext) {
		return 0
	}

	// Positive context, iterated in sorted key order for reproducibility.
	for _, keyword := range sortedKeys(def.Keywords) {
		weight := def.Keywords[keyword]
		kw := normWord(keyword)
		if _, ok := surroundingSet[kw]; ok {
			score += weight
			if len(tok.Prev) > 0 && strings.HasPrefix(normWord(tok.Prev[len(tok.Prev)-1]), kw) {
				score += adjacencyBonus
			}
			if len(tok.Next) > 0 && strings.HasPrefix(normWord(tok.Next[0]), kw) {
				score += adjacencyBonus
			}
		} else if _, ok := lineWords[kw]; ok {
			score += weight * lineWeightFraction
		}
	}

	// Cross-entity penalty: if another kind's format also matches this token
	// and that kind's vocabulary dominates the context, push this one down.
	for _, other := range Kinds {
		if other == kind {
			continue
		}
		odef := r[other]
		if odef == nil || !matchesAny(odef.Formats, raw, clean) {
			continue
		}
		otherScore := 0.0
		for _, keyword := range sortedKeys(odef.Keywords) {
			kw := normWord(keyword)
			_, near := surroundingSet[kw]
			_, online := lineWords[kw]
			if near || online {
				otherScore += odef.Keywords[keyword]
			}
		}
		if otherScore > crossEntityMinScore {
			score -= crossEntityPenalty
		}
	}

	// Short numeric tokens are usually line-item indices, not invoice
	// numbers; they only survive with strong invoice context.
	if kind == KindInvoiceNumber && len(clean) == 1 {
		score -= shortInvoicePenalty
	}

	if score < 0 {
		return 0
	}
	return score
}

// FindCandidates scores every token for one kind, deduplicates by literal
// text, and returns the top n by descending score (stable for ties).
func (r Registry) FindCandidates(tokens []Token, kind Kind, n int) []Candidate {
	if n <= 0 {
		n = DefaultTopN
	}

	var candidates []Candidate
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		text := strings.TrimSpace(tok.Text)
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		if s := r.Score(tok, kind); s > 0 {
			candidates = append(candidates, Candidate{Token: tok, Score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
