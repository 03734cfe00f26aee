package serviceImp

import (
	"regexp"
	"sort"
	"strings"

	"shoopaholic/pkg/analytics/service"
)

// stopwords are dropped before counting: articles, pronouns, interrogatives
// and shop filler that carries no product signal.
var stopwords = map[string]struct{}{
	"what": {}, "where": {}, "how": {}, "is": {}, "are": {}, "the": {},
	"a": {}, "an": {}, "do": {}, "you": {}, "have": {}, "price": {},
	"cost": {}, "much": {}, "can": {}, "i": {},
}

var tokenPattern = regexp.MustCompile(`\w+`)

// ExtractKeywords lower-cases and tokenizes texts, drops stopwords and tokens
// of length <= 2, and accumulates counts. The result preserves first-seen
// order, which makes the later frequency sort deterministic on ties.
func ExtractKeywords(texts []string) []service.KeywordCount {
	counts := map[string]int{}
	var order []string
	for _, t := range texts {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(t), -1) {
			if _, ok := stopwords[tok]; ok {
				continue
			}
			if len(tok) <= 2 {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}
	out := make([]service.KeywordCount, 0, len(order))
	for _, w := range order {
		out = append(out, service.KeywordCount{Word: w, Count: counts[w]})
	}
	return out
}

// TopKeywords returns the k most frequent keywords, ties broken by
// first-seen order.
func TopKeywords(counts []service.KeywordCount, k int) []service.KeywordCount {
	sorted := make([]service.KeywordCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })
	if k < 0 {
		k = 0
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}
