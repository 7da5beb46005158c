package extract

import (
	"regexp"
	"strings"
)

// purposes is the controlled loan-purpose vocabulary, in resolution order.
var purposes = []string{
	"education", "study", "college", "university", "tuition", "fees",
	"medical", "home renovation", "renovation", "travel",
	"debt consolidation", "wedding", "business", "electronics",
}

// misspellings maps a handful of known typo fragments that the fuzzy pass
// cannot be relied on to catch.
var misspellings = []string{
	"eduction", "sducation", "educatoin", "educaton", "studdy", "medcal", "travell", "bussiness",
}

var (
	forPhraseRe  = regexp.MustCompile(`for\s+([a-z ,]{3,60})`)
	nonAlphaRe   = regexp.MustCompile(`[^a-z ]`)
	purposeSepRe = regexp.MustCompile(`[,;|]`)
	wordSplitRe  = regexp.MustCompile(`[^a-z]+`)
)

// Purpose resolves a loan purpose from the message against the controlled
// vocabulary. Resolution cascades, first hit wins: direct substring, a
// "for <phrase>" capture, punctuation-delimited tokens, per-word edit
// distance of at most two, and finally the known-misspelling table. An empty
// result is not an error; it drives a clarifying prompt upstream.
func Purpose(message string) string {
	text := strings.ToLower(message)

	for _, p := range purposes {
		if strings.Contains(text, p) {
			return p
		}
	}

	if m := forPhraseRe.FindStringSubmatch(text); m != nil {
		phrase := strings.TrimSpace(nonAlphaRe.ReplaceAllString(m[1], " "))
		for _, p := range purposes {
			if strings.Contains(phrase, p) {
				return p
			}
		}
	}

	for _, token := range purposeSepRe.Split(text, -1) {
		token = strings.TrimSpace(token)
		for _, p := range purposes {
			if strings.Contains(token, p) {
				return p
			}
		}
	}

	for _, word := range wordSplitRe.Split(text, -1) {
		if word == "" {
			continue
		}
		for _, p := range purposes {
			if levenshtein(word, p) <= 2 {
				return p
			}
		}
	}

	for _, typo := range misspellings {
		if !strings.Contains(text, typo) {
			continue
		}
		switch {
		case strings.HasPrefix(typo, "edu") || strings.Contains(typo, "sduc"):
			return "education"
		case strings.HasPrefix(typo, "stud"):
			return "education"
		case strings.Contains(typo, "med"):
			return "medical"
		case strings.Contains(typo, "buss"):
			return "business"
		case strings.Contains(typo, "trav"):
			return "travel"
		}
	}

	return ""
}

// levenshtein computes the edit distance between a and b with unit cost for
// insert, delete and substitute.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			m := prev[j] + 1
			if ins := curr[j-1] + 1; ins < m {
				m = ins
			}
			if sub := prev[j-1] + cost; sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
