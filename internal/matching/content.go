package matching

import (
	"math"
	"strings"
	"unicode"
)

// contentStopWords filters common English words that add noise to term
// overlap.
var contentStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"such": true, "able": true, "well": true, "over": true, "per": true,
}

// termFrequencies tokenizes text into a lowercase term-frequency vector.
// Treats + # . as word characters so terms like "c++", "c#" and "node.js"
// survive tokenization.
func termFrequencies(text string) map[string]float64 {
	terms := make(map[string]float64)
	var word strings.Builder
	flush := func() {
		term := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(term)) >= 2 && !contentStopWords[term] {
			terms[term]++
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return terms
}

// cosineSimilarity computes the cosine of the angle between two term-frequency
// vectors. Returns 0 when either vector is empty. With non-negative
// frequencies the result lies in [0,1] and grows with shared vocabulary.
func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for term, freq := range a {
		normA += freq * freq
		if other, ok := b[term]; ok {
			dot += freq * other
		}
	}
	for _, freq := range b {
		normB += freq * freq
	}
	if dot == 0 {
		return 0.0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if similarity > 1.0 {
		similarity = 1.0
	}
	return similarity
}

// scoreContent computes content-based similarity between the candidate's and
// the job's free text. The available flag is false when either side has no
// usable terms; an absent text carries no signal rather than a zero that
// drags the overall score down.
func scoreContent(candidateText, jobText string) (score float64, available bool) {
	candidateTerms := termFrequencies(candidateText)
	jobTerms := termFrequencies(jobText)
	if len(candidateTerms) == 0 || len(jobTerms) == 0 {
		return 0.0, false
	}
	return cosineSimilarity(candidateTerms, jobTerms), true
}
