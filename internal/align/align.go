package align

import (
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/nguyentantai21042004/prosody-flow/pkg/textutil"
)

const (
	// Interpolated words are chained from the running cursor: a small gap
	// before the word and a nominal spoken width.
	interpolatedGap   = 0.1
	interpolatedWidth = 0.3

	// A candidate must be within max(len/2, 2) edits of the token.
	minTolerance = 2
)

// Align maps every token of the reference text onto recognized-speech
// timestamps. Output length always equals the token count of the reference
// text, in source order; tokens with no acceptable candidate receive
// interpolated timestamps so downstream consumers never see a gap.
//
// The candidate search picks the nearest word by edit distance over the whole
// list, first match winning ties. It is not position-aware: with repeated
// words a later token can bind to an earlier candidate and produce
// non-monotonic timestamps. Known limitation, kept on purpose.
func Align(reference string, words []RecognizedWord) []AlignedWord {
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = textutil.Normalize(w.Word)
	}

	tokens := textutil.Tokenize(reference)
	out := make([]AlignedWord, 0, len(tokens))
	previousEnd := 0.0

	for _, token := range tokens {
		norm := textutil.Normalize(token)
		if norm == "" {
			// Punctuation-only token: no timestamps, cursor unchanged.
			out = append(out, AlignedWord{Word: token})
			continue
		}

		best := -1
		bestDist := 0
		for i, cand := range normalized {
			d := fuzzy.LevenshteinDistance(norm, cand)
			if best < 0 || d < bestDist {
				best = i
				bestDist = d
			}
		}

		tolerance := utf8.RuneCountInString(norm) / 2
		if tolerance < minTolerance {
			tolerance = minTolerance
		}

		if best >= 0 && bestDist <= tolerance {
			w := words[best]
			out = append(out, AlignedWord{Word: token, Start: ptr(w.Start), End: ptr(w.End)})
			previousEnd = w.End
			continue
		}

		start := previousEnd + interpolatedGap
		end := start + interpolatedWidth
		out = append(out, AlignedWord{Word: token, Start: ptr(start), End: ptr(end)})
		previousEnd = end
	}

	return out
}

func ptr(v float64) *float64 { return &v }
