package align

import (
	"math"
	"testing"

	"github.com/nguyentantai21042004/prosody-flow/pkg/textutil"
)

func word(w string, start, end float64) RecognizedWord {
	return RecognizedWord{Word: w, Start: start, End: end}
}

func TestAlignOutputLengthMatchesTokenCount(t *testing.T) {
	texts := []string{
		"",
		"hola",
		"hola mundo, qué tal",
		"línea uno\nlínea dos\n",
		"... !!! ...",
	}
	words := []RecognizedWord{word("hola", 0, 0.4), word("mundo", 0.4, 0.9)}

	for _, text := range texts {
		got := Align(text, words)
		if len(got) != len(textutil.Tokenize(text)) {
			t.Errorf("Align(%q): %d words, want %d", text, len(got), len(textutil.Tokenize(text)))
		}
	}
}

func TestAlignExactMatch(t *testing.T) {
	words := []RecognizedWord{
		word("hola", 0.0, 0.4),
		word("mundo", 0.5, 0.9),
	}

	got := Align("Hola, mundo!", words)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Word != "Hola," {
		t.Errorf("original token not preserved: %q", got[0].Word)
	}
	if !got[0].Timed() || *got[0].Start != 0.0 || *got[0].End != 0.4 {
		t.Errorf("hola not matched: %+v", got[0])
	}
	if !got[1].Timed() || *got[1].Start != 0.5 || *got[1].End != 0.9 {
		t.Errorf("mundo not matched: %+v", got[1])
	}
}

func TestAlignFuzzyMatchWithinTolerance(t *testing.T) {
	// ASR mis-heard the word but it is within max(len/2, 2) edits.
	words := []RecognizedWord{word("balena", 1.0, 1.5)}

	got := Align("ballena", words)
	if !got[0].Timed() || *got[0].Start != 1.0 {
		t.Errorf("near-miss candidate rejected: %+v", got[0])
	}
}

func TestAlignRejectionInterpolates(t *testing.T) {
	words := []RecognizedWord{word("completamente", 5.0, 5.8)}

	got := Align("xy", words)
	if *got[0].Start != 0.1 {
		t.Errorf("start = %v, want 0.1", *got[0].Start)
	}
	if math.Abs(*got[0].End-0.4) > 1e-9 {
		t.Errorf("end = %v, want 0.4", *got[0].End)
	}
}

// With no candidates at all the aligner degrades fully to interpolation:
// timestamps chain from 0.0 in fixed 0.1/0.3 steps.
func TestAlignEmptyCandidateList(t *testing.T) {
	got := Align("uno dos ... tres", nil)

	if *got[0].Start != 0.1 || math.Abs(*got[0].End-0.4) > 1e-9 {
		t.Errorf("first word: %+v", got[0])
	}
	if math.Abs(*got[1].Start-0.5) > 1e-9 || math.Abs(*got[1].End-0.8) > 1e-9 {
		t.Errorf("second word: %+v", got[1])
	}
	// Punctuation token: no timestamps and it must not advance the cursor.
	if got[2].Timed() {
		t.Errorf("punctuation token got timestamps: %+v", got[2])
	}
	if math.Abs(*got[3].Start-0.9) > 1e-9 {
		t.Errorf("cursor advanced by punctuation token: %+v", got[3])
	}
}

func TestAlignPunctuationAlwaysUntimed(t *testing.T) {
	words := []RecognizedWord{word("hola", 0, 0.4)}

	got := Align("...", words)
	if got[0].Start != nil || got[0].End != nil {
		t.Errorf("pure punctuation must stay untimed: %+v", got[0])
	}
}

// Equal minimal distance: the first candidate in the flattened list wins.
func TestAlignTieBreakFirstCandidate(t *testing.T) {
	words := []RecognizedWord{
		word("casa", 1.0, 1.3),
		word("casa", 7.0, 7.3),
	}

	got := Align("casa", words)
	if *got[0].Start != 1.0 {
		t.Errorf("tie not broken by first candidate: %+v", got[0])
	}
}

func TestAlignInterpolationChainsAfterMatch(t *testing.T) {
	words := []RecognizedWord{word("hola", 2.0, 2.4)}

	got := Align("hola zzzzzzzzzz", words)
	if *got[0].End != 2.4 {
		t.Fatalf("match: %+v", got[0])
	}
	// The rejected token interpolates from the accepted word's end.
	if math.Abs(*got[1].Start-2.5) > 1e-9 || math.Abs(*got[1].End-2.8) > 1e-9 {
		t.Errorf("interpolated: %+v", got[1])
	}
}

func TestFlatten(t *testing.T) {
	a := []RecognizedWord{word("a", 0, 1)}
	b := []RecognizedWord{word("b", 1, 2), word("c", 2, 3)}

	got := Flatten(a, nil, b)
	if len(got) != 3 || got[0].Word != "a" || got[2].Word != "c" {
		t.Errorf("Flatten() = %v", got)
	}
}
