package align

// RecognizedWord is one word from the speech-recognition collaborator, with
// its position in the audio.
type RecognizedWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AlignedWord pairs a reference-text token with its approximate position.
// Start and End are nil only for tokens that normalize to the empty string
// (pure punctuation or newline markers).
type AlignedWord struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// Timed reports whether the word carries timestamps.
func (w AlignedWord) Timed() bool { return w.Start != nil && w.End != nil }

// Flatten merges grouped candidate lists into one, preserving order. The ASR
// collaborator delivers words grouped by utterance; the grouping is discarded.
func Flatten(groups ...[]RecognizedWord) []RecognizedWord {
	var words []RecognizedWord
	for _, g := range groups {
		words = append(words, g...)
	}
	return words
}
