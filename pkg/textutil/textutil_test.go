package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single word", "hola", []string{"hola"}},
		{"spaces collapse", "hola   mundo", []string{"hola", "mundo"}},
		{"newline is a token", "hola\nmundo", []string{"hola", "\n", "mundo"}},
		{"trailing newline", "hola \n", []string{"hola", "\n"}},
		{"punctuation stays attached", "hola, mundo...", []string{"hola,", "mundo..."}},
		{"tabs separate", "a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"lowercase", "Hola", "hola"},
		{"strip punctuation", "mundo!,", "mundo"},
		{"accented letters kept", "Canción", "canción"},
		{"digits kept", "A1-B2", "a1b2"},
		{"pure punctuation", "...", ""},
		{"newline token", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.token); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
