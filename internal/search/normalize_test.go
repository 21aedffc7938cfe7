package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLoose(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"case folding", "Senior Engineer", "senior engineer"},
		{"diacritics", "Híbrido em São Paulo", "hibrido em sao paulo"},
		{"whitespace collapse", "  remote \t work\n now ", "remote work now"},
		{"punctuation kept", "C#/.NET (remoto!)", "c#/.net (remoto!)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLoose(tt.in))
		})
	}
}

func TestNormalizeStrict(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tech tokens survive", "C#, .NET & Go!", "c# .net go"},
		{"hyphen survives", "on-site react-native", "on-site react-native"},
		{"punctuation to space", "java;kotlin|ruby", "java kotlin ruby"},
		{"diacritics folded", "Sênior Plêno", "senior pleno"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStrict(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Híbrido  e  Remoto", "C#, .NET & Go!", "já normalizado",
		"  mixed   Spaces ", "100% remote!",
	}
	for _, in := range inputs {
		loose := NormalizeLoose(in)
		assert.Equal(t, loose, NormalizeLoose(loose))

		strict := NormalizeStrict(in)
		assert.Equal(t, strict, NormalizeStrict(strict))
	}
}
