package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Connaught Place", "connaught place"},
		{"strips punctuation", "R.K. Puram", "r k puram"},
		{"collapses whitespace", "  Hauz   Khas  ", "hauz khas"},
		{"strips diacritics", "Sakét", "saket"},
		{"keeps digits", "Dwarka Sector 14", "dwarka sector 14"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("DWARKA")
	assert.True(t, ok)
	assert.Equal(t, "dwarka", info.Canonical)
	assert.Equal(t, "west", info.Zone)

	_, ok = Lookup("Atlantis")
	assert.False(t, ok)
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known locality", "Connaught Place", "connaught-place"},
		{"alias maps to canonical", "CP", "connaught-place"},
		{"punctuated alias", "R.K. Puram", "rk-puram"},
		{"unknown falls back to normalized form", "Shalimar Bagh", "shalimar bagh"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.in))
		})
	}
}
