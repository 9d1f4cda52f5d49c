package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Digital Onboarding", "digital-onboarding"},
		{"accents", "Ámbito Público", "ambito-publico"},
		{"enye", "Pequeña Empresa", "pequena-empresa"},
		{"punctuation", "Salud & Bienestar (2024)", "salud-bienestar-2024"},
		{"leading trailing", "  --Energía--  ", "energia"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
