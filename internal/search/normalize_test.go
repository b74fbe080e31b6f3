package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café Central", "cafe central"},
		{"CAFÉ", "cafe"},
		{"jalapeño", "jalapeno"},
		{"crème brûlée", "creme brulee"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), "Fold(%q)", tt.in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Café Central", "cafe"))
	assert.True(t, Contains("cafe", "CAFÉ"))
	assert.True(t, Contains("La Parrilla Añeja", "aneja"))
	assert.False(t, Contains("Café Central", "xyz123"))

	// Empty needle matches everything.
	assert.True(t, Contains("anything", ""))
}
