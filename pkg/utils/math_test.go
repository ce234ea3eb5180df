package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{100, false},
		{1 << 30, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPowerOfTwo(tt.n), "IsPowerOfTwo(%d)", tt.n)
	}
}

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative_uses_minimum", -1, 2},
		{"zero_uses_minimum", 0, 2},
		{"one_uses_minimum", 1, 2},
		{"exact", 16, 16},
		{"round_up", 100, 128},
		{"just_over", 1025, 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CeilToPowerOfTwo(tt.n))
		})
	}
}

func TestCeilToPowerOfTwo_TooLarge(t *testing.T) {
	assert.Panics(t, func() { CeilToPowerOfTwo(maxIntHeadBit + 1) })
}
