package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 30, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 15, 20)

	assert.Equal(t, 20, r.Right())
	assert.Equal(t, 30, r.Bottom())
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 10).Empty())
	assert.True(t, NewRect(0, 0, 10, -1).Empty())
	assert.False(t, NewRect(-60, 30, 60, 60).Empty())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 3, Min(5, 3))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 5, Max(5, 3))
}
