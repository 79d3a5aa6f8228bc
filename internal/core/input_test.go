package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonString(t *testing.T) {
	assert.Equal(t, "A", ButtonA.String())
	assert.Equal(t, "B", ButtonB.String())
	assert.Equal(t, "C", ButtonC.String())
	assert.Equal(t, "Unknown", Button(42).String())
}

func TestInputFrame(t *testing.T) {
	var zero InputFrame
	assert.False(t, zero.Has(ButtonA), "zero frame has no presses")
	assert.True(t, zero.Empty())

	f := NewInputFrame(ButtonB)
	assert.True(t, f.Has(ButtonB))
	assert.False(t, f.Has(ButtonA))
	assert.False(t, f.Empty())

	f.Clear()
	assert.True(t, f.Empty())
	assert.False(t, f.Has(ButtonB))

	zero.Set(ButtonC)
	assert.True(t, zero.Has(ButtonC))
}

type fixedClock uint64

func (c fixedClock) Ticks() uint64 { return uint64(c) }

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	assert.Equal(t, int64(42), ResolveSeed(cfg, fixedClock(7)))

	cfg.Seed = 0
	assert.NotZero(t, ResolveSeed(cfg, fixedClock(7)))
}

func TestMonotonicClockNeverDecreases(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Ticks()
	b := c.Ticks()
	assert.GreaterOrEqual(t, b, a)
}

func TestParseButton(t *testing.T) {
	for _, b := range Buttons {
		got, err := ParseButton(strings.ToLower(b.String()))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	_, err := ParseButton("d")
	assert.Error(t, err)
}
