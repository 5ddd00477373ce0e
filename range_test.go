package mist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := NewRange(10, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), r.Offset)
	assert.Equal(t, uint64(5), r.Length)
	assert.Equal(t, uint64(15), r.Terminal())
	assert.False(t, r.Empty())
}

func TestNewRangeEmpty(t *testing.T) {
	r, err := NewRange(10, 0)
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestNewRangeOverflow(t *testing.T) {
	_, err := NewRange(^uint64(0), 1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSyntaxRangeString(t *testing.T) {
	sr, err := NewSyntaxRange(1, 2, -3)
	require.NoError(t, err)
	assert.Equal(t, "[1,3)@-3", sr.String())
}

func TestSideString(t *testing.T) {
	cases := map[Side]string{Top: "Top", Left: "Left", Right: "Right", Bottom: "Bottom", Clashing: "Clashing", Side(99): "Side(?)"}
	for side, want := range cases {
		assert.Equal(t, want, side.String())
	}
}
