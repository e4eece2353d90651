//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSetResolve(t *testing.T) {
	fs := NewFlagSet([]CharFlag{
		{Long: "Alphabetic", Short: "Alpha", Column: "alphabetic"},
		{Long: "White_Space", Short: "WSpace", Column: "white_space"},
	})
	require.Equal(t, 2, fs.Len())

	for _, name := range []string{"Alphabetic", "alpha", "is_alphabetic", "ALPHA"} {
		i, ok := fs.Resolve(name)
		assert.True(t, ok, name)
		assert.Equal(t, 0, i, name)
	}

	i, ok := fs.Resolve("white space")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = fs.Resolve("Emoji")
	assert.False(t, ok)
}

func TestFlagsBitmap(t *testing.T) {
	f := NewFlags(130)
	require.Len(t, f, 3)
	assert.False(t, f.Any())

	f.Set(0)
	f.Set(63)
	f.Set(64)
	f.Set(129)

	for _, i := range []int{0, 63, 64, 129} {
		assert.True(t, f.Has(i), i)
	}
	assert.False(t, f.Has(1))
	assert.False(t, f.Has(500))
	assert.True(t, f.Any())
}
