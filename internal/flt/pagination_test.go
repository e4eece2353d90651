//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package flt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, vv.DEFAULTPAGESIZE, ClampLimit(0))
	assert.Equal(t, vv.MINPAGESIZE, ClampLimit(-5))
	assert.Equal(t, vv.MAXPAGESIZE, ClampLimit(5000))
	assert.Equal(t, 42, ClampLimit(42))
}

func TestPageSliceWindows(t *testing.T) {
	results := []int{1, 2, 3, 4, 5, 6, 7}

	p1, more, next, ae := PageSlice(results, 1, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{1, 2, 3}, p1)
	assert.True(t, more)
	assert.Equal(t, 2, next)

	p2, more, next, ae := PageSlice(results, 2, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{4, 5, 6}, p2)
	assert.True(t, more)
	assert.Equal(t, 3, next)

	p3, more, next, ae := PageSlice(results, 3, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{7}, p3)
	assert.False(t, more)
	assert.Equal(t, 0, next)

	// the pages partition the result set
	var joined []int
	joined = append(joined, p1...)
	joined = append(joined, p2...)
	joined = append(joined, p3...)
	assert.Equal(t, results, joined)
}

func TestPageSliceOutOfRange(t *testing.T) {
	results := []int{1, 2, 3, 4}

	_, _, _, ae := PageSlice(results, 3, 3)
	require.NotNil(t, ae)
	assert.Equal(t, str.ErrPageOutOfRange, ae.Kind)
	assert.Contains(t, ae.Message, "the last page of results is 2")

	// page zero means page one; an empty set still has a page one
	p, _, _, ae := PageSlice([]int{}, 0, 10)
	require.Nil(t, ae)
	assert.Empty(t, p)
}

func testblocks() []str.UnicodeBlock {
	bb := make([]str.UnicodeBlock, 8)
	for i := range bb {
		bb[i] = str.UnicodeBlock{ID: i + 1}
	}
	return bb
}

func TestBlockPageCursors(t *testing.T) {
	bb := testblocks()

	w, more, ae := BlockPage(bb, nil, nil, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{1, 2, 3}, blockids(w))
	assert.True(t, more)

	after := 3
	w, more, ae = BlockPage(bb, &after, nil, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{4, 5, 6}, blockids(w))
	assert.True(t, more)

	after = 6
	w, more, ae = BlockPage(bb, &after, nil, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{7, 8}, blockids(w))
	assert.False(t, more)
}

func TestBlockPageBeforeCursor(t *testing.T) {
	bb := testblocks()

	// walking backwards still hands the window back in ascending order
	before := 6
	w, more, ae := BlockPage(bb, nil, &before, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{3, 4, 5}, blockids(w))
	assert.True(t, more)

	before = 3
	w, more, ae = BlockPage(bb, nil, &before, 3)
	require.Nil(t, ae)
	assert.Equal(t, []int{1, 2}, blockids(w))
	assert.False(t, more)
}

func TestBlockPageBadCursors(t *testing.T) {
	bb := testblocks()
	after := 2
	before := 5

	_, _, ae := BlockPage(bb, &after, &before, 3)
	require.NotNil(t, ae)
	assert.Equal(t, str.ErrBothCursors, ae.Kind)

	out := 99
	_, _, ae = BlockPage(bb, &out, nil, 3)
	require.NotNil(t, ae)
	assert.Equal(t, str.ErrCursorOutOfRange, ae.Kind)
}

func blockids(bb []str.UnicodeBlock) []int {
	ids := make([]int, len(bb))
	for i, b := range bb {
		ids[i] = b.ID
	}
	return ids
}
