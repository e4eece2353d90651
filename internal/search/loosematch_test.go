//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

func TestLooseNormalize(t *testing.T) {
	assert.Equal(t, "greek", LooseNormalize("Greek"))
	assert.Equal(t, "greek", LooseNormalize(" G r e e k "))
	assert.Equal(t, "greek", LooseNormalize("is_Greek"))
	assert.Equal(t, "linebreak", LooseNormalize("Line-Break"))
	assert.Equal(t, "linebreak", LooseNormalize("line_break"))

	// idempotence
	for _, s := range []string{"isGreek", "Line_Break", "CJK Unified Ideographs"} {
		once := LooseNormalize(s)
		assert.Equal(t, once, LooseNormalize(once))
	}
}

func TestLooseMatch(t *testing.T) {
	assert.True(t, LooseMatch("Line_Break", "line-break"))
	assert.True(t, LooseMatch("isGreek", "GREEK"))
	assert.False(t, LooseMatch("Greek", "Latin"))
}

func TestBuildLooseIndexAndResolve(t *testing.T) {
	idx := BuildLooseIndex(map[int]str.PropertyValue{
		1: {ID: 1, ShortName: "Lu", LongName: "Uppercase_Letter"},
		2: {ID: 2, ShortName: "Ll", LongName: "Lowercase_Letter"},
	})

	ids, bad := ResolveLoose(idx, []string{"lu", "Lowercase Letter"})
	require.Empty(t, bad)
	assert.Equal(t, []int{1, 2}, ids)

	// every offender is reported, not just the first
	_, bad = ResolveLoose(idx, []string{"Lu", "nope", "alsono"})
	assert.Equal(t, []string{"nope", "alsono"}, bad)
}

func TestFuzzyScores(t *testing.T) {
	names := []NameEntry{
		{Key: "latin small letter a", ID: 0x61},
		{Key: "latin capital letter a", ID: 0x41},
		{Key: "greek small letter alpha", ID: 0x3B1},
	}

	hits := FuzzyScores("latin small letter a", 70, names)
	require.NotEmpty(t, hits)
	assert.Equal(t, 0x61, hits[0].ID)
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Score == hits[i].Score {
			assert.Less(t, hits[i-1].ID, hits[i].ID)
		} else {
			assert.Greater(t, hits[i-1].Score, hits[i].Score)
		}
	}
}

func TestFuzzyScoresMinScoreClamp(t *testing.T) {
	names := []NameEntry{{Key: "latin small letter a", ID: 0x61}}

	// a minscore of zero is raised to the floor rather than matching everything
	lax := FuzzyScores("latin small letter a", 0, names)
	for _, h := range lax {
		assert.GreaterOrEqual(t, h.Score, 70)
	}
}
