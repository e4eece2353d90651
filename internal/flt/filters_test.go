//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package flt

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

func TestMain(m *testing.M) {
	blocks := []str.UnicodeBlock{
		{ID: 1, LongName: "Basic Latin", ShortName: "ASCII", PlaneID: 1, StartDec: 0x0000, FinishDec: 0x007F},
	}
	cat := str.PropertyCatalogFile{
		Properties: map[string][]str.PropertyValue{
			"General_Category": {
				{ID: 1, ShortName: "C", LongName: "Other", IsGroup: true, GroupedValues: "Cc|Cf"},
				{ID: 2, ShortName: "Cc", LongName: "Control"},
				{ID: 3, ShortName: "Cf", LongName: "Format"},
				{ID: 4, ShortName: "Lu", LongName: "Uppercase_Letter"},
			},
			"Script": {
				{ID: 1, ShortName: "Zzzz", LongName: "Unknown"},
				{ID: 2, ShortName: "Grek", LongName: "Greek"},
			},
		},
		BooleanProperties: []str.CharFlag{
			{Long: "Alphabetic", Short: "Alpha", Column: "alphabetic"},
			{Long: "Math", Short: "Math", Column: "math"},
		},
	}
	mps.UC = mps.AssembleCache(nil, blocks, nil, nil, nil, cat)
	os.Exit(m.Run())
}

func TestHasAny(t *testing.T) {
	assert.False(t, (&FilterSettings{}).HasAny())
	assert.True(t, (&FilterSettings{Name: "sigma"}).HasAny())
	assert.True(t, (&FilterSettings{FlagBits: []int{0}}).HasAny())
	assert.True(t, (&FilterSettings{CJKDefinition: "mountain"}).HasAny())
}

func TestExpandCategories(t *testing.T) {
	// the C group opens up into its members; concrete ids ride along once
	assert.Equal(t, []int{2, 3}, ExpandCategories([]int{1}))
	assert.Equal(t, []int{4, 2, 3}, ExpandCategories([]int{4, 1, 2}))
	assert.Equal(t, []int{4}, ExpandCategories([]int{4}))
}

func TestBuildQueriesName(t *testing.T) {
	nonunihan, unihan := buildqueries(&FilterSettings{Name: "letter a"})

	assert.Contains(t, nonunihan.Where, "replace(name, '-', ' ')")
	require.Len(t, nonunihan.Args, 1)
	assert.Equal(t, "% LETTER A %", nonunihan.Args[0])
	assert.Equal(t, nonunihan.Where, unihan.Where)
	assert.False(t, nonunihan.Skip)
}

func TestBuildQueriesAxesJoinWithAND(t *testing.T) {
	nonunihan, _ := buildqueries(&FilterSettings{
		BlockIDs:    []int{1},
		CategoryIDs: []int{4},
		FlagBits:    []int{0, 1},
	})

	assert.Contains(t, nonunihan.Where, "codepoint_dec BETWEEN ? AND ?")
	assert.Contains(t, nonunihan.Where, "general_category_id IN (?)")
	assert.Contains(t, nonunihan.Where, "alphabetic = 1 OR math = 1")
	assert.Equal(t, 2, strings.Count(nonunihan.Where, " AND "))
}

func TestBuildQueriesScriptExtensions(t *testing.T) {
	nonunihan, _ := buildqueries(&FilterSettings{ScriptIDs: []int{2}})

	assert.Contains(t, nonunihan.Where, "script_id = ?")
	assert.Contains(t, nonunihan.Where, "script_extensions")
	assert.Contains(t, nonunihan.Args, "% Grek %")
}

func TestBuildQueriesCJKDefinition(t *testing.T) {
	nonunihan, unihan := buildqueries(&FilterSettings{CJKDefinition: "Mountain", CategoryIDs: []int{4}})

	assert.True(t, nonunihan.Skip)
	assert.False(t, unihan.Skip)
	assert.Contains(t, unihan.Where, "lower(description)")
	assert.Contains(t, unihan.Where, "general_category_id IN (?)")

	// whole-word match: space-padded pattern over punctuation-normalized
	// prose, so "ox" can never ride inside "box"
	assert.Equal(t, "% mountain %", unihan.Args[len(unihan.Args)-1])
	for _, sep := range []string{"','", "';'", "'('", "')'", "'-'"} {
		assert.Contains(t, unihan.Where, sep)
	}
	assert.Contains(t, unihan.Where, `(' ' || replace(`)
	assert.True(t, strings.HasSuffix(unihan.Where, `|| ' ') LIKE ?`))
}
