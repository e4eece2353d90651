//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

// testcache - a miniature universe: ascii, one unihan block, one compatibility
// block, one tangut block, and a few catalog sections
func testcache() *UCache {
	planes := []str.UnicodePlane{
		{ID: 1, Number: 0, Name: "Basic Multilingual Plane", Abbreviation: "BMP"},
		{ID: 2, Number: 1, Name: "Supplementary Multilingual Plane", Abbreviation: "SMP"},
	}
	blocks := []str.UnicodeBlock{
		{ID: 1, LongName: "Basic Latin", ShortName: "ASCII", PlaneID: 1, StartDec: 0x0000, FinishDec: 0x007F},
		{ID: 2, LongName: "CJK Unified Ideographs", ShortName: "CJK", PlaneID: 1, StartDec: 0x4E00, FinishDec: 0x9FFF},
		{ID: 3, LongName: "CJK Compatibility Ideographs", ShortName: "CJK_Compat_Ideographs", PlaneID: 1, StartDec: 0xF900, FinishDec: 0xFAFF},
		{ID: 4, LongName: "Tangut Components", ShortName: "Tangut_Components", PlaneID: 2, StartDec: 0x18800, FinishDec: 0x18AFF},
	}
	names := map[int32]string{
		0x0041: "LATIN CAPITAL LETTER A",
		0x2211: "N-ARY SUMMATION",
	}
	unihan := map[int32]int{0x4E00: 2, 0xF900: 3}
	tangut := map[int32]int{0x18800: 4, 0x18801: 4}

	cat := str.PropertyCatalogFile{
		Properties: map[string][]str.PropertyValue{
			"Age": {
				{ID: 1, ShortName: "1.1", LongName: "V1_1"},
				{ID: 2, ShortName: "2.0", LongName: "V2_0"},
				{ID: 3, ShortName: "3.1", LongName: "V3_1"},
				{ID: 4, ShortName: "NA", LongName: "Unassigned"},
			},
			"General_Category": {
				{ID: 1, ShortName: "Cs", LongName: "Surrogate"},
				{ID: 2, ShortName: "Co", LongName: "Private_Use"},
				{ID: 3, ShortName: "Cn", LongName: "Unassigned"},
				{ID: 4, ShortName: "Lu", LongName: "Uppercase_Letter"},
			},
			"Script": {
				{ID: 1, ShortName: "Zzzz", LongName: "Unknown"},
				{ID: 2, ShortName: "Latn", LongName: "Latin"},
			},
		},
		BooleanProperties: []str.CharFlag{
			{Long: "Alphabetic", Short: "Alpha", Column: "alphabetic"},
		},
		Missing: []string{"Indic_Matra_Category"},
	}

	return AssembleCache(planes, blocks, names, unihan, tangut, cat)
}

func TestGetCharacterType(t *testing.T) {
	uc := testcache()
	for _, tc := range []struct {
		cp   int32
		want str.CharType
	}{
		{0x0041, str.CTNonUnihan},
		{0x4E00, str.CTUnihan},
		{0xF900, str.CTUnihan},
		{0x18800, str.CTTangut},
		{0xFDD0, str.CTNoncharacter},
		{0xFFFE, str.CTNoncharacter},
		{0x10FFFF, str.CTNoncharacter},
		{0xD800, str.CTSurrogate},
		{0xDFFF, str.CTSurrogate},
		{0xE000, str.CTPrivateUse},
		{0xF0000, str.CTPrivateUse},
		{0x10FFFD, str.CTPrivateUse},
		{0x0900, str.CTReserved},
		{-1, str.CTInvalid},
		{0x110000, str.CTInvalid},
	} {
		assert.Equal(t, tc.want, uc.GetCharacterType(tc.cp), "U+%04X", tc.cp)
	}
}

func TestGetCharacterName(t *testing.T) {
	uc := testcache()
	for _, tc := range []struct {
		cp   int32
		want string
	}{
		{0x0041, "LATIN CAPITAL LETTER A"},
		{0x4E00, "CJK UNIFIED IDEOGRAPH-4E00"},
		{0xF900, "CJK COMPATIBILITY IDEOGRAPH-F900"},
		{0x18800, "TANGUT COMPONENT-001"},
		{0x18801, "TANGUT COMPONENT-002"},
		{0xFDD0, "<noncharacter-FDD0>"},
		{0xD800, "<surrogate-D800>"},
		{0xE000, "<private-use-E000>"},
		{0x0900, "<reserved-0900>"},
		{0x110000, "Invalid Codepoint (U+110000)"},
	} {
		assert.Equal(t, tc.want, uc.GetCharacterName(tc.cp), "U+%04X", tc.cp)
	}
}

func TestBlockAndPlaneLookups(t *testing.T) {
	uc := testcache()

	b := uc.GetUnicodeBlockContainingCodepoint(0x41)
	require.NotNil(t, b)
	assert.Equal(t, "Basic Latin", b.LongName)

	assert.Nil(t, uc.GetUnicodeBlockContainingCodepoint(0x0900))

	p := uc.GetUnicodePlaneContainingBlockID(4)
	require.NotNil(t, p)
	assert.Equal(t, "SMP", p.Abbreviation)

	assert.Equal(t, "BMP", uc.PlaneContaining(0x41).Abbreviation)
	assert.Equal(t, -2, uc.PlaneContaining(0x50000).ID)

	require.NotNil(t, uc.PlaneByNumber(1))
	assert.Nil(t, uc.PlaneByNumber(7))
}

func TestResolveBlockName(t *testing.T) {
	uc := testcache()

	id, _ := uc.ResolveBlockName("Basic Latin")
	assert.Equal(t, 1, id)

	// loose matching and the short name both resolve
	id, _ = uc.ResolveBlockName("cjk_unified-ideographs")
	assert.Equal(t, 2, id)
	id, _ = uc.ResolveBlockName("ascii")
	assert.Equal(t, 1, id)

	// a near miss earns suggestions
	id, suggestions := uc.ResolveBlockName("basic lating")
	assert.Zero(t, id)
	assert.Contains(t, suggestions, "Basic Latin")
}

func TestDisplayPropValue(t *testing.T) {
	uc := testcache()

	assert.Equal(t, "Uppercase_Letter (Lu)", uc.DisplayPropValue("General_Category", 4))
	assert.Equal(t, "1.1", uc.DisplayPropValue("Age", 1))
	assert.Equal(t, vv.NOTAVAILABLE, uc.DisplayPropValue("Indic_Matra_Category", 1))
	assert.Equal(t, vv.NOTAVAILABLE, uc.DisplayPropValue("Script", vv.INVALIDPROPVALUEID))
	assert.Equal(t, vv.NOTAVAILABLE, uc.DisplayPropValue("Script", 99))
}

func TestResolveEnumValues(t *testing.T) {
	uc := testcache()

	ids, bad := uc.ResolveEnumValues("General_Category", []string{"lu", "Unassigned"})
	require.Empty(t, bad)
	assert.Equal(t, []int{4, 3}, ids)

	_, bad = uc.ResolveEnumValues("General_Category", []string{"Lu", "Xx"})
	assert.Equal(t, []string{"Xx"}, bad)

	_, bad = uc.ResolveEnumValues("No_Such_Property", []string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, bad)
}

func TestDefaultAge(t *testing.T) {
	uc := testcache()
	for _, tc := range []struct {
		cp   int32
		want string
	}{
		{0xD800, "1.1"},
		{0xE000, "1.1"},
		{0xF0000, "2.0"},
		{0x100000, "2.0"},
		{0xFDD0, "3.1"},
		{0xFFFE, "1.1"},
		{0x1FFFE, "2.0"},
		{0x0900, "NA"},
	} {
		assert.Equal(t, tc.want, uc.DefaultPropertyShort("Age", tc.cp), "U+%04X", tc.cp)
	}
}

func TestDefaultGeneralCategory(t *testing.T) {
	uc := testcache()
	assert.Equal(t, "Cs", uc.DefaultPropertyShort("General_Category", 0xD800))
	assert.Equal(t, "Co", uc.DefaultPropertyShort("General_Category", 0xE000))
	assert.Equal(t, "Cn", uc.DefaultPropertyShort("General_Category", 0x0900))
}

func TestDefaultBidiClass(t *testing.T) {
	uc := testcache()
	assert.Equal(t, "R", uc.DefaultPropertyShort("Bidi_Class", 0x05D0))
	assert.Equal(t, "AL", uc.DefaultPropertyShort("Bidi_Class", 0x0600))
	assert.Equal(t, "ET", uc.DefaultPropertyShort("Bidi_Class", 0x20A5))
	assert.Equal(t, "L", uc.DefaultPropertyShort("Bidi_Class", 0x0950))
}

func TestDefaultEastAsianWidth(t *testing.T) {
	uc := testcache()
	assert.Equal(t, "A", uc.DefaultPropertyShort("East_Asian_Width", 0xE000))
	assert.Equal(t, "W", uc.DefaultPropertyShort("East_Asian_Width", 0x9FFF))
	assert.Equal(t, "N", uc.DefaultPropertyShort("East_Asian_Width", 0x0900))
}

func TestDefaultVerticalOrientation(t *testing.T) {
	uc := testcache()

	// the ideographic planes are upright, and so are the architected blocks
	assert.Equal(t, "U", uc.DefaultPropertyShort("Vertical_Orientation", 0x20000))
	assert.Equal(t, "U", uc.DefaultPropertyShort("Vertical_Orientation", 0x9FFF))
	assert.Equal(t, "R", uc.DefaultPropertyShort("Vertical_Orientation", 0x0041))
}

func TestDefaultPropertyID(t *testing.T) {
	uc := testcache()

	assert.Equal(t, 1, uc.DefaultPropertyID("Age", 0xD800))
	assert.Equal(t, 2, uc.DefaultPropertyID("General_Category", 0xE000))
	assert.Equal(t, 1, uc.DefaultPropertyID("Script", 0xE000))
	assert.Equal(t, 0, uc.DefaultPropertyID("Canonical_Combining_Class", 0xE000))
	assert.Equal(t, vv.INVALIDPROPVALUEID, uc.DefaultPropertyID("Indic_Matra_Category", 0xE000))
}

func TestSyntheticPlanes(t *testing.T) {
	all := AllUnicodePlane()
	assert.Equal(t, int32(0), all.StartDec)
	assert.Equal(t, int32(vv.MAXCODEPOINT), all.FinishDec)
	assert.Equal(t, "ALL", all.Abbreviation)

	assert.Equal(t, -2, UnassignedPlane().ID)
}
