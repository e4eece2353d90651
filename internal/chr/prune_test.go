//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bidirendering(mirrored bool, glyph string) []rendered {
	vals := map[string]any{
		"bidirectionalClass":          "Other_Neutral (ON)",
		"bidirectionalIsMirrored":     mirrored,
		"bidirectionalMirroringGlyph": glyph,
		"bidirectionalControl":        false,
		"pairedBracketType":           "None (n)",
		"pairedBracketProperty":       "",
	}
	out := make([]rendered, 0, len(GroupBidirectionality.Defs))
	for _, d := range GroupBidirectionality.Defs {
		out = append(out, rendered{def: d, val: vals[d.Key]})
	}
	return out
}

func skipped(out []rendered, key string) bool {
	for _, r := range out {
		if r.def.Key == key {
			return r.skip
		}
	}
	return false
}

func TestPruneMirroringGlyphFollowsMirroredFlag(t *testing.T) {
	// a stored glyph on an unmirrored character goes, whatever the column
	// happened to carry
	out := bidirendering(false, ") (U+0029)")
	pruneconcise(GroupBidirectionality, out, 0x28)
	assert.True(t, skipped(out, "bidirectionalMirroringGlyph"))
	assert.True(t, skipped(out, "bidirectionalIsMirrored"))

	// a mirrored character keeps it
	out = bidirendering(true, ") (U+0029)")
	pruneconcise(GroupBidirectionality, out, 0x28)
	assert.False(t, skipped(out, "bidirectionalMirroringGlyph"))
	assert.False(t, skipped(out, "bidirectionalIsMirrored"))
}

func TestPrunePairedBracketNone(t *testing.T) {
	out := bidirendering(true, ") (U+0029)")
	pruneconcise(GroupBidirectionality, out, 0x28)
	assert.True(t, skipped(out, "pairedBracketType"))
	assert.True(t, skipped(out, "pairedBracketProperty"))
}
