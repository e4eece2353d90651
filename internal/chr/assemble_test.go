//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphRef(t *testing.T) {
	assert.Equal(t, "", glyphref(""))
	assert.Equal(t, "a (U+0061)", glyphref("0061"))
	assert.Equal(t, "∑ (U+2211)", glyphref("2211"))

	// junk passes through untranslated rather than vanishing
	assert.Equal(t, "not-hex", glyphref("not-hex"))
}

func TestQuickCheckWord(t *testing.T) {
	assert.Equal(t, "Yes", quickcheckword("", false))
	assert.Equal(t, "Yes", quickcheckword("Y", true))
	assert.Equal(t, "Yes", quickcheckword("", true))
	assert.Equal(t, "No", quickcheckword("N", true))
	assert.Equal(t, "Maybe", quickcheckword("M", true))
}

func TestScanHelpers(t *testing.T) {
	row := map[string]any{
		"a": int64(7),
		"b": "12",
		"c": []byte("abc"),
		"d": 2.5,
		"e": nil,
	}

	assert.Equal(t, 7, getint(row, "a"))
	assert.Equal(t, 12, getint(row, "b"))
	assert.Equal(t, 0, getint(row, "e"))
	assert.Equal(t, 0, getint(row, "missing"))

	assert.Equal(t, "abc", getstr(row, "c"))
	assert.Equal(t, "12", getstr(row, "b"))
	assert.Equal(t, "", getstr(row, "e"))

	assert.Equal(t, 2.5, getfloat(row, "d"))
	assert.Equal(t, 7.0, getfloat(row, "a"))
	assert.Equal(t, 0.0, getfloat(row, "missing"))
}
