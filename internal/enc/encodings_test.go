//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package enc

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtf8RoundTrip(t *testing.T) {
	for _, cp := range []int32{0x41, 0x2211, 0x1F600, 0x10FFFF} {
		bb := Utf8Bytes(cp)
		require.NotEmpty(t, bb)
		r, n := utf8.DecodeRune(bb)
		assert.Equal(t, len(bb), n)
		assert.Equal(t, rune(cp), r)
	}
}

func TestUtf16RoundTrip(t *testing.T) {
	uu := Utf16Units(0x2211)
	require.Len(t, uu, 1)
	assert.Equal(t, uint16(0x2211), uu[0])

	uu = Utf16Units(0x1D54A)
	require.Len(t, uu, 2)
	assert.Equal(t, rune(0x1D54A), utf16.DecodeRune(rune(uu[0]), rune(uu[1])))
}

func TestSurrogatesEncodeToNothing(t *testing.T) {
	for _, cp := range []int32{0xD800, 0xDBFF, 0xDFFF} {
		assert.Nil(t, Utf8Bytes(cp))
		assert.Nil(t, Utf16Units(cp))
		assert.Equal(t, "", Utf32(cp))
		assert.Equal(t, "", Glyph(cp))
		assert.Empty(t, HtmlEntities(cp))
	}
}

func TestFormattedEncodings(t *testing.T) {
	assert.Equal(t, "0xE2 0x88 0x91", Utf8(0x2211))
	assert.Equal(t, []string{"E2", "88", "91"}, Utf8HexBytes(0x2211))
	assert.Equal(t, []int{226, 136, 145}, Utf8DecBytes(0x2211))
	assert.Equal(t, "0x2211", Utf16(0x2211))
	assert.Equal(t, "0xD835 0xDD4A", Utf16(0x1D54A))
	assert.Equal(t, "0x00002211", Utf32(0x2211))
	assert.Equal(t, []string{"00002211"}, Utf32HexBytes(0x2211))
	assert.Equal(t, []int{8721}, Utf32DecBytes(0x2211))
	assert.Equal(t, "%E2%88%91", UriEncoded(0x2211))
}

func TestHtmlEntities(t *testing.T) {
	// aliased names collapse to the canonical lowercase spelling: never &Sum;
	assert.Equal(t, []string{"&#8721;", "&#x2211;", "&sum;"}, HtmlEntities(0x2211))
	assert.Equal(t, []string{"&#38;", "&#x26;", "&amp;"}, HtmlEntities(0x26))

	// a single uppercase-only name survives as-is
	assert.Equal(t, []string{"&#9;", "&#x9;", "&Tab;"}, HtmlEntities(0x09))

	// no named entity at all: just the two numeric forms
	assert.Equal(t, []string{"&#128512;", "&#x1F600;"}, HtmlEntities(0x1F600))
}

func TestGlyphControlPictures(t *testing.T) {
	assert.Equal(t, string(rune(0x2407)), Glyph(0x07))
	assert.Equal(t, string(rune(0x2425)), Glyph(0x7F))
	assert.Equal(t, "A", Glyph(0x41))
}
