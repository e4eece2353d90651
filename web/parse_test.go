//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

func TestParseCodepointSpellings(t *testing.T) {
	for _, tc := range []struct {
		arg  string
		want int32
	}{
		{"U+2211", 0x2211},
		{"u+2211", 0x2211},
		{"0x2211", 0x2211},
		{"2211", 0x2211},
		{"U+10FFFF", 0x10FFFF},
		{"41", 0x41},
	} {
		cp, ae := parsecodepoint(tc.arg)
		require.Nil(t, ae, tc.arg)
		assert.Equal(t, tc.want, cp, tc.arg)
	}
}

func TestParseCodepointShortUPlus(t *testing.T) {
	_, ae := parsecodepoint("U+72")
	require.NotNil(t, ae)
	assert.Equal(t, str.ErrBadCodepoint, ae.Kind)
	assert.Contains(t, ae.Message, "U+0072")
}

func TestParseCodepointNonHex(t *testing.T) {
	// signed spellings are malformations, not negative or aliased codepoints:
	// "-5" must never answer for a codepoint and "+41" must never alias "41"
	for _, arg := range []string{"U+ZZZZ", "0xGG", "lattes", "", "-5", "+41", "0x-41", "U+-0041"} {
		_, ae := parsecodepoint(arg)
		require.NotNil(t, ae, arg)
		assert.Equal(t, str.ErrBadCodepoint, ae.Kind, arg)
	}
}

func TestParseCodepointPastCodespace(t *testing.T) {
	// range beats length: seven valid hex digits past U+10FFFF is a range
	// failure, not a malformation
	for _, arg := range []string{"U+1234567", "0x110000", "110000"} {
		_, ae := parsecodepoint(arg)
		require.NotNil(t, ae, arg)
		assert.Equal(t, str.ErrNotInRange, ae.Kind, arg)
	}
}

func TestParseCodepointLength(t *testing.T) {
	for _, arg := range []string{"7", "0x7"} {
		_, ae := parsecodepoint(arg)
		require.NotNil(t, ae, arg)
		assert.Equal(t, str.ErrBadCodepoint, ae.Kind, arg)
	}
}

func testctx(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCsvParam(t *testing.T) {
	c := testctx(t, "gc=Lu,Ll&gc=Nd&gc=")
	assert.Equal(t, []string{"Lu", "Ll", "Nd"}, csvparam(c, "gc"))
	assert.Empty(t, csvparam(c, "absent"))
}

func TestBoolParam(t *testing.T) {
	assert.True(t, boolparam(testctx(t, "verbose=true"), "verbose"))
	assert.True(t, boolparam(testctx(t, "verbose=1"), "verbose"))
	assert.False(t, boolparam(testctx(t, "verbose=yes"), "verbose"))
	assert.False(t, boolparam(testctx(t, ""), "verbose"))
}

func TestIntParam(t *testing.T) {
	n, ae := intparam(testctx(t, "limit=25"), "limit", 10)
	require.Nil(t, ae)
	assert.Equal(t, 25, n)

	n, ae = intparam(testctx(t, ""), "limit", 10)
	require.Nil(t, ae)
	assert.Equal(t, 10, n)

	_, ae = intparam(testctx(t, "limit=ten"), "limit", 10)
	require.NotNil(t, ae)
	assert.Equal(t, str.ErrBadEnumValue, ae.Kind)
}

func TestCursorCodepointsExclusivityIsDownstream(t *testing.T) {
	// both cursors parse fine here; CharacterPage rejects the combination
	after, before, ae := cursorcodepoints(testctx(t, "starting_after=U+0041&ending_before=U+005A"))
	require.Nil(t, ae)
	require.NotNil(t, after)
	require.NotNil(t, before)
	assert.Equal(t, int32(0x41), *after)
	assert.Equal(t, int32(0x5A), *before)
}
