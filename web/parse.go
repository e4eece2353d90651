//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// PARAMETER PARSING
//

// parsecodepoint - the three accepted spellings: "U+HHHH" (4-6 hex digits),
// "0xHH" (2-6), bare "HH" (2-6); each malformation gets its own message
func parsecodepoint(arg string) (int32, *str.APIError) {
	const (
		NONHEX = `'%s' is not a valid codepoint: '%s' contains non-hexadecimal digits`
		SHORTU = `'%s' is not a valid codepoint: the 'U+' form needs at least four hex digits; did you mean 'U+%04X'?`
		LENGTH = `'%s' is not a valid codepoint: expected 2 to 6 hex digits`
		TOOBIG = `U+%X is not a Unicode codepoint: the codespace ends at U+10FFFF`
	)

	raw := strings.TrimSpace(arg)
	digits := raw
	uplus := false

	switch {
	case strings.HasPrefix(raw, "U+") || strings.HasPrefix(raw, "u+"):
		digits = raw[2:]
		uplus = true
	case strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X"):
		digits = raw[2:]
	}

	// ParseInt alone would also admit a leading sign: "-5" and "+41" are not
	// codepoint spellings
	if !ishexdigits(digits) {
		return 0, str.NewAPIError(str.ErrBadCodepoint, fmt.Sprintf(NONHEX, raw, digits))
	}

	n, e := strconv.ParseInt(digits, 16, 64)
	if e != nil {
		return 0, str.NewAPIError(str.ErrBadCodepoint, fmt.Sprintf(NONHEX, raw, digits))
	}

	// a numerically valid spelling past the end of the codespace is its own
	// failure, whatever its digit count
	if n > vv.MAXCODEPOINT {
		return 0, str.NewAPIError(str.ErrNotInRange, fmt.Sprintf(TOOBIG, n))
	}

	if uplus && len(digits) < 4 {
		return 0, str.NewAPIError(str.ErrBadCodepoint, fmt.Sprintf(SHORTU, raw, n))
	}
	if len(digits) > 6 || (!uplus && len(digits) < 2) {
		return 0, str.NewAPIError(str.ErrBadCodepoint, fmt.Sprintf(LENGTH, raw))
	}
	return int32(n), nil
}

// ishexdigits - true when every rune is a hexadecimal digit and there is at
// least one of them
func ishexdigits(digits string) bool {
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// intparam - a plain integer query parameter; def when absent
func intparam(c echo.Context, name string, def int) (int, *str.APIError) {
	const (
		BAD = `'%s' is not a valid value for '%s': expected an integer`
	)
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, e := strconv.Atoi(raw)
	if e != nil {
		return 0, str.NewAPIError(str.ErrBadEnumValue, fmt.Sprintf(BAD, raw, name))
	}
	return n, nil
}

// boolparam - "true"/"1" count as set
func boolparam(c echo.Context, name string) bool {
	raw := strings.ToLower(c.QueryParam(name))
	return raw == "true" || raw == "1"
}

// csvparam - a parameter that may repeat and may carry comma-joined values
func csvparam(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, piece := range strings.Split(raw, ",") {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

// cursorints - the starting_after / ending_before pair as block ids
func cursorints(c echo.Context) (*int, *int, *str.APIError) {
	var after, before *int
	if c.QueryParam("starting_after") != "" {
		n, ae := intparam(c, "starting_after", 0)
		if ae != nil {
			return nil, nil, ae
		}
		after = &n
	}
	if c.QueryParam("ending_before") != "" {
		n, ae := intparam(c, "ending_before", 0)
		if ae != nil {
			return nil, nil, ae
		}
		before = &n
	}
	return after, before, nil
}

// cursorcodepoints - the starting_after / ending_before pair in codepoint form
func cursorcodepoints(c echo.Context) (*int32, *int32, *str.APIError) {
	var after, before *int32
	if raw := c.QueryParam("starting_after"); raw != "" {
		cp, ae := parsecodepoint(raw)
		if ae != nil {
			return nil, nil, ae
		}
		after = &cp
	}
	if raw := c.QueryParam("ending_before"); raw != "" {
		cp, ae := parsecodepoint(raw)
		if ae != nil {
			return nil, nil, ae
		}
		before = &cp
	}
	return after, before, nil
}
