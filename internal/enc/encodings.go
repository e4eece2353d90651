//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package enc

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// ON-DEMAND ENCODINGS
//

// a surrogate codepoint has no encoding at all; every function here returns
// its zero value for one

// IsSurrogate - D800-DFFF
func IsSurrogate(cp int32) bool {
	return cp >= vv.SURROGATESTART && cp <= vv.SURROGATEFINISH
}

// Utf8Bytes - the UTF-8 byte sequence for a scalar codepoint; nil for surrogates
func Utf8Bytes(cp int32) []byte {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return nil
	}
	buf := make([]byte, 4)
	n := utf8.EncodeRune(buf, rune(cp))
	return buf[:n]
}

// Utf8 - "0xE2 0x88 0x91"
func Utf8(cp int32) string {
	bb := Utf8Bytes(cp)
	pieces := make([]string, len(bb))
	for i, b := range bb {
		pieces[i] = fmt.Sprintf("0x%02X", b)
	}
	return strings.Join(pieces, " ")
}

// Utf8HexBytes - ["E2", "88", "91"]
func Utf8HexBytes(cp int32) []string {
	bb := Utf8Bytes(cp)
	hh := make([]string, len(bb))
	for i, b := range bb {
		hh[i] = fmt.Sprintf("%02X", b)
	}
	return hh
}

// Utf8DecBytes - [226, 136, 145]
func Utf8DecBytes(cp int32) []int {
	bb := Utf8Bytes(cp)
	dd := make([]int, len(bb))
	for i, b := range bb {
		dd[i] = int(b)
	}
	return dd
}

// Utf16Units - big-endian code units: one for the BMP, a pair beyond it
func Utf16Units(cp int32) []uint16 {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return nil
	}
	if cp < 0x10000 {
		return []uint16{uint16(cp)}
	}
	hi, lo := utf16.EncodeRune(rune(cp))
	return []uint16{uint16(hi), uint16(lo)}
}

// Utf16 - "0x2211" or "0xD835 0xDD4A"
func Utf16(cp int32) string {
	uu := Utf16Units(cp)
	pieces := make([]string, len(uu))
	for i, u := range uu {
		pieces[i] = fmt.Sprintf("0x%04X", u)
	}
	return strings.Join(pieces, " ")
}

// Utf16HexBytes - ["2211"]
func Utf16HexBytes(cp int32) []string {
	uu := Utf16Units(cp)
	hh := make([]string, len(uu))
	for i, u := range uu {
		hh[i] = fmt.Sprintf("%04X", u)
	}
	return hh
}

// Utf16DecBytes - [8721]
func Utf16DecBytes(cp int32) []int {
	uu := Utf16Units(cp)
	dd := make([]int, len(uu))
	for i, u := range uu {
		dd[i] = int(u)
	}
	return dd
}

// Utf32 - a single 8-hex-digit unit: "0x00002211"
func Utf32(cp int32) string {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return ""
	}
	return fmt.Sprintf("0x%08X", cp)
}

// Utf32HexBytes - ["00002211"]
func Utf32HexBytes(cp int32) []string {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return nil
	}
	return []string{fmt.Sprintf("%08X", cp)}
}

// Utf32DecBytes - [8721]
func Utf32DecBytes(cp int32) []int {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return nil
	}
	return []int{int(cp)}
}

// UriEncoded - "%XX" per UTF-8 byte: "%E2%88%91"
func UriEncoded(cp int32) string {
	bb := Utf8Bytes(cp)
	var sb strings.Builder
	for _, b := range bb {
		sb.WriteString(fmt.Sprintf("%%%02X", b))
	}
	return sb.String()
}

// HtmlEntities - numeric decimal, numeric hex, then the canonical HTML5
// named entity if the codepoint has one
func HtmlEntities(cp int32) []string {
	if IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT {
		return []string{}
	}
	ee := []string{fmt.Sprintf("&#%d;", cp), fmt.Sprintf("&#x%X;", cp)}
	if name := canonicalentity(rune(cp)); name != "" {
		ee = append(ee, fmt.Sprintf("&%s;", name))
	}
	return ee
}

// canonicalentity - one name per codepoint; the WHATWG list carries case
// aliases like Sum/sum and the all-lowercase spelling is the canonical one
func canonicalentity(r rune) string {
	names := NamedEntities[r]
	if len(names) == 0 {
		return ""
	}
	for _, name := range names {
		if name == strings.ToLower(name) {
			return name
		}
	}
	return names[0]
}

// Glyph - the character itself, except that C0 controls render as their
// U+2400-block control pictures, DEL as U+2425, and surrogates as nothing
func Glyph(cp int32) string {
	switch {
	case IsSurrogate(cp) || cp < 0 || cp > vv.MAXCODEPOINT:
		return ""
	case cp == 0x7F:
		return string(rune(0x2425))
	case cp <= 0x1F:
		return string(rune(0x2400 + cp))
	default:
		return string(rune(cp))
	}
}
