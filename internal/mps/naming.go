//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"fmt"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// CLASSIFICATION
//

// GetCharacterType - the eight-way split every assembly and naming decision
// hangs off of; total over all of int32
func (uc *UCache) GetCharacterType(cp int32) str.CharType {
	switch {
	case cp < 0 || cp > vv.MAXCODEPOINT:
		return str.CTInvalid
	case cp >= vv.SURROGATESTART && cp <= vv.SURROGATEFINISH:
		return str.CTSurrogate
	case isnoncharacter(cp):
		return str.CTNoncharacter
	case isprivateuse(cp):
		return str.CTPrivateUse
	}
	if _, ok := uc.TangutBlocks[cp]; ok {
		return str.CTTangut
	}
	if _, ok := uc.UnihanBlocks[cp]; ok {
		return str.CTUnihan
	}
	if _, ok := uc.CharNames[cp]; ok {
		return str.CTNonUnihan
	}
	return str.CTReserved
}

// isnoncharacter - the 66 permanent noncharacters: U+FDD0..U+FDEF plus the
// last two codepoints of every plane
func isnoncharacter(cp int32) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	return cp&0xFFFE == 0xFFFE
}

// isprivateuse - the BMP PUA and the two supplementary PUA planes
func isprivateuse(cp int32) bool {
	switch {
	case cp >= 0xE000 && cp <= 0xF8FF:
		return true
	case cp >= 0xF0000 && cp <= 0xFFFFD:
		return true
	case cp >= 0x100000 && cp <= 0x10FFFD:
		return true
	}
	return false
}

//
// NAMING
//

// GetCharacterName - the display name for any codepoint whatsoever; assigned
// CJK and Tangut names are synthesized from the codepoint, everything without
// a UCD row gets a label naming its kind
func (uc *UCache) GetCharacterName(cp int32) string {
	switch uc.GetCharacterType(cp) {
	case str.CTNonUnihan:
		return uc.CharNames[cp]
	case str.CTUnihan:
		return uc.unihanname(cp)
	case str.CTTangut:
		return uc.tangutname(cp)
	case str.CTNoncharacter:
		return fmt.Sprintf("<noncharacter-%04X>", cp)
	case str.CTSurrogate:
		return fmt.Sprintf("<surrogate-%04X>", cp)
	case str.CTPrivateUse:
		return fmt.Sprintf("<private-use-%04X>", cp)
	case str.CTReserved:
		return fmt.Sprintf("<reserved-%04X>", cp)
	default:
		return fmt.Sprintf("Invalid Codepoint (U+%04X)", cp)
	}
}

// unihanname - "CJK UNIFIED IDEOGRAPH-XXXX" or "CJK COMPATIBILITY
// IDEOGRAPH-XXXX" per the block the codepoint sits in
func (uc *UCache) unihanname(cp int32) string {
	b := uc.blocksByID[uc.UnihanBlocks[cp]]
	if b != nil && strings.Contains(strings.ToLower(b.LongName), "compatibility") {
		return fmt.Sprintf("CJK COMPATIBILITY IDEOGRAPH-%04X", cp)
	}
	return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", cp)
}

// tangutname - components are numbered from one inside their block; the
// ideographs carry the usual hex suffix
func (uc *UCache) tangutname(cp int32) string {
	b := uc.blocksByID[uc.TangutBlocks[cp]]
	if b != nil && strings.Contains(strings.ToLower(b.LongName), "component") {
		return fmt.Sprintf("TANGUT COMPONENT-%03d", cp-b.StartDec+1)
	}
	return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", cp)
}
