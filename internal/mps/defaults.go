//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// DEFAULT-VALUE SYNTHESIS
//
// codepoints without a UCD row (reserved, surrogate, noncharacter, private
// use) still answer property queries; most properties have one constant
// default, a handful depend on where the codepoint sits
//

// constantdefaults - properties whose default never varies; values are short
// names as they appear in PropertyValueAliases.txt
var constantdefaults = map[string]string{
	"Bidi_Paired_Bracket_Type":  "n",
	"Canonical_Combining_Class": "NR",
	"Decomposition_Type":        "None",
	"Hangul_Syllable_Type":      "NA",
	"Indic_Matra_Category":      "NA",
	"Indic_Positional_Category": "NA",
	"Indic_Syllabic_Category":   "Other",
	"Joining_Group":             "No_Joining_Group",
	"Joining_Type":              "U",
	"Line_Break":                "XX",
	"Numeric_Type":              "None",
	"Script":                    "Zzzz",
}

// DefaultPropertyShort - the default short name of an enumerated property for
// one specific codepoint
func (uc *UCache) DefaultPropertyShort(property string, cp int32) string {
	if d, ok := constantdefaults[property]; ok {
		return d
	}
	switch property {
	case "Age":
		return defaultage(cp)
	case "Bidi_Class":
		return defaultbidiclass(cp)
	case "East_Asian_Width":
		return uc.defaulteaw(cp)
	case "General_Category":
		return uc.defaultgc(cp)
	case "Vertical_Orientation":
		return uc.defaultvo(cp)
	}
	return ""
}

// DefaultPropertyID - DefaultPropertyShort resolved into a catalog id; the
// combining class short-circuits since its ids are the ccc numbers themselves
func (uc *UCache) DefaultPropertyID(property string, cp int32) int {
	if uc.MissingProps[property] {
		return vv.INVALIDPROPVALUEID
	}
	if property == "Canonical_Combining_Class" {
		return 0
	}
	short := uc.DefaultPropertyShort(property, cp)
	if short == "" {
		return vv.INVALIDPROPVALUEID
	}
	if id, ok := uc.LooseIndexes[property][search.LooseNormalize(short)]; ok {
		return id
	}
	return vv.INVALIDPROPVALUEID
}

// defaultage - the version that architected the codepoint's slot; surrogates,
// the BMP private use area, and the plane-tail noncharacters date to 1.1, the
// supplementary private use planes to 2.0, U+FDD0.. to 3.1, the rest of the
// space is Unassigned
func defaultage(cp int32) string {
	ct := func() str.CharType {
		switch {
		case cp >= vv.SURROGATESTART && cp <= vv.SURROGATEFINISH:
			return str.CTSurrogate
		case isnoncharacter(cp):
			return str.CTNoncharacter
		case isprivateuse(cp):
			return str.CTPrivateUse
		}
		return str.CTReserved
	}()

	switch ct {
	case str.CTSurrogate:
		return "1.1"
	case str.CTPrivateUse:
		if cp <= 0xF8FF {
			return "1.1"
		}
		return "2.0"
	case str.CTNoncharacter:
		switch {
		case cp >= 0xFDD0 && cp <= 0xFDEF:
			return "3.1"
		case cp <= 0xFFFF:
			return "1.1"
		default:
			return "2.0"
		}
	default:
		return "NA"
	}
}

// defaultbidiclass - per DerivedBidiClass.txt the unassigned default is L
// outside the architected R, AL, and ET ranges
func defaultbidiclass(cp int32) string {
	inranges := func(rr []vv.CodepointRange) bool {
		for _, r := range rr {
			if cp >= r.First && cp <= r.Last {
				return true
			}
		}
		return false
	}
	switch {
	case inranges(vv.BidiDefaultR):
		return "R"
	case inranges(vv.BidiDefaultAL):
		return "AL"
	case inranges(vv.BidiDefaultET):
		return "ET"
	default:
		return "L"
	}
}

// defaulteaw - private use defaults to Ambiguous, unassigned slots inside the
// CJK ideograph blocks to Wide, everything else to Neutral
func (uc *UCache) defaulteaw(cp int32) string {
	if isprivateuse(cp) {
		return "A"
	}
	if b := uc.GetUnicodeBlockContainingCodepoint(cp); b != nil {
		low := strings.ToLower(b.LongName)
		if strings.Contains(low, "cjk unified ideographs") || strings.Contains(low, "cjk compatibility ideographs") {
			return "W"
		}
	}
	return "N"
}

// defaultgc - Cs, Co, or Cn
func (uc *UCache) defaultgc(cp int32) string {
	switch {
	case cp >= vv.SURROGATESTART && cp <= vv.SURROGATEFINISH:
		return "Cs"
	case isprivateuse(cp):
		return "Co"
	default:
		return "Cn"
	}
}

// defaultvo - upright on the ideographic planes and inside the architected
// upright blocks, rotated everywhere else
func (uc *UCache) defaultvo(cp int32) string {
	if vv.VerticalOrientationUPlanes[int(cp>>16)] {
		return "U"
	}
	if b := uc.GetUnicodeBlockContainingCodepoint(cp); b != nil {
		low := strings.ToLower(b.LongName)
		for _, ub := range vv.VerticalOrientationUBlocks {
			if low == ub {
				return "U"
			}
		}
	}
	return "R"
}
