//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/search"
)

//
// PROPERTY GROUPS
//
// a character response is assembled group by group; each group rides one
// covering index so the whole assembly never touches a table page
//

type pdkind int

const (
	pdComputed pdkind = iota // derived from the codepoint alone
	pdEnum                   // *_id column resolved through the catalog
	pdString                 // text column passed through
	pdInt                    // integer column
	pdFloat                  // real column
	pdFlag                   // boolean flag column
	pdGlyphRef               // hex-codepoint column shown as "<glyph> (U+XXXX)"
	pdCaseRef                // like pdGlyphRef but empty means "maps to itself"
	pdQuick                  // "Y"/"N"/"M" shown as Yes/No/Maybe
	pdList                   // space-separated tokens shown as a list
	pdScriptX                // script extension shorts resolved to display form
)

// propdef - one output property: its JSON key, its backing column (empty for
// computed values), and how to render it; Prop is the catalog property for
// enums and the flag long name for booleans
type propdef struct {
	Key  string
	Col  string
	Kind pdkind
	Prop string
}

// PropGroup - a named set of properties; Idx doubles as the covering-index
// name fragment
type PropGroup struct {
	Name string
	Idx  string
	CJK  bool
	Defs []propdef
}

var (
	GroupMinimum = &PropGroup{Name: "Minimum", Idx: "minimum", Defs: []propdef{
		{Key: "character", Kind: pdComputed},
		{Key: "name", Kind: pdComputed},
		{Key: "codepoint", Kind: pdComputed},
		{Key: "uriEncoded", Kind: pdComputed},
	}}

	GroupCJKMinimum = &PropGroup{Name: "CJK Minimum", Idx: "cjk_minimum", CJK: true, Defs: []propdef{
		{Key: "character", Kind: pdComputed},
		{Key: "name", Kind: pdComputed},
		{Key: "description", Col: "description", Kind: pdString},
		{Key: "codepoint", Kind: pdComputed},
		{Key: "uriEncoded", Kind: pdComputed},
	}}

	GroupBasic = &PropGroup{Name: "Basic", Idx: "basic", Defs: []propdef{
		{Key: "block", Kind: pdComputed},
		{Key: "plane", Kind: pdComputed},
		{Key: "age", Col: "age_id", Kind: pdEnum, Prop: "Age"},
		{Key: "generalCategory", Col: "general_category_id", Kind: pdEnum, Prop: "General_Category"},
		{Key: "combiningClass", Col: "combining_class_id", Kind: pdEnum, Prop: "Canonical_Combining_Class"},
		{Key: "htmlEntities", Kind: pdComputed},
	}}

	GroupCJKBasic = &PropGroup{Name: "CJK Basic", Idx: "cjk_basic", CJK: true, Defs: []propdef{
		{Key: "block", Kind: pdComputed},
		{Key: "plane", Kind: pdComputed},
		{Key: "age", Col: "age_id", Kind: pdEnum, Prop: "Age"},
		{Key: "generalCategory", Col: "general_category_id", Kind: pdEnum, Prop: "General_Category"},
		{Key: "combiningClass", Col: "combining_class_id", Kind: pdEnum, Prop: "Canonical_Combining_Class"},
		{Key: "htmlEntities", Kind: pdComputed},
		{Key: "ideoFrequency", Col: "ideo_frequency", Kind: pdInt},
		{Key: "ideoGradeLevel", Col: "ideo_grade_level", Kind: pdInt},
		{Key: "rsCountUnicode", Col: "rs_count_unicode", Kind: pdString},
		{Key: "rsCountKangxi", Col: "rs_count_kangxi", Kind: pdString},
		{Key: "totalStrokes", Col: "total_strokes", Kind: pdString},
	}}

	GroupUTF8 = &PropGroup{Name: "UTF-8", Idx: "utf8", Defs: []propdef{
		{Key: "utf8", Kind: pdComputed},
		{Key: "utf8HexBytes", Kind: pdComputed},
		{Key: "utf8DecBytes", Kind: pdComputed},
	}}

	GroupUTF16 = &PropGroup{Name: "UTF-16", Idx: "utf16", Defs: []propdef{
		{Key: "utf16", Kind: pdComputed},
		{Key: "utf16HexBytes", Kind: pdComputed},
		{Key: "utf16DecBytes", Kind: pdComputed},
	}}

	GroupUTF32 = &PropGroup{Name: "UTF-32", Idx: "utf32", Defs: []propdef{
		{Key: "utf32", Kind: pdComputed},
		{Key: "utf32HexBytes", Kind: pdComputed},
		{Key: "utf32DecBytes", Kind: pdComputed},
	}}

	GroupBidirectionality = &PropGroup{Name: "Bidirectionality", Idx: "bidirectionality", Defs: []propdef{
		{Key: "bidirectionalClass", Col: "bidi_class_id", Kind: pdEnum, Prop: "Bidi_Class"},
		{Key: "bidirectionalIsMirrored", Col: "bidi_mirrored", Kind: pdFlag, Prop: "Bidi_Mirrored"},
		{Key: "bidirectionalMirroringGlyph", Col: "bidi_mirroring_glyph", Kind: pdGlyphRef},
		{Key: "bidirectionalControl", Col: "bidi_control", Kind: pdFlag, Prop: "Bidi_Control"},
		{Key: "pairedBracketType", Col: "bidi_paired_bracket_type_id", Kind: pdEnum, Prop: "Bidi_Paired_Bracket_Type"},
		{Key: "pairedBracketProperty", Col: "bidi_paired_bracket_property", Kind: pdGlyphRef},
	}}

	GroupDecomposition = &PropGroup{Name: "Decomposition", Idx: "decomposition", Defs: []propdef{
		{Key: "decompositionType", Col: "decomposition_type_id", Kind: pdEnum, Prop: "Decomposition_Type"},
	}}

	GroupQuickCheck = &PropGroup{Name: "Quick Check", Idx: "quick_check", Defs: []propdef{
		{Key: "nfcQuickCheck", Col: "nfc_qc", Kind: pdQuick},
		{Key: "nfdQuickCheck", Col: "nfd_qc", Kind: pdQuick},
		{Key: "nfkcQuickCheck", Col: "nfkc_qc", Kind: pdQuick},
		{Key: "nfkdQuickCheck", Col: "nfkd_qc", Kind: pdQuick},
		{Key: "compositionExclusion", Col: "composition_exclusion", Kind: pdFlag, Prop: "Composition_Exclusion"},
		{Key: "fullCompositionExclusion", Col: "full_composition_exclusion", Kind: pdFlag, Prop: "Full_Composition_Exclusion"},
	}}

	GroupNumeric = &PropGroup{Name: "Numeric", Idx: "numeric", Defs: []propdef{
		{Key: "numericType", Col: "numeric_type_id", Kind: pdEnum, Prop: "Numeric_Type"},
		{Key: "numericValue", Col: "numeric_value", Kind: pdString},
		{Key: "numericValueParsed", Col: "numeric_value_parsed", Kind: pdFloat},
	}}

	GroupJoining = &PropGroup{Name: "Joining", Idx: "joining", Defs: []propdef{
		{Key: "joiningType", Col: "joining_type_id", Kind: pdEnum, Prop: "Joining_Type"},
		{Key: "joiningGroup", Col: "joining_group_id", Kind: pdEnum, Prop: "Joining_Group"},
		{Key: "joinControl", Col: "join_control", Kind: pdFlag, Prop: "Join_Control"},
	}}

	GroupLinebreak = &PropGroup{Name: "Linebreak", Idx: "linebreak", Defs: []propdef{
		{Key: "lineBreak", Col: "line_break_id", Kind: pdEnum, Prop: "Line_Break"},
	}}

	GroupEastAsianWidth = &PropGroup{Name: "East Asian Width", Idx: "east_asian_width", Defs: []propdef{
		{Key: "eastAsianWidth", Col: "east_asian_width_id", Kind: pdEnum, Prop: "East_Asian_Width"},
	}}

	GroupCase = &PropGroup{Name: "Case", Idx: "case", Defs: []propdef{
		{Key: "uppercase", Col: "uppercase", Kind: pdFlag, Prop: "Uppercase"},
		{Key: "lowercase", Col: "lowercase", Kind: pdFlag, Prop: "Lowercase"},
		{Key: "simpleUppercaseMapping", Col: "simple_uppercase_mapping", Kind: pdCaseRef},
		{Key: "simpleLowercaseMapping", Col: "simple_lowercase_mapping", Kind: pdCaseRef},
		{Key: "simpleTitlecaseMapping", Col: "simple_titlecase_mapping", Kind: pdCaseRef},
		{Key: "simpleCaseFolding", Col: "simple_case_folding", Kind: pdCaseRef},
	}}

	GroupScript = &PropGroup{Name: "Script", Idx: "script", Defs: []propdef{
		{Key: "script", Col: "script_id", Kind: pdEnum, Prop: "Script"},
		{Key: "scriptExtensions", Col: "script_extensions", Kind: pdScriptX},
	}}

	GroupHangul = &PropGroup{Name: "Hangul", Idx: "hangul", Defs: []propdef{
		{Key: "hangulSyllableType", Col: "hangul_syllable_type_id", Kind: pdEnum, Prop: "Hangul_Syllable_Type"},
	}}

	GroupIndic = &PropGroup{Name: "Indic", Idx: "indic", Defs: []propdef{
		{Key: "indicSyllabicCategory", Col: "indic_syllabic_category_id", Kind: pdEnum, Prop: "Indic_Syllabic_Category"},
		{Key: "indicMatraCategory", Col: "indic_matra_category_id", Kind: pdEnum, Prop: "Indic_Matra_Category"},
		{Key: "indicPositionalCategory", Col: "indic_positional_category_id", Kind: pdEnum, Prop: "Indic_Positional_Category"},
	}}

	GroupFunctionAndGraphic = &PropGroup{Name: "Function and Graphic", Idx: "function_and_graphic", Defs: []propdef{
		{Key: "dash", Col: "dash", Kind: pdFlag, Prop: "Dash"},
		{Key: "hyphen", Col: "hyphen", Kind: pdFlag, Prop: "Hyphen"},
		{Key: "quotationMark", Col: "quotation_mark", Kind: pdFlag, Prop: "Quotation_Mark"},
		{Key: "terminalPunctuation", Col: "terminal_punctuation", Kind: pdFlag, Prop: "Terminal_Punctuation"},
		{Key: "sentenceTerminal", Col: "sentence_terminal", Kind: pdFlag, Prop: "Sentence_Terminal"},
		{Key: "diacritic", Col: "diacritic", Kind: pdFlag, Prop: "Diacritic"},
		{Key: "extender", Col: "extender", Kind: pdFlag, Prop: "Extender"},
		{Key: "softDotted", Col: "soft_dotted", Kind: pdFlag, Prop: "Soft_Dotted"},
		{Key: "alphabetic", Col: "alphabetic", Kind: pdFlag, Prop: "Alphabetic"},
		{Key: "math", Col: "math", Kind: pdFlag, Prop: "Math"},
		{Key: "hexDigit", Col: "hex_digit", Kind: pdFlag, Prop: "Hex_Digit"},
		{Key: "asciiHexDigit", Col: "ascii_hex_digit", Kind: pdFlag, Prop: "ASCII_Hex_Digit"},
		{Key: "defaultIgnorableCodePoint", Col: "default_ignorable_code_point", Kind: pdFlag, Prop: "Default_Ignorable_Code_Point"},
		{Key: "logicalOrderException", Col: "logical_order_exception", Kind: pdFlag, Prop: "Logical_Order_Exception"},
		{Key: "prependedConcatenationMark", Col: "prepended_concatenation_mark", Kind: pdFlag, Prop: "Prepended_Concatenation_Mark"},
		{Key: "whiteSpace", Col: "white_space", Kind: pdFlag, Prop: "White_Space"},
		{Key: "regionalIndicator", Col: "regional_indicator", Kind: pdFlag, Prop: "Regional_Indicator"},
		{Key: "deprecated", Col: "deprecated", Kind: pdFlag, Prop: "Deprecated"},
		{Key: "variationSelector", Col: "variation_selector", Kind: pdFlag, Prop: "Variation_Selector"},
		{Key: "noncharacterCodePoint", Col: "noncharacter_code_point", Kind: pdFlag, Prop: "Noncharacter_Code_Point"},
		{Key: "ideographic", Col: "ideographic", Kind: pdFlag, Prop: "Ideographic"},
		{Key: "unifiedIdeograph", Col: "unified_ideograph", Kind: pdFlag, Prop: "Unified_Ideograph"},
		{Key: "radical", Col: "radical", Kind: pdFlag, Prop: "Radical"},
		{Key: "equivalentUnifiedIdeograph", Col: "equivalent_unified_ideograph", Kind: pdGlyphRef},
		{Key: "verticalOrientation", Col: "vertical_orientation_id", Kind: pdEnum, Prop: "Vertical_Orientation"},
	}}

	GroupEmoji = &PropGroup{Name: "Emoji", Idx: "emoji", Defs: []propdef{
		{Key: "emoji", Col: "emoji", Kind: pdFlag, Prop: "Emoji"},
		{Key: "emojiPresentation", Col: "emoji_presentation", Kind: pdFlag, Prop: "Emoji_Presentation"},
		{Key: "emojiModifier", Col: "emoji_modifier", Kind: pdFlag, Prop: "Emoji_Modifier"},
		{Key: "emojiModifierBase", Col: "emoji_modifier_base", Kind: pdFlag, Prop: "Emoji_Modifier_Base"},
		{Key: "emojiComponent", Col: "emoji_component", Kind: pdFlag, Prop: "Emoji_Component"},
		{Key: "extendedPictographic", Col: "extended_pictographic", Kind: pdFlag, Prop: "Extended_Pictographic"},
	}}

	GroupCJKVariants = &PropGroup{Name: "CJK Variants", Idx: "cjk_variants", CJK: true, Defs: []propdef{
		{Key: "traditionalVariant", Col: "traditional_variant", Kind: pdList},
		{Key: "simplifiedVariant", Col: "simplified_variant", Kind: pdList},
		{Key: "zVariant", Col: "z_variant", Kind: pdList},
		{Key: "compatibilityVariant", Col: "compatibility_variant", Kind: pdList},
		{Key: "semanticVariant", Col: "semantic_variant", Kind: pdList},
		{Key: "specializedSemanticVariant", Col: "specialized_semantic_variant", Kind: pdList},
		{Key: "spoofingVariant", Col: "spoofing_variant", Kind: pdList},
	}}

	GroupCJKNumeric = &PropGroup{Name: "CJK Numeric", Idx: "cjk_numeric", CJK: true, Defs: []propdef{
		{Key: "accountingNumeric", Col: "accounting_numeric", Kind: pdString},
		{Key: "primaryNumeric", Col: "primary_numeric", Kind: pdString},
		{Key: "otherNumeric", Col: "other_numeric", Kind: pdString},
	}}

	GroupCJKReadings = &PropGroup{Name: "CJK Readings", Idx: "cjk_readings", CJK: true, Defs: []propdef{
		{Key: "hangul", Col: "hangul", Kind: pdString},
		{Key: "cantonese", Col: "cantonese", Kind: pdString},
		{Key: "mandarin", Col: "mandarin", Kind: pdString},
		{Key: "japaneseKun", Col: "japanese_kun", Kind: pdString},
		{Key: "japaneseOn", Col: "japanese_on", Kind: pdString},
		{Key: "vietnamese", Col: "vietnamese", Kind: pdString},
	}}
)

// AllGroups - every group, in emission order
var AllGroups = []*PropGroup{
	GroupMinimum, GroupCJKMinimum, GroupBasic, GroupCJKBasic,
	GroupUTF8, GroupUTF16, GroupUTF32,
	GroupBidirectionality, GroupDecomposition, GroupQuickCheck, GroupNumeric,
	GroupJoining, GroupLinebreak, GroupEastAsianWidth, GroupCase, GroupScript,
	GroupHangul, GroupIndic, GroupFunctionAndGraphic, GroupEmoji,
	GroupCJKVariants, GroupCJKNumeric, GroupCJKReadings,
}

// featuregroups - everything past the minimum/basic pair, in emission order
var featuregroups = []*PropGroup{
	GroupUTF8, GroupUTF16, GroupUTF32,
	GroupBidirectionality, GroupDecomposition, GroupQuickCheck, GroupNumeric,
	GroupJoining, GroupLinebreak, GroupEastAsianWidth, GroupCase, GroupScript,
	GroupHangul, GroupIndic, GroupFunctionAndGraphic, GroupEmoji,
}

var grouplooseidx = func() map[string]*PropGroup {
	m := make(map[string]*PropGroup)
	for _, g := range AllGroups {
		m[search.LooseNormalize(g.Name)] = g
		m[search.LooseNormalize(g.Idx)] = g
	}
	return m
}()

// GroupsFor - normalize the requested group names into the set to assemble:
// the minimum group is always present, basic is promoted to its CJK twin for
// unihan codepoints, CJK-only groups are silently dropped for everything
// else, and "all" expands to every group the codepoint can carry; unresolved
// names come back in bad
func GroupsFor(requested []string, unihan bool) ([]*PropGroup, []string) {
	var bad []string

	want := make(map[*PropGroup]bool)
	all := len(requested) == 0

	for _, r := range requested {
		if search.LooseNormalize(r) == "all" {
			all = true
			continue
		}
		g, ok := grouplooseidx[search.LooseNormalize(r)]
		if !ok {
			bad = append(bad, r)
			continue
		}
		want[g] = true
	}
	if len(bad) > 0 {
		return nil, bad
	}

	if all {
		for _, g := range featuregroups {
			want[g] = true
		}
		want[GroupBasic] = true
		if unihan {
			want[GroupCJKVariants] = true
			want[GroupCJKNumeric] = true
			want[GroupCJKReadings] = true
		}
	}

	// promotions and the mandatory minimum
	if unihan {
		want[GroupCJKMinimum] = true
		delete(want, GroupMinimum)
		if want[GroupBasic] {
			delete(want, GroupBasic)
			want[GroupCJKBasic] = true
		}
	} else {
		want[GroupMinimum] = true
		delete(want, GroupCJKMinimum)
		if want[GroupCJKBasic] {
			delete(want, GroupCJKBasic)
			want[GroupBasic] = true
		}
		for _, g := range []*PropGroup{GroupCJKVariants, GroupCJKNumeric, GroupCJKReadings} {
			delete(want, g)
		}
	}

	var out []*PropGroup
	for _, g := range AllGroups {
		if want[g] {
			out = append(out, g)
		}
	}
	return out, nil
}

// Columns - the db columns this group needs; flag columns absent from the
// loaded UCD version are skipped
func (g *PropGroup) Columns() []string {
	var cols []string
	for _, d := range g.Defs {
		if d.Col == "" {
			continue
		}
		if d.Kind == pdFlag {
			if _, ok := mps.UC.FlagSet.Resolve(d.Prop); !ok {
				continue
			}
		}
		cols = append(cols, d.Col)
	}
	return cols
}

// GroupColumnMap - group name fragment --> candidate column list, for the
// covering-index DDL; the db layer drops columns a table does not have
func GroupColumnMap() map[string][]string {
	m := make(map[string][]string, len(AllGroups))
	for _, g := range AllGroups {
		var cols []string
		for _, d := range g.Defs {
			if d.Col != "" {
				cols = append(cols, d.Col)
			}
		}
		if len(cols) > 0 {
			m[g.Idx] = cols
		}
	}
	return m
}
