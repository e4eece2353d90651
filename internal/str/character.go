//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CharType - the eight-way classification of a codepoint; every codepoint is
// exactly one of these
type CharType int

const (
	CTNonUnihan CharType = iota
	CTUnihan
	CTTangut
	CTNoncharacter
	CTSurrogate
	CTPrivateUse
	CTReserved
	CTInvalid
)

func (ct CharType) String() string {
	switch ct {
	case CTNonUnihan:
		return "non-unihan"
	case CTUnihan:
		return "unihan"
	case CTTangut:
		return "tangut"
	case CTNoncharacter:
		return "noncharacter"
	case CTSurrogate:
		return "surrogate"
	case CTPrivateUse:
		return "private-use"
	case CTReserved:
		return "reserved"
	default:
		return "invalid"
	}
}

// CharacterRow - one row of the characters (or unihan_chars) table; the unihan
// table carries every column here, the non-unihan table stops at the CJK block
type CharacterRow struct {
	CodepointDec int32
	Codepoint    string // uppercase hex, >= 4 digits
	Name         string

	// enumerated-property foreign keys into the catalog
	AgeID                     int
	GeneralCategoryID         int
	CombiningClassID          int
	BidiClassID               int
	BidiPairedBracketTypeID   int
	DecompositionTypeID       int
	EastAsianWidthID          int
	HangulSyllableTypeID      int
	IndicMatraCategoryID      int
	IndicPositionalCategoryID int
	IndicSyllabicCategoryID   int
	JoiningTypeID             int
	JoiningGroupID            int
	LineBreakID               int
	NumericTypeID             int
	ScriptID                  int
	VerticalOrientationID     int

	ScriptExtensions          string // space-separated short names
	BidiMirroringGlyph        string // hex of the mirror, "" if none
	BidiPairedBracketProperty string // hex of the paired bracket
	NumericValue              string
	NumericValueParsed        float64
	SimpleUppercaseMapping    string
	SimpleLowercaseMapping    string
	SimpleTitlecaseMapping    string
	SimpleCaseFolding         string

	// three-valued normalization quick checks: "Y", "N", "M"
	NFCQuickCheck  string
	NFDQuickCheck  string
	NFKCQuickCheck string
	NFKDQuickCheck string

	EquivalentUnifiedIdeograph string

	Flags Flags // tagged bitmap over the load-time FlagSet

	// unihan-only columns
	Unihan                     bool
	Description                string // kDefinition
	IdeoFrequency              int
	IdeoGradeLevel             int
	RsCountUnicode             string
	RsCountKangxi              string
	TotalStrokes               string
	TraditionalVariant         string
	SimplifiedVariant          string
	ZVariant                   string
	CompatibilityVariant       string
	SemanticVariant            string
	SpecializedSemanticVariant string
	SpoofingVariant            string
	AccountingNumeric          string
	PrimaryNumeric             string
	OtherNumeric               string
	Hangul                     string
	Cantonese                  string
	Mandarin                   string
	JapaneseKun                string
	JapaneseOn                 string
	Vietnamese                 string
}
