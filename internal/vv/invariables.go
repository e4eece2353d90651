//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

// PlaneSeed - the architected planes; the ingestor synthesizes entries for the
// unassigned planes (4-13) so that every codepoint maps onto some plane
var PlaneSeed = []struct {
	Number       int
	Name         string
	Abbreviation string
}{
	{0, "Basic Multilingual Plane", "BMP"},
	{1, "Supplementary Multilingual Plane", "SMP"},
	{2, "Supplementary Ideographic Plane", "SIP"},
	{3, "Tertiary Ideographic Plane", "TIP"},
	{14, "Supplementary Special-purpose Plane", "SSP"},
	{15, "Supplementary Private Use Area-A", "SPUA-A"},
	{16, "Supplementary Private Use Area-B", "SPUA-B"},
}

// KnownProperties - every enumerated property the catalog is expected to carry;
// any of these absent from PropertyValueAliases.txt is flagged "missing for
// this version" and its lookups come back as INVALIDPROPVALUEID
var KnownProperties = []string{
	"Age",
	"Bidi_Class",
	"Bidi_Paired_Bracket_Type",
	"Block",
	"Canonical_Combining_Class",
	"Decomposition_Type",
	"East_Asian_Width",
	"General_Category",
	"Hangul_Syllable_Type",
	"Indic_Matra_Category",
	"Indic_Positional_Category",
	"Indic_Syllabic_Category",
	"Joining_Group",
	"Joining_Type",
	"Line_Break",
	"Numeric_Type",
	"Script",
	"Vertical_Orientation",
}

// CodepointRange - a closed interval of codepoints
type CodepointRange struct {
	First int32
	Last  int32
}

// the default-value ranges from DerivedBidiClass.txt: unassigned codepoints in
// these ranges default to R, AL, or ET; everything else unassigned is L

var BidiDefaultR = []CodepointRange{
	{0x0590, 0x05FF},
	{0x07C0, 0x085F},
	{0xFB1D, 0xFB4F},
	{0x10800, 0x10FFF},
	{0x1E800, 0x1EFFF},
}

var BidiDefaultAL = []CodepointRange{
	{0x0600, 0x07BF},
	{0x0860, 0x08FF},
	{0xFB50, 0xFDCF},
	{0xFDF0, 0xFDFF},
	{0xFE70, 0xFEFF},
	{0x1EC70, 0x1ECBF},
	{0x1ED00, 0x1ED4F},
	{0x1EE00, 0x1EEFF},
}

var BidiDefaultET = []CodepointRange{
	{0x20A0, 0x20CF},
}

// VerticalOrientationUPlanes - planes whose unassigned codepoints default
// Vertical_Orientation to U rather than R
var VerticalOrientationUPlanes = map[int]bool{2: true, 3: true}

// VerticalOrientationUBlocks - block long names (lowercased) whose codepoints
// default Vertical_Orientation to U
var VerticalOrientationUBlocks = []string{
	"cjk unified ideographs",
	"cjk compatibility ideographs",
	"cjk compatibility forms",
	"cjk radicals supplement",
	"cjk strokes",
	"cjk symbols and punctuation",
	"kangxi radicals",
	"ideographic description characters",
	"hiragana",
	"katakana",
	"katakana phonetic extensions",
	"hangul jamo",
	"hangul compatibility jamo",
	"hangul syllables",
	"yijing hexagram symbols",
	"yi syllables",
	"yi radicals",
	"vertical forms",
	"enclosed cjk letters and months",
	"enclosed ideographic supplement",
	"tangut",
	"tangut components",
	"tangut supplement",
	"egyptian hieroglyphs",
	"egyptian hieroglyph format controls",
}

// ControlCharAlias - formal name + abbreviation for a C0/C1 control codepoint
type ControlCharAlias struct {
	Codepoint int32
	Name      string
	Abbr      string
}

// ControlCharAliases - the flat UCD XML leaves "na" empty for controls; their
// display names are synthesized from this NameAliases-derived table
var ControlCharAliases = []ControlCharAlias{
	{0x00, "NULL", "NUL"},
	{0x01, "START OF HEADING", "SOH"},
	{0x02, "START OF TEXT", "STX"},
	{0x03, "END OF TEXT", "ETX"},
	{0x04, "END OF TRANSMISSION", "EOT"},
	{0x05, "ENQUIRY", "ENQ"},
	{0x06, "ACKNOWLEDGE", "ACK"},
	{0x07, "ALERT", "BEL"},
	{0x08, "BACKSPACE", "BS"},
	{0x09, "CHARACTER TABULATION", "HT"},
	{0x0A, "LINE FEED", "LF"},
	{0x0B, "LINE TABULATION", "VT"},
	{0x0C, "FORM FEED", "FF"},
	{0x0D, "CARRIAGE RETURN", "CR"},
	{0x0E, "SHIFT OUT", "SO"},
	{0x0F, "SHIFT IN", "SI"},
	{0x10, "DATA LINK ESCAPE", "DLE"},
	{0x11, "DEVICE CONTROL ONE", "DC1"},
	{0x12, "DEVICE CONTROL TWO", "DC2"},
	{0x13, "DEVICE CONTROL THREE", "DC3"},
	{0x14, "DEVICE CONTROL FOUR", "DC4"},
	{0x15, "NEGATIVE ACKNOWLEDGE", "NAK"},
	{0x16, "SYNCHRONOUS IDLE", "SYN"},
	{0x17, "END OF TRANSMISSION BLOCK", "ETB"},
	{0x18, "CANCEL", "CAN"},
	{0x19, "END OF MEDIUM", "EOM"},
	{0x1A, "SUBSTITUTE", "SUB"},
	{0x1B, "ESCAPE", "ESC"},
	{0x1C, "INFORMATION SEPARATOR FOUR", "FS"},
	{0x1D, "INFORMATION SEPARATOR THREE", "GS"},
	{0x1E, "INFORMATION SEPARATOR TWO", "RS"},
	{0x1F, "INFORMATION SEPARATOR ONE", "US"},
	{0x7F, "DELETE", "DEL"},
	{0x80, "PADDING CHARACTER", "PAD"},
	{0x81, "HIGH OCTET PRESET", "HOP"},
	{0x82, "BREAK PERMITTED HERE", "BPH"},
	{0x83, "NO BREAK HERE", "NBH"},
	{0x84, "INDEX", "IND"},
	{0x85, "NEXT LINE", "NEL"},
	{0x86, "START OF SELECTED AREA", "SSA"},
	{0x87, "END OF SELECTED AREA", "ESA"},
	{0x88, "CHARACTER TABULATION SET", "HTS"},
	{0x89, "CHARACTER TABULATION WITH JUSTIFICATION", "HTJ"},
	{0x8A, "LINE TABULATION SET", "VTS"},
	{0x8B, "PARTIAL LINE FORWARD", "PLD"},
	{0x8C, "PARTIAL LINE BACKWARD", "PLU"},
	{0x8D, "REVERSE LINE FEED", "RI"},
	{0x8E, "SINGLE SHIFT TWO", "SS2"},
	{0x8F, "SINGLE SHIFT THREE", "SS3"},
	{0x90, "DEVICE CONTROL STRING", "DCS"},
	{0x91, "PRIVATE USE ONE", "PU1"},
	{0x92, "PRIVATE USE TWO", "PU2"},
	{0x93, "SET TRANSMIT STATE", "STS"},
	{0x94, "CANCEL CHARACTER", "CCH"},
	{0x95, "MESSAGE WAITING", "MW"},
	{0x96, "START OF GUARDED AREA", "SPA"},
	{0x97, "END OF GUARDED AREA", "EPA"},
	{0x98, "START OF STRING", "SOS"},
	{0x99, "SINGLE GRAPHIC CHARACTER INTRODUCER", "SGC"},
	{0x9A, "SINGLE CHARACTER INTRODUCER", "SCI"},
	{0x9B, "CONTROL SEQUENCE INTRODUCER", "CSI"},
	{0x9C, "STRING TERMINATOR", "ST"},
	{0x9D, "OPERATING SYSTEM COMMAND", "OSC"},
	{0x9E, "PRIVACY MESSAGE", "PM"},
	{0x9F, "APPLICATION PROGRAM COMMAND", "APC"},
}
