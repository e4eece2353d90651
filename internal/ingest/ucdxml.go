//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// ucd.all.flat.xml WALKER
//

// the flat file is ~1.5GB of attributes; everything streams through
// xml.Decoder token by token and nothing holds the document in memory

// ParseBlocks - first pass: <block> elements in document order get ids 1..N;
// plane membership is resolved by the start codepoint
func ParseBlocks(path string) ([]str.UnicodeBlock, error) {
	fh, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer fh.Close()

	dec := xml.NewDecoder(fh)
	var blocks []str.UnicodeBlock
	var problems []string

	for {
		tok, e := dec.Token()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, e
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "block" {
			continue
		}

		attrs := attrmap(se)
		first, e1 := strconv.ParseInt(attrs["first-cp"], 16, 32)
		last, e2 := strconv.ParseInt(attrs["last-cp"], 16, 32)
		if e1 != nil || e2 != nil {
			problems = append(problems, fmt.Sprintf("block %q: bad cp range", attrs["name"]))
			continue
		}

		b := str.UnicodeBlock{
			ID:             len(blocks) + 1,
			LongName:       attrs["name"],
			ShortName:      attrs["name"], // overwritten from the catalog's Block section later
			PlaneID:        int(first>>16) + 1,
			StartHex:       fmt.Sprintf("%04X", first),
			StartDec:       int32(first),
			FinishHex:      fmt.Sprintf("%04X", last),
			FinishDec:      int32(last),
			TotalAllocated: int(last - first + 1),
		}
		blocks = append(blocks, b)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("block validation failed: %s", strings.Join(problems, "; "))
	}
	return blocks, nil
}

// CharBuckets - the parsed repertoire split the way the store wants it
type CharBuckets struct {
	NonUnihan []str.CharacterRow // includes tangut rows; see TangutMap
	Unihan    []str.CharacterRow
	UnihanMap map[int32]int // codepoint --> block id
	TangutMap map[int32]int
}

// ParseCharacters - second pass: walk <char> elements, resolve every
// enumerated property against the catalog, classify unihan/tangut by block
// name, and synthesize names where the XML leaves them out
func ParseCharacters(path string, cat *PropertyCatalog, blocks []str.UnicodeBlock) (*CharBuckets, error) {
	fh, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer fh.Close()

	flags := cat.File.BooleanProperties
	finder := newblockfinder(blocks)

	out := &CharBuckets{
		UnihanMap: make(map[int32]int),
		TangutMap: make(map[int32]int),
	}

	dec := xml.NewDecoder(fh)
	var problems []string

	for {
		tok, e := dec.Token()
		if e == io.EOF {
			break
		}
		if e != nil {
			return nil, e
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "char" {
			continue
		}

		attrs := attrmap(se)
		if attrs["cp"] == "" {
			// a range element; the flat file we require has them expanded
			continue
		}
		cp64, e := strconv.ParseInt(attrs["cp"], 16, 32)
		if e != nil {
			problems = append(problems, fmt.Sprintf("char cp=%q unparseable", attrs["cp"]))
			continue
		}
		cp := int32(cp64)

		block := finder.find(cp)
		kind := classifyblock(block)

		cr := buildcharrow(cp, attrs, cat, flags, kind)

		switch kind {
		case str.CTUnihan:
			out.UnihanMap[cp] = block.ID
			out.Unihan = append(out.Unihan, cr)
		case str.CTTangut:
			out.TangutMap[cp] = block.ID
			out.NonUnihan = append(out.NonUnihan, cr)
		default:
			out.NonUnihan = append(out.NonUnihan, cr)
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("character validation failed: %s", strings.Join(problems, "; "))
	}
	return out, nil
}

// attrmap - flatten a StartElement's attributes
func attrmap(se xml.StartElement) map[string]string {
	m := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		m[a.Name.Local] = a.Value
	}
	return m
}

// blockfinder - binary search over blocks sorted by start codepoint
type blockfinder struct {
	blocks []str.UnicodeBlock
}

func newblockfinder(blocks []str.UnicodeBlock) *blockfinder {
	sorted := append([]str.UnicodeBlock{}, blocks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartDec < sorted[j].StartDec })
	return &blockfinder{blocks: sorted}
}

// find - the block containing cp; nil if cp lies between blocks
func (bf *blockfinder) find(cp int32) *str.UnicodeBlock {
	i := sort.Search(len(bf.blocks), func(i int) bool { return bf.blocks[i].FinishDec >= cp })
	if i < len(bf.blocks) && bf.blocks[i].StartDec <= cp {
		return &bf.blocks[i]
	}
	return nil
}

// classifyblock - unihan vs tangut vs everything else, by block long name
func classifyblock(b *str.UnicodeBlock) str.CharType {
	if b == nil {
		return str.CTNonUnihan
	}
	long := strings.ToLower(b.LongName)
	if strings.Contains(long, "cjk unified ideographs") || strings.Contains(long, "cjk compatibility ideographs") {
		return str.CTUnihan
	}
	if strings.Contains(long, "tangut") {
		return str.CTTangut
	}
	return str.CTNonUnihan
}

// buildcharrow - one <char> element --> one store row
func buildcharrow(cp int32, attrs map[string]string, cat *PropertyCatalog, flags []str.CharFlag, kind str.CharType) str.CharacterRow {
	cr := str.CharacterRow{
		CodepointDec: cp,
		Codepoint:    fmt.Sprintf("%04X", cp),
		Name:         charname(cp, attrs["na"]),
		Unihan:       kind == str.CTUnihan,
	}

	// enumerated properties; ccc ids are the raw numeric values
	cr.AgeID = cat.IDFor("Age", attrs["age"])
	cr.GeneralCategoryID = cat.IDFor("General_Category", attrs["gc"])
	if n, e := strconv.Atoi(attrs["ccc"]); e == nil {
		cr.CombiningClassID = n
	}
	cr.BidiClassID = cat.IDFor("Bidi_Class", attrs["bc"])
	cr.BidiPairedBracketTypeID = cat.IDFor("Bidi_Paired_Bracket_Type", attrs["bpt"])
	dt := attrs["dt"]
	if dt == "" {
		dt = "None"
	}
	cr.DecompositionTypeID = cat.IDFor("Decomposition_Type", dt)
	cr.EastAsianWidthID = cat.IDFor("East_Asian_Width", attrs["ea"])
	cr.HangulSyllableTypeID = cat.IDFor("Hangul_Syllable_Type", attrs["hst"])
	cr.IndicMatraCategoryID = cat.IDFor("Indic_Matra_Category", attrs["InMC"])
	cr.IndicPositionalCategoryID = cat.IDFor("Indic_Positional_Category", attrs["InPC"])
	cr.IndicSyllabicCategoryID = cat.IDFor("Indic_Syllabic_Category", attrs["InSC"])
	cr.JoiningTypeID = cat.IDFor("Joining_Type", attrs["jt"])
	cr.JoiningGroupID = cat.IDFor("Joining_Group", attrs["jg"])
	cr.LineBreakID = cat.IDFor("Line_Break", attrs["lb"])
	cr.NumericTypeID = cat.IDFor("Numeric_Type", attrs["nt"])
	cr.ScriptID = cat.IDFor("Script", attrs["sc"])
	cr.VerticalOrientationID = cat.IDFor("Vertical_Orientation", attrs["vo"])

	cr.ScriptExtensions = attrs["scx"]
	cr.BidiMirroringGlyph = attrs["bmg"]
	cr.BidiPairedBracketProperty = attrs["bpb"]
	if cr.BidiPairedBracketProperty == "#" {
		cr.BidiPairedBracketProperty = cr.Codepoint
	}
	if attrs["nv"] != "" && attrs["nv"] != "NaN" {
		cr.NumericValue = attrs["nv"]
		cr.NumericValueParsed = parsenumeric(attrs["nv"])
	}
	cr.SimpleUppercaseMapping = selfblank(attrs["suc"])
	cr.SimpleLowercaseMapping = selfblank(attrs["slc"])
	cr.SimpleTitlecaseMapping = selfblank(attrs["stc"])
	cr.SimpleCaseFolding = selfblank(attrs["scf"])

	cr.NFCQuickCheck = attrs["NFC_QC"]
	cr.NFDQuickCheck = attrs["NFD_QC"]
	cr.NFKCQuickCheck = attrs["NFKC_QC"]
	cr.NFKDQuickCheck = attrs["NFKD_QC"]
	cr.EquivalentUnifiedIdeograph = attrs["EqUIdeo"]

	cr.Flags = str.NewFlags(len(flags))
	for i, f := range flags {
		if attrs[f.Short] == "Y" {
			cr.Flags.Set(i)
		}
	}

	if cr.Unihan {
		cr.Description = attrs["kDefinition"]
		if n, e := strconv.Atoi(attrs["kFrequency"]); e == nil {
			cr.IdeoFrequency = n
		}
		if n, e := strconv.Atoi(attrs["kGradeLevel"]); e == nil {
			cr.IdeoGradeLevel = n
		}
		cr.RsCountUnicode = attrs["kRSUnicode"]
		cr.RsCountKangxi = attrs["kRSKangXi"]
		cr.TotalStrokes = attrs["kTotalStrokes"]
		cr.TraditionalVariant = attrs["kTraditionalVariant"]
		cr.SimplifiedVariant = attrs["kSimplifiedVariant"]
		cr.ZVariant = attrs["kZVariant"]
		cr.CompatibilityVariant = attrs["kCompatibilityVariant"]
		cr.SemanticVariant = attrs["kSemanticVariant"]
		cr.SpecializedSemanticVariant = attrs["kSpecializedSemanticVariant"]
		cr.SpoofingVariant = attrs["kSpoofingVariant"]
		cr.AccountingNumeric = attrs["kAccountingNumeric"]
		cr.PrimaryNumeric = attrs["kPrimaryNumeric"]
		cr.OtherNumeric = attrs["kOtherNumeric"]
		cr.Hangul = attrs["kHangul"]
		cr.Cantonese = attrs["kCantonese"]
		cr.Mandarin = attrs["kMandarin"]
		cr.JapaneseKun = attrs["kJapaneseKun"]
		cr.JapaneseOn = attrs["kJapaneseOn"]
		cr.Vietnamese = attrs["kVietnamese"]
	}

	return cr
}

// charname - the "na" attribute with two repairs: "#" stands for the codepoint
// hex, and C0/C1 controls have no name at all in the XML
func charname(cp int32, na string) string {
	if strings.Contains(na, "#") {
		return strings.ReplaceAll(na, "#", fmt.Sprintf("%04X", cp))
	}
	if na == "" {
		for _, cc := range vv.ControlCharAliases {
			if cc.Codepoint == cp {
				return fmt.Sprintf("<control-%04X> %s (%s)", cp, cc.Name, cc.Abbr)
			}
		}
	}
	return na
}

// selfblank - "#" in a case-mapping attribute means "maps to itself"; the
// store keeps that as empty
func selfblank(v string) string {
	if v == "#" {
		return ""
	}
	return v
}

// parsenumeric - "nv" can be an integer or a fraction like "1/2" or "-1/2"
func parsenumeric(nv string) float64 {
	if strings.Contains(nv, "/") {
		parts := strings.SplitN(nv, "/", 2)
		num, e1 := strconv.ParseFloat(parts[0], 64)
		den, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 == nil && e2 == nil && den != 0 {
			return num / den
		}
		return 0
	}
	f, _ := strconv.ParseFloat(nv, 64)
	return f
}

// UpdateBlockShortNames - after the walk, swap in the short names from the
// catalog's Block section via loose matching
func UpdateBlockShortNames(blocks []str.UnicodeBlock, cat *PropertyCatalog) {
	bvals := cat.Values("Block")
	idx := make(map[string]string, len(bvals))
	for _, pv := range bvals {
		idx[search.LooseNormalize(pv.LongName)] = pv.ShortName
	}
	for i, b := range blocks {
		if short, ok := idx[search.LooseNormalize(b.LongName)]; ok {
			blocks[i].ShortName = short
		}
	}
}
