//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// PROPERTY-VALUE CATALOG: PropertyValueAliases.txt --> str.PropertyCatalogFile
//

// PropertyCatalog - the parsed catalog plus the loose-match indexes the rest
// of the ingestor resolves XML attribute values against
type PropertyCatalog struct {
	File    str.PropertyCatalogFile
	indexes map[string]map[string]int // property --> loose name --> id
}

var sectionheader = regexp.MustCompile(`^#\s+(\w+)(?:\s+\((\w+)\))?\s*$`)

// BuildPropertyCatalog - parse PropertyValueAliases.txt and run the three
// post-processing passes: General_Category grouping, Canonical_Combining_Class
// densification, long-name trimming + boolean-property discovery
func BuildPropertyCatalog(path string) (*PropertyCatalog, error) {
	fh, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer fh.Close()

	props := make(map[string][]str.PropertyValue)

	section := ""
	scanner := bufio.NewScanner(fh)
	var problems []string

	for scanner.Scan() {
		line := scanner.Text()

		if m := sectionheader.FindStringSubmatch(line); m != nil {
			section = m[1]
			continue
		}
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if section == "" {
			continue
		}

		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		pv, e := parsealiasline(section, fields)
		if e != nil {
			problems = append(problems, e.Error())
			continue
		}

		pv.ID = len(props[section]) + 1
		if section == "Canonical_Combining_Class" {
			// ccc ids are the numeric ccc values themselves
			n, ce := strconv.Atoi(fields[1])
			if ce != nil {
				problems = append(problems, fmt.Sprintf("%s: bad ccc id in %q", section, line))
				continue
			}
			pv.ID = n
		}

		props[section] = append(props[section], pv)
	}
	if e := scanner.Err(); e != nil {
		return nil, e
	}
	if len(problems) > 0 {
		// ingestion is all-or-nothing: one batch failure carrying every record
		return nil, errors.New("catalog validation failed: " + strings.Join(problems, "; "))
	}

	groupgeneralcategory(props)
	densifycombiningclass(props)
	flags, missing := trimandclassify(props)

	cat := &PropertyCatalog{
		File: str.PropertyCatalogFile{
			Properties:        props,
			BooleanProperties: flags,
			Missing:           missing,
		},
		indexes: make(map[string]map[string]int),
	}
	for name, vals := range props {
		m := make(map[int]str.PropertyValue, len(vals))
		for _, pv := range vals {
			m[pv.ID] = pv
		}
		cat.indexes[name] = search.BuildLooseIndex(m)
	}
	return cat, nil
}

// parsealiasline - "<enum>; <short>; <long>"; Canonical_Combining_Class runs
// "<enum>; <id>; <short>; <long>"
func parsealiasline(section string, fields []string) (str.PropertyValue, error) {
	var pv str.PropertyValue

	want := 3
	if section == "Canonical_Combining_Class" {
		want = 4
	}
	if len(fields) < want {
		return pv, fmt.Errorf("%s: entry has %d fields, expected %d", section, len(fields), want)
	}

	if section == "Canonical_Combining_Class" {
		pv.ShortName = fields[2]
		pv.LongName = fields[3]
	} else {
		pv.ShortName = fields[1]
		pv.LongName = fields[2]
	}
	return pv, nil
}

// groupgeneralcategory - pass (i): a gc long name with "#" in it is a group
// row; the tail enumerates the pipe-separated member short names
func groupgeneralcategory(props map[string][]str.PropertyValue) {
	gc, ok := props["General_Category"]
	if !ok {
		return
	}
	for i, pv := range gc {
		if !strings.Contains(pv.LongName, "#") {
			continue
		}
		parts := strings.SplitN(pv.LongName, "#", 2)
		gc[i].LongName = strings.TrimSpace(parts[0])
		members := strings.Split(parts[1], "|")
		for j := range members {
			members[j] = strings.TrimSpace(members[j])
		}
		gc[i].GroupedValues = strings.Join(members, "|")
		gc[i].IsGroup = true
	}
}

// densifycombiningclass - pass (ii): every n in [10, 200) absent from the file
// gets a CCC<n> placeholder; 214 ATA Attached_Above gets inserted if missing
func densifycombiningclass(props map[string][]str.PropertyValue) {
	ccc, ok := props["Canonical_Combining_Class"]
	if !ok {
		return
	}
	present := make(map[int]bool, len(ccc))
	for _, pv := range ccc {
		present[pv.ID] = true
	}
	for n := 10; n < 200; n++ {
		if !present[n] {
			syn := fmt.Sprintf("CCC%d", n)
			ccc = append(ccc, str.PropertyValue{ID: n, ShortName: syn, LongName: syn})
		}
	}
	if !present[214] {
		ccc = append(ccc, str.PropertyValue{ID: 214, ShortName: "ATA", LongName: "Attached_Above"})
	}
	props["Canonical_Combining_Class"] = ccc
}

// trimandclassify - pass (iii): trim long names at the first ";" or "#",
// collect Yes/No-only properties as boolean flags, and record which of the
// architected property groups this UCD version is missing
func trimandclassify(props map[string][]str.PropertyValue) ([]str.CharFlag, []string) {
	var flags []str.CharFlag

	for name, vals := range props {
		yesno := len(vals) > 0
		for i, pv := range vals {
			long := pv.LongName
			if cut := strings.IndexAny(long, ";#"); cut >= 0 {
				long = strings.TrimSpace(long[:cut])
			}
			vals[i].LongName = long
			if pv.ShortName != "Y" && pv.ShortName != "N" {
				yesno = false
			}
		}
		if yesno {
			flags = append(flags, str.CharFlag{
				Long:   name,
				Short:  shortpropertyname(name),
				Column: strings.ToLower(name),
			})
			delete(props, name)
		}
	}

	// map walk order is random; bit indexes must not be
	sort.Slice(flags, func(i, j int) bool { return flags[i].Long < flags[j].Long })

	var missing []string
	for _, want := range vv.KnownProperties {
		if _, ok := props[want]; !ok {
			missing = append(missing, want)
		}
	}
	return flags, missing
}

// shortpropertyname - the XML attribute abbreviation for a boolean property
func shortpropertyname(long string) string {
	if abbr, ok := propertyabbrevs[long]; ok {
		return abbr
	}
	return long
}

// propertyabbrevs - long property name --> ucd.all.flat.xml attribute name for
// the boolean properties the characters tables materialize
var propertyabbrevs = map[string]string{
	"ASCII_Hex_Digit":               "AHex",
	"Alphabetic":                    "Alpha",
	"Bidi_Control":                  "Bidi_C",
	"Bidi_Mirrored":                 "Bidi_M",
	"Cased":                         "Cased",
	"Composition_Exclusion":         "CE",
	"Full_Composition_Exclusion":    "Comp_Ex",
	"Dash":                          "Dash",
	"Deprecated":                    "Dep",
	"Default_Ignorable_Code_Point":  "DI",
	"Diacritic":                     "Dia",
	"Emoji":                         "Emoji",
	"Emoji_Component":               "EComp",
	"Emoji_Modifier":                "EMod",
	"Emoji_Modifier_Base":           "EBase",
	"Emoji_Presentation":            "EPres",
	"Extended_Pictographic":         "ExtPict",
	"Extender":                      "Ext",
	"Hex_Digit":                     "Hex",
	"Hyphen":                        "Hyphen",
	"ID_Continue":                   "IDC",
	"ID_Start":                      "IDS",
	"Ideographic":                   "Ideo",
	"IDS_Binary_Operator":           "IDSB",
	"IDS_Trinary_Operator":          "IDST",
	"Join_Control":                  "Join_C",
	"Logical_Order_Exception":       "LOE",
	"Lowercase":                     "Lower",
	"Math":                          "Math",
	"Noncharacter_Code_Point":       "NChar",
	"Pattern_Syntax":                "Pat_Syn",
	"Pattern_White_Space":           "Pat_WS",
	"Prepended_Concatenation_Mark":  "PCM",
	"Quotation_Mark":                "QMark",
	"Regional_Indicator":            "RI",
	"Sentence_Terminal":             "STerm",
	"Soft_Dotted":                   "SD",
	"Terminal_Punctuation":          "Term",
	"Unified_Ideograph":             "UIdeo",
	"Uppercase":                     "Upper",
	"Variation_Selector":            "VS",
	"White_Space":                   "WSpace",
	"XID_Continue":                  "XIDC",
	"XID_Start":                     "XIDS",
	"Changes_When_Casefolded":       "CWCF",
	"Changes_When_Casemapped":       "CWCM",
	"Changes_When_Lowercased":       "CWL",
	"Changes_When_NFKC_Casefolded":  "CWKCF",
	"Changes_When_Titlecased":       "CWT",
	"Changes_When_Uppercased":       "CWU",
	"Case_Ignorable":                "CI",
	"Grapheme_Base":                 "Gr_Base",
	"Grapheme_Extend":               "Gr_Ext",
	"Grapheme_Link":                 "Gr_Link",
	"Other_Alphabetic":              "OAlpha",
	"Other_Default_Ignorable_Code_Point": "ODI",
	"Other_Grapheme_Extend":         "OGr_Ext",
	"Other_ID_Continue":             "OIDC",
	"Other_ID_Start":                "OIDS",
	"Other_Lowercase":               "OLower",
	"Other_Math":                    "OMath",
	"Other_Uppercase":               "OUpper",
	"Expands_On_NFC":                "XO_NFC",
	"Expands_On_NFD":                "XO_NFD",
	"Expands_On_NFKC":               "XO_NFKC",
	"Expands_On_NFKD":               "XO_NFKD",
}

// IDFor - resolve a short name from the XML to its catalog id; the reserved id
// comes back when the whole property is missing in this version; an unknown
// value yields the distinguished id 0
func (pc *PropertyCatalog) IDFor(property string, value string) int {
	idx, ok := pc.indexes[property]
	if !ok {
		return vv.INVALIDPROPVALUEID
	}
	if id, ok := idx[search.LooseNormalize(value)]; ok {
		return id
	}
	return 0
}

// Values - the rows of one catalog section
func (pc *PropertyCatalog) Values(property string) []str.PropertyValue {
	return pc.File.Properties[property]
}
