//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/enc"
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// CHARACTER ASSEMBLY
//

// Assemble - build the property map for one codepoint: fetch each requested
// group through its covering index, synthesize defaults where the store has
// no row, then prune down to the interesting values unless verbose
func Assemble(cp int32, groups []*PropGroup, verbose bool) (*str.PropertyMap, error) {
	uc := mps.UC
	ct := uc.GetCharacterType(cp)
	unihan := ct == str.CTUnihan

	row := make(map[string]any)
	present := false
	for _, g := range groups {
		cols := g.Columns()
		if len(cols) == 0 {
			continue
		}
		vals, found, e := db.FetchCharacterColumns(cp, unihan, cols)
		if e != nil {
			return nil, e
		}
		if found {
			present = true
			for k, v := range vals {
				row[k] = v
			}
		}
	}

	pm := str.NewPropertyMap()
	for _, g := range groups {
		assemblegroup(pm, g, cp, ct, row, present, verbose)
	}
	return pm, nil
}

// rendered - one output property plus what the pruner needs to judge it
type rendered struct {
	def  propdef
	val  any
	skip bool // property absent from this UCD version
}

func assemblegroup(pm *str.PropertyMap, g *PropGroup, cp int32, ct str.CharType, row map[string]any, present bool, verbose bool) {
	out := make([]rendered, len(g.Defs))
	for i, d := range g.Defs {
		out[i] = renderprop(d, cp, ct, row, present)
	}

	if !verbose {
		pruneconcise(g, out, cp)
	}

	for _, r := range out {
		if !r.skip {
			pm.Set(r.def.Key, r.val)
		}
	}
}

// renderprop - turn one column (or the codepoint itself) into its JSON value
func renderprop(d propdef, cp int32, ct str.CharType, row map[string]any, present bool) rendered {
	uc := mps.UC
	r := rendered{def: d}

	switch d.Kind {
	case pdComputed:
		r.val = computedvalue(d.Key, cp)
	case pdEnum:
		if uc.MissingProps[d.Prop] {
			r.skip = true
			return r
		}
		id := uc.DefaultPropertyID(d.Prop, cp)
		if present {
			id = getint(row, d.Col)
		}
		r.val = uc.DisplayPropValue(d.Prop, id)
	case pdString:
		r.val = getstr(row, d.Col)
	case pdInt:
		r.val = getint(row, d.Col)
	case pdFloat:
		r.val = getfloat(row, d.Col)
	case pdFlag:
		if _, ok := uc.FlagSet.Resolve(d.Prop); !ok {
			r.skip = true
			return r
		}
		on := false
		if present {
			on = getint(row, d.Col) == 1
		} else if d.Prop == "Noncharacter_Code_Point" && ct == str.CTNoncharacter {
			on = true
		}
		r.val = on
	case pdGlyphRef, pdCaseRef:
		r.val = glyphref(getstr(row, d.Col))
	case pdQuick:
		r.val = quickcheckword(getstr(row, d.Col), present)
	case pdList:
		ff := strings.Fields(getstr(row, d.Col))
		if ff == nil {
			ff = []string{}
		}
		r.val = ff
	case pdScriptX:
		r.val = scriptextensions(getstr(row, d.Col), cp, present)
	}
	return r
}

// computedvalue - the properties derived from the codepoint alone
func computedvalue(key string, cp int32) any {
	uc := mps.UC
	switch key {
	case "character":
		return enc.Glyph(cp)
	case "name":
		return uc.GetCharacterName(cp)
	case "codepoint":
		return fmt.Sprintf("U+%04X", cp)
	case "uriEncoded":
		return enc.UriEncoded(cp)
	case "block":
		if b := uc.GetUnicodeBlockContainingCodepoint(cp); b != nil {
			return b.LongName
		}
		return vv.NOTAVAILABLE
	case "plane":
		return uc.PlaneContaining(cp).Abbreviation
	case "htmlEntities":
		return enc.HtmlEntities(cp)
	case "utf8":
		return enc.Utf8(cp)
	case "utf8HexBytes":
		return enc.Utf8HexBytes(cp)
	case "utf8DecBytes":
		return enc.Utf8DecBytes(cp)
	case "utf16":
		return enc.Utf16(cp)
	case "utf16HexBytes":
		return enc.Utf16HexBytes(cp)
	case "utf16DecBytes":
		return enc.Utf16DecBytes(cp)
	case "utf32":
		return enc.Utf32(cp)
	case "utf32HexBytes":
		return enc.Utf32HexBytes(cp)
	case "utf32DecBytes":
		return enc.Utf32DecBytes(cp)
	}
	return nil
}

// glyphref - a hex codepoint reference shown as the glyph plus its U+ form;
// an empty reference stays empty
func glyphref(hex string) string {
	if hex == "" {
		return ""
	}
	n, e := strconv.ParseInt(hex, 16, 32)
	if e != nil {
		return hex
	}
	return fmt.Sprintf("%s (U+%s)", enc.Glyph(int32(n)), hex)
}

// quickcheckword - Y/N/M spelled out; absent rows quick-check clean
func quickcheckword(qc string, present bool) string {
	if !present {
		return "Yes"
	}
	switch qc {
	case "N":
		return "No"
	case "M":
		return "Maybe"
	default:
		return "Yes"
	}
}

// scriptextensions - the space-separated short names resolved to display
// form; an absent row extends only to the unknown script
func scriptextensions(raw string, cp int32, present bool) []string {
	uc := mps.UC
	if !present {
		return []string{uc.DisplayPropValue("Script", uc.DefaultPropertyID("Script", cp))}
	}
	shorts := strings.Fields(raw)
	out := make([]string, 0, len(shorts))
	for _, s := range shorts {
		if ids, bad := uc.ResolveEnumValues("Script", []string{s}); len(bad) == 0 && len(ids) == 1 {
			out = append(out, uc.DisplayPropValue("Script", ids[0]))
		} else {
			out = append(out, s)
		}
	}
	return out
}

//
// SCAN HELPERS (the sqlite driver hands back int64 / float64 / string / nil)
//

func getint(row map[string]any, col string) int {
	switch v := row[col].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func getstr(row map[string]any, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func getfloat(row map[string]any, col string) float64 {
	switch v := row[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}
