//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"fmt"
	"strings"
)

//
// CONCISE PRUNING
//
// the default (non-verbose) response drops every property still sitting at
// its default: false booleans, empty strings and lists, self case mappings,
// None/Non_Joining/Not_Applicable enum defaults; the verbose response keeps
// the lot
//

func pruneconcise(g *PropGroup, out []rendered, cp int32) {
	switch g.Idx {
	case "emoji":
		pruneemoji(out)
		return
	case "numeric":
		if enumlongis(out, "numericType", "None") {
			dropall(out)
			return
		}
	case "joining":
		if enumlongis(out, "joiningType", "Non_Joining") {
			drop(out, "joiningType")
			drop(out, "joiningGroup")
		}
	case "hangul":
		if enumlongis(out, "hangulSyllableType", "Not_Applicable") {
			drop(out, "hangulSyllableType")
		}
	case "decomposition":
		if enumlongis(out, "decompositionType", "None") {
			drop(out, "decompositionType")
		}
	case "indic":
		if enumlongis(out, "indicSyllabicCategory", "Other") &&
			enumlongis(out, "indicMatraCategory", "Not_Applicable") &&
			enumlongis(out, "indicPositionalCategory", "Not_Applicable") {
			dropall(out)
			return
		}
	case "bidirectionality":
		if enumlongis(out, "pairedBracketType", "None") {
			drop(out, "pairedBracketType")
			drop(out, "pairedBracketProperty")
		}
		// an unmirrored character has no mirroring glyph whatever the stored
		// column says
		if flagoff(out, "bidirectionalIsMirrored") {
			drop(out, "bidirectionalMirroringGlyph")
		}
	}

	selfhex := fmt.Sprintf("%04X", cp)
	for i := range out {
		r := &out[i]
		if r.skip {
			continue
		}
		switch r.def.Kind {
		case pdFlag:
			if r.val == false {
				r.skip = true
			}
		case pdString:
			if r.val == "" {
				r.skip = true
			}
		case pdInt:
			if r.val == 0 {
				r.skip = true
			}
		case pdCaseRef:
			if v, ok := r.val.(string); ok && (v == "" || strings.HasSuffix(v, "(U+"+selfhex+")")) {
				r.skip = true
			}
		case pdGlyphRef:
			if v, ok := r.val.(string); ok && (v == "" || strings.HasSuffix(v, "(U+"+selfhex+")")) {
				r.skip = true
			}
		case pdQuick:
			if r.val == "Yes" {
				r.skip = true
			}
		case pdList:
			if v, ok := r.val.([]string); ok && len(v) == 0 {
				r.skip = true
			}
		case pdScriptX:
			pruneselfscript(out, r)
		}
	}
}

// pruneemoji - one true emoji flag keeps the whole set; none keeps nothing
func pruneemoji(out []rendered) {
	any := false
	for _, r := range out {
		if !r.skip && r.val == true {
			any = true
			break
		}
	}
	if !any {
		dropall(out)
	}
}

// pruneselfscript - an extension set that is nothing but the script itself
// carries no information
func pruneselfscript(out []rendered, r *rendered) {
	ext, ok := r.val.([]string)
	if !ok {
		return
	}
	if len(ext) == 0 {
		r.skip = true
		return
	}
	if len(ext) == 1 {
		for _, o := range out {
			if o.def.Key == "script" && o.val == ext[0] {
				r.skip = true
				return
			}
		}
	}
}

// flagoff - true when the rendered flag is present and false
func flagoff(out []rendered, key string) bool {
	for _, r := range out {
		if r.def.Key == key && !r.skip {
			return r.val == false
		}
	}
	return false
}

// enumlongis - true when the rendered enum's long name matches
func enumlongis(out []rendered, key string, long string) bool {
	for _, r := range out {
		if r.def.Key != key || r.skip {
			continue
		}
		if v, ok := r.val.(string); ok {
			return v == long || strings.HasPrefix(v, long+" (")
		}
	}
	return false
}

func drop(out []rendered, key string) {
	for i := range out {
		if out[i].def.Key == key {
			out[i].skip = true
		}
	}
}

func dropall(out []rendered) {
	for i := range out {
		out[i].skip = true
	}
}
