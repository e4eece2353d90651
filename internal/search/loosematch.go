//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"strings"
	"unicode"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

//
// UAX44-LM3: loose matching of symbolic property values
//

// LooseNormalize - lowercase, strip whitespace, drop "-" and "_", drop a leading "is"
func LooseNormalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		sb.WriteRune(r)
	}
	out := sb.String()
	out = strings.TrimPrefix(out, "is")
	return out
}

// LooseMatch - two strings match iff their normalizations are equal
func LooseMatch(a string, b string) bool {
	return LooseNormalize(a) == LooseNormalize(b)
}

// BuildLooseIndex - map every short and long name of a catalog section to its
// id under loose normalization
func BuildLooseIndex(vals map[int]str.PropertyValue) map[string]int {
	idx := make(map[string]int)
	for id, pv := range vals {
		if pv.ShortName != "" {
			idx[LooseNormalize(pv.ShortName)] = id
		}
		if pv.LongName != "" {
			idx[LooseNormalize(pv.LongName)] = id
		}
	}
	return idx
}

// ResolveLoose - resolve user-supplied enum values against a loose index; any
// unresolved value fails the whole batch and every offender is reported
func ResolveLoose(idx map[string]int, values []string) ([]int, []string) {
	var ids []int
	var bad []string
	for _, v := range values {
		if id, ok := idx[LooseNormalize(v)]; ok {
			ids = append(ids, id)
		} else {
			bad = append(bad, v)
		}
	}
	return ids, bad
}
