//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package flt

import (
	"fmt"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

//
// MULTI-AXIS FILTERING
//
// every axis is optional; values inside one axis OR together, axes AND
// together; the two character tables are queried separately and their
// codepoint sets unioned
//

// FilterSettings - the resolved filter axes; ids are catalog ids, flag values
// are FlagSet bit indexes
type FilterSettings struct {
	Name          string
	CJKDefinition string

	BlockIDs         []int
	CategoryIDs      []int
	AgeIDs           []int
	ScriptIDs        []int
	BidiClassIDs     []int
	DecompTypeIDs    []int
	LineBreakIDs     []int
	CombiningClasses []int
	NumericTypeIDs   []int
	JoiningTypeIDs   []int
	FlagBits         []int
}

// HasAny - at least one axis set; a filter request without any is an error
func (fs *FilterSettings) HasAny() bool {
	return fs.Name != "" || fs.CJKDefinition != "" ||
		len(fs.BlockIDs) > 0 || len(fs.CategoryIDs) > 0 || len(fs.AgeIDs) > 0 ||
		len(fs.ScriptIDs) > 0 || len(fs.BidiClassIDs) > 0 || len(fs.DecompTypeIDs) > 0 ||
		len(fs.LineBreakIDs) > 0 || len(fs.CombiningClasses) > 0 ||
		len(fs.NumericTypeIDs) > 0 || len(fs.JoiningTypeIDs) > 0 || len(fs.FlagBits) > 0
}

// ExpandCategories - grouped general categories (C, L, M, ...) expand to
// their member ids; concrete ids pass through
func ExpandCategories(ids []int) []int {
	uc := mps.UC
	seen := make(map[int]bool)
	var out []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, id := range ids {
		pv, ok := uc.PropValue("General_Category", id)
		if !ok || !pv.IsGroup {
			add(id)
			continue
		}
		for _, short := range strings.Split(pv.GroupedValues, "|") {
			if mids, bad := uc.ResolveEnumValues("General_Category", []string{short}); len(bad) == 0 && len(mids) == 1 {
				add(mids[0])
			}
		}
	}
	return out
}

// Run - resolve the settings into per-table queries and collect the matching
// codepoints in ascending order
func Run(fs *FilterSettings) ([]int32, *str.APIError) {
	nonunihan, unihan := buildqueries(fs)
	cps, e := db.FilterCodepoints(nonunihan, unihan)
	if e != nil {
		return nil, str.NewAPIError(str.ErrInternal, e.Error())
	}
	return cps, nil
}

// buildqueries - one WHERE clause per character table
func buildqueries(fs *FilterSettings) (db.FilterQuery, db.FilterQuery) {
	uc := mps.UC

	var conds []string
	var args []any

	and := func(cond string, aa ...any) {
		conds = append(conds, cond)
		args = append(args, aa...)
	}

	if fs.Name != "" {
		// whole-word match against the uppercase names; hyphens count as
		// word separators
		and(`(' ' || replace(name, '-', ' ') || ' ') LIKE ?`,
			"% "+strings.ToUpper(strings.TrimSpace(fs.Name))+" %")
	}

	inclause := func(col string, ids []int) {
		if len(ids) == 0 {
			return
		}
		marks := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		aa := make([]any, len(ids))
		for i, id := range ids {
			aa[i] = id
		}
		and(fmt.Sprintf("%s IN (%s)", col, marks), aa...)
	}

	if len(fs.BlockIDs) > 0 {
		var ors []string
		for _, id := range fs.BlockIDs {
			if b := uc.BlockByID(id); b != nil {
				ors = append(ors, "(codepoint_dec BETWEEN ? AND ?)")
				args = append(args, b.StartDec, b.FinishDec)
			}
		}
		if len(ors) > 0 {
			conds = append(conds, "( "+strings.Join(ors, " OR ")+" )")
		}
	}

	inclause("general_category_id", ExpandCategories(fs.CategoryIDs))
	inclause("age_id", fs.AgeIDs)
	inclause("bidi_class_id", fs.BidiClassIDs)
	inclause("decomposition_type_id", fs.DecompTypeIDs)
	inclause("line_break_id", fs.LineBreakIDs)
	inclause("combining_class_id", fs.CombiningClasses)
	inclause("numeric_type_id", fs.NumericTypeIDs)
	inclause("joining_type_id", fs.JoiningTypeIDs)

	if len(fs.ScriptIDs) > 0 {
		// a script matches on the script property or anywhere in the
		// extension set
		var ors []string
		for _, id := range fs.ScriptIDs {
			ors = append(ors, "script_id = ?")
			args = append(args, id)
			if pv, ok := uc.PropValue("Script", id); ok {
				ors = append(ors, `(' ' || script_extensions || ' ') LIKE ?`)
				args = append(args, "% "+pv.ShortName+" %")
			}
		}
		conds = append(conds, "( "+strings.Join(ors, " OR ")+" )")
	}

	if len(fs.FlagBits) > 0 {
		var ors []string
		for _, bit := range fs.FlagBits {
			if bit >= 0 && bit < uc.FlagSet.Len() {
				ors = append(ors, fmt.Sprintf("%s = 1", uc.FlagSet.Members[bit].Column))
			}
		}
		if len(ors) > 0 {
			conds = append(conds, "( "+strings.Join(ors, " OR ")+" )")
		}
	}

	where := strings.Join(conds, " AND ")

	nonunihan := db.FilterQuery{Where: where, Args: append([]any{}, args...)}
	unihan := db.FilterQuery{Where: where, Args: append([]any{}, args...)}

	if fs.CJKDefinition != "" {
		// only the unihan table carries definitions; whole-word match as for
		// names, with the definition prose's punctuation counting as word
		// separators so "ox" stops matching "box"
		const DESCWORD = `(' ' || replace(replace(replace(replace(replace(lower(description), ',', ' '), ';', ' '), '(', ' '), ')', ' '), '-', ' ') || ' ') LIKE ?`
		nonunihan.Skip = true
		uwhere := DESCWORD
		if where != "" {
			uwhere = where + " AND " + uwhere
		}
		unihan.Where = uwhere
		unihan.Args = append(unihan.Args, "% "+strings.ToLower(strings.TrimSpace(fs.CJKDefinition))+" %")
	}

	return nonunihan, unihan
}
