//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//
// POINT FETCH
//

// FetchCharacterColumns - pull one covering-index column set for one codepoint;
// found is false when the store has no row (reserved, surrogate, noncharacter)
func FetchCharacterColumns(cp int32, unihan bool, cols []string) (map[string]any, bool, error) {
	const (
		QT = `SELECT %s FROM %s WHERE codepoint_dec = ?`
	)

	table := "characters"
	if unihan {
		table = "unihan_chars"
	}

	q := fmt.Sprintf(QT, strings.Join(cols, ", "), table)
	row := SQLPool.QueryRow(q, cp)

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	if e := row.Scan(ptrs...); e != nil {
		if e == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, e
	}

	out := make(map[string]any, len(cols))
	for i, c := range cols {
		out[c] = vals[i]
	}
	return out, true, nil
}

//
// CURSOR-WINDOWED LISTS
//

// ListCharacterCodepoints - the defined codepoints inside [first, last] from
// both character tables, windowed by the optional cursors; returns one row
// more than limit so the caller can compute hasMore
func ListCharacterCodepoints(first int32, last int32, after *int32, before *int32, limit int) ([]int32, error) {
	const (
		QT = `SELECT codepoint_dec FROM characters WHERE codepoint_dec BETWEEN ? AND ? %s
			UNION SELECT codepoint_dec FROM unihan_chars WHERE codepoint_dec BETWEEN ? AND ? %s
			ORDER BY codepoint_dec %s LIMIT ?`
	)

	var cursor string
	var dir string
	args := []any{}

	switch {
	case after != nil:
		cursor = "AND codepoint_dec > ?"
		dir = "ASC"
	case before != nil:
		cursor = "AND codepoint_dec < ?"
		dir = "DESC"
	default:
		cursor = ""
		dir = "ASC"
	}

	args = append(args, first, last)
	if after != nil {
		args = append(args, *after)
	} else if before != nil {
		args = append(args, *before)
	}
	args = append(args, first, last)
	if after != nil {
		args = append(args, *after)
	} else if before != nil {
		args = append(args, *before)
	}
	args = append(args, limit+1)

	q := fmt.Sprintf(QT, cursor, cursor, dir)
	rows, e := SQLPool.Query(q, args...)
	if e != nil {
		return nil, e
	}
	defer rows.Close()

	var cps []int32
	for rows.Next() {
		var cp int32
		if e := rows.Scan(&cp); e != nil {
			return nil, e
		}
		cps = append(cps, cp)
	}
	if e := rows.Err(); e != nil {
		return nil, e
	}

	if before != nil {
		// walked backwards; the client wants ascending order
		for i, j := 0, len(cps)-1; i < j; i, j = i+1, j-1 {
			cps[i], cps[j] = cps[j], cps[i]
		}
	}
	return cps, nil
}

// CountDefinedInRange - how many defined characters fall inside [first, last]
func CountDefinedInRange(first int32, last int32) (int, error) {
	const (
		QT = `SELECT (SELECT count(*) FROM characters WHERE codepoint_dec BETWEEN ? AND ?)
			+ (SELECT count(*) FROM unihan_chars WHERE codepoint_dec BETWEEN ? AND ?)`
	)
	var n int
	e := SQLPool.QueryRow(QT, first, last, first, last).Scan(&n)
	return n, e
}

//
// FILTERED SELECTION
//

// FilterQuery - a WHERE clause plus its arguments, one per character table
type FilterQuery struct {
	Where string
	Args  []any
	Skip  bool // e.g. the non-unihan table when cjk_definition is set
}

// FilterCodepoints - run one query per character table, union the codepoint
// sets, sort and dedupe
func FilterCodepoints(nonunihan FilterQuery, unihan FilterQuery) ([]int32, error) {
	seen := make(map[int32]bool)

	runone := func(table string, fq FilterQuery) error {
		if fq.Skip {
			return nil
		}
		q := fmt.Sprintf("SELECT codepoint_dec FROM %s", table)
		if fq.Where != "" {
			q += " WHERE " + fq.Where
		}
		rows, e := SQLPool.Query(q, fq.Args...)
		if e != nil {
			return e
		}
		defer rows.Close()
		for rows.Next() {
			var cp int32
			if e := rows.Scan(&cp); e != nil {
				return e
			}
			seen[cp] = true
		}
		return rows.Err()
	}

	if e := runone("characters", nonunihan); e != nil {
		return nil, e
	}
	if e := runone("unihan_chars", unihan); e != nil {
		return nil, e
	}

	cps := maps.Keys(seen)
	slices.Sort(cps)
	return cps, nil
}
