//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package flt

import (
	"fmt"

	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// PAGINATION
//
// the list endpoints window by cursor (starting_after / ending_before); the
// search and filter endpoints window by page / per_page
//

// ClampLimit - limit parameters ride between MINPAGESIZE and MAXPAGESIZE
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return vv.DEFAULTPAGESIZE
	case limit < vv.MINPAGESIZE:
		return vv.MINPAGESIZE
	case limit > vv.MAXPAGESIZE:
		return vv.MAXPAGESIZE
	default:
		return limit
	}
}

// CharacterPage - one cursor window of defined codepoints inside
// [first, last]; hasMore says whether the window has neighbors on the far
// side of the cursor direction
func CharacterPage(first int32, last int32, after *int32, before *int32, limit int) ([]int32, bool, *str.APIError) {
	const (
		BOTH  = "'starting_after' and 'ending_before' are mutually exclusive; provide at most one"
		RANGE = "cursor U+%04X is outside the range U+%04X..U+%04X"
	)

	if after != nil && before != nil {
		return nil, false, str.NewAPIError(str.ErrBothCursors, BOTH)
	}
	for _, c := range []*int32{after, before} {
		if c != nil && (*c < first || *c > last) {
			return nil, false, str.NewAPIError(str.ErrCursorOutOfRange, fmt.Sprintf(RANGE, *c, first, last))
		}
	}

	limit = ClampLimit(limit)
	cps, e := db.ListCharacterCodepoints(first, last, after, before, limit)
	if e != nil {
		return nil, false, str.NewAPIError(str.ErrInternal, e.Error())
	}

	hasmore := len(cps) > limit
	if hasmore {
		if before != nil {
			// walked backwards; the overflow row is the lowest one
			cps = cps[1:]
		} else {
			cps = cps[:limit]
		}
	}
	return cps, hasmore, nil
}

// BlockPage - one cursor window over an id-ordered block slice straight from
// the cache; cursors are block ids
func BlockPage(blocks []str.UnicodeBlock, after *int, before *int, limit int) ([]str.UnicodeBlock, bool, *str.APIError) {
	const (
		BOTH  = "'starting_after' and 'ending_before' are mutually exclusive; provide at most one"
		RANGE = "cursor %d is outside the block id range %d..%d"
	)

	if after != nil && before != nil {
		return nil, false, str.NewAPIError(str.ErrBothCursors, BOTH)
	}
	if len(blocks) == 0 {
		return nil, false, nil
	}

	lo := blocks[0].ID
	hi := blocks[len(blocks)-1].ID
	for _, c := range []*int{after, before} {
		if c != nil && (*c < lo || *c > hi) {
			return nil, false, str.NewAPIError(str.ErrCursorOutOfRange, fmt.Sprintf(RANGE, *c, lo, hi))
		}
	}

	limit = ClampLimit(limit)

	var window []str.UnicodeBlock
	hasmore := false
	switch {
	case before != nil:
		for i := len(blocks) - 1; i >= 0; i-- {
			if blocks[i].ID >= *before {
				continue
			}
			if len(window) == limit {
				hasmore = true
				break
			}
			window = append([]str.UnicodeBlock{blocks[i]}, window...)
		}
	default:
		for _, b := range blocks {
			if after != nil && b.ID <= *after {
				continue
			}
			if len(window) == limit {
				hasmore = true
				break
			}
			window = append(window, b)
		}
	}
	return window, hasmore, nil
}

// PageSlice - page/per_page windowing over an already-materialized result set
func PageSlice[T any](results []T, page int, perpage int) ([]T, bool, int, *str.APIError) {
	const (
		RANGE = "page %d does not exist; the last page of results is %d"
	)

	if page == 0 {
		page = 1
	}
	perpage = ClampLimit(perpage)

	lastpage := (len(results) + perpage - 1) / perpage
	if lastpage == 0 {
		lastpage = 1
	}
	if page < 1 || page > lastpage {
		return nil, false, 0, str.NewAPIError(str.ErrPageOutOfRange, fmt.Sprintf(RANGE, page, lastpage))
	}

	start := (page - 1) * perpage
	end := start + perpage
	if end > len(results) {
		end = len(results)
	}

	hasmore := end < len(results)
	next := 0
	if hasmore {
		next = page + 1
	}
	return results[start:end], hasmore, next, nil
}
