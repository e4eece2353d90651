//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/flt"
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

// RtBlocks - the cursor-paginated block list, optionally narrowed to a plane
func RtBlocks(c echo.Context) error {
	const (
		BADPLANE = `'%s' does not name a Unicode plane`
	)
	uc := mps.UC

	domain := uc.Blocks
	if want := c.QueryParam("plane"); want != "" {
		loose := search.LooseNormalize(want)
		var p *str.UnicodePlane
		for i := range uc.Planes {
			pl := &uc.Planes[i]
			if search.LooseNormalize(pl.Abbreviation) == loose || search.LooseNormalize(pl.Name) == loose {
				p = pl
				break
			}
		}
		if p == nil {
			return apifail(c, str.NewAPIError(str.ErrBadEnumValue, fmt.Sprintf(BADPLANE, want)))
		}
		var narrowed []str.UnicodeBlock
		for _, b := range uc.Blocks {
			if b.PlaneID == p.ID {
				narrowed = append(narrowed, b)
			}
		}
		domain = narrowed
	}

	limit, ae := intparam(c, "limit", vv.DEFAULTPAGESIZE)
	if ae != nil {
		return apifail(c, ae)
	}
	after, before, ae := cursorints(c)
	if ae != nil {
		return apifail(c, ae)
	}

	window, hasmore, ae := flt.BlockPage(domain, after, before, limit)
	if ae != nil {
		return apifail(c, ae)
	}

	return c.JSON(http.StatusOK, str.ListResponse[str.UnicodeBlock]{
		URL:          c.Request().RequestURI,
		TotalResults: len(domain),
		HasMore:      hasmore,
		Data:         window,
	})
}

// RtBlockByName - one block resolved loosely, with fuzzy suggestions on a miss
func RtBlockByName(c echo.Context) error {
	const (
		MISS = `'%s' does not match any block name`
	)

	name := c.Param("name")
	id, suggestions := mps.UC.ResolveBlockName(name)
	if id == 0 {
		return apifail(c, str.NewAPIError(str.ErrBlockNameUnknown, fmt.Sprintf(MISS, name), suggestions...))
	}
	return c.JSON(http.StatusOK, mps.UC.BlockByID(id))
}

// scoredblock - a search hit: the block plus how well its name matched
type scoredblock struct {
	str.UnicodeBlock
	Score int `json:"score"`
}

// RtBlocksSearch - fuzzy name search over the blocks, page/per_page windowed
func RtBlocksSearch(c echo.Context) error {
	const (
		NONAME = `the 'name' parameter is required`
	)
	uc := mps.UC

	query := strings.TrimSpace(c.QueryParam("name"))
	if query == "" {
		return apifail(c, str.NewAPIError(str.ErrBadEnumValue, NONAME))
	}

	minscore, ae := intparam(c, "min_score", vv.MINFUZZYSCORE)
	if ae != nil {
		return apifail(c, ae)
	}
	page, ae := intparam(c, "page", 1)
	if ae != nil {
		return apifail(c, ae)
	}
	perpage, ae := intparam(c, "per_page", vv.DEFAULTPERPAGE)
	if ae != nil {
		return apifail(c, ae)
	}

	hits := search.FuzzyScores(query, minscore, uc.BlockNameEntries)
	all := make([]scoredblock, 0, len(hits))
	for _, h := range hits {
		if b := uc.BlockByID(h.ID); b != nil {
			all = append(all, scoredblock{UnicodeBlock: *b, Score: h.Score})
		}
	}

	window, hasmore, next, ae := flt.PageSlice(all, page, perpage)
	if ae != nil {
		return apifail(c, ae)
	}

	return c.JSON(http.StatusOK, str.SearchResponse[scoredblock]{
		URL:          c.Request().RequestURI,
		Query:        query,
		HasMore:      hasmore,
		CurrentPage:  page,
		NextPage:     next,
		TotalResults: len(all),
		Results:      window,
	})
}
