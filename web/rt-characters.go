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

	"github.com/ucdapi/UnicodeGoServer/internal/chr"
	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/flt"
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

const (
	BADPROPS = `unrecognized 'show_props' value(s)`
	BADENUMS = `unrecognized filter value(s)`
)

// assembleone - the shared handler tail: resolve the requested property
// groups for this codepoint and build its property map
func assembleone(cp int32, showprops []string, verbose bool) (*str.PropertyMap, *str.APIError) {
	unihan := mps.UC.GetCharacterType(cp) == str.CTUnihan
	groups, bad := chr.GroupsFor(showprops, unihan)
	if len(bad) > 0 {
		return nil, str.NewAPIError(str.ErrBadEnumValue, BADPROPS, bad...)
	}
	pm, e := chr.Assemble(cp, groups, verbose)
	if e != nil {
		return nil, str.NewAPIError(str.ErrInternal, e.Error())
	}
	return pm, nil
}

// minimumone - the cheap projection the list and search endpoints use
func minimumone(cp int32) (*str.PropertyMap, *str.APIError) {
	return assembleone(cp, []string{"minimum"}, false)
}

// RtCharacters - the cursor-paginated character list, optionally narrowed to
// one block
func RtCharacters(c echo.Context) error {
	const (
		MISS = `'%s' does not match any block name`
	)
	uc := mps.UC

	first := int32(0)
	last := int32(vv.MAXCODEPOINT)
	if want := c.QueryParam("block"); want != "" {
		id, suggestions := uc.ResolveBlockName(want)
		if id == 0 {
			return apifail(c, str.NewAPIError(str.ErrBlockNameUnknown, fmt.Sprintf(MISS, want), suggestions...))
		}
		b := uc.BlockByID(id)
		first = b.StartDec
		last = b.FinishDec
	}

	limit, ae := intparam(c, "limit", vv.DEFAULTPAGESIZE)
	if ae != nil {
		return apifail(c, ae)
	}
	after, before, ae := cursorcodepoints(c)
	if ae != nil {
		return apifail(c, ae)
	}

	cps, hasmore, ae := flt.CharacterPage(first, last, after, before, limit)
	if ae != nil {
		return apifail(c, ae)
	}

	total, e := db.CountDefinedInRange(first, last)
	if e != nil {
		return apifail(c, str.NewAPIError(str.ErrInternal, e.Error()))
	}

	data := make([]*str.PropertyMap, 0, len(cps))
	for _, cp := range cps {
		pm, ae := minimumone(cp)
		if ae != nil {
			return apifail(c, ae)
		}
		data = append(data, pm)
	}

	return c.JSON(http.StatusOK, str.ListResponse[*str.PropertyMap]{
		URL:          c.Request().RequestURI,
		TotalResults: total,
		HasMore:      hasmore,
		Data:         data,
	})
}

// RtCharactersString - one entry per codepoint of the (URI-decoded) path
// string, in order
func RtCharactersString(c echo.Context) error {
	arg := c.Param("string")
	showprops := csvparam(c, "show_props")
	verbose := boolparam(c, "verbose")

	var out []*str.PropertyMap
	for _, r := range arg {
		pm, ae := assembleone(int32(r), showprops, verbose)
		if ae != nil {
			return apifail(c, ae)
		}
		out = append(out, pm)
	}
	return c.JSON(http.StatusOK, out)
}

// RtCharactersSearch - fuzzy search over the non-unihan character names
func RtCharactersSearch(c echo.Context) error {
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

	hits := search.FuzzyScores(query, minscore, uc.CharNameEntries)

	window, hasmore, next, ae := flt.PageSlice(hits, page, perpage)
	if ae != nil {
		return apifail(c, ae)
	}

	results := make([]*str.PropertyMap, 0, len(window))
	for _, h := range window {
		pm, ae := minimumone(int32(h.ID))
		if ae != nil {
			return apifail(c, ae)
		}
		pm.Set("score", h.Score)
		results = append(results, pm)
	}

	return c.JSON(http.StatusOK, str.SearchResponse[*str.PropertyMap]{
		URL:          c.Request().RequestURI,
		Query:        query,
		HasMore:      hasmore,
		CurrentPage:  page,
		NextPage:     next,
		TotalResults: len(hits),
		Results:      results,
	})
}

// RtCharactersFilter - the multi-axis filtered listing
func RtCharactersFilter(c echo.Context) error {
	const (
		EMPTY = `no filter settings; provide at least one of name, cjk_definition, block, category, age, script, bidi_class, decomp_type, line_break, ccc, num_type, join_type, or flag`
	)
	uc := mps.UC

	fs := &flt.FilterSettings{
		Name:          strings.TrimSpace(c.QueryParam("name")),
		CJKDefinition: strings.TrimSpace(c.QueryParam("cjk_definition")),
	}

	var bad []string

	resolveaxis := func(param string, property string, target *[]int) {
		vals := csvparam(c, param)
		if len(vals) == 0 {
			return
		}
		ids, unresolved := uc.ResolveEnumValues(property, vals)
		bad = append(bad, unresolved...)
		*target = ids
	}

	resolveaxis("category", "General_Category", &fs.CategoryIDs)
	resolveaxis("age", "Age", &fs.AgeIDs)
	resolveaxis("script", "Script", &fs.ScriptIDs)
	resolveaxis("bidi_class", "Bidi_Class", &fs.BidiClassIDs)
	resolveaxis("decomp_type", "Decomposition_Type", &fs.DecompTypeIDs)
	resolveaxis("line_break", "Line_Break", &fs.LineBreakIDs)
	resolveaxis("ccc", "Canonical_Combining_Class", &fs.CombiningClasses)
	resolveaxis("num_type", "Numeric_Type", &fs.NumericTypeIDs)
	resolveaxis("join_type", "Joining_Type", &fs.JoiningTypeIDs)

	for _, want := range csvparam(c, "block") {
		id, _ := uc.ResolveBlockName(want)
		if id == 0 {
			bad = append(bad, want)
			continue
		}
		fs.BlockIDs = append(fs.BlockIDs, id)
	}

	for _, want := range csvparam(c, "flag") {
		bit, ok := uc.FlagSet.Resolve(want)
		if !ok {
			bad = append(bad, want)
			continue
		}
		fs.FlagBits = append(fs.FlagBits, bit)
	}

	if len(bad) > 0 {
		return apifail(c, str.NewAPIError(str.ErrBadEnumValue, BADENUMS, bad...))
	}

	showprops := csvparam(c, "show_props")
	if !fs.HasAny() && len(showprops) == 0 {
		return apifail(c, str.NewAPIError(str.ErrNoFilterSettings, EMPTY))
	}

	page, ae := intparam(c, "page", 1)
	if ae != nil {
		return apifail(c, ae)
	}
	perpage, ae := intparam(c, "per_page", vv.DEFAULTPERPAGE)
	if ae != nil {
		return apifail(c, ae)
	}
	verbose := boolparam(c, "verbose")

	cps, ae := flt.Run(fs)
	if ae != nil {
		return apifail(c, ae)
	}

	window, hasmore, next, ae := flt.PageSlice(cps, page, perpage)
	if ae != nil {
		return apifail(c, ae)
	}

	results := make([]*str.PropertyMap, 0, len(window))
	for _, cp := range window {
		pm, ae := assembleone(cp, showprops, verbose)
		if ae != nil {
			return apifail(c, ae)
		}
		results = append(results, pm)
	}

	return c.JSON(http.StatusOK, str.SearchResponse[*str.PropertyMap]{
		URL:            c.Request().RequestURI,
		FilterSettings: c.QueryParams(),
		HasMore:        hasmore,
		CurrentPage:    page,
		NextPage:       next,
		TotalResults:   len(cps),
		Results:        results,
	})
}
