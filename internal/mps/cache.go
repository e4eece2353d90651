//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mps

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/search"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

var (
	Msg = lnch.Msg

	// UC - the one cache; built once at launch and immutable afterwards, so
	// every handler thread reads it without synchronization
	UC *UCache
)

// UCache - planes, blocks, catalog, and name maps, all loaded from the JSON
// side-files so that a cold start needs no SQL at all
type UCache struct {
	Planes []str.UnicodePlane
	Blocks []str.UnicodeBlock // sorted by start codepoint; ids are 1-based ordinals

	CharNames    map[int32]string
	UnihanBlocks map[int32]int
	TangutBlocks map[int32]int

	PropValues   map[string]map[int]str.PropertyValue
	LooseIndexes map[string]map[string]int
	MissingProps map[string]bool
	FlagSet      *str.FlagSet

	CharNameEntries  []search.NameEntry
	BlockNameEntries []search.NameEntry
	blocksByID       map[int]*str.UnicodeBlock
	planesByNumber   map[int]*str.UnicodePlane
	blockLooseIdx    map[string]int
}

// BuildCache - read the six side-files and derive every lookup structure
func BuildCache() *UCache {
	const (
		MSG1 = "cache built: %d planes, %d blocks, %d property sections"
		MSG2 = "cache built: %d character names, %d unihan, %d tangut"
	)

	var planes []str.UnicodePlane
	var blocks []str.UnicodeBlock
	readjson(vv.PLANESJSON, &planes)
	readjson(vv.BLOCKSJSON, &blocks)

	names := make(map[int32]string)
	var rawnames map[string]string
	readjson(vv.CHARNAMEMAPJSON, &rawnames)
	for k, v := range rawnames {
		n, e := strconv.Atoi(k)
		Msg.EC(e)
		names[int32(n)] = v
	}

	unihan := make(map[int32]int)
	tangut := make(map[int32]int)
	var rawunihan, rawtangut map[string]int
	readjson(vv.UNIHANCHARSJSON, &rawunihan)
	readjson(vv.TANGUTCHARSJSON, &rawtangut)
	for k, v := range rawunihan {
		n, e := strconv.Atoi(k)
		Msg.EC(e)
		unihan[int32(n)] = v
	}
	for k, v := range rawtangut {
		n, e := strconv.Atoi(k)
		Msg.EC(e)
		tangut[int32(n)] = v
	}

	var cat str.PropertyCatalogFile
	readjson(vv.PROPVALUESJSON, &cat)

	uc := AssembleCache(planes, blocks, names, unihan, tangut, cat)

	Msg.PEEK(fmt.Sprintf(MSG1, len(uc.Planes), len(uc.Blocks), len(uc.PropValues)))
	Msg.PEEK(fmt.Sprintf(MSG2, len(uc.CharNames), len(uc.UnihanBlocks), len(uc.TangutBlocks)))

	return uc
}

// AssembleCache - derive every lookup structure from already-loaded parts
func AssembleCache(planes []str.UnicodePlane, blocks []str.UnicodeBlock, names map[int32]string,
	unihan map[int32]int, tangut map[int32]int, cat str.PropertyCatalogFile) *UCache {

	uc := &UCache{
		Planes:       planes,
		Blocks:       blocks,
		CharNames:    names,
		UnihanBlocks: unihan,
		TangutBlocks: tangut,
	}

	uc.PropValues = make(map[string]map[int]str.PropertyValue)
	uc.LooseIndexes = make(map[string]map[string]int)
	for property, vals := range cat.Properties {
		m := make(map[int]str.PropertyValue, len(vals))
		for _, pv := range vals {
			m[pv.ID] = pv
		}
		uc.PropValues[property] = m
		uc.LooseIndexes[property] = search.BuildLooseIndex(m)
	}
	uc.MissingProps = make(map[string]bool)
	for _, p := range cat.Missing {
		uc.MissingProps[p] = true
	}
	uc.FlagSet = str.NewFlagSet(cat.BooleanProperties)

	sort.Slice(uc.Blocks, func(i, j int) bool { return uc.Blocks[i].StartDec < uc.Blocks[j].StartDec })

	uc.blocksByID = make(map[int]*str.UnicodeBlock, len(uc.Blocks))
	uc.blockLooseIdx = make(map[string]int, len(uc.Blocks))
	for i := range uc.Blocks {
		b := &uc.Blocks[i]
		uc.blocksByID[b.ID] = b
		uc.blockLooseIdx[search.LooseNormalize(b.LongName)] = b.ID
		uc.blockLooseIdx[search.LooseNormalize(b.ShortName)] = b.ID
		uc.BlockNameEntries = append(uc.BlockNameEntries, search.NameEntry{
			Key: strings.ToLower(b.LongName),
			ID:  b.ID,
		})
	}

	uc.planesByNumber = make(map[int]*str.UnicodePlane, len(uc.Planes))
	for i := range uc.Planes {
		uc.planesByNumber[uc.Planes[i].Number] = &uc.Planes[i]
	}

	// name index keys are lowercased copies of the official names
	for cp, name := range uc.CharNames {
		uc.CharNameEntries = append(uc.CharNameEntries, search.NameEntry{
			Key: strings.ToLower(name),
			ID:  int(cp),
		})
	}
	sort.Slice(uc.CharNameEntries, func(i, j int) bool { return uc.CharNameEntries[i].ID < uc.CharNameEntries[j].ID })

	return uc
}

// readjson - load one side-file or die trying; a missing side-file means the
// version folder was never ingested
func readjson(name string, target any) {
	const (
		FAIL = `cannot read '%s'; did you ingest this UCD version ('%s -ing')?`
	)
	path := filepath.Join(lnch.JSONDir(), name)
	raw, e := os.ReadFile(path)
	if e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL, path, vv.MYNAME))
		Msg.EC(e)
	}
	Msg.EC(json.Unmarshal(raw, target))
}

//
// LOOKUPS
//

// GetUnicodeBlockContainingCodepoint - binary search over the sorted blocks
func (uc *UCache) GetUnicodeBlockContainingCodepoint(cp int32) *str.UnicodeBlock {
	i := sort.Search(len(uc.Blocks), func(i int) bool { return uc.Blocks[i].FinishDec >= cp })
	if i < len(uc.Blocks) && uc.Blocks[i].StartDec <= cp {
		return &uc.Blocks[i]
	}
	return nil
}

// GetUnicodePlaneContainingBlockID - the plane a block belongs to
func (uc *UCache) GetUnicodePlaneContainingBlockID(id int) *str.UnicodePlane {
	b, ok := uc.blocksByID[id]
	if !ok {
		return nil
	}
	return uc.planesByNumber[b.PlaneID-1]
}

// PlaneByNumber - plane 0-16, or nil
func (uc *UCache) PlaneByNumber(n int) *str.UnicodePlane {
	return uc.planesByNumber[n]
}

// PlaneContaining - the plane of a codepoint; the synthetic "Unassigned"
// plane if no row covers it
func (uc *UCache) PlaneContaining(cp int32) *str.UnicodePlane {
	if p, ok := uc.planesByNumber[int(cp>>16)]; ok {
		return p
	}
	return UnassignedPlane()
}

// BlockByID - nil if unknown
func (uc *UCache) BlockByID(id int) *str.UnicodeBlock {
	return uc.blocksByID[id]
}

// ResolveBlockName - loose-match a user-supplied block name; on a miss the
// caller gets fuzzy suggestions scored at SUGGESTIONSCORE or better
func (uc *UCache) ResolveBlockName(name string) (int, []string) {
	if id, ok := uc.blockLooseIdx[search.LooseNormalize(name)]; ok {
		return id, nil
	}

	hits := search.FuzzyScores(name, vv.SUGGESTIONSCORE, uc.BlockNameEntries)
	var suggestions []string
	for _, h := range hits {
		if len(suggestions) == vv.MAXSUGGESTIONS {
			break
		}
		if b := uc.blocksByID[h.ID]; b != nil {
			suggestions = append(suggestions, b.LongName)
		}
	}
	return 0, suggestions
}

// ResolveEnumValues - loose-resolve user-supplied values for one property;
// the bad list comes back complete so the error can name every offender
func (uc *UCache) ResolveEnumValues(property string, values []string) ([]int, []string) {
	idx, ok := uc.LooseIndexes[property]
	if !ok {
		return nil, values
	}
	return search.ResolveLoose(idx, values)
}

// PropValue - one catalog row
func (uc *UCache) PropValue(property string, id int) (str.PropertyValue, bool) {
	pv, ok := uc.PropValues[property][id]
	return pv, ok
}

// DisplayPropValue - `"<Long_Name> (<short>)"`; Age is short-only; a missing
// property group displays as N/A
func (uc *UCache) DisplayPropValue(property string, id int) string {
	if uc.MissingProps[property] || id == vv.INVALIDPROPVALUEID {
		return vv.NOTAVAILABLE
	}
	pv, ok := uc.PropValues[property][id]
	if !ok {
		return vv.NOTAVAILABLE
	}
	if property == "Age" {
		return pv.ShortName
	}
	return fmt.Sprintf("%s (%s)", pv.LongName, pv.ShortName)
}

//
// SYNTHETIC PLANES
//

// AllUnicodePlane - the synthetic plane covering the whole scalar space; the
// character list runs over it when no plane or block narrows the domain
func AllUnicodePlane() *str.UnicodePlane {
	return &str.UnicodePlane{
		ID:           -1,
		Number:       -1,
		Name:         "All Unicode",
		Abbreviation: "ALL",
		StartHex:     "0000",
		StartDec:     0,
		FinishHex:    fmt.Sprintf("%04X", int32(vv.MAXCODEPOINT)),
		FinishDec:    vv.MAXCODEPOINT,
	}
}

// UnassignedPlane - the synthetic plane for codepoints no real plane row covers
func UnassignedPlane() *str.UnicodePlane {
	return &str.UnicodePlane{
		ID:           -2,
		Number:       -2,
		Name:         "Unassigned",
		Abbreviation: "UNASSIGNED",
	}
}
