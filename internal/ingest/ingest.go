//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ucdapi/UnicodeGoServer/internal/chr"
	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

var msg = lnch.Msg

//
// INGESTION
//

// Run - the whole pipeline, from the two UCD source files down to a ready
// sqlite store plus the JSON side-files; all-or-nothing, and safe to rerun
func Run() {
	const (
		MSG1 = "ingesting UCD %s from '%s'"
		MSG2 = "catalog: %d property sections, %d boolean flags, %d missing"
		MSG3 = "parsed %d blocks, %d non-unihan characters, %d unihan characters"
		MSG4 = "store written to '%s'"
		MSG5 = "ingestion complete in %v"
	)

	start := time.Now()
	cfg := lnch.Config
	msg.NOTE(fmt.Sprintf(MSG1, cfg.UnicodeVersion, lnch.VersionRoot()))

	xmlpath := filepath.Join(lnch.VersionRoot(), vv.UCDXMLFILENAME)
	pvapath := filepath.Join(lnch.VersionRoot(), vv.PROPALIASFILENAME)
	fetchifabsent(xmlpath)
	fetchifabsent(pvapath)

	cat, e := BuildPropertyCatalog(pvapath)
	msg.EC(e)
	msg.PEEK(fmt.Sprintf(MSG2, len(cat.File.Properties), len(cat.File.BooleanProperties), len(cat.File.Missing)))

	blocks, e := ParseBlocks(xmlpath)
	msg.EC(e)
	UpdateBlockShortNames(blocks, cat)

	buckets, e := ParseCharacters(xmlpath, cat, blocks)
	msg.EC(e)
	pr := message.NewPrinter(language.English)
	msg.PEEK(pr.Sprintf(MSG3, len(blocks), len(buckets.NonUnihan), len(buckets.Unihan)))

	computetotals(blocks, buckets)
	planes := buildplanes(blocks)

	msg.EC(WriteSideFiles(planes, blocks, buckets, cat))

	writestore(planes, blocks, buckets, cat)
	msg.NOTE(fmt.Sprintf(MSG4, lnch.DBFile()))

	if cfg.ZipBundles {
		zipbundles()
	}
	msg.NOTE(fmt.Sprintf(MSG5, time.Since(start).Truncate(time.Millisecond)))
}

// fetchifabsent - a missing source file is pulled from the bucket so a fresh
// host can ingest without manual downloads
func fetchifabsent(path string) {
	const (
		MSG  = "fetching '%s'"
		FAIL = "cannot fetch '%s': HTTP %d"
	)

	if _, e := os.Stat(path); e == nil {
		return
	}
	url := fmt.Sprintf("%s/%s/%s", lnch.Config.BucketURL, lnch.Config.UnicodeVersion, filepath.Base(path))
	msg.NOTE(fmt.Sprintf(MSG, url))

	resp, e := http.Get(url)
	msg.EC(e)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg.CRIT(fmt.Sprintf(FAIL, url, resp.StatusCode))
		msg.ExitOrHang(1)
	}

	msg.EC(os.MkdirAll(filepath.Dir(path), 0755))
	fh, e := os.Create(path)
	msg.EC(e)
	defer fh.Close()
	_, e = io.Copy(fh, resp.Body)
	msg.EC(e)
}

// computetotals - defined-character counts per block, from the parse buckets
func computetotals(blocks []str.UnicodeBlock, buckets *CharBuckets) {
	finder := newblockfinder(blocks)
	counts := make(map[int]int)
	tally := func(rows []str.CharacterRow) {
		for _, cr := range rows {
			if b := finder.find(cr.CodepointDec); b != nil {
				counts[b.ID]++
			}
		}
	}
	tally(buckets.NonUnihan)
	tally(buckets.Unihan)

	for i := range blocks {
		blocks[i].TotalDefined = counts[blocks[i].ID]
	}
}

// buildplanes - the seventeen planes from the architected seed, with
// "Unassigned Plane N" rows synthesized for the middle of the space; block
// spans and totals are rolled up from the block list
func buildplanes(blocks []str.UnicodeBlock) []str.UnicodePlane {
	named := make(map[int]struct {
		name string
		abbr string
	}, len(vv.PlaneSeed))
	for _, s := range vv.PlaneSeed {
		named[s.Number] = struct {
			name string
			abbr string
		}{s.Name, s.Abbreviation}
	}

	planes := make([]str.UnicodePlane, vv.NUMBEROFPLANES)
	for n := 0; n < vv.NUMBEROFPLANES; n++ {
		name := fmt.Sprintf("Unassigned Plane %d", n)
		abbr := fmt.Sprintf("P%d", n)
		if s, ok := named[n]; ok {
			name = s.name
			abbr = s.abbr
		}
		first := int32(n) * vv.PLANESIZE
		last := first + vv.PLANESIZE - 1
		planes[n] = str.UnicodePlane{
			ID:           n + 1,
			Number:       n,
			Name:         name,
			Abbreviation: abbr,
			StartHex:     fmt.Sprintf("%04X", first),
			StartDec:     first,
			FinishHex:    fmt.Sprintf("%04X", last),
			FinishDec:    last,
		}
	}

	sorted := append([]str.UnicodeBlock{}, blocks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartDec < sorted[j].StartDec })
	for _, b := range sorted {
		p := &planes[b.PlaneID-1]
		if p.StartBlockID == 0 {
			p.StartBlockID = b.ID
		}
		p.FinishBlockID = b.ID
		p.TotalAllocated += b.TotalAllocated
		p.TotalDefined += b.TotalDefined
	}
	return planes
}

// writestore - schema, bulk load inside one transaction, covering indexes,
// then compaction
func writestore(planes []str.UnicodePlane, blocks []str.UnicodeBlock, buckets *CharBuckets, cat *PropertyCatalog) {
	msg.EC(os.MkdirAll(lnch.DBDir(), 0755))
	msg.EC(os.RemoveAll(lnch.DBFile()))

	pool := db.OpenReadWrite(lnch.DBFile())
	defer pool.Close()

	flags := cat.File.BooleanProperties
	msg.EC(db.CreateSchema(pool, flags))

	tx, e := pool.Begin()
	msg.EC(e)

	msg.EC(db.InsertPlanes(tx, planes))
	msg.EC(db.InsertBlocks(tx, blocks))
	msg.EC(db.InsertPropValues(tx, cat.File.Properties))

	charrows := make([][]any, len(buckets.NonUnihan))
	for i := range buckets.NonUnihan {
		charrows[i] = db.CharacterRowValues(&buckets.NonUnihan[i], flags)
	}
	msg.EC(db.InsertBatched(tx, "characters", db.CharColumns(flags, false), charrows))

	unirows := make([][]any, len(buckets.Unihan))
	for i := range buckets.Unihan {
		unirows[i] = db.CharacterRowValues(&buckets.Unihan[i], flags)
	}
	msg.EC(db.InsertBatched(tx, "unihan_chars", db.CharColumns(flags, true), unirows))

	msg.EC(tx.Commit())

	msg.EC(db.CreateCoveringIndexes(pool, chr.GroupColumnMap(), flags))
	msg.EC(db.VacuumAnalyze(pool))
}

// zipbundles - publishable "<version>-json.zip" and "<version>-db.zip" next
// to the version folder
func zipbundles() {
	const (
		MSG = "bundled '%s'"
	)
	for _, dir := range []string{lnch.JSONDir(), lnch.DBDir()} {
		out := fmt.Sprintf("%s-%s.zip", lnch.VersionRoot(), filepath.Base(dir))
		msg.EC(zipdir(dir, out))
		msg.PEEK(fmt.Sprintf(MSG, out))
	}
}

func zipdir(dir string, out string) error {
	fh, e := os.Create(out)
	if e != nil {
		return e
	}
	defer fh.Close()

	zw := zip.NewWriter(fh)

	entries, e := os.ReadDir(dir)
	if e != nil {
		return e
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		src, e := os.Open(filepath.Join(dir, ent.Name()))
		if e != nil {
			return e
		}
		w, e := zw.Create(ent.Name())
		if e != nil {
			src.Close()
			return e
		}
		if _, e := io.Copy(w, src); e != nil {
			src.Close()
			return e
		}
		src.Close()
	}
	return zw.Close()
}
