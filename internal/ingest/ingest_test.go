//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

const sampleucdxml = `<?xml version="1.0" encoding="UTF-8"?>
<ucd xmlns="http://www.unicode.org/ns/2003/ucd/1.0">
 <blocks>
  <block first-cp="0000" last-cp="007F" name="Basic Latin"/>
  <block first-cp="0080" last-cp="00FF" name="Latin-1 Supplement"/>
  <block first-cp="20000" last-cp="2A6DF" name="CJK Unified Ideographs Extension B"/>
 </blocks>
</ucd>
`

func TestParseBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), vv.UCDXMLFILENAME)
	require.NoError(t, os.WriteFile(path, []byte(sampleucdxml), 0644))

	blocks, e := ParseBlocks(path)
	require.NoError(t, e)
	require.Len(t, blocks, 3)

	b := blocks[0]
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, "Basic Latin", b.LongName)
	assert.Equal(t, 1, b.PlaneID)
	assert.Equal(t, "0000", b.StartHex)
	assert.Equal(t, int32(0x7F), b.FinishDec)
	assert.Equal(t, 128, b.TotalAllocated)

	// ids are document ordinals, plane membership follows the start codepoint
	assert.Equal(t, 3, blocks[2].ID)
	assert.Equal(t, 3, blocks[2].PlaneID)
}

func TestBuildPlanes(t *testing.T) {
	blocks := []str.UnicodeBlock{
		{ID: 1, PlaneID: 1, StartDec: 0x0000, FinishDec: 0x007F, TotalAllocated: 128, TotalDefined: 128},
		{ID: 2, PlaneID: 1, StartDec: 0x0080, FinishDec: 0x00FF, TotalAllocated: 128, TotalDefined: 96},
		{ID: 3, PlaneID: 3, StartDec: 0x20000, FinishDec: 0x2A6DF, TotalAllocated: 42720, TotalDefined: 42720},
	}

	planes := buildplanes(blocks)
	require.Len(t, planes, vv.NUMBEROFPLANES)

	bmp := planes[0]
	assert.Equal(t, 0, bmp.Number)
	assert.Equal(t, "BMP", bmp.Abbreviation)
	assert.Equal(t, int32(0x0000), bmp.StartDec)
	assert.Equal(t, int32(0xFFFF), bmp.FinishDec)
	assert.Equal(t, 1, bmp.StartBlockID)
	assert.Equal(t, 2, bmp.FinishBlockID)
	assert.Equal(t, 256, bmp.TotalAllocated)
	assert.Equal(t, 224, bmp.TotalDefined)

	// the architected middle of the space gets synthesized rows
	assert.Equal(t, "Unassigned Plane 4", planes[4].Name)
	assert.Equal(t, "P4", planes[4].Abbreviation)
	assert.Zero(t, planes[4].StartBlockID)

	sip := planes[2]
	assert.Equal(t, 3, sip.StartBlockID)
	assert.Equal(t, 3, sip.FinishBlockID)
	assert.Equal(t, 42720, sip.TotalDefined)
}

func TestComputeTotals(t *testing.T) {
	blocks := []str.UnicodeBlock{
		{ID: 1, StartDec: 0x0000, FinishDec: 0x007F},
		{ID: 2, StartDec: 0x4E00, FinishDec: 0x9FFF},
	}
	buckets := &CharBuckets{
		NonUnihan: []str.CharacterRow{
			{CodepointDec: 0x41}, {CodepointDec: 0x42},
			{CodepointDec: 0x2211}, // between blocks; counts nowhere
		},
		Unihan: []str.CharacterRow{
			{CodepointDec: 0x4E00},
		},
	}

	computetotals(blocks, buckets)
	assert.Equal(t, 2, blocks[0].TotalDefined)
	assert.Equal(t, 1, blocks[1].TotalDefined)
}

func TestZipDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"a":1}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"b":2}`), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	out := filepath.Join(t.TempDir(), "bundle.zip")
	require.NoError(t, zipdir(dir, out))

	zr, e := zip.OpenReader(out)
	require.NoError(t, e)
	defer zr.Close()

	// a flat archive: files only, no directory entries
	names := make([]string, len(zr.File))
	for i, f := range zr.File {
		names[i] = f.Name
	}
	assert.ElementsMatch(t, []string{"a.json", "b.json"}, names)
}

func TestUpdateBlockShortNames(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases+`
# Block (blk)

blk; ASCII                            ; Basic_Latin
`))
	require.NoError(t, e)

	blocks := []str.UnicodeBlock{
		{ID: 1, LongName: "Basic Latin", ShortName: "Basic Latin"},
		{ID: 2, LongName: "Mystery Block", ShortName: "Mystery Block"},
	}
	UpdateBlockShortNames(blocks, cat)

	assert.Equal(t, "ASCII", blocks[0].ShortName)
	assert.Equal(t, "Mystery Block", blocks[1].ShortName)
}
