//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// JSON SIDE-FILES
//
// everything the serving cache needs at startup is written next to the
// sqlite store so that a cold server never parses the XML again
//

// WriteSideFiles - emit the six side-files into "<dataroot>/<version>/json/"
func WriteSideFiles(planes []str.UnicodePlane, blocks []str.UnicodeBlock, buckets *CharBuckets, cat *PropertyCatalog) error {
	dir := lnch.JSONDir()
	if e := os.MkdirAll(dir, 0755); e != nil {
		return e
	}

	names := make(map[string]string, len(buckets.NonUnihan))
	for _, cr := range buckets.NonUnihan {
		if _, tangut := buckets.TangutMap[cr.CodepointDec]; tangut {
			// tangut names are synthesized from the codepoint at need
			continue
		}
		names[fmt.Sprintf("%d", cr.CodepointDec)] = cr.Name
	}

	unihan := make(map[string]int, len(buckets.UnihanMap))
	for cp, bid := range buckets.UnihanMap {
		unihan[fmt.Sprintf("%d", cp)] = bid
	}
	tangut := make(map[string]int, len(buckets.TangutMap))
	for cp, bid := range buckets.TangutMap {
		tangut[fmt.Sprintf("%d", cp)] = bid
	}

	files := []struct {
		name string
		data any
	}{
		{vv.PLANESJSON, planes},
		{vv.BLOCKSJSON, blocks},
		{vv.CHARNAMEMAPJSON, names},
		{vv.UNIHANCHARSJSON, unihan},
		{vv.TANGUTCHARSJSON, tangut},
		{vv.PROPVALUESJSON, cat.File},
	}

	for _, f := range files {
		raw, e := json.MarshalIndent(f.data, "", vv.JSONINDENT)
		if e != nil {
			return e
		}
		if e := os.WriteFile(filepath.Join(dir, f.name), raw, 0644); e != nil {
			return e
		}
	}
	return nil
}
