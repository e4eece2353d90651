//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"bytes"
	"encoding/json"
)

// ListResponse - envelope for the cursor-paginated list endpoints
type ListResponse[T any] struct {
	URL          string `json:"url"`
	TotalResults int    `json:"totalResults,omitempty"`
	HasMore      bool   `json:"hasMore"`
	Data         []T    `json:"data"`
}

// SearchResponse - envelope for the page/per_page search and filter endpoints
type SearchResponse[T any] struct {
	URL            string `json:"url"`
	Query          string `json:"query,omitempty"`
	FilterSettings any    `json:"filterSettings,omitempty"`
	HasMore        bool   `json:"hasMore"`
	CurrentPage    int    `json:"currentPage"`
	NextPage       int    `json:"nextPage,omitempty"`
	TotalResults   int    `json:"totalResults"`
	Results        []T    `json:"results"`
}

// PropertyMap - an insertion-ordered string-keyed map; the character assembler
// emits properties group by group and the JSON should read that way too
type PropertyMap struct {
	keys []string
	vals map[string]any
}

func NewPropertyMap() *PropertyMap {
	return &PropertyMap{vals: make(map[string]any)}
}

func (pm *PropertyMap) Set(k string, v any) {
	if _, seen := pm.vals[k]; !seen {
		pm.keys = append(pm.keys, k)
	}
	pm.vals[k] = v
}

func (pm *PropertyMap) Get(k string) (any, bool) {
	v, ok := pm.vals[k]
	return v, ok
}

func (pm *PropertyMap) Has(k string) bool {
	_, ok := pm.vals[k]
	return ok
}

func (pm *PropertyMap) Delete(k string) {
	if _, ok := pm.vals[k]; !ok {
		return
	}
	delete(pm.vals, k)
	for i, kk := range pm.keys {
		if kk == k {
			pm.keys = append(pm.keys[:i], pm.keys[i+1:]...)
			break
		}
	}
}

func (pm *PropertyMap) Keys() []string {
	return pm.keys
}

func (pm *PropertyMap) Len() int {
	return len(pm.keys)
}

// MarshalJSON - emit the keys in insertion order
func (pm *PropertyMap) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range pm.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kj, e := json.Marshal(k)
		if e != nil {
			return nil, e
		}
		b.Write(kj)
		b.WriteByte(':')
		vj, e := json.Marshal(pm.vals[k])
		if e != nil {
			return nil, e
		}
		b.Write(vj)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
