//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// UnicodePlane - one of the 17 architected planes; the cache also synthesizes
// an "All Unicode" plane and an "Unassigned" plane for codepoints that fall
// outside any named plane row
type UnicodePlane struct {
	ID             int    `json:"id"`
	Number         int    `json:"number"`
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	StartHex       string `json:"start"`
	StartDec       int32  `json:"startDec"`
	FinishHex      string `json:"finish"`
	FinishDec      int32  `json:"finishDec"`
	StartBlockID   int    `json:"startBlockId"`
	FinishBlockID  int    `json:"finishBlockId"`
	TotalAllocated int    `json:"totalAllocated"`
	TotalDefined   int    `json:"totalDefined"`
}

// UnicodeBlock - a named, non-overlapping span of codepoints; id is the
// 1-based ordinal of the block sorted by its start codepoint
type UnicodeBlock struct {
	ID             int    `json:"id"`
	LongName       string `json:"name"`
	ShortName      string `json:"shortName"`
	PlaneID        int    `json:"planeId"`
	StartHex       string `json:"start"`
	StartDec       int32  `json:"startDec"`
	FinishHex      string `json:"finish"`
	FinishDec      int32  `json:"finishDec"`
	TotalAllocated int    `json:"totalAllocated"`
	TotalDefined   int    `json:"totalDefined"`
}

// PropertyValue - one row of the property-value catalog; for the
// General_Category group rows GroupedValues carries the pipe-separated short
// names of the member categories
type PropertyValue struct {
	ID            int    `json:"id"`
	ShortName     string `json:"shortName"`
	LongName      string `json:"longName"`
	IsGroup       bool   `json:"isGroup,omitempty"`
	GroupedValues string `json:"groupedValues,omitempty"`
}
