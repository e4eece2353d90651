//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// PropertyCatalogFile - the shape of prop_values.json: everything the serving
// side needs to rebuild the catalog without re-reading PropertyValueAliases.txt
type PropertyCatalogFile struct {
	Properties        map[string][]PropertyValue `json:"properties"`
	BooleanProperties []CharFlag                 `json:"booleanProperties"`
	Missing           []string                   `json:"missing"`
}
