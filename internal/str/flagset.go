//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "strings"

// CharFlag - one boolean UCD property; the member set of the flag enumeration
// is not fixed at compile time but discovered while the property-value catalog
// is built: any property whose aliases are Yes/No-only lands here
type CharFlag struct {
	Long   string `json:"long"`   // "Alphabetic"
	Short  string `json:"short"`  // "Alpha" = the XML attribute name
	Column string `json:"column"` // "alphabetic" = the db column name
}

// FlagSet - tagged bitmap + lookup table over the discovered boolean properties
type FlagSet struct {
	Members []CharFlag
	byname  map[string]int
}

// NewFlagSet - build the lookup table; keys are the loose-normalized long and
// short names so user-supplied flag parameters resolve directly
func NewFlagSet(members []CharFlag) *FlagSet {
	fs := &FlagSet{Members: members, byname: make(map[string]int)}
	for i, m := range members {
		fs.byname[loosenorm(m.Long)] = i
		fs.byname[loosenorm(m.Short)] = i
	}
	return fs
}

func (fs *FlagSet) Len() int {
	return len(fs.Members)
}

// Resolve - loose-match a user-supplied flag name to its bit index
func (fs *FlagSet) Resolve(name string) (int, bool) {
	i, ok := fs.byname[loosenorm(name)]
	return i, ok
}

// loosenorm - UAX44-LM3 lite: the full resolver lives in internal/search; this
// private copy avoids an import cycle
func loosenorm(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "\t", "", "-", "", "_", "").Replace(s)
	s = strings.TrimPrefix(s, "is")
	return s
}

// Flags - one bit per FlagSet member; more than 64 boolean properties exist in
// a modern UCD so a single word will not do
type Flags []uint64

func NewFlags(n int) Flags {
	return make(Flags, (n+63)/64)
}

func (f Flags) Set(i int) {
	f[i/64] |= 1 << (i % 64)
}

func (f Flags) Has(i int) bool {
	if i/64 >= len(f) {
		return false
	}
	return f[i/64]&(1<<(i%64)) != 0
}

// Any - true if any member bit is set
func (f Flags) Any() bool {
	for _, w := range f {
		if w != 0 {
			return true
		}
	}
	return false
}
