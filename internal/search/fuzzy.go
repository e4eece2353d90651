//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// FUZZY NAME SEARCH
//

// NameEntry - one searchable name; Key is the lowercased official name and ID
// is a codepoint for characters or a block id for blocks
type NameEntry struct {
	Key string
	ID  int
}

// Scored - a fuzzy hit
type Scored struct {
	ID    int
	Score int
}

// FuzzyScores - partial-ratio score the query against every key; minscore is
// clamped below at MINFUZZYSCORE; ties on score break by ascending id
func FuzzyScores(q string, minscore int, names []NameEntry) []Scored {
	if minscore < vv.MINFUZZYSCORE {
		minscore = vv.MINFUZZYSCORE
	}

	q = strings.ToLower(q)

	var hits []Scored
	for _, n := range names {
		s := fuzzy.PartialRatio(q, n.Key)
		if s >= minscore {
			hits = append(hits, Scored{ID: n.ID, Score: s})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	return hits
}
