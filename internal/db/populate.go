//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// BULK POPULATION (ingest-time only)
//

// InsertBatched - multi-row INSERTs in INGESTBATCHSIZE chunks inside one
// transaction; the ingest is all-or-nothing so any error rolls everything back
func InsertBatched(tx *sql.Tx, table string, cols []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	head := fmt.Sprintf("INSERT INTO %s (%s) VALUES ", table, strings.Join(cols, ", "))

	for start := 0; start < len(rows); start += vv.INGESTBATCHSIZE {
		end := start + vv.INGESTBATCHSIZE
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		var args []any
		reps := make([]string, len(chunk))
		for i, r := range chunk {
			reps[i] = placeholders
			args = append(args, r...)
		}
		if _, e := tx.Exec(head+strings.Join(reps, ", "), args...); e != nil {
			return e
		}
	}
	return nil
}

// InsertPlanes - one row per plane
func InsertPlanes(tx *sql.Tx, planes []str.UnicodePlane) error {
	cols := []string{"id", "number", "name", "abbreviation", "start_hex", "start_dec",
		"finish_hex", "finish_dec", "start_block_id", "finish_block_id",
		"total_allocated", "total_defined"}
	rows := make([][]any, len(planes))
	for i, p := range planes {
		rows[i] = []any{p.ID, p.Number, p.Name, p.Abbreviation, p.StartHex, p.StartDec,
			p.FinishHex, p.FinishDec, p.StartBlockID, p.FinishBlockID,
			p.TotalAllocated, p.TotalDefined}
	}
	return InsertBatched(tx, "planes", cols, rows)
}

// InsertBlocks - one row per block
func InsertBlocks(tx *sql.Tx, blocks []str.UnicodeBlock) error {
	cols := []string{"id", "long_name", "short_name", "plane_id", "start_hex", "start_dec",
		"finish_hex", "finish_dec", "total_allocated", "total_defined"}
	rows := make([][]any, len(blocks))
	for i, b := range blocks {
		rows[i] = []any{b.ID, b.LongName, b.ShortName, b.PlaneID, b.StartHex, b.StartDec,
			b.FinishHex, b.FinishDec, b.TotalAllocated, b.TotalDefined}
	}
	return InsertBatched(tx, "blocks", cols, rows)
}

// InsertPropValues - one row per property-value lookup
func InsertPropValues(tx *sql.Tx, catalog map[string][]str.PropertyValue) error {
	cols := []string{"property", "id", "short_name", "long_name", "is_group", "grouped_values"}
	var rows [][]any
	for property, vals := range catalog {
		for _, pv := range vals {
			ig := 0
			if pv.IsGroup {
				ig = 1
			}
			rows = append(rows, []any{property, pv.ID, pv.ShortName, pv.LongName, ig, pv.GroupedValues})
		}
	}
	return InsertBatched(tx, "prop_values", cols, rows)
}

// CharacterRowValues - flatten a CharacterRow into the column order of its table
func CharacterRowValues(cr *str.CharacterRow, flags []str.CharFlag) []any {
	vals := []any{
		cr.CodepointDec, cr.Codepoint, cr.Name,
		cr.AgeID, cr.GeneralCategoryID, cr.CombiningClassID, cr.BidiClassID,
		cr.BidiPairedBracketTypeID, cr.DecompositionTypeID, cr.EastAsianWidthID,
		cr.HangulSyllableTypeID, cr.IndicMatraCategoryID, cr.IndicPositionalCategoryID,
		cr.IndicSyllabicCategoryID, cr.JoiningTypeID, cr.JoiningGroupID,
		cr.LineBreakID, cr.NumericTypeID, cr.ScriptID, cr.VerticalOrientationID,
		cr.ScriptExtensions, cr.BidiMirroringGlyph, cr.BidiPairedBracketProperty,
		cr.NumericValue, cr.NumericValueParsed,
		cr.SimpleUppercaseMapping, cr.SimpleLowercaseMapping,
		cr.SimpleTitlecaseMapping, cr.SimpleCaseFolding,
		cr.NFCQuickCheck, cr.NFDQuickCheck, cr.NFKCQuickCheck, cr.NFKDQuickCheck,
		cr.EquivalentUnifiedIdeograph,
	}
	for i := range flags {
		b := 0
		if cr.Flags.Has(i) {
			b = 1
		}
		vals = append(vals, b)
	}
	if cr.Unihan {
		vals = append(vals,
			cr.Description, cr.IdeoFrequency, cr.IdeoGradeLevel,
			cr.RsCountUnicode, cr.RsCountKangxi, cr.TotalStrokes,
			cr.TraditionalVariant, cr.SimplifiedVariant, cr.ZVariant,
			cr.CompatibilityVariant, cr.SemanticVariant, cr.SpecializedSemanticVariant,
			cr.SpoofingVariant, cr.AccountingNumeric, cr.PrimaryNumeric, cr.OtherNumeric,
			cr.Hangul, cr.Cantonese, cr.Mandarin, cr.JapaneseKun, cr.JapaneseOn, cr.Vietnamese)
	}
	return vals
}
