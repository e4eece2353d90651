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
)

//
// SCHEMA
//

// the boolean flag columns are not listed here: that slice of the schema is
// discovered at catalog-build time and appended dynamically

// CharFixedColumns - the non-flag columns shared by "characters" and
// "unihan_chars", in table order
var CharFixedColumns = []string{
	"codepoint_dec",
	"codepoint",
	"name",
	"age_id",
	"general_category_id",
	"combining_class_id",
	"bidi_class_id",
	"bidi_paired_bracket_type_id",
	"decomposition_type_id",
	"east_asian_width_id",
	"hangul_syllable_type_id",
	"indic_matra_category_id",
	"indic_positional_category_id",
	"indic_syllabic_category_id",
	"joining_type_id",
	"joining_group_id",
	"line_break_id",
	"numeric_type_id",
	"script_id",
	"vertical_orientation_id",
	"script_extensions",
	"bidi_mirroring_glyph",
	"bidi_paired_bracket_property",
	"numeric_value",
	"numeric_value_parsed",
	"simple_uppercase_mapping",
	"simple_lowercase_mapping",
	"simple_titlecase_mapping",
	"simple_case_folding",
	"nfc_qc",
	"nfd_qc",
	"nfkc_qc",
	"nfkd_qc",
	"equivalent_unified_ideograph",
}

// UnihanExtraColumns - the CJK-only columns; only "unihan_chars" has them
var UnihanExtraColumns = []string{
	"description",
	"ideo_frequency",
	"ideo_grade_level",
	"rs_count_unicode",
	"rs_count_kangxi",
	"total_strokes",
	"traditional_variant",
	"simplified_variant",
	"z_variant",
	"compatibility_variant",
	"semantic_variant",
	"specialized_semantic_variant",
	"spoofing_variant",
	"accounting_numeric",
	"primary_numeric",
	"other_numeric",
	"hangul",
	"cantonese",
	"mandarin",
	"japanese_kun",
	"japanese_on",
	"vietnamese",
}

// CharColumns - every column of one of the two character tables, in order
func CharColumns(flags []str.CharFlag, unihan bool) []string {
	cols := append([]string{}, CharFixedColumns...)
	for _, f := range flags {
		cols = append(cols, f.Column)
	}
	if unihan {
		cols = append(cols, UnihanExtraColumns...)
	}
	return cols
}

// coltype - sqlite column affinity by column name
func coltype(col string) string {
	switch {
	case col == "codepoint_dec":
		return "INTEGER PRIMARY KEY"
	case strings.HasSuffix(col, "_id") || col == "ideo_frequency" || col == "ideo_grade_level":
		return "INTEGER"
	case col == "numeric_value_parsed":
		return "REAL"
	default:
		return "TEXT"
	}
}

// CreateSchema - build every table; flag columns are INTEGER 0/1
func CreateSchema(pool *sql.DB, flags []str.CharFlag) error {
	const (
		PLANES = `CREATE TABLE planes (
			id INTEGER PRIMARY KEY, number INTEGER, name TEXT, abbreviation TEXT,
			start_hex TEXT, start_dec INTEGER, finish_hex TEXT, finish_dec INTEGER,
			start_block_id INTEGER, finish_block_id INTEGER,
			total_allocated INTEGER, total_defined INTEGER )`
		BLOCKS = `CREATE TABLE blocks (
			id INTEGER PRIMARY KEY, long_name TEXT, short_name TEXT, plane_id INTEGER,
			start_hex TEXT, start_dec INTEGER, finish_hex TEXT, finish_dec INTEGER,
			total_allocated INTEGER, total_defined INTEGER )`
		PROPVALS = `CREATE TABLE prop_values (
			property TEXT, id INTEGER, short_name TEXT, long_name TEXT,
			is_group INTEGER, grouped_values TEXT,
			PRIMARY KEY (property, id) )`
	)

	for _, ddl := range []string{PLANES, BLOCKS, PROPVALS} {
		if _, e := pool.Exec(ddl); e != nil {
			return e
		}
	}

	for _, tb := range []struct {
		name   string
		unihan bool
	}{{"characters", false}, {"unihan_chars", true}} {
		cols := CharColumns(flags, tb.unihan)
		defs := make([]string, len(cols))
		for i, c := range cols {
			defs[i] = fmt.Sprintf("%s %s", c, coltype(c))
		}
		ddl := fmt.Sprintf("CREATE TABLE %s ( %s )", tb.name, strings.Join(defs, ", "))
		if _, e := pool.Exec(ddl); e != nil {
			return e
		}
	}
	return nil
}

// CreateCoveringIndexes - one compound index per property group per character
// table so both point fetches and filtered lists can be answered index-only
func CreateCoveringIndexes(pool *sql.DB, groups map[string][]string, flags []str.CharFlag) error {
	for _, tb := range []struct {
		name   string
		unihan bool
	}{{"characters", false}, {"unihan_chars", true}} {
		have := make(map[string]bool)
		for _, c := range CharColumns(flags, tb.unihan) {
			have[c] = true
		}
		for group, cols := range groups {
			var idxcols []string
			for _, c := range cols {
				if have[c] && c != "codepoint_dec" {
					idxcols = append(idxcols, c)
				}
			}
			if len(idxcols) == 0 {
				continue
			}
			name := fmt.Sprintf("%s_%s_covering_idx", tb.name, strings.ToLower(group))
			ddl := fmt.Sprintf("CREATE INDEX %s ON %s ( codepoint_dec, %s )",
				name, tb.name, strings.Join(idxcols, ", "))
			if _, e := pool.Exec(ddl); e != nil {
				return e
			}
		}
	}
	return nil
}

// VacuumAnalyze - compact and re-plan after the bulk load
func VacuumAnalyze(pool *sql.DB) error {
	if _, e := pool.Exec("VACUUM"); e != nil {
		return e
	}
	_, e := pool.Exec("ANALYZE")
	return e
}
