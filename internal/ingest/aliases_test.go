//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

const samplealiases = `# PropertyValueAliases-15.0.0.txt
# Date: 2022-08-01

# Age (age)

age; 1.1                              ; V1_1
age; 2.0                              ; V2_0

# Alphabetic (Alpha)

Alpha; N                              ; No
Alpha; Y                              ; Yes

# Canonical_Combining_Class (ccc)

ccc;   0; NR                          ; Not_Reordered
ccc;   1; OV                          ; Overlay
ccc; 214; ATA                         ; Attached_Above

# General_Category (gc)

gc ; C                                ; Other                            # Cc | Cf | Cn | Co | Cs
gc ; Cc                               ; Control                          ; cntrl
gc ; Lu                               ; Uppercase_Letter
`

func writealiases(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), vv.PROPALIASFILENAME)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestBuildPropertyCatalog(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	assert.Contains(t, cat.File.Properties, "Age")
	assert.Contains(t, cat.File.Properties, "General_Category")
	assert.Len(t, cat.Values("Age"), 2)
}

func TestYesNoPropertiesBecomeFlags(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	assert.NotContains(t, cat.File.Properties, "Alphabetic")
	require.Len(t, cat.File.BooleanProperties, 1)
	assert.Equal(t, str.CharFlag{Long: "Alphabetic", Short: "Alpha", Column: "alphabetic"}, cat.File.BooleanProperties[0])
}

func TestGeneralCategoryGrouping(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	var other str.PropertyValue
	for _, pv := range cat.Values("General_Category") {
		if pv.ShortName == "C" {
			other = pv
		}
	}
	assert.True(t, other.IsGroup)
	assert.Equal(t, "Other", other.LongName)
	assert.Equal(t, "Cc|Cf|Cn|Co|Cs", other.GroupedValues)

	// extra alias fields past the long name are trimmed away
	id := cat.IDFor("General_Category", "Cc")
	require.NotZero(t, id)
	for _, pv := range cat.Values("General_Category") {
		if pv.ID == id {
			assert.Equal(t, "Control", pv.LongName)
		}
	}
}

func TestCombiningClassDensification(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	byid := make(map[int]str.PropertyValue)
	for _, pv := range cat.Values("Canonical_Combining_Class") {
		byid[pv.ID] = pv
	}

	// ids are the ccc numbers themselves, not file ordinals
	assert.Equal(t, "NR", byid[0].ShortName)
	assert.Equal(t, "OV", byid[1].ShortName)
	assert.Equal(t, "ATA", byid[214].ShortName)

	// every gap in [10, 200) gets a placeholder
	for n := 10; n < 200; n++ {
		require.Contains(t, byid, n)
	}
	assert.Equal(t, "CCC42", byid[42].ShortName)
}

func TestMissingProperties(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	assert.Contains(t, cat.File.Missing, "Script")
	assert.Contains(t, cat.File.Missing, "Line_Break")
	assert.NotContains(t, cat.File.Missing, "Age")
	assert.NotContains(t, cat.File.Missing, "General_Category")
}

func TestIDFor(t *testing.T) {
	cat, e := BuildPropertyCatalog(writealiases(t, samplealiases))
	require.NoError(t, e)

	// loose matching covers case and separators
	assert.Equal(t, cat.IDFor("General_Category", "Lu"), cat.IDFor("General_Category", "uppercase letter"))
	assert.Equal(t, 1, cat.IDFor("Canonical_Combining_Class", "overlay"))

	assert.Equal(t, 0, cat.IDFor("General_Category", "Zz"))
	assert.Equal(t, vv.INVALIDPROPVALUEID, cat.IDFor("Script", "Latn"))
}

func TestMalformedCatalogFailsWholesale(t *testing.T) {
	bad := `# Age (age)

age; 1.1
`
	_, e := BuildPropertyCatalog(writealiases(t, bad))
	require.Error(t, e)
	assert.Contains(t, e.Error(), "catalog validation failed")
}
