//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupnames(gg []*PropGroup) []string {
	nn := make([]string, len(gg))
	for i, g := range gg {
		nn[i] = g.Name
	}
	return nn
}

func TestGroupsForDefaultIsEverything(t *testing.T) {
	gg, bad := GroupsFor(nil, false)
	require.Empty(t, bad)

	nn := groupnames(gg)
	assert.Contains(t, nn, "Minimum")
	assert.Contains(t, nn, "Basic")
	assert.Contains(t, nn, "Emoji")
	assert.NotContains(t, nn, "CJK Minimum")
	assert.NotContains(t, nn, "CJK Readings")
}

func TestGroupsForDefaultUnihan(t *testing.T) {
	gg, bad := GroupsFor(nil, true)
	require.Empty(t, bad)

	nn := groupnames(gg)
	assert.Contains(t, nn, "CJK Minimum")
	assert.Contains(t, nn, "CJK Basic")
	assert.Contains(t, nn, "CJK Readings")
	assert.NotContains(t, nn, "Minimum")
	assert.NotContains(t, nn, "Basic")
}

func TestGroupsForMinimumIsMandatory(t *testing.T) {
	gg, bad := GroupsFor([]string{"numeric"}, false)
	require.Empty(t, bad)
	assert.Equal(t, []string{"Minimum", "Numeric"}, groupnames(gg))
}

func TestGroupsForBasicPromotion(t *testing.T) {
	gg, bad := GroupsFor([]string{"basic"}, true)
	require.Empty(t, bad)
	assert.Equal(t, []string{"CJK Minimum", "CJK Basic"}, groupnames(gg))

	// and the demotion runs the other way
	gg, bad = GroupsFor([]string{"cjk_basic"}, false)
	require.Empty(t, bad)
	assert.Equal(t, []string{"Minimum", "Basic"}, groupnames(gg))
}

func TestGroupsForCJKOnlyGroupsDropSilently(t *testing.T) {
	gg, bad := GroupsFor([]string{"cjk_readings", "utf8"}, false)
	require.Empty(t, bad)
	assert.Equal(t, []string{"Minimum", "UTF-8"}, groupnames(gg))
}

func TestGroupsForLooseNames(t *testing.T) {
	gg, bad := GroupsFor([]string{"East Asian Width", "QUICK-CHECK"}, false)
	require.Empty(t, bad)
	assert.Equal(t, []string{"Minimum", "Quick Check", "East Asian Width"}, groupnames(gg))
}

func TestGroupsForBadNames(t *testing.T) {
	gg, bad := GroupsFor([]string{"utf8", "klingon", "tlhingan"}, false)
	assert.Nil(t, gg)
	assert.Equal(t, []string{"klingon", "tlhingan"}, bad)
}

func TestGroupsForAllToken(t *testing.T) {
	gg, bad := GroupsFor([]string{"all"}, false)
	require.Empty(t, bad)
	assert.Equal(t, groupnames(gg), groupnames(func() []*PropGroup {
		g, _ := GroupsFor(nil, false)
		return g
	}()))
}

func TestGroupsForEmissionOrder(t *testing.T) {
	gg, bad := GroupsFor([]string{"emoji", "utf16", "case"}, false)
	require.Empty(t, bad)
	assert.Equal(t, []string{"Minimum", "UTF-16", "Case", "Emoji"}, groupnames(gg))
}

func TestGroupColumnMap(t *testing.T) {
	m := GroupColumnMap()

	// computed-only groups carry no columns and get no index
	assert.NotContains(t, m, "minimum")
	assert.NotContains(t, m, "utf8")

	require.Contains(t, m, "basic")
	assert.Contains(t, m["basic"], "general_category_id")
	require.Contains(t, m, "cjk_readings")
	assert.Contains(t, m["cjk_readings"], "mandarin")
}
