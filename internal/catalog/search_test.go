package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(features []Feature) []FeatureID {
	out := make([]FeatureID, 0, len(features))
	for _, f := range features {
		out = append(out, f.ID)
	}
	return out
}

func TestSearchMatchesNameAndShortDescription(t *testing.T) {
	c := mustDefault(t)

	require.Equal(t, []FeatureID{VoiceOver, VoiceControl}, ids(c.Search("voice")))
	require.Equal(t, []FeatureID{LargerText}, ids(c.Search("200%")))
	require.Equal(t, []FeatureID{Captions}, ids(c.Search("DIALOG")))
	require.Len(t, c.Search("   "), c.Len())
	require.Empty(t, c.Search("telepathy"))
}

func TestGroupByCategoryOrderAndOmission(t *testing.T) {
	c := mustDefault(t)

	groups := GroupByCategory(c.All())
	require.Len(t, groups, 4)
	require.Equal(t, Vision, groups[0].Category)
	require.Equal(t, []FeatureID{VoiceOver, LargerText, DarkInterface, DifferentiateWithoutColor, SufficientContrast}, ids(groups[0].Features))
	require.Equal(t, Hearing, groups[1].Category)
	require.Equal(t, []FeatureID{Captions, AudioDescriptions}, ids(groups[1].Features))
	require.Equal(t, Motor, groups[2].Category)
	require.Equal(t, Motion, groups[3].Category)

	groups = GroupByCategory(c.Search("narrated"))
	require.Len(t, groups, 1)
	require.Equal(t, Hearing, groups[0].Category)

	require.Empty(t, GroupByCategory(nil))
}

func TestSuggestFindsTypos(t *testing.T) {
	c := mustDefault(t)

	f, ok := c.Suggest("captons")
	require.True(t, ok)
	require.Equal(t, Captions, f.ID)

	f, ok = c.Suggest("contrst")
	require.True(t, ok)
	require.Equal(t, SufficientContrast, f.ID)

	f, ok = c.Suggest("voiceovr")
	require.True(t, ok)
	require.Equal(t, VoiceOver, f.ID)

	_, ok = c.Suggest("zzzzzzzzzzzz")
	require.False(t, ok)
	_, ok = c.Suggest("")
	require.False(t, ok)
}
