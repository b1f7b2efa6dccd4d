package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalogHasEveryFeature(t *testing.T) {
	c := mustDefault(t)
	want := []FeatureID{
		VoiceOver, VoiceControl, LargerText, DarkInterface, DifferentiateWithoutColor,
		SufficientContrast, ReducedMotion, Captions, AudioDescriptions,
	}
	require.Equal(t, len(want), c.Len())
	for i, f := range c.All() {
		require.Equal(t, want[i], f.ID)
		require.NotEmpty(t, f.Name)
		require.NotEmpty(t, f.ShortDescription)
		require.NotEmpty(t, f.FullDescription)
		require.NotEmpty(t, f.ActivationSteps)
		require.NotEmpty(t, f.Platforms)
	}
}

func TestDefaultCatalogEntries(t *testing.T) {
	c := mustDefault(t)

	vo, ok := c.Lookup(VoiceOver)
	require.True(t, ok)
	require.Equal(t, "VoiceOver", vo.Name)
	require.Equal(t, Vision, vo.Category)
	require.Equal(t, "blue", vo.Color)
	require.Equal(t, []Platform{IOS, IPadOS, MacOS, WatchOS, TvOS, VisionOS}, vo.Platforms)
	require.Len(t, vo.ActivationSteps, 5)
	require.True(t, strings.HasPrefix(vo.FullDescription, "VoiceOver is Apple's built-in screen reader"))

	vc, ok := c.Lookup(VoiceControl)
	require.True(t, ok)
	require.Equal(t, Motor, vc.Category)
	require.Equal(t, []Platform{IOS, IPadOS, MacOS}, vc.Platforms)

	rm, ok := c.Lookup(ReducedMotion)
	require.True(t, ok)
	require.Equal(t, Motion, rm.Category)
}

func TestGetUnknownFeature(t *testing.T) {
	c := mustDefault(t)
	_, err := c.Get("telepathy")
	require.True(t, errors.Is(err, ErrUnknownFeature))

	f, err := c.Get(" captions ")
	require.NoError(t, err)
	require.Equal(t, Captions, f.ID)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"version":   "version = 2\n",
		"unknown":   "version = 1\nextra = true\n",
		"category":  "version = 1\n[[feature]]\nid = \"a\"\nname = \"A\"\ncategory = \"Taste\"\n",
		"platform":  "version = 1\n[[feature]]\nid = \"a\"\nname = \"A\"\ncategory = \"Vision\"\nplatforms = [\"Android\"]\n",
		"name":      "version = 1\n[[feature]]\nid = \"a\"\ncategory = \"Vision\"\n",
		"id":        "version = 1\n[[feature]]\nname = \"A\"\ncategory = \"Vision\"\n",
		"duplicate": "version = 1\n[[feature]]\nid = \"a\"\nname = \"A\"\ncategory = \"Vision\"\n[[feature]]\nid = \"a\"\nname = \"B\"\ncategory = \"Motion\"\n",
		"syntax":    "version = \n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(doc)
			require.Error(t, err)
		})
	}
}

func TestParseDefaultsColorFromCategory(t *testing.T) {
	c, err := Parse("version = 1\n[[feature]]\nid = \"switch\"\nname = \"Switch Control\"\ncategory = \"Motor\"\n")
	require.NoError(t, err)
	f, ok := c.Lookup("switch")
	require.True(t, ok)
	require.Equal(t, "orange", f.Color)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := "version = 1\n[[feature]]\nid = \"switch\"\nname = \"Switch Control\"\ncategory = \"Motor\"\nplatforms = [\"iOS\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	c, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 9, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestPlatformIcons(t *testing.T) {
	require.Equal(t, "iphone", IOS.Icon())
	require.Equal(t, "visionpro", VisionOS.Icon())
	require.Equal(t, "questionmark.circle", Platform("Android").Icon())
}
