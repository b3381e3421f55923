package land_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/landsim/internal/game/land"
	"github.com/cory-johannsen/landsim/internal/game/mana"
)

func TestDefaultRegistry_Shape(t *testing.T) {
	r := land.DefaultRegistry()
	assert.Equal(t, 45, r.Len())
	assert.Len(t, r.ByCategory(land.CategoryBasic), 5)
	for _, cat := range []land.Category{land.CategoryCheckland, land.CategoryShockland, land.CategoryGateland, land.CategoryTapland} {
		assert.Len(t, r.ByCategory(cat), 10, "category %s", cat)
	}
	require.NoError(t, r.Validate())

	all := r.All()
	assert.Equal(t, land.Plains, all[0].ID)
	assert.Equal(t, "GlacialFortress", all[5].ID)
}

func TestDefaultRegistry_DualsAreUnionOfParents(t *testing.T) {
	r := land.DefaultRegistry()
	for _, v := range r.All() {
		if v.Category == land.CategoryBasic {
			assert.Equal(t, 1, v.Colors.Len())
			continue
		}
		require.Len(t, v.Parents, 2, v.ID)
		a, ok := r.Variant(v.Parents[0])
		require.True(t, ok)
		b, ok := r.Variant(v.Parents[1])
		require.True(t, ok)
		assert.Equal(t, a.Colors.Union(b.Colors), land.ColorsOf(v), v.ID)
		assert.Equal(t, 2, v.Colors.Len(), v.ID)
		assert.True(t, v.IsDual())
	}
}

func TestDefaultRegistry_EachPairHasOneLandPerCategory(t *testing.T) {
	r := land.DefaultRegistry()
	for _, cat := range []land.Category{land.CategoryCheckland, land.CategoryShockland, land.CategoryGateland, land.CategoryTapland} {
		seen := make(map[mana.ColorSet]string)
		for _, v := range r.ByCategory(cat) {
			prev, dup := seen[v.Colors]
			assert.False(t, dup, "%s: %s and %s share colors %s", cat, prev, v.ID, v.Colors)
			seen[v.Colors] = v.ID
		}
	}
}

func TestDisplayName(t *testing.T) {
	r := land.DefaultRegistry()
	v, ok := r.Variant("GlacialFortress")
	require.True(t, ok)
	assert.Equal(t, "Glacial Fortress", v.DisplayName())
	v, _ = r.Variant("Forest")
	assert.Equal(t, "Forest", v.DisplayName())
	assert.Equal(t, "Non Resource Card", land.NonResource.DisplayName())
}

func TestIsResourceCard(t *testing.T) {
	r := land.DefaultRegistry()
	forest, _ := r.Variant(land.Forest)
	assert.True(t, land.IsResourceCard(forest))
	assert.False(t, land.IsResourceCard(land.NonResource))
	assert.True(t, land.ColorsOf(land.NonResource).IsEmpty())
}

func TestProducing(t *testing.T) {
	r := land.DefaultRegistry()
	red := r.Producing(mana.Red)
	// Mountain plus four duals in each of four categories.
	assert.Len(t, red, 17)
	for _, v := range red {
		assert.True(t, v.Produces(mana.Red))
	}
}

func TestRegisterDual_Errors(t *testing.T) {
	r := land.NewRegistry()
	r.MustRegisterBasic(land.Plains, mana.White, land.CategoryBasic)
	r.MustRegisterBasic("SnowCoveredPlains", mana.White, land.CategoryBasic)
	r.MustRegisterBasic(land.Island, mana.Blue, land.CategoryBasic)
	r.MustRegisterDual("Tundra", land.Plains, land.Island, land.CategoryCustom)

	_, err := r.RegisterDual("Bad", land.Plains, "SnowCoveredPlains", land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrMalformedVariant, "same-color parents give one color")

	_, err = r.RegisterDual("Bad", land.Plains, "Nowhere", land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrUnknownVariant)

	_, err = r.RegisterDual("Bad", "Tundra", land.Island, land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrMalformedVariant, "dual parents would exceed two colors")

	_, err = r.RegisterDual("Tundra", land.Plains, land.Island, land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrDuplicateVariant)

	_, err = r.RegisterBasic("Wastes", mana.Colorless, land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrMalformedVariant)

	_, err = r.RegisterBasic(land.NonResource.ID, mana.Green, land.CategoryCustom)
	assert.ErrorIs(t, err, land.ErrDuplicateVariant)

	_, ok := r.Variant("Bad")
	assert.False(t, ok, "failed registrations must not leave a variant behind")
	assert.Equal(t, 4, r.Len())
}

func TestMustRegisterDual_Panics(t *testing.T) {
	r := land.NewRegistry()
	assert.Panics(t, func() { r.MustRegisterDual("X", "A", "B", land.CategoryCustom) })
}

func TestValidate_DetectsTamperedVariant(t *testing.T) {
	r := land.DefaultRegistry()
	v, _ := r.Variant("BreedingPool")
	v.Colors = mana.NewColorSet(mana.Green, mana.Red)
	assert.ErrorIs(t, r.Validate(), land.ErrMalformedVariant)
}

func TestLookup(t *testing.T) {
	r := land.DefaultRegistry()
	v, err := r.Lookup("SteamVents")
	require.NoError(t, err)
	assert.Equal(t, "UR", v.Colors.String())
	_, err = r.Lookup("Nope")
	assert.ErrorIs(t, err, land.ErrUnknownVariant)
}

func TestOrzhovGuildgate_IsWhiteBlack(t *testing.T) {
	v, err := land.DefaultRegistry().Lookup("OrzhovGuildgate")
	require.NoError(t, err)
	assert.Equal(t, "WB", v.Colors.String())
}

func TestLoadInto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lands:
  - id: SnowCoveredForest
    color: G
    category: basic
  - id: DarkboreGrove
    parents: [SnowCoveredForest, Swamp]
`), 0644))

	r := land.DefaultRegistry()
	require.NoError(t, land.LoadInto(r, path))
	assert.Equal(t, 47, r.Len())

	snow, ok := r.Variant("SnowCoveredForest")
	require.True(t, ok)
	assert.Equal(t, land.CategoryBasic, snow.Category)

	grove, ok := r.Variant("DarkboreGrove")
	require.True(t, ok)
	assert.Equal(t, land.CategoryCustom, grove.Category)
	assert.Equal(t, mana.NewColorSet(mana.Black, mana.Green), grove.Colors)
}

func TestLoadInto_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lands:
  - id: Confused
    color: G
    parents: [Forest, Swamp]
`), 0644))
	err := land.LoadInto(land.DefaultRegistry(), path)
	assert.ErrorIs(t, err, land.ErrMalformedVariant)
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := land.LoadDefinitions(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRegisterDual_UnionProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.SampledFrom(mana.AllColors).Draw(rt, "a")
		b := rapid.SampledFrom(mana.AllColors).Draw(rt, "b")

		r := land.NewRegistry()
		r.MustRegisterBasic("A", a, land.CategoryBasic)
		r.MustRegisterBasic("B", b, land.CategoryBasic)
		v, err := r.RegisterDual("AB", "A", "B", land.CategoryCustom)
		if a == b {
			assert.ErrorIs(rt, err, land.ErrMalformedVariant)
			return
		}
		require.NoError(rt, err)
		assert.Equal(rt, mana.NewColorSet(a, b), v.Colors)
		assert.Equal(rt, 2, v.Colors.Len())
	})
}

func TestLoadInto_ShippedSnowLands(t *testing.T) {
	r := land.DefaultRegistry()
	require.NoError(t, land.LoadInto(r, filepath.Join("..", "..", "..", "content", "lands", "snow.yaml")))
	assert.Len(t, r.ByCategory(land.CategoryBasic), 10)
	treeline, err := r.Lookup("ArcticTreeline")
	require.NoError(t, err)
	assert.Equal(t, "WG", treeline.Colors.String())
}
