package land

import "github.com/cory-johannsen/landsim/internal/game/mana"

// Basic land IDs.
const (
	Plains   = "Plains"
	Island   = "Island"
	Swamp    = "Swamp"
	Mountain = "Mountain"
	Forest   = "Forest"
)

type dualDef struct {
	id   string
	a, b string
}

var standardDuals = []struct {
	cat   Category
	lands []dualDef
}{
	{CategoryCheckland, []dualDef{
		{"GlacialFortress", Plains, Island},
		{"DrownedCatacomb", Swamp, Island},
		{"DragonskullSummit", Swamp, Mountain},
		{"RootboundCrag", Mountain, Forest},
		{"SunpetalGrove", Plains, Forest},
		{"IsolatedChapel", Plains, Swamp},
		{"SulfurFalls", Mountain, Island},
		{"WoodlandCemetery", Forest, Swamp},
		{"ClifftopRetreat", Mountain, Plains},
		{"HinterlandHarbor", Forest, Island},
	}},
	{CategoryShockland, []dualDef{
		{"HallowedFountain", Plains, Island},
		{"WateryGrave", Swamp, Island},
		{"BloodCrypt", Swamp, Mountain},
		{"StompingGrounds", Mountain, Forest},
		{"TempleGarden", Forest, Plains},
		{"GodlessShrine", Plains, Swamp},
		{"SteamVents", Mountain, Island},
		{"OvergrownTomb", Forest, Swamp},
		{"SacredFoundry", Mountain, Plains},
		{"BreedingPool", Forest, Island},
	}},
	{CategoryGateland, []dualDef{
		{"AzoriusGuildgate", Plains, Island},
		{"DimirGuildgate", Swamp, Island},
		{"RakdosGuildgate", Swamp, Mountain},
		{"GruulGuildgate", Mountain, Forest},
		{"SelesnyaGuildgate", Forest, Plains},
		{"OrzhovGuildgate", Plains, Swamp}, // white/black, not white/blue
		{"IzzetGuildgate", Island, Mountain},
		{"GolgariGuildgate", Swamp, Forest},
		{"BorosGuildgate", Mountain, Plains},
		{"SimicGuildgate", Forest, Island},
	}},
	{CategoryTapland, []dualDef{
		{"MeanderingRiver", Plains, Island},
		{"ForsakenSanctuary", Plains, Swamp},
		{"SubmergedBoneyard", Swamp, Island},
		{"HighlandLake", Island, Mountain},
		{"CinderBarrens", Swamp, Mountain},
		{"FoulOrchard", Swamp, Forest},
		{"TimberGorge", Mountain, Forest},
		{"StoneQuarry", Mountain, Plains},
		{"TranquilExpanse", Forest, Plains},
		{"WoodlandStream", Forest, Island},
	}},
}

// DefaultRegistry returns a new Registry holding the five basics followed by
// the checklands, shocklands, gatelands and taplands of the standard table.
//
// Postcondition: the registry holds 45 variants and Validate returns nil.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegisterBasic(Plains, mana.White, CategoryBasic)
	r.MustRegisterBasic(Island, mana.Blue, CategoryBasic)
	r.MustRegisterBasic(Swamp, mana.Black, CategoryBasic)
	r.MustRegisterBasic(Mountain, mana.Red, CategoryBasic)
	r.MustRegisterBasic(Forest, mana.Green, CategoryBasic)
	for _, group := range standardDuals {
		for _, d := range group.lands {
			r.MustRegisterDual(d.id, d.a, d.b, group.cat)
		}
	}
	return r
}
