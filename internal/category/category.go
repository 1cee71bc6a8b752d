// Package category defines the canonical drink categories and the
// migration table for legacy free-text values that predate them.
package category

// Canonical category values
const (
	HotDrinks    = "hot-drinks"
	ColdDrinks   = "cold-drinks"
	Juices       = "juices"
	Smoothies    = "smoothies"
	Traditional  = "traditional"
	SoftDrinks   = "soft-drinks"
)

var canonical = map[string]bool{
	HotDrinks:   true,
	ColdDrinks:  true,
	Juices:      true,
	Smoothies:   true,
	Traditional: true,
	SoftDrinks:  true,
}

// legacyToCanonical maps category labels from the pre-migration data
// set. Unknown values pass through Migrate unchanged.
var legacyToCanonical = map[string]string{
	"hot":        HotDrinks,
	"coffee":     HotDrinks,
	"tea":        HotDrinks,
	"matcha":     HotDrinks,
	"cold":       ColdDrinks,
	"iced":       ColdDrinks,
	"juice":      Juices,
	"fresh":      Juices,
	"smoothie":   Smoothies,
	"milkshake":  Smoothies,
	"atay":       Traditional,
	"moroccan":   Traditional,
	"soda":       SoftDrinks,
	"soft":       SoftDrinks,
}

// Migrate maps a legacy category label to its canonical value. It is
// total: values without a mapping (including already-canonical ones)
// are returned unchanged.
func Migrate(old string) string {
	if mapped, ok := legacyToCanonical[old]; ok {
		return mapped
	}
	return old
}

// IsValid reports whether v is a canonical category value.
func IsValid(v string) bool {
	return canonical[v]
}

// All returns the canonical category values.
func All() []string {
	return []string{HotDrinks, ColdDrinks, Juices, Smoothies, Traditional, SoftDrinks}
}
