package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hot", HotDrinks},
		{"matcha", HotDrinks},
		{"juice", Juices},
		{"atay", Traditional},
		{"soda", SoftDrinks},
		// Already canonical: unchanged
		{HotDrinks, HotDrinks},
		{Smoothies, Smoothies},
		// Unknown: passes through unchanged
		{"bubble-tea", "bubble-tea"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Migrate(tt.in), "Migrate(%q)", tt.in)
	}
}

func TestMigrate_AlwaysLandsOnCanonicalForKnownLegacy(t *testing.T) {
	for legacy := range legacyToCanonical {
		assert.True(t, IsValid(Migrate(legacy)), "legacy %q must map to a canonical value", legacy)
	}
}

func TestIsValid(t *testing.T) {
	for _, v := range All() {
		assert.True(t, IsValid(v))
	}
	assert.False(t, IsValid("hot"))
	assert.False(t, IsValid(""))
}
