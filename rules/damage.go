package rules

import (
	"math"

	"tcg-backend/models"
)

const (
	NormalMultiplier         = 1.0
	SuperEffectiveMultiplier = 2.0

	// MinDamage is the floor applied to every hit.
	MinDamage = 1
)

// Multiplier is 2.0 when attacker is the defender's weakness, 1.0 otherwise.
func Multiplier(attacker, defender models.PokemonType) float64 {
	if weakTo, ok := Weakness(defender); ok && weakTo == attacker {
		return SuperEffectiveMultiplier
	}
	return NormalMultiplier
}

// Damage returns floor(attack * Multiplier), never less than MinDamage.
func Damage(attack int, attacker, defender models.PokemonType) int {
	dmg := int(math.Floor(float64(attack) * Multiplier(attacker, defender)))
	return max(MinDamage, dmg)
}
