// Package rules holds the stateless card-battle rules: the type weakness table
// and the damage formula built on it.
package rules

import "tcg-backend/models"

// weaknesses maps a defender type to the single attacker type it is weak to.
var weaknesses = map[models.PokemonType]models.PokemonType{
	models.TypeNormal:   models.TypeFighting,
	models.TypeFire:     models.TypeWater,
	models.TypeWater:    models.TypeElectric,
	models.TypeElectric: models.TypeGround,
	models.TypeGrass:    models.TypeFire,
	models.TypeIce:      models.TypeFire,
	models.TypeFighting: models.TypePsychic,
	models.TypePoison:   models.TypePsychic,
	models.TypeGround:   models.TypeWater,
	models.TypeFlying:   models.TypeElectric,
	models.TypePsychic:  models.TypeDark,
	models.TypeBug:      models.TypeFire,
	models.TypeRock:     models.TypeWater,
	models.TypeGhost:    models.TypeDark,
	models.TypeDragon:   models.TypeIce,
	models.TypeDark:     models.TypeFighting,
	models.TypeSteel:    models.TypeFire,
	models.TypeFairy:    models.TypePoison,
}

// Weakness returns the attacker type that defender is weak to.
// ok is false for a type outside the table.
func Weakness(defender models.PokemonType) (weakTo models.PokemonType, ok bool) {
	weakTo, ok = weaknesses[defender]
	return weakTo, ok
}
