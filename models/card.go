// models/card.go
package models

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PokemonType is the elemental type of a card.
type PokemonType string

const (
	TypeNormal   PokemonType = "Normal"
	TypeFire     PokemonType = "Fire"
	TypeWater    PokemonType = "Water"
	TypeElectric PokemonType = "Electric"
	TypeGrass    PokemonType = "Grass"
	TypeIce      PokemonType = "Ice"
	TypeFighting PokemonType = "Fighting"
	TypePoison   PokemonType = "Poison"
	TypeGround   PokemonType = "Ground"
	TypeFlying   PokemonType = "Flying"
	TypePsychic  PokemonType = "Psychic"
	TypeBug      PokemonType = "Bug"
	TypeRock     PokemonType = "Rock"
	TypeGhost    PokemonType = "Ghost"
	TypeDragon   PokemonType = "Dragon"
	TypeDark     PokemonType = "Dark"
	TypeSteel    PokemonType = "Steel"
	TypeFairy    PokemonType = "Fairy"
)

var allTypes = []PokemonType{
	TypeNormal, TypeFire, TypeWater, TypeElectric, TypeGrass, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// AllTypes returns the enumeration in catalog order.
func AllTypes() []PokemonType {
	out := make([]PokemonType, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t PokemonType) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParsePokemonType accepts any casing ("fire", "FIRE", " Fire ").
func ParsePokemonType(raw string) (PokemonType, error) {
	t := PokemonType(cases.Title(language.English).String(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown pokemon type %q", raw)
	}
	return t, nil
}

// Card is a read-only catalog entry.
type Card struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	Name          string      `json:"name" gorm:"not null"`
	HP            int         `json:"hp" gorm:"not null"`
	Attack        int         `json:"attack" gorm:"not null"`
	Type          PokemonType `json:"type" gorm:"type:varchar(16);not null"`
	PokedexNumber int         `json:"pokedexNumber" gorm:"uniqueIndex;not null"`
	ImgURL        string      `json:"imgUrl"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
