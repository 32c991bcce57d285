package house

import (
	"creational/domain"
	"strings"
)

// Recipe applies a fixed sequence of steps to a builder and returns the result.
type Recipe func(b *Builder) House

// SimpleHouse builds a wooden house with two doors and four windows.
func SimpleHouse(b *Builder) House {
	return b.SetWalls("Wooden walls").
		SetDoors("2").
		SetWindows("4").
		SetRoof("Tile roof").
		Build()
}

// LuxuryHouse builds a brick house with four doors and ten windows.
func LuxuryHouse(b *Builder) House {
	return b.SetWalls("Brick walls").
		SetDoors("4").
		SetWindows("10").
		SetRoof("Glass roof").
		Build()
}

// RecipeNames lists the named recipes in display order.
func RecipeNames() []string {
	return []string{"simple", "luxury"}
}

// RecipeByName resolves "simple" or "luxury", case-insensitively.
func RecipeByName(name string) (Recipe, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple":
		return SimpleHouse, nil
	case "luxury":
		return LuxuryHouse, nil
	default:
		return nil, domain.NewUnknownKindError("recipe", name)
	}
}
