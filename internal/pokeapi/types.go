package pokeapi

import (
	"encoding/json"
	"fmt"
	"io"
)

// AbilityRecord is one ability entry of a species, in slot order.
type AbilityRecord struct {
	Name     string
	IsHidden bool
	Slot     int
}

// SubjectInfo is the display model built from a single species lookup.
type SubjectInfo struct {
	Name      string
	WeightKg  float64
	Abilities []AbilityRecord
}

// pokemonResponse mirrors the subset of /pokemon/{name} that dexview reads.
// Pointer fields let decode distinguish a missing field from a zero value.
type pokemonResponse struct {
	Name      *string            `json:"name"`
	Weight    *int               `json:"weight"`
	Abilities *[]abilityResponse `json:"abilities"`
}

type abilityResponse struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// The catalog reports weight in tenths of a kilogram.
const weightUnitsPerKilogram = 10

// KilogramsFromRaw converts a raw catalog weight to kilograms without rounding.
func KilogramsFromRaw(raw int) float64 {
	return float64(raw) / weightUnitsPerKilogram
}

func decodeSubjectInfo(body io.Reader) (SubjectInfo, error) {
	var payload pokemonResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return SubjectInfo{}, fmt.Errorf("decode response: %w", err)
	}
	return payload.toSubjectInfo()
}

func (p pokemonResponse) toSubjectInfo() (SubjectInfo, error) {
	switch {
	case p.Name == nil:
		return SubjectInfo{}, fmt.Errorf("response missing %q", "name")
	case p.Weight == nil:
		return SubjectInfo{}, fmt.Errorf("response missing %q", "weight")
	case p.Abilities == nil:
		return SubjectInfo{}, fmt.Errorf("response missing %q", "abilities")
	}

	abilities := make([]AbilityRecord, 0, len(*p.Abilities))
	for _, entry := range *p.Abilities {
		abilities = append(abilities, AbilityRecord{
			Name:     entry.Ability.Name,
			IsHidden: entry.IsHidden,
			Slot:     entry.Slot,
		})
	}
	return SubjectInfo{
		Name:      *p.Name,
		WeightKg:  KilogramsFromRaw(*p.Weight),
		Abilities: abilities,
	}, nil
}
