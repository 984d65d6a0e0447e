// Package engine implements the combat resolution core: attack energy
// validation, the damage calculation pipeline, coin-flip text parsing,
// and Pokémon scoring. Everything here is a pure function of its
// inputs so analyzers can call it speculatively as often as they like.
package engine

import (
	"fmt"

	"github.com/stclaire/cardbrain/internal/entities"
)

// EnergySource is the projection of an energy card that validation
// needs: its type, or its provision when it counts as multiple units.
type EnergySource struct {
	EnergyType entities.EnergyType
	Provision  *entities.EnergyProvision
}

// SourceFromCard projects an energy card into an EnergySource
func SourceFromCard(card *entities.Card) EnergySource {
	return EnergySource{
		EnergyType: card.EnergyType,
		Provision:  card.EnergyProvision,
	}
}

// Units expands the source into the individual energy units it
// contributes, cycling a provision's type list when its amount exceeds
// the list length.
func (s EnergySource) Units() []entities.EnergyType {
	if s.Provision != nil && s.Provision.Amount > 0 && len(s.Provision.EnergyTypes) > 0 {
		units := make([]entities.EnergyType, 0, s.Provision.Amount)
		for i := 0; i < s.Provision.Amount; i++ {
			units = append(units, s.Provision.EnergyTypes[i%len(s.Provision.EnergyTypes)])
		}
		return units
	}
	if s.EnergyType != "" {
		return []entities.EnergyType{s.EnergyType}
	}
	return nil
}

// Validation is the typed result of an energy requirement check. A
// failed check is an expected outcome consumed by callers to skip an
// attack, never an error.
type Validation struct {
	Valid  bool
	Reason string
}

// ValidateEnergyRequirements determines whether the available energy
// satisfies the attack's cost. Specific-type requirements are
// satisfied from matching-type units first; whatever units remain, of
// any type, count toward the COLORLESS requirement. Integer unit
// counting only, no partial credit.
func ValidateEnergyRequirements(attack *entities.Attack, available []EnergySource) Validation {
	// Expand every card into its contributed units
	unitsByType := make(map[entities.EnergyType]int)
	totalUnits := 0
	for _, src := range available {
		for _, u := range src.Units() {
			unitsByType[u]++
			totalUnits++
		}
	}

	// Count required units per specific type; colorless counted apart
	requiredByType := make(map[entities.EnergyType]int)
	colorlessRequired := 0
	for _, req := range attack.EnergyCost {
		if req == entities.EnergyColorless {
			colorlessRequired++
			continue
		}
		requiredByType[req]++
	}

	used := 0
	for et, need := range requiredByType {
		have := unitsByType[et]
		if have < need {
			return Validation{
				Valid:  false,
				Reason: fmt.Sprintf("needs %d %s energy, has %d", need, et, have),
			}
		}
		used += need
	}

	leftover := totalUnits - used
	if leftover < colorlessRequired {
		return Validation{
			Valid:  false,
			Reason: fmt.Sprintf("needs %d more energy for colorless cost", colorlessRequired-leftover),
		}
	}

	return Validation{Valid: true}
}

// SourcesFromAttached resolves an attached-energy card id list into
// energy sources, skipping ids that do not resolve to energy cards.
// The lookup map is the caller's warmed card set.
func SourcesFromAttached(attached []string, lookup func(cardID string) *entities.Card) []EnergySource {
	sources := make([]EnergySource, 0, len(attached))
	for _, id := range attached {
		card := lookup(id)
		if card == nil || !card.IsEnergy() {
			continue
		}
		sources = append(sources, SourceFromCard(card))
	}
	return sources
}
