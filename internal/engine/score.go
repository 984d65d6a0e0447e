package engine

import (
	"github.com/stclaire/cardbrain/internal/entities"
)

// Side-effect point values used by scoring and prioritization
const (
	PoisonEffectPoints = 20
	OtherEffectPoints  = 10
)

// SideEffectPoints values an attack's rider effects: poison is worth
// the most, any other status condition a flat amount, nothing
// otherwise.
func SideEffectPoints(attack *entities.Attack) int {
	hasOther := false
	for _, e := range attack.Effects {
		if e.Type != entities.AttackEffectStatus {
			continue
		}
		if e.Status == entities.StatusPoisoned {
			return PoisonEffectPoints
		}
		hasOther = true
	}
	if hasOther {
		return OtherEffectPoints
	}
	return 0
}

// AttackScore is an attack's efficiency: average damage per energy
// unit plus side-effect points.
func AttackScore(attack *entities.Attack) float64 {
	base := ParseBaseDamage(attack.Damage)
	avg := AverageDamage(base, ParseCoinFlip(attack.Text))

	cost := len(attack.EnergyCost)
	if cost < 1 {
		cost = 1
	}

	return avg/float64(cost) + float64(SideEffectPoints(attack))
}

// ScorePokemon assigns the scalar threat/value score every service
// uses as its common currency: max HP plus the sum of attack scores.
// Pure function of card and instance data; no game-state dependency.
func ScorePokemon(card *entities.Card, instance *entities.CardInstance) float64 {
	score := float64(instance.MaxHP)
	for i := range card.Attacks {
		score += AttackScore(&card.Attacks[i])
	}
	return score
}
