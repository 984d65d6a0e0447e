package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
)

func TestSideEffectPoints(t *testing.T) {
	poison := &entities.Attack{
		Effects: []entities.AttackEffect{{
			Type:   entities.AttackEffectStatus,
			Status: entities.StatusPoisoned,
		}},
	}
	sleep := &entities.Attack{
		Effects: []entities.AttackEffect{{
			Type:   entities.AttackEffectStatus,
			Status: entities.StatusAsleep,
		}},
	}
	plain := &entities.Attack{}
	nonStatus := &entities.Attack{
		Effects: []entities.AttackEffect{{Type: entities.AttackEffectDiscardEnergy}},
	}

	assert.Equal(t, 20, engine.SideEffectPoints(poison))
	assert.Equal(t, 10, engine.SideEffectPoints(sleep))
	assert.Equal(t, 0, engine.SideEffectPoints(plain))
	assert.Equal(t, 0, engine.SideEffectPoints(nonStatus))
}

func TestAttackScore(t *testing.T) {
	t.Run("damage per energy", func(t *testing.T) {
		attack := &entities.Attack{
			Damage:     "60",
			EnergyCost: []entities.EnergyType{entities.EnergyFire, entities.EnergyFire, entities.EnergyColorless},
		}
		assert.InDelta(t, 20.0, engine.AttackScore(attack), 0.001)
	})

	t.Run("zero cost counts as one", func(t *testing.T) {
		attack := &entities.Attack{Damage: "10"}
		assert.InDelta(t, 10.0, engine.AttackScore(attack), 0.001)
	})

	t.Run("coin flip averaged and poison added", func(t *testing.T) {
		attack := &entities.Attack{
			Damage:     "30",
			EnergyCost: []entities.EnergyType{entities.EnergyGrass},
			Text:       "Flip a coin. If tails, this attack does nothing.",
			Effects: []entities.AttackEffect{{
				Type:   entities.AttackEffectStatus,
				Status: entities.StatusPoisoned,
			}},
		}
		// (30/2)/1 + 20
		assert.InDelta(t, 35.0, engine.AttackScore(attack), 0.001)
	})
}

func TestScorePokemon(t *testing.T) {
	card := &entities.Card{
		CardID:   "machop",
		CardType: entities.CardTypePokemon,
		HP:       70,
		Attacks: []entities.Attack{
			{Damage: "20", EnergyCost: []entities.EnergyType{entities.EnergyFighting}},
			{Damage: "50", EnergyCost: []entities.EnergyType{entities.EnergyFighting, entities.EnergyFighting}},
		},
	}
	inst := &entities.CardInstance{CardID: "machop", CurrentHP: 40, MaxHP: 70}

	// 70 + 20/1 + 50/2
	assert.InDelta(t, 115.0, engine.ScorePokemon(card, inst), 0.001)
}

func TestScorePokemonNoAttacks(t *testing.T) {
	card := &entities.Card{CardID: "chansey", CardType: entities.CardTypePokemon, HP: 120}
	inst := &entities.CardInstance{CardID: "chansey", CurrentHP: 120, MaxHP: 120}

	assert.InDelta(t, 120.0, engine.ScorePokemon(card, inst), 0.001)
}
