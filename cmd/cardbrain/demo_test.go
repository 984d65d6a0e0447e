package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/pkg/coin"
	"github.com/stclaire/cardbrain/internal/testutils/builders"
)

func demoFixture(t *testing.T, attackText string) (actions.RankedAttack, *entities.GameState, *entities.CardInstance, *entities.Card) {
	t.Helper()

	attack := builders.Attack("Flamethrower", "30", entities.EnergyFire, entities.EnergyColorless)
	attack.Text = attackText
	attacker := builders.PokemonCard("charmeleon-001", "Charmeleon", 80, entities.EnergyFire, attack)
	defenderCard := builders.PokemonCard("oddish-001", "Oddish", 50, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))

	attackerInst := builders.WithEnergy(builders.Instance(attacker, entities.PositionActive), "fire-energy", "fire-energy")
	defenderInst := builders.Instance(defenderCard, entities.PositionActive)

	state := builders.GameState(
		&entities.PlayerGameState{ActivePokemon: attackerInst},
		&entities.PlayerGameState{ActivePokemon: defenderInst},
	)

	ranked := actions.RankedAttack{
		Analysis: actions.AttackAnalysis{
			Attack:     &attacker.Attacks[0],
			Pokemon:    attackerInst,
			Card:       attacker,
			Position:   entities.PositionActive,
			BaseDamage: 30,
			CanPerform: true,
		},
	}

	return ranked, state, defenderInst, defenderCard
}

func TestResolveAttackNoCoinFlip(t *testing.T) {
	ranked, state, defender, defenderCard := demoFixture(t, "")

	var buf bytes.Buffer
	err := resolveAttack(&buf, &coin.FixedFlipper{Result: coin.Tails}, ranked, state, entities.Player1, defender, defenderCard)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Charmeleon uses Flamethrower against Oddish")
	assert.Contains(t, buf.String(), "30 damage to Oddish")
	assert.NotContains(t, buf.String(), "coin flip")
}

func TestResolveAttackHeadsBonus(t *testing.T) {
	ranked, state, defender, defenderCard := demoFixture(t,
		"Flip a coin. If heads, this attack does 20 more damage.")

	var buf bytes.Buffer
	err := resolveAttack(&buf, &coin.FixedFlipper{Result: coin.Heads}, ranked, state, entities.Player1, defender, defenderCard)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "coin flip: heads")
	assert.Contains(t, buf.String(), "50 damage to Oddish")
	assert.Contains(t, buf.String(), "Oddish is knocked out")
}

func TestResolveAttackTailsDoesNothing(t *testing.T) {
	ranked, state, defender, defenderCard := demoFixture(t,
		"Flip a coin. If tails, this attack does nothing.")

	var buf bytes.Buffer
	err := resolveAttack(&buf, &coin.FixedFlipper{Result: coin.Tails}, ranked, state, entities.Player1, defender, defenderCard)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "coin flip: tails")
	assert.Contains(t, buf.String(), "the attack does nothing")
}

func TestResolveAttackTailsKeepsBaseDamage(t *testing.T) {
	ranked, state, defender, defenderCard := demoFixture(t,
		"Flip a coin. If heads, this attack does 20 more damage.")

	var buf bytes.Buffer
	err := resolveAttack(&buf, &coin.FixedFlipper{Result: coin.Tails}, ranked, state, entities.Player1, defender, defenderCard)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "coin flip: tails")
	assert.Contains(t, buf.String(), "30 damage to Oddish")
}
