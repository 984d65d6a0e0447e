package opponent

import (
	"github.com/stclaire/cardbrain/internal/entities"
)

// PokemonScore is one opponent Pokémon's threat score. Hand Pokémon
// are scored through a synthetic full-HP instance and carry the hand
// position sentinel.
type PokemonScore struct {
	InstanceID string
	CardID     string
	Name       string
	Position   entities.Position
	Score      float64
}

// KnockoutThreat names a bench Pokémon the opponent could knock out
// next turn. Bench reach requires modeling bench-targeting attacks,
// which no evaluated card pool has needed yet, so analysis always
// reports an empty list.
type KnockoutThreat struct {
	InstanceID string
	Position   entities.Position
	Damage     int
}

// Threat is the aggregate picture of what the opponent can do to us
// next turn.
type Threat struct {
	// SureAttackDamage is the most damage the opponent is guaranteed
	// to deal to our active Pokémon with energy already attached
	SureAttackDamage int

	// RiskAttackDamage is the most damage the opponent could deal
	// given one energy attachment from hand and favorable coin flips
	RiskAttackDamage int

	// CanKnockoutActive is true when RiskAttackDamage reaches our
	// active Pokémon's remaining HP
	CanKnockoutActive bool

	// CanKnockoutBench is always empty in the current analysis scope
	CanKnockoutBench []KnockoutThreat

	// Scores holds every opponent Pokémon scored, highest first
	Scores []PokemonScore

	// MostThreatening is the highest-scored opponent Pokémon, nil when
	// the opponent has none in play or hand
	MostThreatening *PokemonScore
}

// AnalyzeThreatInput holds the parameters for AnalyzeThreat
type AnalyzeThreatInput struct {
	State *entities.GameState
	// Player is the acting player; the analysis covers their opponent
	Player entities.PlayerID
}

// AnalyzeThreatOutput holds the result of AnalyzeThreat
type AnalyzeThreatOutput struct {
	Threat *Threat
}

// AttackDamageInput holds the parameters for the damage queries
type AttackDamageInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// AttackDamageOutput holds a single damage figure
type AttackDamageOutput struct {
	Damage int
}

// ScorePokemonInput holds the parameters for ScorePokemon
type ScorePokemonInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// ScorePokemonOutput holds the scored opponent Pokémon, highest first
type ScorePokemonOutput struct {
	Scores []PokemonScore
}
