package actions

import (
	"github.com/stclaire/cardbrain/internal/entities"
)

// AttackAnalysis is one attack on one of our Pokémon, annotated with
// everything prioritization needs.
type AttackAnalysis struct {
	Attack   *entities.Attack
	Pokemon  *entities.CardInstance
	Card     *entities.Card
	Position entities.Position

	EnergyCost int
	BaseDamage int

	HasCoinFlip       bool
	HasPoisonEffect   bool
	HasOnlySideEffect bool
	SideEffectPoints  int

	// CanPerform is true when the attack's cost is payable with the
	// energy already attached
	CanPerform bool
}

// KnockoutAnalysis is one attack that knocks out one opponent Pokémon
// this turn.
type KnockoutAnalysis struct {
	Attack           *entities.Attack
	AttackerPosition entities.Position
	TargetInstanceID string
	TargetPosition   entities.Position

	Damage          int
	TargetCurrentHP int

	// HasSideEffectToOpponent marks riders that also hit the
	// opponent's side
	HasSideEffectToOpponent bool
	// HasSideEffectToPlayer marks riders that cost us something,
	// recoil mainly
	HasSideEffectToPlayer bool
}

// RankedAttack is an available attack ranked by expected value
type RankedAttack struct {
	Analysis AttackAnalysis

	// IsKnockout is true when the attack knocks out the opponent's
	// active Pokémon
	IsKnockout bool

	// ExpectedValue is the ranking score: a large constant plus base
	// damage for knockouts, otherwise base damage plus the expected
	// worth of a fresh status effect
	ExpectedValue float64
}

// FindAvailableAttacksInput holds the parameters for
// FindAvailableAttacks
type FindAvailableAttacksInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// FindAvailableAttacksOutput holds the sorted attack analyses. Empty
// when no attack is performable at all.
type FindAvailableAttacksOutput struct {
	Attacks []AttackAnalysis
}

// IdentifyKnockoutAttacksInput holds the parameters for
// IdentifyKnockoutAttacks
type IdentifyKnockoutAttacksInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// IdentifyKnockoutAttacksOutput holds the sorted knockout analyses
type IdentifyKnockoutAttacksOutput struct {
	Knockouts []KnockoutAnalysis
}

// FindMaximumDamageAttacksInput holds the parameters for
// FindMaximumDamageAttacks
type FindMaximumDamageAttacksInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// FindMaximumDamageAttacksOutput holds the ranked attacks, knockouts
// first, then by expected value
type FindMaximumDamageAttacksOutput struct {
	Ranked []RankedAttack
}
