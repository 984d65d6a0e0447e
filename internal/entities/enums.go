package entities

// CardType distinguishes the three card classes
type CardType string

// Card types
const (
	CardTypePokemon CardType = "POKEMON"
	CardTypeTrainer CardType = "TRAINER"
	CardTypeEnergy  CardType = "ENERGY"
)

// EnergyType is an energy color. Colorless requirements accept any
// energy type.
type EnergyType string

// Energy types
const (
	EnergyColorless EnergyType = "COLORLESS"
	EnergyFire      EnergyType = "FIRE"
	EnergyWater     EnergyType = "WATER"
	EnergyGrass     EnergyType = "GRASS"
	EnergyLightning EnergyType = "LIGHTNING"
	EnergyPsychic   EnergyType = "PSYCHIC"
	EnergyFighting  EnergyType = "FIGHTING"
)

// TrainerType distinguishes trainer card subtypes
type TrainerType string

// Trainer types
const (
	TrainerItem      TrainerType = "ITEM"
	TrainerSupporter TrainerType = "SUPPORTER"
)

// TrainerEffectType identifies what a trainer effect does
type TrainerEffectType string

// Trainer effect types. The second group is cosmetic/side effects that
// never drive evaluation on their own.
const (
	EffectHeal           TrainerEffectType = "HEAL"
	EffectIncreaseDamage TrainerEffectType = "INCREASE_DAMAGE"
	EffectReduceDamage   TrainerEffectType = "REDUCE_DAMAGE"
	EffectDrawCards      TrainerEffectType = "DRAW_CARDS"
	EffectRemoveEnergy   TrainerEffectType = "REMOVE_ENERGY"
	EffectOpponentDraws  TrainerEffectType = "OPPONENT_DRAWS"
	EffectSwitchPokemon  TrainerEffectType = "SWITCH_POKEMON"
	EffectPreventDamage  TrainerEffectType = "PREVENT_DAMAGE"

	EffectDiscardHand      TrainerEffectType = "DISCARD_HAND"
	EffectShuffleDeck      TrainerEffectType = "SHUFFLE_DECK"
	EffectDiscardEnergy    TrainerEffectType = "DISCARD_ENERGY"
	EffectAttachToPokemon  TrainerEffectType = "ATTACH_TO_POKEMON"
	EffectDevolvePokemon   TrainerEffectType = "DEVOLVE_POKEMON"
	EffectOpponentDiscards TrainerEffectType = "OPPONENT_DISCARDS"
)

// EffectTarget scopes a trainer or attack effect
type EffectTarget string

// Effect targets
const (
	TargetActiveYours    EffectTarget = "ACTIVE_YOURS"
	TargetActiveOpponent EffectTarget = "ACTIVE_OPPONENT"
	TargetBenchYours     EffectTarget = "BENCH_YOURS"
	TargetBenchOpponent  EffectTarget = "BENCH_OPPONENT"
	TargetAnyYours       EffectTarget = "ANY_YOURS"
	TargetSelf           EffectTarget = "PLAYER_SELF"
	TargetOpponent       EffectTarget = "PLAYER_OPPONENT"
)

// StatusCondition is a special condition on a Pokémon in play
type StatusCondition string

// Status conditions
const (
	StatusPoisoned  StatusCondition = "POISONED"
	StatusBurned    StatusCondition = "BURNED"
	StatusAsleep    StatusCondition = "ASLEEP"
	StatusParalyzed StatusCondition = "PARALYZED"
	StatusConfused  StatusCondition = "CONFUSED"
)

// Position is a board slot for a Pokémon in play. PositionHand is a
// sentinel for hand Pokémon scored via a synthetic instance; it never
// appears on the board.
type Position string

// Positions
const (
	PositionActive Position = "ACTIVE"
	PositionBench0 Position = "BENCH_0"
	PositionBench1 Position = "BENCH_1"
	PositionBench2 Position = "BENCH_2"
	PositionBench3 Position = "BENCH_3"
	PositionBench4 Position = "BENCH_4"
	PositionHand   Position = "HAND"
)

// MaxBenchSize is the number of bench slots per player
const MaxBenchSize = 5

// BenchPosition returns the bench position for slot i (0..4)
func BenchPosition(i int) Position {
	switch i {
	case 0:
		return PositionBench0
	case 1:
		return PositionBench1
	case 2:
		return PositionBench2
	case 3:
		return PositionBench3
	case 4:
		return PositionBench4
	default:
		return PositionHand
	}
}

// IsBench reports whether p is a bench slot
func (p Position) IsBench() bool {
	switch p {
	case PositionBench0, PositionBench1, PositionBench2, PositionBench3, PositionBench4:
		return true
	}
	return false
}

// SortIndex orders positions for tie-breaking: active first, then
// bench slots in order, hand last.
func (p Position) SortIndex() int {
	switch p {
	case PositionActive:
		return 0
	case PositionBench0:
		return 1
	case PositionBench1:
		return 2
	case PositionBench2:
		return 3
	case PositionBench3:
		return 4
	case PositionBench4:
		return 5
	default:
		return 6
	}
}

// PlayerID identifies one of the two players in a match
type PlayerID string

// Player identifiers
const (
	Player1 PlayerID = "player1"
	Player2 PlayerID = "player2"
)

// Opponent returns the other player
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Phase is the coarse turn phase of a match
type Phase string

// Phases
const (
	PhaseSetup        Phase = "SETUP"
	PhaseDraw         Phase = "DRAW"
	PhaseMain         Phase = "MAIN"
	PhaseAttack       Phase = "ATTACK"
	PhaseBetweenTurns Phase = "BETWEEN_TURNS"
	PhaseFinished     Phase = "FINISHED"
)
