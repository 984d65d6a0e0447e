package trainer

import (
	"github.com/stclaire/cardbrain/internal/entities"
)

// Category orders trainer cards by the kind of advantage they buy.
// Lower is considered first.
type Category int

// Trainer categories
const (
	CategoryHealing Category = iota + 1
	CategoryDamageBuff
	CategoryDamageReduction
	CategoryCardDraw
	CategoryEnergyRemoval
	CategoryOpponentHand
	CategorySwitching
	CategorySpecialEffects
)

// String implements fmt.Stringer
func (c Category) String() string {
	switch c {
	case CategoryHealing:
		return "healing"
	case CategoryDamageBuff:
		return "damage_buff"
	case CategoryDamageReduction:
		return "damage_reduction"
	case CategoryCardDraw:
		return "card_draw"
	case CategoryEnergyRemoval:
		return "energy_removal"
	case CategoryOpponentHand:
		return "opponent_hand"
	case CategorySwitching:
		return "switching"
	case CategorySpecialEffects:
		return "special_effects"
	default:
		return "unknown"
	}
}

// Impact flags what playing the card would change
type Impact struct {
	ChangesOpponentSureDamage   bool
	EnablesKnockout             bool
	PreventsOurKnockout         bool
	ImprovesHandSize            bool
	ImprovesOpponentHandSize    bool
	ReducesRoundsToKnockout     bool
	IncreasesRoundsWeCanSurvive bool
}

// TrainerCardOption is the evaluation of one trainer card in hand
type TrainerCardOption struct {
	CardID   string
	Card     *entities.Card
	Category Category

	ShouldPlay bool
	Reason     string

	TargetPokemon *entities.CardInstance
	TargetCard    *entities.Card

	// WouldCauseDeckEmpty is true when a draw effect would overdraw
	// the deck; such a card is never marked ShouldPlay
	WouldCauseDeckEmpty bool

	Impact Impact
}

// SwitchRetreatOption is the evaluation of switching the active
// Pokémon out
type SwitchRetreatOption struct {
	ShouldSwitch bool
	Reason       string

	BestBench     *entities.CardInstance
	BestBenchCard *entities.Card

	// RetreatCost is 0 when a switch trainer is in hand or the card
	// retreats free, otherwise the printed cost
	RetreatCost      int
	CanAffordRetreat bool
	FreeRetreat      bool
}

// EvaluateTrainerCardsInput holds the parameters for
// EvaluateTrainerCards
type EvaluateTrainerCardsInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// EvaluateTrainerCardsOutput holds the evaluated options in play
// order: deck-emptying cards last, then by category, playable first
type EvaluateTrainerCardsOutput struct {
	Options []TrainerCardOption
}

// EvaluateSwitchRetreatInput holds the parameters for
// EvaluateSwitchRetreat
type EvaluateSwitchRetreatInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// EvaluateSwitchRetreatOutput holds the switch evaluation
type EvaluateSwitchRetreatOutput struct {
	Option *SwitchRetreatOption
}
