// Package builders assembles card and game state fixtures for tests
package builders

import (
	"fmt"

	"github.com/stclaire/cardbrain/internal/entities"
)

// Attack builds an attack with the given printed damage and cost
func Attack(name, damage string, cost ...entities.EnergyType) entities.Attack {
	return entities.Attack{
		Name:       name,
		EnergyCost: cost,
		Damage:     damage,
	}
}

// PokemonCard builds a Pokémon card definition
func PokemonCard(id, name string, hp int, pokemonType entities.EnergyType, attacks ...entities.Attack) *entities.Card {
	return &entities.Card{
		CardID:      id,
		Name:        name,
		CardType:    entities.CardTypePokemon,
		HP:          hp,
		PokemonType: pokemonType,
		Attacks:     attacks,
	}
}

// EnergyCard builds a basic energy card of the given type
func EnergyCard(id string, energyType entities.EnergyType) *entities.Card {
	return &entities.Card{
		CardID:     id,
		Name:       fmt.Sprintf("%s Energy", energyType),
		CardType:   entities.CardTypeEnergy,
		EnergyType: energyType,
	}
}

// DoubleColorlessCard builds the 2×COLORLESS provision energy card
func DoubleColorlessCard(id string) *entities.Card {
	return &entities.Card{
		CardID:   id,
		Name:     "Double Colorless Energy",
		CardType: entities.CardTypeEnergy,
		EnergyProvision: &entities.EnergyProvision{
			EnergyTypes: []entities.EnergyType{entities.EnergyColorless},
			Amount:      2,
		},
	}
}

// TrainerCard builds a trainer card with the given effects
func TrainerCard(id, name string, effects ...entities.TrainerEffect) *entities.Card {
	return &entities.Card{
		CardID:         id,
		Name:           name,
		CardType:       entities.CardTypeTrainer,
		TrainerType:    entities.TrainerItem,
		TrainerEffects: effects,
	}
}

// Instance builds a full-HP instance of a Pokémon card at a position
func Instance(card *entities.Card, pos entities.Position) *entities.CardInstance {
	return &entities.CardInstance{
		InstanceID: "inst_" + card.CardID + "_" + string(pos),
		CardID:     card.CardID,
		Position:   pos,
		CurrentHP:  card.HP,
		MaxHP:      card.HP,
	}
}

// DamagedInstance builds an instance carrying the given damage
func DamagedInstance(card *entities.Card, pos entities.Position, damage int) *entities.CardInstance {
	inst := Instance(card, pos)
	inst.CurrentHP = card.HP - damage
	if inst.CurrentHP < 0 {
		inst.CurrentHP = 0
	}
	return inst
}

// WithEnergy attaches energy card ids to an instance and returns it
func WithEnergy(inst *entities.CardInstance, energyCardIDs ...string) *entities.CardInstance {
	inst.AttachedEnergy = append(inst.AttachedEnergy, energyCardIDs...)
	return inst
}

// GameState builds a two-player state with player1 to act
func GameState(p1, p2 *entities.PlayerGameState) *entities.GameState {
	return &entities.GameState{
		Player1State:  p1,
		Player2State:  p2,
		TurnNumber:    1,
		Phase:         entities.PhaseMain,
		CurrentPlayer: entities.Player1,
	}
}

// CardSet indexes cards by id for warm maps and lookups
func CardSet(cards ...*entities.Card) map[string]*entities.Card {
	m := make(map[string]*entities.Card, len(cards))
	for _, c := range cards {
		m[c.CardID] = c
	}
	return m
}
