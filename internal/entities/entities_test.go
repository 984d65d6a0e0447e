package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stclaire/cardbrain/internal/entities"
)

func TestProvidedUnits(t *testing.T) {
	tests := []struct {
		name string
		card entities.Card
		want []entities.EnergyType
	}{
		{
			name: "plain energy contributes one unit",
			card: entities.Card{CardType: entities.CardTypeEnergy, EnergyType: entities.EnergyFire},
			want: []entities.EnergyType{entities.EnergyFire},
		},
		{
			name: "double colorless contributes two units",
			card: entities.Card{
				CardType: entities.CardTypeEnergy,
				EnergyProvision: &entities.EnergyProvision{
					EnergyTypes: []entities.EnergyType{entities.EnergyColorless},
					Amount:      2,
				},
			},
			want: []entities.EnergyType{entities.EnergyColorless, entities.EnergyColorless},
		},
		{
			name: "multi-type provision cycles through listed types",
			card: entities.Card{
				CardType: entities.CardTypeEnergy,
				EnergyProvision: &entities.EnergyProvision{
					EnergyTypes: []entities.EnergyType{entities.EnergyWater, entities.EnergyFire},
					Amount:      3,
				},
			},
			want: []entities.EnergyType{entities.EnergyWater, entities.EnergyFire, entities.EnergyWater},
		},
		{
			name: "non-energy card contributes nothing",
			card: entities.Card{CardType: entities.CardTypePokemon, HP: 60},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.ProvidedUnits())
		})
	}
}

func TestProvidedTypesDeduplicates(t *testing.T) {
	card := entities.Card{
		CardType: entities.CardTypeEnergy,
		EnergyProvision: &entities.EnergyProvision{
			EnergyTypes: []entities.EnergyType{entities.EnergyColorless, entities.EnergyColorless},
			Amount:      2,
		},
	}
	assert.Equal(t, []entities.EnergyType{entities.EnergyColorless}, card.ProvidedTypes())
}

func TestWithAdditionalEnergyDoesNotMutate(t *testing.T) {
	inst := &entities.CardInstance{
		InstanceID:     "inst_1",
		AttachedEnergy: []string{"water-energy"},
	}

	synthetic := inst.WithAdditionalEnergy("fire-energy")

	assert.Equal(t, []string{"water-energy", "fire-energy"}, synthetic)
	assert.Equal(t, []string{"water-energy"}, inst.AttachedEnergy, "real instance must stay untouched")
}

func TestWithDamagePreventionCopyOnWrite(t *testing.T) {
	gs := &entities.GameState{
		Player1State: &entities.PlayerGameState{},
		Player2State: &entities.PlayerGameState{},
	}

	next := gs.WithDamagePrevention(entities.Player2, "inst_9", entities.PreventionAmount{All: true})

	assert.Empty(t, gs.DamagePreventions, "original state must stay untouched")
	require.Len(t, next.DamagePreventions, 1)

	p := next.PreventionFor(entities.Player2, "inst_9")
	require.NotNil(t, p)
	assert.True(t, p.Amount.All)
	assert.Nil(t, next.PreventionFor(entities.Player1, "inst_9"))
}

func TestPositionSortIndex(t *testing.T) {
	assert.Less(t, entities.PositionActive.SortIndex(), entities.PositionBench0.SortIndex())
	assert.Less(t, entities.PositionBench0.SortIndex(), entities.PositionBench4.SortIndex())
	assert.Less(t, entities.PositionBench4.SortIndex(), entities.PositionHand.SortIndex())
}

func TestPlayerAccessors(t *testing.T) {
	p1 := &entities.PlayerGameState{Hand: []string{"a"}}
	p2 := &entities.PlayerGameState{Hand: []string{"b"}}
	gs := &entities.GameState{Player1State: p1, Player2State: p2}

	assert.Same(t, p1, gs.Player(entities.Player1))
	assert.Same(t, p2, gs.OpponentOf(entities.Player1))
	assert.Equal(t, entities.Player1, entities.Player2.Opponent())
}

func TestPokemonInPlaySkipsNilBenchSlots(t *testing.T) {
	active := &entities.CardInstance{InstanceID: "a", Position: entities.PositionActive}
	benched := &entities.CardInstance{InstanceID: "b", Position: entities.PositionBench1}
	ps := &entities.PlayerGameState{
		ActivePokemon: active,
		Bench:         []*entities.CardInstance{nil, benched},
	}

	inPlay := ps.PokemonInPlay()
	require.Len(t, inPlay, 2)
	assert.Same(t, active, inPlay[0])
	assert.Same(t, benched, ps.PokemonAt(entities.PositionBench1))
	assert.Nil(t, ps.PokemonAt(entities.PositionBench0))
}
