package trainer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	actionsmock "github.com/stclaire/cardbrain/internal/analyzers/actions/mock"
	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	opponentmock "github.com/stclaire/cardbrain/internal/analyzers/opponent/mock"
	"github.com/stclaire/cardbrain/internal/analyzers/trainer"
	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/testutils/builders"
)

type TrainerOrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockOpponent *opponentmock.MockService
	mockActions  *actionsmock.MockService
	ctx          context.Context
}

func (s *TrainerOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOpponent = opponentmock.NewMockService(s.ctrl)
	s.mockActions = actionsmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
}

func (s *TrainerOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TrainerOrchestratorTestSuite) newService(cardSet map[string]*entities.Card) trainer.Service {
	svc, err := trainer.NewOrchestrator(&trainer.Config{
		CardSource:       cards.Map(cardSet),
		OpponentAnalyzer: s.mockOpponent,
		ActionsAnalyzer:  s.mockActions,
	})
	s.Require().NoError(err)
	return svc
}

func (s *TrainerOrchestratorTestSuite) expectThreat(t *opponent.Threat) {
	s.mockOpponent.EXPECT().
		AnalyzeThreat(gomock.Any(), gomock.Any()).
		Return(&opponent.AnalyzeThreatOutput{Threat: t}, nil)
}

func noThreat() *opponent.Threat {
	return &opponent.Threat{CanKnockoutBench: []opponent.KnockoutThreat{}}
}

func (s *TrainerOrchestratorTestSuite) TestCategorize() {
	heal := builders.TrainerCard("potion", "Potion",
		entities.TrainerEffect{EffectType: entities.EffectHeal, Value: 20})
	s.Equal(trainer.CategoryHealing, trainer.Categorize(heal))

	// Lowest category wins when several effects are live
	mixed := builders.TrainerCard("mixed", "Mixed",
		entities.TrainerEffect{EffectType: entities.EffectDrawCards, Value: 2},
		entities.TrainerEffect{EffectType: entities.EffectHeal, Value: 20})
	s.Equal(trainer.CategoryHealing, trainer.Categorize(mixed))

	ignoredOnly := builders.TrainerCard("shuffle", "Shuffle",
		entities.TrainerEffect{EffectType: entities.EffectShuffleDeck})
	s.Panics(func() { trainer.Categorize(ignoredOnly) })
}

func (s *TrainerOrchestratorTestSuite) TestDamageBuffShortensKnockout() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Low Kick", "20", entities.EnergyFighting))
	snorlax := builders.PokemonCard("snorlax", "Snorlax", 120, entities.EnergyColorless)
	plusPower := builders.TrainerCard("pluspower", "PlusPower",
		entities.TrainerEffect{EffectType: entities.EffectIncreaseDamage, Value: 10})
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	attacker := builders.WithEnergy(builders.Instance(machop, entities.PositionActive), "fighting")
	oppActive := builders.DamagedInstance(snorlax, entities.PositionActive, 70) // 50 HP left

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: attacker,
			Hand:          []string{"pluspower"},
			Deck:          []string{"fighting"},
		},
		&entities.PlayerGameState{ActivePokemon: oppActive},
	)

	s.expectThreat(noThreat())
	s.mockActions.EXPECT().
		FindAvailableAttacks(gomock.Any(), gomock.Any()).
		Return(&actions.FindAvailableAttacksOutput{Attacks: []actions.AttackAnalysis{{
			Attack:     &machop.Attacks[0],
			Pokemon:    attacker,
			Card:       machop,
			Position:   entities.PositionActive,
			BaseDamage: 20,
			CanPerform: true,
		}}}, nil)

	svc := s.newService(builders.CardSet(machop, snorlax, plusPower, fighting))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)

	opt := out.Options[0]
	s.True(opt.ShouldPlay, "buffed first round drops the knockout from 3 rounds to 2")
	s.True(opt.Impact.ReducesRoundsToKnockout)
	s.Equal(trainer.CategoryDamageBuff, opt.Category)
}

func (s *TrainerOrchestratorTestSuite) TestDamageBuffUselessAgainstTougherTarget() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Low Kick", "20", entities.EnergyFighting))
	snorlax := builders.PokemonCard("snorlax", "Snorlax", 120, entities.EnergyColorless)
	plusPower := builders.TrainerCard("pluspower", "PlusPower",
		entities.TrainerEffect{EffectType: entities.EffectIncreaseDamage, Value: 10})
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	attacker := builders.WithEnergy(builders.Instance(machop, entities.PositionActive), "fighting")
	oppActive := builders.DamagedInstance(snorlax, entities.PositionActive, 60) // 60 HP left

	state := builders.GameState(
		&entities.PlayerGameState{ActivePokemon: attacker, Hand: []string{"pluspower"}},
		&entities.PlayerGameState{ActivePokemon: oppActive},
	)

	s.expectThreat(noThreat())
	s.mockActions.EXPECT().
		FindAvailableAttacks(gomock.Any(), gomock.Any()).
		Return(&actions.FindAvailableAttacksOutput{Attacks: []actions.AttackAnalysis{{
			Attack:     &machop.Attacks[0],
			Pokemon:    attacker,
			Card:       machop,
			Position:   entities.PositionActive,
			BaseDamage: 20,
			CanPerform: true,
		}}}, nil)

	svc := s.newService(builders.CardSet(machop, snorlax, plusPower, fighting))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.False(out.Options[0].ShouldPlay, "still three rounds either way")
}

func (s *TrainerOrchestratorTestSuite) TestDamageBuffEnablesKnockout() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Low Kick", "20", entities.EnergyFighting))
	rattata := builders.PokemonCard("rattata", "Rattata", 30, entities.EnergyColorless)
	plusPower := builders.TrainerCard("pluspower", "PlusPower",
		entities.TrainerEffect{EffectType: entities.EffectIncreaseDamage, Value: 10})
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	attacker := builders.WithEnergy(builders.Instance(machop, entities.PositionActive), "fighting")

	state := builders.GameState(
		&entities.PlayerGameState{ActivePokemon: attacker, Hand: []string{"pluspower"}},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(rattata, entities.PositionActive)},
	)

	s.expectThreat(noThreat())
	s.mockActions.EXPECT().
		FindAvailableAttacks(gomock.Any(), gomock.Any()).
		Return(&actions.FindAvailableAttacksOutput{Attacks: []actions.AttackAnalysis{{
			Attack:     &machop.Attacks[0],
			Pokemon:    attacker,
			Card:       machop,
			Position:   entities.PositionActive,
			BaseDamage: 20,
			CanPerform: true,
		}}}, nil)

	svc := s.newService(builders.CardSet(machop, rattata, plusPower, fighting))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.True(out.Options[0].ShouldPlay)
	s.True(out.Options[0].Impact.EnablesKnockout, "20+10 reaches the 30 HP target")
}

func (s *TrainerOrchestratorTestSuite) TestHealPreventsKnockout() {
	charmander := builders.PokemonCard("charmander", "Charmander", 60, entities.EnergyFire)
	potion := builders.TrainerCard("potion", "Potion",
		entities.TrainerEffect{
			EffectType: entities.EffectHeal,
			Target:     entities.TargetActiveYours,
			Value:      30,
		})

	active := builders.DamagedInstance(charmander, entities.PositionActive, 30) // 30 HP left

	state := builders.GameState(
		&entities.PlayerGameState{ActivePokemon: active, Hand: []string{"potion"}},
		&entities.PlayerGameState{},
	)

	s.expectThreat(&opponent.Threat{
		SureAttackDamage:  40,
		RiskAttackDamage:  40,
		CanKnockoutActive: true,
		CanKnockoutBench:  []opponent.KnockoutThreat{},
	})

	svc := s.newService(builders.CardSet(charmander, potion))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)

	opt := out.Options[0]
	s.True(opt.ShouldPlay)
	s.Equal(active, opt.TargetPokemon)
	s.True(opt.Impact.PreventsOurKnockout, "healed to 60, over the 40 sure damage")
}

func (s *TrainerOrchestratorTestSuite) TestHealFallsThroughToBench() {
	charmander := builders.PokemonCard("charmander", "Charmander", 60, entities.EnergyFire)
	squirtle := builders.PokemonCard("squirtle", "Squirtle", 50, entities.EnergyWater,
		builders.Attack("Bubble", "10", entities.EnergyWater))
	potion := builders.TrainerCard("potion", "Potion",
		entities.TrainerEffect{
			EffectType: entities.EffectHeal,
			Target:     entities.TargetAnyYours,
			Value:      20,
		})

	// Active is undamaged; only the bench Squirtle can absorb the heal
	active := builders.Instance(charmander, entities.PositionActive)
	bench := builders.DamagedInstance(squirtle, entities.PositionBench0, 20)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: active,
			Bench:         []*entities.CardInstance{bench},
			Hand:          []string{"potion"},
		},
		&entities.PlayerGameState{},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(charmander, squirtle, potion))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.True(out.Options[0].ShouldPlay)
	s.Equal(bench, out.Options[0].TargetPokemon)
}

func (s *TrainerOrchestratorTestSuite) TestReduceDamagePreventsKnockout() {
	charmander := builders.PokemonCard("charmander", "Charmander", 60, entities.EnergyFire)
	defender := builders.TrainerCard("defender", "Defender",
		entities.TrainerEffect{EffectType: entities.EffectReduceDamage, Value: 20})

	active := builders.DamagedInstance(charmander, entities.PositionActive, 10) // 50 HP left

	state := builders.GameState(
		&entities.PlayerGameState{ActivePokemon: active, Hand: []string{"defender"}},
		&entities.PlayerGameState{},
	)

	s.expectThreat(&opponent.Threat{
		SureAttackDamage:  50,
		RiskAttackDamage:  50,
		CanKnockoutActive: true,
		CanKnockoutBench:  []opponent.KnockoutThreat{},
	})

	svc := s.newService(builders.CardSet(charmander, defender))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.True(out.Options[0].ShouldPlay)
	s.True(out.Options[0].Impact.PreventsOurKnockout)
}

func (s *TrainerOrchestratorTestSuite) TestDrawAndDeckEmptySorting() {
	bill := builders.TrainerCard("bill", "Bill",
		entities.TrainerEffect{EffectType: entities.EffectDrawCards, Value: 2})
	oak := builders.TrainerCard("oak", "Professor Oak",
		entities.TrainerEffect{EffectType: entities.EffectDiscardHand},
		entities.TrainerEffect{EffectType: entities.EffectDrawCards, Value: 7})
	fire := builders.EnergyCard("fire", entities.EnergyFire)

	state := builders.GameState(
		&entities.PlayerGameState{
			Hand: []string{"bill", "oak"},
			Deck: []string{"fire", "fire", "fire"},
		},
		&entities.PlayerGameState{},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(bill, oak, fire))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 2)

	// Bill draws safely; Oak would overdraw the 3-card deck and sinks
	s.Equal("bill", out.Options[0].CardID)
	s.True(out.Options[0].ShouldPlay)
	s.True(out.Options[0].Impact.ImprovesHandSize)
	s.Equal("oak", out.Options[1].CardID)
	s.True(out.Options[1].WouldCauseDeckEmpty)
	s.False(out.Options[1].ShouldPlay)
}

func (s *TrainerOrchestratorTestSuite) TestOpponentDrawsNeverPlayed() {
	imposter := builders.TrainerCard("imposter", "Imposter",
		entities.TrainerEffect{EffectType: entities.EffectOpponentDraws, Value: 3})

	state := builders.GameState(
		&entities.PlayerGameState{Hand: []string{"imposter"}, Deck: []string{"imposter"}},
		&entities.PlayerGameState{},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(imposter))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.False(out.Options[0].ShouldPlay)
	s.True(out.Options[0].Impact.ImprovesOpponentHandSize)
}

func (s *TrainerOrchestratorTestSuite) TestEnergyRemovalTargetsPoweredAttack() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Karate Chop", "50", entities.EnergyFighting, entities.EnergyFighting))
	rattata := builders.PokemonCard("rattata", "Rattata", 30, entities.EnergyColorless,
		builders.Attack("Tackle", "10", entities.EnergyColorless))
	removal := builders.TrainerCard("er", "Energy Removal",
		entities.TrainerEffect{EffectType: entities.EffectRemoveEnergy, Value: 1})
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	// The benched Machop has the big powered attack; the active
	// Rattata has nothing attached
	oppBench := builders.WithEnergy(
		builders.Instance(machop, entities.PositionBench0), "fighting", "fighting")

	state := builders.GameState(
		&entities.PlayerGameState{Hand: []string{"er"}},
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(rattata, entities.PositionActive),
			Bench:         []*entities.CardInstance{oppBench},
		},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(machop, rattata, removal, fighting))

	out, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Options, 1)
	s.True(out.Options[0].ShouldPlay)
	s.Equal(oppBench, out.Options[0].TargetPokemon)
	s.False(out.Options[0].Impact.ChangesOpponentSureDamage, "bench target leaves sure damage alone")
}

func (s *TrainerOrchestratorTestSuite) TestSwitchWhenBenchCanKnockout() {
	rattata := builders.PokemonCard("rattata", "Rattata", 30, entities.EnergyColorless,
		builders.Attack("Tackle", "10", entities.EnergyColorless))
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Karate Chop", "50", entities.EnergyFighting, entities.EnergyFighting))
	pidgey := builders.PokemonCard("pidgey", "Pidgey", 40, entities.EnergyColorless,
		builders.Attack("Gust", "10", entities.EnergyColorless))
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	active := builders.Instance(rattata, entities.PositionActive)
	bench := builders.WithEnergy(
		builders.Instance(machop, entities.PositionBench0), "fighting", "fighting")

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: active,
			Bench:         []*entities.CardInstance{bench},
			PrizeCards:    []string{"p1", "p2", "p3"},
		},
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(pidgey, entities.PositionActive),
			PrizeCards:    []string{"p1", "p2", "p3"},
		},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(rattata, machop, pidgey, fighting))

	out, err := svc.EvaluateSwitchRetreat(s.ctx, &trainer.EvaluateSwitchRetreatInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)

	opt := out.Option
	s.True(opt.ShouldSwitch, "bench knocks out, unpowered active cannot")
	s.Equal(bench, opt.BestBench)
	s.True(opt.CanAffordRetreat, "free with no printed retreat cost")
}

func (s *TrainerOrchestratorTestSuite) TestStayWhenActiveFinishesFast() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Low Kick", "30", entities.EnergyFighting))
	snorlax := builders.PokemonCard("snorlax", "Snorlax", 120, entities.EnergyColorless,
		builders.Attack("Body Slam", "30", entities.EnergyColorless, entities.EnergyColorless))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	active := builders.WithEnergy(builders.Instance(machop, entities.PositionActive), "fighting")
	bench := builders.Instance(snorlax, entities.PositionBench0)
	oppActive := builders.Instance(oddish, entities.PositionActive)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: active,
			Bench:         []*entities.CardInstance{bench},
			PrizeCards:    []string{"p1", "p2", "p3"},
		},
		&entities.PlayerGameState{
			ActivePokemon: oppActive,
			PrizeCards:    []string{"p1", "p2", "p3"},
		},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(machop, snorlax, oddish, fighting))

	out, err := svc.EvaluateSwitchRetreat(s.ctx, &trainer.EvaluateSwitchRetreatInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.False(out.Option.ShouldSwitch, "two rounds to finish, nothing threatens us")
}

func (s *TrainerOrchestratorTestSuite) TestParalyzedCannotSwitch() {
	machop := builders.PokemonCard("machop", "Machop", 50, entities.EnergyFighting,
		builders.Attack("Low Kick", "30", entities.EnergyFighting))
	pidgey := builders.PokemonCard("pidgey", "Pidgey", 40, entities.EnergyColorless)

	active := builders.Instance(machop, entities.PositionActive)
	active.StatusEffects = []entities.StatusCondition{entities.StatusParalyzed}

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: active,
			Bench:         []*entities.CardInstance{builders.Instance(pidgey, entities.PositionBench0)},
		},
		&entities.PlayerGameState{},
	)

	svc := s.newService(builders.CardSet(machop, pidgey))

	out, err := svc.EvaluateSwitchRetreat(s.ctx, &trainer.EvaluateSwitchRetreatInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.False(out.Option.ShouldSwitch)
}

func (s *TrainerOrchestratorTestSuite) TestSwitchTrainerZeroesRetreatCost() {
	onix := builders.PokemonCard("onix", "Onix", 90, entities.EnergyFighting,
		builders.Attack("Rock Throw", "10", entities.EnergyFighting))
	onix.RetreatCost = 3
	pidgey := builders.PokemonCard("pidgey", "Pidgey", 40, entities.EnergyColorless,
		builders.Attack("Gust", "10", entities.EnergyColorless))
	switchCard := builders.TrainerCard("switch", "Switch",
		entities.TrainerEffect{EffectType: entities.EffectSwitchPokemon})

	active := builders.Instance(onix, entities.PositionActive)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: active,
			Bench:         []*entities.CardInstance{builders.Instance(pidgey, entities.PositionBench0)},
			Hand:          []string{"switch"},
			PrizeCards:    []string{"p1", "p2"},
		},
		&entities.PlayerGameState{PrizeCards: []string{"p1", "p2"}},
	)

	s.expectThreat(noThreat())

	svc := s.newService(builders.CardSet(onix, pidgey, switchCard))

	out, err := svc.EvaluateSwitchRetreat(s.ctx, &trainer.EvaluateSwitchRetreatInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Option.RetreatCost)
	s.True(out.Option.CanAffordRetreat)
}

func (s *TrainerOrchestratorTestSuite) TestValidatesInput() {
	svc := s.newService(builders.CardSet())

	_, err := svc.EvaluateTrainerCards(s.ctx, &trainer.EvaluateTrainerCardsInput{Player: entities.Player1})
	s.Error(err)

	_, err = svc.EvaluateSwitchRetreat(s.ctx, &trainer.EvaluateSwitchRetreatInput{
		State: builders.GameState(&entities.PlayerGameState{}, &entities.PlayerGameState{}),
	})
	s.Error(err)
}

func TestTrainerOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(TrainerOrchestratorTestSuite))
}
