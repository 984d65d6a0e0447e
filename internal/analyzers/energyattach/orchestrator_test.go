package energyattach_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stclaire/cardbrain/internal/analyzers/energyattach"
	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/testutils/builders"
)

type EnergyAttachTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EnergyAttachTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *EnergyAttachTestSuite) newService(cardSet map[string]*entities.Card) energyattach.Service {
	source := cards.Map(cardSet)

	opp, err := opponent.NewOrchestrator(&opponent.Config{CardSource: source})
	s.Require().NoError(err)

	svc, err := energyattach.NewOrchestrator(&energyattach.Config{
		CardSource:       source,
		OpponentAnalyzer: opp,
	})
	s.Require().NoError(err)
	return svc
}

func (s *EnergyAttachTestSuite) evaluate(svc energyattach.Service, state *entities.GameState) []energyattach.AttachmentOption {
	out, err := svc.EvaluateAttachments(s.ctx, &energyattach.EvaluateAttachmentsInput{
		State:  state,
		Player: entities.Player1,
	})
	s.Require().NoError(err)
	return out.Options
}

func (s *EnergyAttachTestSuite) TestNoHandEnergyReturnsEmpty() {
	charmander := builders.PokemonCard("charmander", "Charmander", 50, entities.EnergyFire,
		builders.Attack("Ember", "30", entities.EnergyFire))

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(charmander, entities.PositionActive),
			Hand:          []string{"charmander"},
		},
		&entities.PlayerGameState{},
	)

	svc := s.newService(builders.CardSet(charmander))
	s.Empty(s.evaluate(svc, state))
}

func (s *EnergyAttachTestSuite) TestSingleEnergyEnablesKnockout() {
	// Attack requiring one Fire, base 60, against a 60 HP defender:
	// the one attachment is exact, immediate, and lethal
	charmander := builders.PokemonCard("charmander", "Charmander", 50, entities.EnergyFire,
		builders.Attack("Ember", "60", entities.EnergyFire))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	fire := builders.EnergyCard("fire", entities.EnergyFire)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(charmander, entities.PositionActive),
			Hand:          []string{"fire"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(charmander, oddish, fire))

	options := s.evaluate(svc, state)
	s.Require().Len(options, 1)

	opt := options[0]
	s.True(opt.EnablesKnockout)
	s.True(opt.IncreasesDamage)
	s.True(opt.IsExactMatch)
	s.Equal(1, opt.TurnsToEnable)
	s.Equal(60, opt.DamageWith)
	s.Nil(opt.DamageWithout)
	s.Greater(opt.Priority, 0)
	s.Equal("Ember", opt.BestAttack.Name)
}

func (s *EnergyAttachTestSuite) TestExactnessWithSingleColorlessGap() {
	// One Water attached against a [WATER, COLORLESS] cost leaves a
	// single colorless gap. Any single energy fills it exactly; a
	// double provision overprovisions by one.
	squirtle := builders.PokemonCard("squirtle", "Squirtle", 50, entities.EnergyWater,
		builders.Attack("Water Gun", "30", entities.EnergyWater, entities.EnergyColorless))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	water := builders.EnergyCard("water", entities.EnergyWater)
	fire := builders.EnergyCard("fire", entities.EnergyFire)
	dce := builders.DoubleColorlessCard("dce")

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.WithEnergy(
				builders.Instance(squirtle, entities.PositionActive), "water"),
			Hand: []string{"water", "fire", "dce"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(squirtle, oddish, water, fire, dce))

	options := s.evaluate(svc, state)
	s.Require().Len(options, 3, "every attachment makes the attack performable")

	byID := map[string]energyattach.AttachmentOption{}
	for _, o := range options {
		byID[o.EnergyCardID] = o
	}

	s.True(byID["water"].IsExactMatch)
	s.True(byID["fire"].IsExactMatch, "any type satisfies a colorless gap")
	s.False(byID["dce"].IsExactMatch, "two units overprovision a one-unit gap")
}

func (s *EnergyAttachTestSuite) TestOnlyProvisionCompletesColorlessPair() {
	// [WATER, COLORLESS, COLORLESS] with one Water attached: a single
	// Water leaves the cost one unit short, so only the double
	// colorless provision yields a performable attack this turn
	blastoise := builders.PokemonCard("blastoise", "Blastoise", 100, entities.EnergyWater,
		builders.Attack("Hydro Pump", "90",
			entities.EnergyWater, entities.EnergyColorless, entities.EnergyColorless))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	water := builders.EnergyCard("water", entities.EnergyWater)
	dce := builders.DoubleColorlessCard("dce")

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.WithEnergy(
				builders.Instance(blastoise, entities.PositionActive), "water"),
			Hand: []string{"water", "water", "dce"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(blastoise, oddish, water, dce))

	options := s.evaluate(svc, state)
	s.Require().Len(options, 1, "single water attachments leave the cost short")

	opt := options[0]
	s.Equal("dce", opt.EnergyCardID)
	s.True(opt.IsExactMatch)
	s.True(opt.EnablesKnockout, "90 damage against 60 HP")
}

func (s *EnergyAttachTestSuite) TestKnockoutSortsFirst() {
	// A knockout-enabling option outranks a mere damage increase no
	// matter the other fields
	charmander := builders.PokemonCard("charmander", "Charmander", 50, entities.EnergyFire,
		builders.Attack("Ember", "60", entities.EnergyFire))
	squirtle := builders.PokemonCard("squirtle", "Squirtle", 50, entities.EnergyWater,
		builders.Attack("Bubble", "10", entities.EnergyWater))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	fire := builders.EnergyCard("fire", entities.EnergyFire)
	water := builders.EnergyCard("water", entities.EnergyWater)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(charmander, entities.PositionActive),
			Bench: []*entities.CardInstance{
				builders.Instance(squirtle, entities.PositionBench0),
			},
			Hand: []string{"water", "fire"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(charmander, squirtle, oddish, fire, water))

	options := s.evaluate(svc, state)
	s.Require().NotEmpty(options)

	s.Equal("fire", options[0].EnergyCardID)
	s.Equal(entities.PositionActive, options[0].TargetPosition)
	s.True(options[0].EnablesKnockout)
	for _, o := range options[1:] {
		s.False(o.EnablesKnockout)
	}
}

func (s *EnergyAttachTestSuite) TestOverflowSuppressed() {
	// The active already performs its only attack; another energy
	// changes nothing and must not be offered for it
	charmander := builders.PokemonCard("charmander", "Charmander", 50, entities.EnergyFire,
		builders.Attack("Ember", "30", entities.EnergyFire))
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	fire := builders.EnergyCard("fire", entities.EnergyFire)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.WithEnergy(
				builders.Instance(charmander, entities.PositionActive), "fire"),
			Hand: []string{"fire"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(charmander, oddish, fire))

	for _, o := range s.evaluate(svc, state) {
		s.LessOrEqual(o.Priority, 0, "pure overflow options must not rank")
	}
}

func (s *EnergyAttachTestSuite) TestEnablingStatusOnlyAttackKept() {
	// Nothing is performable before the attachment, so newly enabling
	// Foul Gas counts as a damage increase even though it prints no
	// damage; the option lands in the zero-damage priority tier
	koffing := builders.PokemonCard("koffing", "Koffing", 50, entities.EnergyGrass,
		entities.Attack{
			Name:       "Foul Gas",
			EnergyCost: []entities.EnergyType{entities.EnergyGrass},
			Damage:     "",
			Effects: []entities.AttackEffect{{
				Type:   entities.AttackEffectStatus,
				Status: entities.StatusPoisoned,
			}},
		})
	oddish := builders.PokemonCard("oddish", "Oddish", 60, entities.EnergyGrass,
		builders.Attack("Absorb", "20", entities.EnergyGrass))
	grass := builders.EnergyCard("grass", entities.EnergyGrass)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(koffing, entities.PositionActive),
			Hand:          []string{"grass"},
		},
		&entities.PlayerGameState{ActivePokemon: builders.Instance(oddish, entities.PositionActive)},
	)

	svc := s.newService(builders.CardSet(koffing, oddish, grass))

	options := s.evaluate(svc, state)
	s.Require().Len(options, 1)

	opt := options[0]
	s.Equal("Foul Gas", opt.BestAttack.Name)
	s.Equal(0, opt.DamageWith)
	s.Nil(opt.DamageWithout)
	s.True(opt.IncreasesDamage, "newly enabling an attack is an increase")
	s.False(opt.EnablesKnockout)
	s.Equal(energyattach.PriorityZeroDamage, opt.Priority)
}

func (s *EnergyAttachTestSuite) TestDoomedActiveZeroDamageDiscarded() {
	// The opponent can knock out our active; powering a zero-damage
	// attack on it is discarded outright
	koffing := builders.PokemonCard("koffing", "Koffing", 50, entities.EnergyGrass,
		entities.Attack{
			Name:       "Foul Gas",
			EnergyCost: []entities.EnergyType{entities.EnergyGrass},
			Damage:     "0",
			Effects: []entities.AttackEffect{{
				Type:   entities.AttackEffectStatus,
				Status: entities.StatusPoisoned,
			}},
		})
	machamp := builders.PokemonCard("machamp", "Machamp", 100, entities.EnergyFighting,
		builders.Attack("Seismic Toss", "60", entities.EnergyFighting))
	grass := builders.EnergyCard("grass", entities.EnergyGrass)
	fighting := builders.EnergyCard("fighting", entities.EnergyFighting)

	state := builders.GameState(
		&entities.PlayerGameState{
			ActivePokemon: builders.Instance(koffing, entities.PositionActive),
			Hand:          []string{"grass"},
		},
		&entities.PlayerGameState{
			ActivePokemon: builders.WithEnergy(
				builders.Instance(machamp, entities.PositionActive), "fighting"),
		},
	)

	svc := s.newService(builders.CardSet(koffing, machamp, grass, fighting))
	s.Empty(s.evaluate(svc, state))
}

func (s *EnergyAttachTestSuite) TestValidatesInput() {
	charmander := builders.PokemonCard("charmander", "Charmander", 50, entities.EnergyFire)
	svc := s.newService(builders.CardSet(charmander))

	_, err := svc.EvaluateAttachments(s.ctx, &energyattach.EvaluateAttachmentsInput{
		Player: entities.Player1,
	})
	s.Error(err)
}

func TestEnergyAttachSuite(t *testing.T) {
	suite.Run(t, new(EnergyAttachTestSuite))
}
