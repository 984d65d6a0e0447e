// Package actions implements attack enumeration and prioritization:
// what can we do this turn, what knocks something out, and what is
// worth the most.
package actions

//go:generate mockgen -destination=mock/mock_service.go -package=actionsmock github.com/stclaire/cardbrain/internal/analyzers/actions Service

import (
	"context"
	"log/slog"

	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	"github.com/stclaire/cardbrain/internal/pkg/compare"
)

// KnockoutValue dominates every possible expected value so knockout
// attacks always rank above everything else
const KnockoutValue = 10000

// Service defines the interface for attack prioritization
type Service interface {
	// FindAvailableAttacks enumerates every attack on the acting
	// player's board, sorted most promising first. Returns an empty
	// list when nothing is performable.
	FindAvailableAttacks(ctx context.Context, input *FindAvailableAttacksInput) (*FindAvailableAttacksOutput, error)

	// IdentifyKnockoutAttacks finds every performable attack that
	// knocks out an opponent Pokémon this turn
	IdentifyKnockoutAttacks(ctx context.Context, input *IdentifyKnockoutAttacksInput) (*IdentifyKnockoutAttacksOutput, error)

	// FindMaximumDamageAttacks ranks performable attacks by expected
	// value, knockouts first
	FindMaximumDamageAttacks(ctx context.Context, input *FindMaximumDamageAttacksInput) (*FindMaximumDamageAttacksOutput, error)
}

// Config holds the dependencies for the actions analyzer
type Config struct {
	CardSource cards.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CardSource == nil {
		vb.RequiredField("CardSource")
	}

	return vb.Build()
}

type orchestrator struct {
	cardSource cards.Source
}

// NewOrchestrator creates a new actions analyzer with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cardSource: cfg.CardSource,
	}, nil
}

// FindAvailableAttacks analyzes every attack on the acting player's
// active and bench Pokémon. Bench attacks are never performable this
// turn but their analyses feed forward planning. When zero attacks
// are performable the whole list is suppressed so callers fall back
// to other actions.
func (o *orchestrator) FindAvailableAttacks(ctx context.Context, input *FindAvailableAttacksInput) (*FindAvailableAttacksOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	analyses, err := o.analyzeAttacks(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}

	performable := 0
	for _, a := range analyses {
		if a.CanPerform {
			performable++
		}
	}
	if performable == 0 {
		slog.Debug("No performable attacks", "player", input.Player)
		return &FindAvailableAttacksOutput{Attacks: []AttackAnalysis{}}, nil
	}

	compare.SortStable(analyses, compare.Chain(
		func(a, b AttackAnalysis) int { return compare.TrueFirst(a.CanPerform, b.CanPerform) },
		func(a, b AttackAnalysis) int { return compare.IntAsc(a.Position.SortIndex(), b.Position.SortIndex()) },
		func(a, b AttackAnalysis) int { return compare.IntDesc(a.BaseDamage, b.BaseDamage) },
		func(a, b AttackAnalysis) int { return compare.IntDesc(a.SideEffectPoints, b.SideEffectPoints) },
	))

	slog.Debug("Available attacks analyzed",
		"player", input.Player,
		"total", len(analyses),
		"performable", performable,
	)

	return &FindAvailableAttacksOutput{Attacks: analyses}, nil
}

// IdentifyKnockoutAttacks checks every performable attack against
// every opponent Pokémon and reports the ones whose guaranteed damage
// reaches the target's remaining HP.
func (o *orchestrator) IdentifyKnockoutAttacks(ctx context.Context, input *IdentifyKnockoutAttacksInput) (*IdentifyKnockoutAttacksOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	analyses, err := o.analyzeAttacks(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}

	opp := input.State.OpponentOf(input.Player)
	oppID := input.Player.Opponent()

	knockouts := []KnockoutAnalysis{}
	for _, a := range analyses {
		if !a.CanPerform {
			continue
		}
		for _, target := range opp.PokemonInPlay() {
			targetCard, err := o.cardSource.Card(ctx, target.CardID)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve opponent pokemon %s", target.CardID)
			}

			damage := engine.CalculateFinalDamage(engine.DamageContext{
				BaseDamage:       a.BaseDamage,
				Attack:           a.Attack,
				AttackerCard:     a.Card,
				DefenderCard:     targetCard,
				DefenderInstance: target,
				DefenderPlayer:   oppID,
				State:            input.State,
				Policy:           engine.GuaranteedPolicy(),
			})
			if damage <= 0 || damage < target.CurrentHP {
				continue
			}

			knockouts = append(knockouts, KnockoutAnalysis{
				Attack:                  a.Attack,
				AttackerPosition:        a.Position,
				TargetInstanceID:        target.InstanceID,
				TargetPosition:          target.Position,
				Damage:                  damage,
				TargetCurrentHP:         target.CurrentHP,
				HasSideEffectToOpponent: effectToOpponent(a.Attack),
				HasSideEffectToPlayer:   effectToPlayer(a.Attack),
			})
		}
	}

	compare.SortStable(knockouts, compare.Chain(
		func(a, b KnockoutAnalysis) int {
			return compare.IntAsc(a.AttackerPosition.SortIndex(), b.AttackerPosition.SortIndex())
		},
		func(a, b KnockoutAnalysis) int {
			return compare.IntAsc(a.TargetPosition.SortIndex(), b.TargetPosition.SortIndex())
		},
		func(a, b KnockoutAnalysis) int {
			return compare.TrueFirst(a.HasSideEffectToOpponent, b.HasSideEffectToOpponent)
		},
		func(a, b KnockoutAnalysis) int {
			return compare.FalseFirst(a.HasSideEffectToPlayer, b.HasSideEffectToPlayer)
		},
		func(a, b KnockoutAnalysis) int { return compare.IntDesc(a.Damage, b.Damage) },
	))

	slog.Debug("Knockout attacks identified",
		"player", input.Player,
		"count", len(knockouts),
	)

	return &IdentifyKnockoutAttacksOutput{Knockouts: knockouts}, nil
}

// FindMaximumDamageAttacks ranks every performable attack by expected
// value against the opponent's active Pokémon. A knockout is worth a
// dominating constant plus base damage; otherwise base damage plus
// the expected worth of a status effect the target does not already
// have.
func (o *orchestrator) FindMaximumDamageAttacks(ctx context.Context, input *FindMaximumDamageAttacksInput) (*FindMaximumDamageAttacksOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	analyses, err := o.analyzeAttacks(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}

	opp := input.State.OpponentOf(input.Player)
	oppID := input.Player.Opponent()

	var oppActiveCard *entities.Card
	if opp.ActivePokemon != nil {
		oppActiveCard, err = o.cardSource.Card(ctx, opp.ActivePokemon.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve opponent active %s", opp.ActivePokemon.CardID)
		}
	}

	ranked := []RankedAttack{}
	for _, a := range analyses {
		if !a.CanPerform {
			continue
		}

		r := RankedAttack{Analysis: a}

		if opp.ActivePokemon != nil {
			damage := engine.CalculateFinalDamage(engine.DamageContext{
				BaseDamage:       a.BaseDamage,
				Attack:           a.Attack,
				AttackerCard:     a.Card,
				DefenderCard:     oppActiveCard,
				DefenderInstance: opp.ActivePokemon,
				DefenderPlayer:   oppID,
				State:            input.State,
				Policy:           engine.GuaranteedPolicy(),
			})
			r.IsKnockout = damage > 0 && damage >= opp.ActivePokemon.CurrentHP
		}

		if r.IsKnockout {
			r.ExpectedValue = KnockoutValue + float64(a.BaseDamage)
		} else {
			r.ExpectedValue = float64(a.BaseDamage) + statusEffectValue(a.Attack, opp.ActivePokemon)
		}

		ranked = append(ranked, r)
	}

	compare.SortStable(ranked, compare.Chain(
		func(a, b RankedAttack) int { return compare.TrueFirst(a.IsKnockout, b.IsKnockout) },
		func(a, b RankedAttack) int { return compare.Float64Desc(a.ExpectedValue, b.ExpectedValue) },
	))

	slog.Debug("Maximum damage attacks ranked",
		"player", input.Player,
		"count", len(ranked),
	)

	return &FindMaximumDamageAttacksOutput{Ranked: ranked}, nil
}

// analyzeAttacks builds the raw AttackAnalysis list for the acting
// player's active and bench Pokémon, unsorted.
func (o *orchestrator) analyzeAttacks(ctx context.Context, state *entities.GameState, player entities.PlayerID) ([]AttackAnalysis, error) {
	us := state.Player(player)

	analyses := []AttackAnalysis{}
	for _, inst := range us.PokemonInPlay() {
		card, err := o.cardSource.Card(ctx, inst.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve pokemon %s", inst.CardID)
		}

		attached, err := o.energySources(ctx, inst.AttachedEnergy)
		if err != nil {
			return nil, err
		}

		for i := range card.Attacks {
			attack := &card.Attacks[i]
			base := engine.ParseBaseDamage(attack.Damage)
			points := engine.SideEffectPoints(attack)
			profile := engine.ParseCoinFlip(attack.Text)

			analyses = append(analyses, AttackAnalysis{
				Attack:            attack,
				Pokemon:           inst,
				Card:              card,
				Position:          inst.Position,
				EnergyCost:        len(attack.EnergyCost),
				BaseDamage:        base,
				HasCoinFlip:       profile.HasCoinFlip || attack.HasCoinFlipPrecondition(),
				HasPoisonEffect:   attack.HasPoisonEffect(),
				HasOnlySideEffect: base == 0 && points > 0,
				SideEffectPoints:  points,
				CanPerform:        engine.ValidateEnergyRequirements(attack, attached).Valid,
			})
		}
	}

	return analyses, nil
}

func (o *orchestrator) energySources(ctx context.Context, attached []string) ([]engine.EnergySource, error) {
	sources := make([]engine.EnergySource, 0, len(attached))
	for _, id := range attached {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve attached energy %s", id)
		}
		if !card.IsEnergy() {
			continue
		}
		sources = append(sources, engine.SourceFromCard(card))
	}
	return sources, nil
}

// statusEffectValue is the expected worth of the attack's status
// rider against the given defender: nothing when the defender already
// has the condition, halved when the rider is coin-flip gated.
func statusEffectValue(attack *entities.Attack, defender *entities.CardInstance) float64 {
	st := attack.StatusEffect()
	if st == nil || defender == nil || defender.HasStatus(st.Status) {
		return 0
	}

	points := float64(engine.OtherEffectPoints)
	if st.Status == entities.StatusPoisoned {
		points = float64(engine.PoisonEffectPoints)
	}

	if st.CoinFlipGated || attack.HasCoinFlipPrecondition() {
		return points * 0.5
	}
	return points
}

// effectToOpponent reports whether the attack carries a rider that
// hits the opponent's side. A status rider with no explicit target
// applies to the defender.
func effectToOpponent(attack *entities.Attack) bool {
	if attack.HasEffectTargeting(entities.TargetActiveOpponent, entities.TargetBenchOpponent, entities.TargetOpponent) {
		return true
	}
	if st := attack.StatusEffect(); st != nil && st.Target == "" {
		return true
	}
	return false
}

// effectToPlayer reports whether the attack costs the attacker
// something, recoil or riders on our own side.
func effectToPlayer(attack *entities.Attack) bool {
	for _, e := range attack.Effects {
		if e.Type == entities.AttackEffectRecoil {
			return true
		}
	}
	return attack.HasEffectTargeting(entities.TargetActiveYours, entities.TargetBenchYours, entities.TargetAnyYours, entities.TargetSelf)
}
