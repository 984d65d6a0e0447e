// Package opponent implements the opponent analysis service: sure and
// risk damage projections, per-Pokémon threat scores, and the
// aggregate threat picture consumed by the other analyzers.
package opponent

//go:generate mockgen -destination=mock/mock_service.go -package=opponentmock github.com/stclaire/cardbrain/internal/analyzers/opponent Service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	"github.com/stclaire/cardbrain/internal/pkg/compare"
)

// Multi-coin damage text ("Flip 2 coins. This attack does 20 damage
// times the number of heads."). Handled only here, in the risk
// projection, where the best case is every coin landing heads. The
// shared coin-flip parser stays single-coin.
var multiCoinRe = regexp.MustCompile(`(?i)flip\s+(\d+)\s+coins.*?(\d+)\s+damage\s+(?:times|for\s+each)`)

// Service defines the interface for opponent analysis
type Service interface {
	// AnalyzeThreat builds the full threat picture for the acting
	// player's opponent
	AnalyzeThreat(ctx context.Context, input *AnalyzeThreatInput) (*AnalyzeThreatOutput, error)

	// SureAttackDamage is the guaranteed damage projection
	SureAttackDamage(ctx context.Context, input *AttackDamageInput) (*AttackDamageOutput, error)

	// RiskAttackDamage is the favorable-case damage projection
	RiskAttackDamage(ctx context.Context, input *AttackDamageInput) (*AttackDamageOutput, error)

	// ScorePokemon scores every opponent Pokémon in play and in hand
	ScorePokemon(ctx context.Context, input *ScorePokemonInput) (*ScorePokemonOutput, error)
}

// Config holds the dependencies for the opponent analyzer
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

// NewOrchestrator creates a new opponent analyzer with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cardSource: cfg.CardSource,
	}, nil
}

// AnalyzeThreat builds the aggregate threat picture: both damage
// projections, the knockout check against our active Pokémon, and the
// scored opponent roster.
func (o *orchestrator) AnalyzeThreat(ctx context.Context, input *AnalyzeThreatInput) (*AnalyzeThreatOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	sure, err := o.sureAttackDamage(ctx, input.State, input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to project sure damage")
	}

	risk, err := o.riskAttackDamage(ctx, input.State, input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to project risk damage")
	}

	scores, err := o.scorePokemon(ctx, input.State, input.Player)
	if err != nil {
		return nil, errors.Wrap(err, "failed to score opponent pokemon")
	}

	threat := &Threat{
		SureAttackDamage: sure,
		RiskAttackDamage: risk,
		CanKnockoutBench: []KnockoutThreat{},
		Scores:           scores,
	}

	if active := input.State.Player(input.Player).ActivePokemon; active != nil {
		threat.CanKnockoutActive = risk >= active.CurrentHP
	}
	if len(scores) > 0 {
		threat.MostThreatening = &scores[0]
	}

	slog.Debug("Opponent threat analyzed",
		"player", input.Player,
		"sure_damage", sure,
		"risk_damage", risk,
		"can_knockout_active", threat.CanKnockoutActive,
		"scored_pokemon", len(scores),
	)

	return &AnalyzeThreatOutput{Threat: threat}, nil
}

// SureAttackDamage projects the most damage the opponent is
// guaranteed to deal to our active Pokémon next turn: only attacks
// payable with energy already attached count, and every coin flip is
// resolved against the attacker.
func (o *orchestrator) SureAttackDamage(ctx context.Context, input *AttackDamageInput) (*AttackDamageOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	damage, err := o.sureAttackDamage(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}
	return &AttackDamageOutput{Damage: damage}, nil
}

// RiskAttackDamage projects the most damage the opponent could deal
// to our active Pokémon next turn: one energy attachment from hand is
// granted, and every coin flip lands in the attacker's favor.
func (o *orchestrator) RiskAttackDamage(ctx context.Context, input *AttackDamageInput) (*AttackDamageOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	damage, err := o.riskAttackDamage(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}
	return &AttackDamageOutput{Damage: damage}, nil
}

// ScorePokemon scores every opponent Pokémon: active, bench, and hand
// Pokémon through synthetic full-HP instances. Highest score first.
func (o *orchestrator) ScorePokemon(ctx context.Context, input *ScorePokemonInput) (*ScorePokemonOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	scores, err := o.scorePokemon(ctx, input.State, input.Player)
	if err != nil {
		return nil, err
	}
	return &ScorePokemonOutput{Scores: scores}, nil
}

func (o *orchestrator) sureAttackDamage(ctx context.Context, state *entities.GameState, player entities.PlayerID) (int, error) {
	opp := state.OpponentOf(player)
	us := state.Player(player)
	if opp.ActivePokemon == nil || us.ActivePokemon == nil {
		return 0, nil
	}

	attacker, err := o.cardSource.Card(ctx, opp.ActivePokemon.CardID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve opponent active %s", opp.ActivePokemon.CardID)
	}
	defender, err := o.cardSource.Card(ctx, us.ActivePokemon.CardID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve our active %s", us.ActivePokemon.CardID)
	}

	attached, err := o.energySources(ctx, opp.ActivePokemon.AttachedEnergy)
	if err != nil {
		return 0, err
	}

	best := 0
	for i := range attacker.Attacks {
		attack := &attacker.Attacks[i]
		if !engine.ValidateEnergyRequirements(attack, attached).Valid {
			continue
		}

		damage := engine.CalculateFinalDamage(engine.DamageContext{
			BaseDamage:       engine.ParseBaseDamage(attack.Damage),
			Attack:           attack,
			AttackerCard:     attacker,
			DefenderCard:     defender,
			DefenderInstance: us.ActivePokemon,
			DefenderPlayer:   player,
			State:            state,
			Policy:           engine.GuaranteedPolicy(),
		})
		if damage > best {
			best = damage
		}
	}

	return best, nil
}

func (o *orchestrator) riskAttackDamage(ctx context.Context, state *entities.GameState, player entities.PlayerID) (int, error) {
	opp := state.OpponentOf(player)
	us := state.Player(player)
	if opp.ActivePokemon == nil || us.ActivePokemon == nil {
		return 0, nil
	}

	attacker, err := o.cardSource.Card(ctx, opp.ActivePokemon.CardID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve opponent active %s", opp.ActivePokemon.CardID)
	}
	defender, err := o.cardSource.Card(ctx, us.ActivePokemon.CardID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to resolve our active %s", us.ActivePokemon.CardID)
	}

	attached, err := o.energySources(ctx, opp.ActivePokemon.AttachedEnergy)
	if err != nil {
		return 0, err
	}

	// One energy attachment from hand is granted to the opponent;
	// the first energy card found stands in for their best choice
	handEnergyID, err := o.firstHandEnergy(ctx, opp.Hand)
	if err != nil {
		return 0, err
	}
	var augmented []engine.EnergySource
	if handEnergyID != "" {
		augmented, err = o.energySources(ctx, opp.ActivePokemon.WithAdditionalEnergy(handEnergyID))
		if err != nil {
			return 0, err
		}
	}

	best := 0
	for i := range attacker.Attacks {
		attack := &attacker.Attacks[i]

		if !engine.ValidateEnergyRequirements(attack, attached).Valid {
			if augmented == nil || !engine.ValidateEnergyRequirements(attack, augmented).Valid {
				continue
			}
		}

		base := engine.ParseBaseDamage(attack.Damage)
		policy := engine.BestCasePolicy()
		if n, per, ok := parseMultiCoin(attack.Text); ok {
			// Best case is every coin landing heads
			base = n * per
			policy = engine.GuaranteedPolicy()
		}

		damage := engine.CalculateFinalDamage(engine.DamageContext{
			BaseDamage:       base,
			Attack:           attack,
			AttackerCard:     attacker,
			DefenderCard:     defender,
			DefenderInstance: us.ActivePokemon,
			DefenderPlayer:   player,
			State:            state,
			Policy:           policy,
		})
		if damage > best {
			best = damage
		}
	}

	return best, nil
}

func (o *orchestrator) scorePokemon(ctx context.Context, state *entities.GameState, player entities.PlayerID) ([]PokemonScore, error) {
	opp := state.OpponentOf(player)

	scores := []PokemonScore{}
	for _, inst := range opp.PokemonInPlay() {
		card, err := o.cardSource.Card(ctx, inst.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve pokemon %s", inst.CardID)
		}
		scores = append(scores, PokemonScore{
			InstanceID: inst.InstanceID,
			CardID:     card.CardID,
			Name:       card.Name,
			Position:   inst.Position,
			Score:      engine.ScorePokemon(card, inst),
		})
	}

	// Hand Pokémon are future threats; score them at full HP
	for _, id := range opp.Hand {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve hand card %s", id)
		}
		if !card.IsPokemon() {
			continue
		}
		inst := entities.NewHandInstance(card)
		scores = append(scores, PokemonScore{
			InstanceID: inst.InstanceID,
			CardID:     card.CardID,
			Name:       card.Name,
			Position:   inst.Position,
			Score:      engine.ScorePokemon(card, inst),
		})
	}

	compare.SortStable(scores, compare.Chain(
		func(a, b PokemonScore) int { return compare.Float64Desc(a.Score, b.Score) },
		func(a, b PokemonScore) int { return compare.IntAsc(a.Position.SortIndex(), b.Position.SortIndex()) },
	))

	return scores, nil
}

// energySources resolves attached energy card ids, skipping anything
// that is not an energy card.
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

// firstHandEnergy returns the id of the first energy card in the
// hand, empty when none
func (o *orchestrator) firstHandEnergy(ctx context.Context, hand []string) (string, error) {
	for _, id := range hand {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			return "", errors.Wrapf(err, "failed to resolve hand card %s", id)
		}
		if card.IsEnergy() {
			return id, nil
		}
	}
	return "", nil
}

func parseMultiCoin(text string) (coins, damagePerHead int, ok bool) {
	m := multiCoinRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	coins, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	damagePerHead, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return coins, damagePerHead, true
}
