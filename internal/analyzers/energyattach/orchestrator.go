// Package energyattach implements the energy attachment analyzer: for
// every energy card in hand and every Pokémon that can take it, rank
// what the attachment buys us.
package energyattach

//go:generate mockgen -destination=mock/mock_service.go -package=energyattachmock github.com/stclaire/cardbrain/internal/analyzers/energyattach Service

import (
	"context"
	"log/slog"

	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	"github.com/stclaire/cardbrain/internal/pkg/compare"
)

// Priority tiers. Knockout dominates damage increase dominates the
// general tier; the keep threshold is the general tier, so anything
// penalized below it is dropped unless it knocks out or raises
// damage.
const (
	PriorityKnockout       = 10000
	PriorityDamageIncrease = 1000
	PriorityGeneral        = 100
	PriorityZeroDamage     = -100

	exactMatchBonus   = 100
	immediateBonus    = 200
	sameTypeBonus     = 50
	activeTargetBonus = 50
)

// Service defines the interface for energy attachment evaluation
type Service interface {
	// EvaluateAttachments ranks every worthwhile (energy, target)
	// pairing for the acting player this turn
	EvaluateAttachments(ctx context.Context, input *EvaluateAttachmentsInput) (*EvaluateAttachmentsOutput, error)
}

// Config holds the dependencies for the energy attachment analyzer
type Config struct {
	CardSource       cards.Source
	OpponentAnalyzer opponent.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CardSource == nil {
		vb.RequiredField("CardSource")
	}
	if c.OpponentAnalyzer == nil {
		vb.RequiredField("OpponentAnalyzer")
	}

	return vb.Build()
}

type orchestrator struct {
	cardSource       cards.Source
	opponentAnalyzer opponent.Service
}

// NewOrchestrator creates a new energy attachment analyzer with the
// provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cardSource:       cfg.CardSource,
		opponentAnalyzer: cfg.OpponentAnalyzer,
	}, nil
}

// EvaluateAttachments walks every energy card in hand against every
// Pokémon in play, simulates the attachment, and keeps the pairings
// that knock something out, raise our damage, or make concrete
// progress toward an attack.
func (o *orchestrator) EvaluateAttachments(ctx context.Context, input *EvaluateAttachmentsInput) (*EvaluateAttachmentsOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	us := input.State.Player(input.Player)

	handEnergy, err := o.handEnergy(ctx, us.Hand)
	if err != nil {
		return nil, err
	}
	if len(handEnergy) == 0 {
		return &EvaluateAttachmentsOutput{Options: []AttachmentOption{}}, nil
	}

	threatOut, err := o.opponentAnalyzer.AnalyzeThreat(ctx, &opponent.AnalyzeThreatInput{
		State:  input.State,
		Player: input.Player,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze opponent threat")
	}
	threat := threatOut.Threat

	targets, err := o.targetsByScore(ctx, us)
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

	options := []AttachmentOption{}
	for _, he := range handEnergy {
		for _, target := range targets {
			if !target.inst.CanReceiveEnergy() {
				continue
			}

			opt, err := o.evaluatePair(ctx, input.State, he, target, opp.ActivePokemon, oppActiveCard, oppID, threat)
			if err != nil {
				return nil, err
			}
			if opt != nil {
				options = append(options, *opt)
			}
		}
	}

	compare.SortStable(options, compare.Chain(
		func(a, b AttachmentOption) int { return compare.TrueFirst(a.EnablesKnockout, b.EnablesKnockout) },
		func(a, b AttachmentOption) int { return compare.TrueFirst(a.IncreasesDamage, b.IncreasesDamage) },
		func(a, b AttachmentOption) int { return compare.TrueFirst(a.IsExactMatch, b.IsExactMatch) },
		func(a, b AttachmentOption) int { return compare.IntDesc(a.Priority, b.Priority) },
	))

	slog.Debug("Energy attachments evaluated",
		"player", input.Player,
		"hand_energy", len(handEnergy),
		"options", len(options),
	)

	return &EvaluateAttachmentsOutput{Options: options}, nil
}

type handEnergyCard struct {
	id   string
	card *entities.Card
}

type scoredTarget struct {
	inst *entities.CardInstance
	card *entities.Card
}

// evaluatePair runs the full evaluation for one (energy, target)
// pairing. Returns nil when the pairing is not worth keeping.
func (o *orchestrator) evaluatePair(
	ctx context.Context,
	state *entities.GameState,
	he handEnergyCard,
	target scoredTarget,
	oppActive *entities.CardInstance,
	oppActiveCard *entities.Card,
	oppID entities.PlayerID,
	threat *opponent.Threat,
) (*AttachmentOption, error) {
	attached, err := o.energySources(ctx, target.inst.AttachedEnergy)
	if err != nil {
		return nil, err
	}
	withNew, err := o.energySources(ctx, target.inst.WithAdditionalEnergy(he.id))
	if err != nil {
		return nil, err
	}

	bestWith, damageWith := bestAttack(target.card, withNew, state, oppActive, oppActiveCard, oppID)
	if bestWith == nil {
		return nil, nil
	}
	bestWithout, damageWithoutVal := bestAttack(target.card, attached, state, oppActive, oppActiveCard, oppID)

	var damageWithout *int
	if bestWithout != nil {
		damageWithout = &damageWithoutVal
	}

	enablesKnockout := false
	if oppActive != nil && damageWith > 0 && damageWith >= oppActive.CurrentHP {
		enablesKnockout = damageWithout == nil || *damageWithout < oppActive.CurrentHP
	}

	// Newly enabling any attack counts as a damage increase, even a
	// zero-damage status attack; those land in the zero-damage tier
	increasesDamage := damageWithout == nil || damageWith > *damageWithout

	// Powering a zero-damage attack on an active Pokémon the opponent
	// can knock out next turn is wasted energy
	if damageWith == 0 && target.inst.Position == entities.PositionActive && threat.CanKnockoutActive {
		return nil, nil
	}

	isExact := isExactMatch(bestWith, attached, he.card)

	if !enablesKnockout && !increasesDamage && !isExact {
		return nil, nil
	}

	turns := turnsToEnable(bestWith, withNew)
	sameType := sharesAttachedType(he.card, attached)

	priority := basePriority(damageWith, enablesKnockout, increasesDamage)
	if damageWith > 0 {
		if isExact {
			priority += exactMatchBonus
		}
		switch {
		case turns == 1:
			priority += immediateBonus
		case turns == 2:
			priority -= 50
		case turns > 2:
			priority -= 50 + 25*(turns-2)
		}
		if sameType {
			priority += sameTypeBonus
		}
		if target.inst.Position == entities.PositionActive {
			priority += activeTargetBonus
		}
	}

	if !enablesKnockout && !increasesDamage && priority < PriorityGeneral {
		return nil, nil
	}

	return &AttachmentOption{
		EnergyCardID:         he.id,
		EnergyCard:           he.card,
		Target:               target.inst,
		TargetPosition:       target.inst.Position,
		BestAttack:           bestWith,
		DamageWith:           damageWith,
		DamageWithout:        damageWithout,
		EnablesKnockout:      enablesKnockout,
		IncreasesDamage:      increasesDamage,
		IsExactMatch:         isExact,
		TurnsToEnable:        turns,
		IsSameTypeAsAttached: sameType,
		Priority:             priority,
	}, nil
}

func basePriority(damageWith int, enablesKnockout, increasesDamage bool) int {
	switch {
	case damageWith == 0:
		return PriorityZeroDamage
	case enablesKnockout:
		return PriorityKnockout
	case increasesDamage:
		return PriorityDamageIncrease
	default:
		return PriorityGeneral
	}
}

// handEnergy resolves the hand and keeps the energy cards in order
func (o *orchestrator) handEnergy(ctx context.Context, hand []string) ([]handEnergyCard, error) {
	out := []handEnergyCard{}
	for _, id := range hand {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve hand card %s", id)
		}
		if card.IsEnergy() {
			out = append(out, handEnergyCard{id: id, card: card})
		}
	}
	return out, nil
}

// targetsByScore returns our Pokémon in play ordered by threat score,
// highest first, so the strongest candidates are visited first
func (o *orchestrator) targetsByScore(ctx context.Context, us *entities.PlayerGameState) ([]scoredTarget, error) {
	type scored struct {
		t     scoredTarget
		score float64
	}

	list := []scored{}
	for _, inst := range us.PokemonInPlay() {
		card, err := o.cardSource.Card(ctx, inst.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve pokemon %s", inst.CardID)
		}
		list = append(list, scored{
			t:     scoredTarget{inst: inst, card: card},
			score: engine.ScorePokemon(card, inst),
		})
	}

	compare.SortStable(list, compare.Chain(
		func(a, b scored) int { return compare.Float64Desc(a.score, b.score) },
		func(a, b scored) int {
			return compare.IntAsc(a.t.inst.Position.SortIndex(), b.t.inst.Position.SortIndex())
		},
	))

	out := make([]scoredTarget, len(list))
	for i, s := range list {
		out[i] = s.t
	}
	return out, nil
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

// bestAttack returns the highest-damage attack on the card payable
// with the given sources, with its damage against the opponent's
// active Pokémon. Nil when nothing is payable. With no opposing
// active the printed base damage stands in.
func bestAttack(
	card *entities.Card,
	sources []engine.EnergySource,
	state *entities.GameState,
	oppActive *entities.CardInstance,
	oppActiveCard *entities.Card,
	oppID entities.PlayerID,
) (*entities.Attack, int) {
	var best *entities.Attack
	bestDamage := 0

	for i := range card.Attacks {
		attack := &card.Attacks[i]
		if !engine.ValidateEnergyRequirements(attack, sources).Valid {
			continue
		}

		damage := engine.ParseBaseDamage(attack.Damage)
		if oppActive != nil && oppActiveCard != nil {
			damage = engine.CalculateFinalDamage(engine.DamageContext{
				BaseDamage:       damage,
				Attack:           attack,
				AttackerCard:     card,
				DefenderCard:     oppActiveCard,
				DefenderInstance: oppActive,
				DefenderPlayer:   oppID,
				State:            state,
				Policy:           engine.GuaranteedPolicy(),
			})
		}

		if best == nil || damage > bestDamage {
			best = attack
			bestDamage = damage
		}
	}

	return best, bestDamage
}

// remainingCost is what the attack still needs beyond the given
// sources: per specific type, plus a COLORLESS entry for the unmet
// colorless count. Empty when the attack is payable now.
func remainingCost(attack *entities.Attack, sources []engine.EnergySource) map[entities.EnergyType]int {
	unitsByType := make(map[entities.EnergyType]int)
	total := 0
	for _, src := range sources {
		for _, u := range src.Units() {
			unitsByType[u]++
			total++
		}
	}

	requiredByType := make(map[entities.EnergyType]int)
	colorless := 0
	for _, req := range attack.EnergyCost {
		if req == entities.EnergyColorless {
			colorless++
			continue
		}
		requiredByType[req]++
	}

	remaining := make(map[entities.EnergyType]int)
	used := 0
	for et, need := range requiredByType {
		have := unitsByType[et]
		if have < need {
			remaining[et] = need - have
			used += have
			continue
		}
		used += need
	}

	leftover := total - used
	if colorless > leftover {
		remaining[entities.EnergyColorless] = colorless - leftover
	}

	return remaining
}

// isExactMatch reports whether the candidate covers exactly what the
// attack still needs beyond the attached energy: every candidate unit
// fills a remaining slot (specific type first, any type for a
// colorless slot) and nothing is left over on either side.
func isExactMatch(attack *entities.Attack, attached []engine.EnergySource, candidate *entities.Card) bool {
	remaining := remainingCost(attack, attached)

	for _, u := range engine.SourceFromCard(candidate).Units() {
		switch {
		case remaining[u] > 0:
			remaining[u]--
		case u != entities.EnergyColorless && remaining[entities.EnergyColorless] > 0:
			remaining[entities.EnergyColorless]--
		default:
			return false
		}
	}

	for _, n := range remaining {
		if n > 0 {
			return false
		}
	}
	return true
}

// turnsToEnable counts attachment turns until the attack is payable,
// assuming one unit per future turn
func turnsToEnable(attack *entities.Attack, withNew []engine.EnergySource) int {
	missing := 0
	for _, n := range remainingCost(attack, withNew) {
		missing += n
	}
	return 1 + missing
}

// sharesAttachedType reports whether the candidate provides a type
// already present on the target
func sharesAttachedType(candidate *entities.Card, attached []engine.EnergySource) bool {
	present := make(map[entities.EnergyType]bool)
	for _, src := range attached {
		for _, u := range src.Units() {
			present[u] = true
		}
	}
	for _, t := range candidate.ProvidedTypes() {
		if present[t] {
			return true
		}
	}
	return false
}
