// Package trainer implements trainer card evaluation and the
// switch/retreat decision.
package trainer

//go:generate mockgen -destination=mock/mock_service.go -package=trainermock github.com/stclaire/cardbrain/internal/analyzers/trainer Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	"github.com/stclaire/cardbrain/internal/cards"
	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	"github.com/stclaire/cardbrain/internal/pkg/compare"
)

// unreachableRounds caps round counting when no damage is being dealt
const unreachableRounds = 1000

// ignoredEffects are cosmetic or side effects that never drive
// evaluation on their own
var ignoredEffects = map[entities.TrainerEffectType]bool{
	entities.EffectDiscardHand:      true,
	entities.EffectShuffleDeck:      true,
	entities.EffectDiscardEnergy:    true,
	entities.EffectAttachToPokemon:  true,
	entities.EffectDevolvePokemon:   true,
	entities.EffectOpponentDiscards: true,
}

// Service defines the interface for trainer card analysis
type Service interface {
	// EvaluateTrainerCards evaluates every trainer card in the acting
	// player's hand
	EvaluateTrainerCards(ctx context.Context, input *EvaluateTrainerCardsInput) (*EvaluateTrainerCardsOutput, error)

	// EvaluateSwitchRetreat decides whether the active Pokémon should
	// switch out
	EvaluateSwitchRetreat(ctx context.Context, input *EvaluateSwitchRetreatInput) (*EvaluateSwitchRetreatOutput, error)
}

// Config holds the dependencies for the trainer analyzer
type Config struct {
	CardSource       cards.Source
	OpponentAnalyzer opponent.Service
	ActionsAnalyzer  actions.Service
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
	if c.ActionsAnalyzer == nil {
		vb.RequiredField("ActionsAnalyzer")
	}

	return vb.Build()
}

type orchestrator struct {
	cardSource       cards.Source
	opponentAnalyzer opponent.Service
	actionsAnalyzer  actions.Service
}

// NewOrchestrator creates a new trainer analyzer with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		cardSource:       cfg.CardSource,
		opponentAnalyzer: cfg.OpponentAnalyzer,
		actionsAnalyzer:  cfg.ActionsAnalyzer,
	}, nil
}

// Categorize maps a trainer card to its primary category, the lowest
// category among its non-ignored effects. Panics when the card has no
// categorizable effect; EvaluateTrainerCards filters those upstream,
// so reaching the panic is a programmer error.
func Categorize(card *entities.Card) Category {
	best, ok := categorize(card)
	if !ok {
		panic(fmt.Sprintf("trainer card %s has no categorizable effect", card.CardID))
	}
	return best
}

func categorize(card *entities.Card) (Category, bool) {
	best := Category(0)
	for _, e := range card.TrainerEffects {
		if ignoredEffects[e.EffectType] {
			continue
		}
		c := effectCategory(e.EffectType)
		if best == 0 || c < best {
			best = c
		}
	}
	return best, best != 0
}

func effectCategory(t entities.TrainerEffectType) Category {
	switch t {
	case entities.EffectHeal:
		return CategoryHealing
	case entities.EffectIncreaseDamage:
		return CategoryDamageBuff
	case entities.EffectReduceDamage, entities.EffectPreventDamage:
		return CategoryDamageReduction
	case entities.EffectDrawCards:
		return CategoryCardDraw
	case entities.EffectRemoveEnergy:
		return CategoryEnergyRemoval
	case entities.EffectOpponentDraws:
		return CategoryOpponentHand
	case entities.EffectSwitchPokemon:
		return CategorySwitching
	default:
		return CategorySpecialEffects
	}
}

// EvaluateTrainerCards evaluates every trainer card in the acting
// player's hand and orders them by play priority.
func (o *orchestrator) EvaluateTrainerCards(ctx context.Context, input *EvaluateTrainerCardsInput) (*EvaluateTrainerCardsOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	us := input.State.Player(input.Player)

	threatOut, err := o.opponentAnalyzer.AnalyzeThreat(ctx, &opponent.AnalyzeThreatInput{
		State:  input.State,
		Player: input.Player,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze opponent threat")
	}
	threat := threatOut.Threat

	options := []TrainerCardOption{}
	for _, id := range us.Hand {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve hand card %s", id)
		}
		if !card.IsTrainer() {
			continue
		}
		category, ok := categorize(card)
		if !ok {
			continue
		}

		opt := TrainerCardOption{
			CardID:              id,
			Card:                card,
			Category:            category,
			WouldCauseDeckEmpty: wouldCauseDeckEmpty(card, len(us.Deck)),
		}

		if err := o.evaluateCard(ctx, input.State, input.Player, threat, &opt); err != nil {
			return nil, err
		}

		// Overdrawing the deck loses on the spot, nothing justifies it
		if opt.WouldCauseDeckEmpty {
			opt.ShouldPlay = false
			opt.Reason = "drawing would empty the deck"
		}

		options = append(options, opt)
	}

	compare.SortStable(options, compare.Chain(
		func(a, b TrainerCardOption) int {
			return compare.FalseFirst(a.WouldCauseDeckEmpty, b.WouldCauseDeckEmpty)
		},
		func(a, b TrainerCardOption) int { return compare.IntAsc(int(a.Category), int(b.Category)) },
		func(a, b TrainerCardOption) int { return compare.TrueFirst(a.ShouldPlay, b.ShouldPlay) },
		func(a, b TrainerCardOption) int { return compare.IntAsc(impactRank(a.Impact), impactRank(b.Impact)) },
	))

	slog.Debug("Trainer cards evaluated",
		"player", input.Player,
		"options", len(options),
	)

	return &EvaluateTrainerCardsOutput{Options: options}, nil
}

func impactRank(i Impact) int {
	switch {
	case i.EnablesKnockout:
		return 0
	case i.PreventsOurKnockout:
		return 1
	case i.ChangesOpponentSureDamage:
		return 2
	default:
		return 3
	}
}

func wouldCauseDeckEmpty(card *entities.Card, deckSize int) bool {
	for _, e := range card.TrainerEffects {
		if e.EffectType == entities.EffectDrawCards && e.Value > deckSize {
			return true
		}
	}
	return false
}

func (o *orchestrator) evaluateCard(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	threat *opponent.Threat,
	opt *TrainerCardOption,
) error {
	switch opt.Category {
	case CategoryHealing:
		return o.evaluateHeal(ctx, state, player, threat, opt)
	case CategoryDamageBuff:
		return o.evaluateDamageBuff(ctx, state, player, opt)
	case CategoryDamageReduction:
		o.evaluateDamageReduction(state, player, threat, opt)
		return nil
	case CategoryCardDraw:
		o.evaluateDraw(state, player, opt)
		return nil
	case CategoryEnergyRemoval:
		return o.evaluateEnergyRemoval(ctx, state, player, opt)
	case CategoryOpponentHand:
		opt.ShouldPlay = false
		opt.Reason = "would improve the opponent's hand"
		opt.Impact.ImprovesOpponentHandSize = true
		return nil
	default:
		opt.ShouldPlay = false
		opt.Reason = fmt.Sprintf("no evaluation rule for %s", opt.Category)
		return nil
	}
}

func (o *orchestrator) evaluateHeal(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	threat *opponent.Threat,
	opt *TrainerCardOption,
) error {
	effect := findEffect(opt.Card, entities.EffectHeal)
	us := state.Player(player)
	heal := effect.Value

	targetsActive := effect.Target == entities.TargetActiveYours || effect.Target == entities.TargetAnyYours
	active := us.ActivePokemon

	// Active first: never overheal, and prefer it when the heal keeps
	// it out of knockout range
	if targetsActive && active != nil && active.DamageTaken() >= heal {
		if active.CurrentHP+heal > threat.SureAttackDamage {
			card, err := o.cardSource.Card(ctx, active.CardID)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve active %s", active.CardID)
			}
			opt.ShouldPlay = true
			opt.Reason = fmt.Sprintf("heal %d keeps %s ahead of the opponent's sure damage", heal, card.Name)
			opt.TargetPokemon = active
			opt.TargetCard = card
			opt.Impact.PreventsOurKnockout = threat.SureAttackDamage >= active.CurrentHP
			return nil
		}
	}

	// Bench fallback: the most valuable Pokémon that can absorb the
	// full heal
	var bestInst *entities.CardInstance
	var bestCard *entities.Card
	bestScore := 0.0
	for _, b := range us.Bench {
		if b == nil || b.DamageTaken() < heal {
			continue
		}
		card, err := o.cardSource.Card(ctx, b.CardID)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve bench pokemon %s", b.CardID)
		}
		if score := engine.ScorePokemon(card, b); bestInst == nil || score > bestScore {
			bestInst = b
			bestCard = card
			bestScore = score
		}
	}

	if bestInst != nil {
		opt.ShouldPlay = true
		opt.Reason = fmt.Sprintf("heal %d on benched %s", heal, bestCard.Name)
		opt.TargetPokemon = bestInst
		opt.TargetCard = bestCard
		return nil
	}

	opt.ShouldPlay = false
	opt.Reason = fmt.Sprintf("no pokemon carries %d damage to heal", heal)
	return nil
}

func (o *orchestrator) evaluateDamageBuff(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	opt *TrainerCardOption,
) error {
	effect := findEffect(opt.Card, entities.EffectIncreaseDamage)
	bonus := effect.Value

	opp := state.OpponentOf(player)
	if opp.ActivePokemon == nil {
		opt.ShouldPlay = false
		opt.Reason = "no opposing active pokemon"
		return nil
	}

	attacksOut, err := o.actionsAnalyzer.FindAvailableAttacks(ctx, &actions.FindAvailableAttacksInput{
		State:  state,
		Player: player,
	})
	if err != nil {
		return errors.Wrap(err, "failed to find available attacks")
	}

	best := bestPerformable(attacksOut.Attacks)
	if best == nil {
		opt.ShouldPlay = false
		opt.Reason = "no performable attack to buff"
		return nil
	}

	oppCard, err := o.cardSource.Card(ctx, opp.ActivePokemon.CardID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve opponent active %s", opp.ActivePokemon.CardID)
	}

	perRound := engine.CalculateFinalDamage(engine.DamageContext{
		BaseDamage:       best.BaseDamage,
		Attack:           best.Attack,
		AttackerCard:     best.Card,
		DefenderCard:     oppCard,
		DefenderInstance: opp.ActivePokemon,
		DefenderPlayer:   player.Opponent(),
		State:            state,
		Policy:           engine.GuaranteedPolicy(),
	})
	oppHP := opp.ActivePokemon.CurrentHP

	if perRound >= oppHP {
		opt.ShouldPlay = false
		opt.Reason = "attack already knocks out without the buff"
		return nil
	}

	if perRound+bonus >= oppHP {
		opt.ShouldPlay = true
		opt.Reason = fmt.Sprintf("+%d turns %s into a knockout", bonus, best.Attack.Name)
		opt.Impact.EnablesKnockout = true
		return nil
	}

	// The buff lasts one attack; later rounds are unbuffed
	with := roundsToKnockout(oppHP, perRound+bonus, perRound)
	without := roundsToKnockout(oppHP, perRound, perRound)
	if with < without {
		opt.ShouldPlay = true
		opt.Reason = fmt.Sprintf("+%d shortens the knockout from %d to %d rounds", bonus, without, with)
		opt.Impact.ReducesRoundsToKnockout = true
		return nil
	}

	opt.ShouldPlay = false
	opt.Reason = fmt.Sprintf("+%d does not change the %d-round knockout", bonus, without)
	return nil
}

func (o *orchestrator) evaluateDamageReduction(
	state *entities.GameState,
	player entities.PlayerID,
	threat *opponent.Threat,
	opt *TrainerCardOption,
) {
	effect := findEffect(opt.Card, entities.EffectReduceDamage)
	if effect == nil {
		effect = findEffect(opt.Card, entities.EffectPreventDamage)
	}
	reduction := effect.Value

	active := state.Player(player).ActivePokemon
	sure := threat.SureAttackDamage
	if active == nil || sure == 0 {
		opt.ShouldPlay = false
		opt.Reason = "no incoming damage to reduce"
		return
	}

	if sure >= active.CurrentHP && sure-reduction < active.CurrentHP {
		opt.ShouldPlay = true
		opt.Reason = fmt.Sprintf("reducing %d by %d prevents the knockout", sure, reduction)
		opt.TargetPokemon = active
		opt.Impact.PreventsOurKnockout = true
		opt.Impact.ChangesOpponentSureDamage = true
		return
	}

	// The reduction covers one incoming attack
	with := roundsToKnockout(active.CurrentHP, sure-reduction, sure)
	without := roundsToKnockout(active.CurrentHP, sure, sure)
	if with > without {
		opt.ShouldPlay = true
		opt.Reason = fmt.Sprintf("survives %d incoming rounds instead of %d", with, without)
		opt.TargetPokemon = active
		opt.Impact.IncreasesRoundsWeCanSurvive = true
		return
	}

	opt.ShouldPlay = false
	opt.Reason = "reduction does not change survival"
}

func (o *orchestrator) evaluateDraw(state *entities.GameState, player entities.PlayerID, opt *TrainerCardOption) {
	us := state.Player(player)

	if len(us.Deck) == 0 {
		opt.ShouldPlay = false
		opt.Reason = "deck is empty"
		return
	}

	// Pure draw is always worth it; cards pairing draw with other
	// live effects need their primary effect evaluated instead
	for _, e := range opt.Card.TrainerEffects {
		if e.EffectType != entities.EffectDrawCards && !ignoredEffects[e.EffectType] {
			opt.ShouldPlay = false
			opt.Reason = "draw rides on another effect"
			return
		}
	}

	opt.ShouldPlay = true
	opt.Reason = "draws cards"
	opt.Impact.ImprovesHandSize = true
}

func (o *orchestrator) evaluateEnergyRemoval(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	opt *TrainerCardOption,
) error {
	opp := state.OpponentOf(player)

	var bestInst *entities.CardInstance
	var bestCard *entities.Card
	bestDamage := -1
	for _, inst := range opp.PokemonInPlay() {
		card, err := o.cardSource.Card(ctx, inst.CardID)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve opponent pokemon %s", inst.CardID)
		}

		attached, err := o.energySources(ctx, inst.AttachedEnergy)
		if err != nil {
			return err
		}

		for i := range card.Attacks {
			attack := &card.Attacks[i]
			if !engine.ValidateEnergyRequirements(attack, attached).Valid {
				continue
			}
			if d := engine.ParseBaseDamage(attack.Damage); d > bestDamage {
				bestInst = inst
				bestCard = card
				bestDamage = d
			}
		}
	}

	if bestInst == nil {
		opt.ShouldPlay = false
		opt.Reason = "no opposing pokemon has a powered attack"
		return nil
	}

	opt.ShouldPlay = true
	opt.Reason = fmt.Sprintf("strips energy from %s", bestCard.Name)
	opt.TargetPokemon = bestInst
	opt.TargetCard = bestCard
	opt.Impact.ChangesOpponentSureDamage = bestInst.Position == entities.PositionActive
	return nil
}

// EvaluateSwitchRetreat decides whether the active Pokémon should
// switch out, which bench Pokémon should come in, and what the
// retreat costs.
func (o *orchestrator) EvaluateSwitchRetreat(ctx context.Context, input *EvaluateSwitchRetreatInput) (*EvaluateSwitchRetreatOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("game state is required")
	}
	if input.Player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	us := input.State.Player(input.Player)
	opp := input.State.OpponentOf(input.Player)

	active := us.ActivePokemon
	if active == nil {
		return stay("no active pokemon"), nil
	}

	activeCard, err := o.cardSource.Card(ctx, active.CardID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve active %s", active.CardID)
	}

	if active.HasStatus(entities.StatusParalyzed) {
		return stay("active is paralyzed"), nil
	}
	if activeCard.CannotRetreat {
		return stay("card rule forbids retreat"), nil
	}
	if len(us.PokemonInPlay()) <= 1 {
		return stay("no bench to switch to"), nil
	}

	threatOut, err := o.opponentAnalyzer.AnalyzeThreat(ctx, &opponent.AnalyzeThreatInput{
		State:  input.State,
		Player: input.Player,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze opponent threat")
	}
	threat := threatOut.Threat

	var oppActiveCard *entities.Card
	oppHP := 0
	if opp.ActivePokemon != nil {
		oppActiveCard, err = o.cardSource.Card(ctx, opp.ActivePokemon.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve opponent active %s", opp.ActivePokemon.CardID)
		}
		oppHP = opp.ActivePokemon.CurrentHP
	}

	activeEval, err := o.evaluateAttacker(ctx, input.State, input.Player, active, activeCard, opp.ActivePokemon, oppActiveCard)
	if err != nil {
		return nil, err
	}

	best, err := o.bestBenchCandidate(ctx, input.State, input.Player, threat, opp.ActivePokemon, oppActiveCard)
	if err != nil {
		return nil, err
	}

	decision, reason := o.decide(us, opp, threat, activeEval, best, oppHP)

	opt := &SwitchRetreatOption{
		ShouldSwitch: decision,
		Reason:       reason,
		FreeRetreat:  activeCard.FreeRetreat,
	}
	if best != nil {
		opt.BestBench = best.inst
		opt.BestBenchCard = best.card
	}

	cost := activeCard.RetreatCost
	if activeCard.FreeRetreat || o.handHasSwitch(ctx, us.Hand) {
		cost = 0
	}
	opt.RetreatCost = cost
	opt.CanAffordRetreat = len(active.AttachedEnergy) >= cost

	slog.Debug("Switch evaluated",
		"player", input.Player,
		"should_switch", opt.ShouldSwitch,
		"reason", opt.Reason,
	)

	return &EvaluateSwitchRetreatOutput{Option: opt}, nil
}

func stay(reason string) *EvaluateSwitchRetreatOutput {
	return &EvaluateSwitchRetreatOutput{
		Option: &SwitchRetreatOption{ShouldSwitch: false, Reason: reason},
	}
}

type attackerEval struct {
	inst     *entities.CardInstance
	card     *entities.Card
	damage   int
	canKO    bool
	rounds   int
	coinFlip bool
}

type benchCandidate struct {
	attackerEval
	willSurvive bool
	priority    float64
}

// decide runs the switch cascade. The prize-count gates look at who
// is one knockout from winning: us on ours, the opponent on theirs.
func (o *orchestrator) decide(
	us, opp *entities.PlayerGameState,
	threat *opponent.Threat,
	active attackerEval,
	best *benchCandidate,
	oppHP int,
) (bool, string) {
	// One knockout from winning: take the fastest guaranteed route
	if len(us.PrizeCards) == 1 {
		if best != nil && best.rounds < active.rounds && !best.coinFlip {
			return true, "bench finishes the match faster"
		}
		return false, "active route wins fastest"
	}

	// Losing the active hands the opponent their last prize
	if threat.CanKnockoutActive && len(opp.PrizeCards) == 1 {
		if best != nil && best.willSurvive {
			return true, "bench survives where the active loses the match"
		}
		return false, "no bench pokemon survives either"
	}

	if best != nil && best.canKO && !active.canKO {
		return true, "bench can knock out the opposing active"
	}

	if active.rounds <= 2 && !threat.CanKnockoutActive {
		return false, "active finishes within two rounds unthreatened"
	}

	if threat.CanKnockoutActive && best != nil && best.damage >= active.damage {
		return true, "active is doomed and the bench hits as hard"
	}

	return false, "staying in is no worse"
}

func (o *orchestrator) evaluateAttacker(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	inst *entities.CardInstance,
	card *entities.Card,
	oppActive *entities.CardInstance,
	oppActiveCard *entities.Card,
) (attackerEval, error) {
	eval := attackerEval{inst: inst, card: card, rounds: unreachableRounds}

	attached, err := o.energySources(ctx, inst.AttachedEnergy)
	if err != nil {
		return eval, err
	}

	for i := range card.Attacks {
		attack := &card.Attacks[i]
		if !engine.ValidateEnergyRequirements(attack, attached).Valid {
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
				DefenderPlayer:   player.Opponent(),
				State:            state,
				Policy:           engine.GuaranteedPolicy(),
			})
		}

		if damage > eval.damage {
			eval.damage = damage
			eval.coinFlip = engine.ParseCoinFlip(attack.Text).HasCoinFlip || attack.HasCoinFlipPrecondition()
		}
	}

	if oppActive != nil {
		eval.canKO = eval.damage > 0 && eval.damage >= oppActive.CurrentHP
		eval.rounds = roundsToKnockout(oppActive.CurrentHP, eval.damage, eval.damage)
	}

	return eval, nil
}

func (o *orchestrator) bestBenchCandidate(
	ctx context.Context,
	state *entities.GameState,
	player entities.PlayerID,
	threat *opponent.Threat,
	oppActive *entities.CardInstance,
	oppActiveCard *entities.Card,
) (*benchCandidate, error) {
	us := state.Player(player)

	var best *benchCandidate
	for _, b := range us.Bench {
		if b == nil {
			continue
		}
		card, err := o.cardSource.Card(ctx, b.CardID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve bench pokemon %s", b.CardID)
		}

		eval, err := o.evaluateAttacker(ctx, state, player, b, card, oppActive, oppActiveCard)
		if err != nil {
			return nil, err
		}

		c := benchCandidate{
			attackerEval: eval,
			willSurvive:  b.CurrentHP > threat.SureAttackDamage,
		}
		c.priority = engine.ScorePokemon(card, b)
		if c.canKO {
			c.priority += 1000
		}
		if c.willSurvive {
			c.priority += 100
		}

		if best == nil || c.priority > best.priority {
			best = &c
		}
	}

	return best, nil
}

func (o *orchestrator) handHasSwitch(ctx context.Context, hand []string) bool {
	for _, id := range hand {
		card, err := o.cardSource.Card(ctx, id)
		if err != nil {
			continue
		}
		if !card.IsTrainer() {
			continue
		}
		for _, e := range card.TrainerEffects {
			if e.EffectType == entities.EffectSwitchPokemon {
				return true
			}
		}
	}
	return false
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

func findEffect(card *entities.Card, t entities.TrainerEffectType) *entities.TrainerEffect {
	for i := range card.TrainerEffects {
		if card.TrainerEffects[i].EffectType == t {
			return &card.TrainerEffects[i]
		}
	}
	return nil
}

func bestPerformable(attacks []actions.AttackAnalysis) *actions.AttackAnalysis {
	for i := range attacks {
		if attacks[i].CanPerform {
			return &attacks[i]
		}
	}
	return nil
}

// roundsToKnockout counts attack rounds until hp is exhausted; the
// first round may deal a different amount than the rest
func roundsToKnockout(hp, firstRound, perRound int) int {
	if hp <= 0 {
		return 0
	}
	remaining := hp - firstRound
	rounds := 1
	for remaining > 0 {
		if perRound <= 0 {
			return unreachableRounds
		}
		remaining -= perRound
		rounds++
		if rounds >= unreachableRounds {
			return unreachableRounds
		}
	}
	return rounds
}
