package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	"github.com/stclaire/cardbrain/internal/engine"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/pkg/coin"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Resolve the recommended attack with live coin flips",
	Long:  `Run the attack analysis for the acting player, pick the top recommendation, and resolve its coin flip (if any) with a real flip to show the damage that lands.`,
	RunE:  runDemo,
}

func init() {
	registerBoardFlags(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, player, set, source, err := loadBoard(ctx)
	if err != nil {
		return err
	}

	out, err := set.actions.FindMaximumDamageAttacks(ctx, &actions.FindMaximumDamageAttacksInput{State: state, Player: player})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Ranked) == 0 {
		fmt.Fprintln(w, "no performable attack this turn")
		return nil
	}

	defender := state.OpponentOf(player).ActivePokemon
	if defender == nil {
		fmt.Fprintln(w, "opponent has no active Pokémon to attack")
		return nil
	}

	defenderCard, err := source.Card(ctx, defender.CardID)
	if err != nil {
		return err
	}

	top := out.Ranked[0]
	return resolveAttack(w, coin.New(), top, state, player, defender, defenderCard)
}

// resolveAttack plays the chosen attack forward: flip the coin when
// the text calls for one, then run the damage pipeline with the
// outcome that actually happened.
func resolveAttack(w io.Writer, flipper coin.Flipper, top actions.RankedAttack, state *entities.GameState, player entities.PlayerID, defender *entities.CardInstance, defenderCard *entities.Card) error {
	fmt.Fprintf(w, "%s uses %s against %s\n", top.Analysis.Card.Name, top.Analysis.Attack.Name, defenderCard.Name)

	profile := engine.ParseCoinFlip(top.Analysis.Attack.Text)
	policy := engine.GuaranteedPolicy()
	doesNothing := false

	if profile.HasCoinFlip {
		result, err := flipper.Flip()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "coin flip: %s\n", result)

		switch {
		case result == coin.Heads && profile.HeadsBonus > 0:
			policy = engine.BestCasePolicy()
		case result == coin.Tails && profile.TailsDoesNothing:
			doesNothing = true
		}
	}

	if doesNothing {
		fmt.Fprintln(w, "the attack does nothing")
		return nil
	}

	damage := engine.CalculateFinalDamage(engine.DamageContext{
		BaseDamage:       top.Analysis.BaseDamage,
		Attack:           top.Analysis.Attack,
		AttackerCard:     top.Analysis.Card,
		DefenderCard:     defenderCard,
		DefenderInstance: defender,
		DefenderPlayer:   player.Opponent(),
		State:            state,
		Policy:           policy,
	})

	fmt.Fprintf(w, "%d damage to %s (%d HP)\n", damage, defenderCard.Name, defender.CurrentHP)
	if damage >= defender.CurrentHP {
		fmt.Fprintf(w, "%s is knocked out\n", defenderCard.Name)
	}
	return nil
}
