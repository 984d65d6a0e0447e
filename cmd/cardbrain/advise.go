package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stclaire/cardbrain/internal/analyzers/actions"
	"github.com/stclaire/cardbrain/internal/analyzers/energyattach"
	"github.com/stclaire/cardbrain/internal/analyzers/opponent"
	"github.com/stclaire/cardbrain/internal/analyzers/trainer"
	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/pkg/clock"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Analyze a board state and print recommendations",
	Long:  `Analyze a game state for the acting player and print the opponent threat picture, energy attachment options, ranked attacks, trainer card plays, and switch advice.`,
	RunE:  runAdvise,
}

func init() {
	registerBoardFlags(adviseCmd)
}

// advice is one full analysis pass over a board state
type advice struct {
	Threat      *opponent.Threat
	Attachments []energyattach.AttachmentOption
	Ranked      []actions.RankedAttack
	Knockouts   []actions.KnockoutAnalysis
	Trainers    []trainer.TrainerCardOption
	Switch      *trainer.SwitchRetreatOption
}

func runAdvise(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, player, set, _, err := loadBoard(ctx)
	if err != nil {
		return err
	}

	clk := clock.New()
	start := clk.Now()

	result, err := analyze(ctx, set, state, player)
	if err != nil {
		return err
	}
	slog.Info("analysis complete", "player", player, "duration", clk.Now().Sub(start))

	printAdvice(cmd.OutOrStdout(), result)
	return nil
}

// analyze runs the independent analyses concurrently. Analyzers are
// stateless and the card source is safe for concurrent use.
func analyze(ctx context.Context, set *analyzerSet, state *entities.GameState, player entities.PlayerID) (*advice, error) {
	result := &advice{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := set.opponent.AnalyzeThreat(gctx, &opponent.AnalyzeThreatInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Threat = out.Threat
		return nil
	})

	g.Go(func() error {
		out, err := set.energy.EvaluateAttachments(gctx, &energyattach.EvaluateAttachmentsInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Attachments = out.Options
		return nil
	})

	g.Go(func() error {
		out, err := set.actions.FindMaximumDamageAttacks(gctx, &actions.FindMaximumDamageAttacksInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Ranked = out.Ranked
		return nil
	})

	g.Go(func() error {
		out, err := set.actions.IdentifyKnockoutAttacks(gctx, &actions.IdentifyKnockoutAttacksInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Knockouts = out.Knockouts
		return nil
	})

	g.Go(func() error {
		out, err := set.trainer.EvaluateTrainerCards(gctx, &trainer.EvaluateTrainerCardsInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Trainers = out.Options
		return nil
	})

	g.Go(func() error {
		out, err := set.trainer.EvaluateSwitchRetreat(gctx, &trainer.EvaluateSwitchRetreatInput{State: state, Player: player})
		if err != nil {
			return err
		}
		result.Switch = out.Option
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func printAdvice(w io.Writer, a *advice) {
	fmt.Fprintln(w, "== Opponent threat ==")
	if t := a.Threat; t != nil {
		fmt.Fprintf(w, "sure damage: %d  risk damage: %d\n", t.SureAttackDamage, t.RiskAttackDamage)
		if t.CanKnockoutActive {
			fmt.Fprintln(w, "opponent can knock out our active this turn")
		}
		if t.MostThreatening != nil {
			fmt.Fprintf(w, "most threatening: %s (%s, score %.1f)\n",
				t.MostThreatening.Name, t.MostThreatening.Position, t.MostThreatening.Score)
		}
	}

	fmt.Fprintln(w, "\n== Energy attachments ==")
	if len(a.Attachments) == 0 {
		fmt.Fprintln(w, "nothing worth attaching")
	}
	for _, opt := range a.Attachments {
		fmt.Fprintf(w, "attach %s to %s (%s): priority %d",
			opt.EnergyCard.Name, opt.Target.CardID, opt.TargetPosition, opt.Priority)
		if opt.EnablesKnockout {
			fmt.Fprint(w, " [knockout]")
		}
		if opt.IsExactMatch {
			fmt.Fprint(w, " [exact]")
		}
		if opt.BestAttack != nil {
			fmt.Fprintf(w, " -> %s for %d", opt.BestAttack.Name, opt.DamageWith)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\n== Attacks ==")
	if len(a.Ranked) == 0 {
		fmt.Fprintln(w, "no performable attack")
	}
	for _, r := range a.Ranked {
		fmt.Fprintf(w, "%s: %s (EV %.1f)", r.Analysis.Card.Name, r.Analysis.Attack.Name, r.ExpectedValue)
		if r.IsKnockout {
			fmt.Fprint(w, " [knockout]")
		}
		fmt.Fprintln(w)
	}

	if len(a.Knockouts) > 0 {
		fmt.Fprintln(w, "\n== Knockouts in range ==")
		for _, ko := range a.Knockouts {
			fmt.Fprintf(w, "%s from %s hits %s for %d (target HP %d)\n",
				ko.Attack.Name, ko.AttackerPosition, ko.TargetPosition, ko.Damage, ko.TargetCurrentHP)
		}
	}

	fmt.Fprintln(w, "\n== Trainer cards ==")
	if len(a.Trainers) == 0 {
		fmt.Fprintln(w, "no trainer cards in hand")
	}
	for _, opt := range a.Trainers {
		verdict := "skip"
		if opt.ShouldPlay {
			verdict = "play"
		}
		fmt.Fprintf(w, "%s (%s): %s, %s\n", opt.Card.Name, opt.Category, verdict, opt.Reason)
	}

	if s := a.Switch; s != nil {
		fmt.Fprintln(w, "\n== Switch / retreat ==")
		if s.ShouldSwitch {
			fmt.Fprintf(w, "switch: %s", s.Reason)
			if s.BestBenchCard != nil {
				fmt.Fprintf(w, " (bring in %s)", s.BestBenchCard.Name)
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "retreat cost %d, affordable: %v\n", s.RetreatCost, s.CanAffordRetreat)
		} else {
			fmt.Fprintf(w, "stay: %s\n", s.Reason)
		}
	}
}
