package engine

import (
	"strconv"
	"strings"

	"github.com/stclaire/cardbrain/internal/entities"
)

// ParseBaseDamage extracts the leading integer from a printed damage
// string ("30", "40+", "20×"). Malformed or empty strings parse to 0,
// meaning "no numeric damage", not an error.
func ParseBaseDamage(damage string) int {
	s := strings.TrimSpace(damage)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// DamagePolicy supplies the caller-controlled steps of the damage
// pipeline. The same pipeline answers "what damage is guaranteed" and
// "what damage is possible" depending on which policy is passed in.
type DamagePolicy struct {
	// Name labels the policy in logs
	Name string

	// PlusBonus returns the conditional bonus damage from attack text
	// (coin-flip riders and similar)
	PlusBonus func(attack *entities.Attack, base int) int

	// MinusReduction returns card-specific damage reduction
	MinusReduction func(attack *entities.Attack, base int) int
}

// GuaranteedPolicy resolves every conditional against the attacker:
// no bonus applies, no reduction applies. This is the pessimistic
// "sure damage" view.
func GuaranteedPolicy() DamagePolicy {
	return DamagePolicy{
		Name:           "guaranteed",
		PlusBonus:      func(*entities.Attack, int) int { return 0 },
		MinusReduction: func(*entities.Attack, int) int { return 0 },
	}
}

// BestCasePolicy resolves every coin flip favorably for the attacker:
// heads bonuses land, "does nothing" branches never happen.
func BestCasePolicy() DamagePolicy {
	return DamagePolicy{
		Name: "best_case",
		PlusBonus: func(attack *entities.Attack, base int) int {
			return ParseCoinFlip(attack.Text).HeadsBonus
		},
		MinusReduction: func(*entities.Attack, int) int { return 0 },
	}
}

// DamageContext bundles everything one damage calculation needs
type DamageContext struct {
	BaseDamage       int
	Attack           *entities.Attack
	AttackerCard     *entities.Card
	DefenderCard     *entities.Card
	DefenderInstance *entities.CardInstance
	DefenderPlayer   entities.PlayerID
	State            *entities.GameState
	Policy           DamagePolicy
}

// CalculateFinalDamage runs the damage pipeline: base damage, then
// weakness, resistance, the policy's bonus and reduction steps, and
// finally any damage-prevention effect scoped to the defender
// instance. A prevention amount of "all" forces the result to 0
// regardless of earlier steps. The result is never negative and the
// calculation has no side effects.
func CalculateFinalDamage(ctx DamageContext) int {
	damage := ctx.BaseDamage

	if w := ctx.DefenderCard.Weakness; w != nil && ctx.AttackerCard != nil && w.EnergyType == ctx.AttackerCard.PokemonType {
		damage = applyModifier(damage, w.Modifier)
	}

	if r := ctx.DefenderCard.Resistance; r != nil && ctx.AttackerCard != nil && r.EnergyType == ctx.AttackerCard.PokemonType {
		damage = applyModifier(damage, r.Modifier)
		if damage < 0 {
			damage = 0
		}
	}

	if ctx.Policy.PlusBonus != nil {
		damage += ctx.Policy.PlusBonus(ctx.Attack, ctx.BaseDamage)
	}

	if ctx.Policy.MinusReduction != nil {
		damage -= ctx.Policy.MinusReduction(ctx.Attack, ctx.BaseDamage)
	}

	if ctx.State != nil && ctx.DefenderInstance != nil {
		if p := ctx.State.PreventionFor(ctx.DefenderPlayer, ctx.DefenderInstance.InstanceID); p != nil {
			if p.Amount.All {
				return 0
			}
			damage -= p.Amount.Value
		}
	}

	if damage < 0 {
		return 0
	}
	return damage
}

func applyModifier(damage int, m entities.Modifier) int {
	switch m.Op {
	case entities.ModMultiply:
		return damage * m.Value
	case entities.ModAdd:
		return damage + m.Value
	case entities.ModSubtract:
		return damage - m.Value
	default:
		return damage
	}
}
