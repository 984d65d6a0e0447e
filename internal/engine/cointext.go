package engine

import (
	"regexp"
	"strconv"
)

// The three coin-flip text patterns the engine understands. This is
// free-text parsing standing in for a structured effect model; keep
// every caller behind ParseCoinFlip so a future structured migration
// touches one place. Multi-coin patterns ("flip 2 coins...") are
// deliberately not handled here; the risk-damage calculator keeps its
// own local handling for those.
var (
	coinFlipRe     = regexp.MustCompile(`(?i)flip\s+a\s+coin`)
	tailsNothingRe = regexp.MustCompile(`(?i)if\s+tails[^.]*(?:does\s+nothing|nothing\s+happens)`)
	headsBonusRe   = regexp.MustCompile(`(?i)if\s+heads[^.]*?(\d+)\s+more\s+damage`)
)

// CoinFlipProfile is the parsed shape of an attack's coin-flip text
type CoinFlipProfile struct {
	// HasCoinFlip is true when the text mentions flipping a coin
	HasCoinFlip bool
	// TailsDoesNothing marks "if tails, this attack does nothing"
	TailsDoesNothing bool
	// HeadsBonus is N from "if heads ... N more damage", 0 otherwise
	HeadsBonus int
}

// StatusOnly reports whether the flip gates only a non-damage effect:
// a coin flip with neither a damage bonus nor a does-nothing branch.
func (p CoinFlipProfile) StatusOnly() bool {
	return p.HasCoinFlip && !p.TailsDoesNothing && p.HeadsBonus == 0
}

// ParseCoinFlip extracts the coin-flip profile from attack text
func ParseCoinFlip(text string) CoinFlipProfile {
	p := CoinFlipProfile{}
	if text == "" {
		return p
	}

	p.HasCoinFlip = coinFlipRe.MatchString(text)
	if !p.HasCoinFlip {
		return p
	}

	p.TailsDoesNothing = tailsNothingRe.MatchString(text)

	if m := headsBonusRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			p.HeadsBonus = n
		}
	}

	return p
}

// AverageDamage is the expected damage of an attack given its
// coin-flip profile: half for a does-nothing flip, base plus half the
// bonus for a heads-bonus flip, base unchanged otherwise.
func AverageDamage(base int, p CoinFlipProfile) float64 {
	switch {
	case p.TailsDoesNothing:
		return float64(base) / 2
	case p.HeadsBonus > 0:
		return (float64(base) + float64(base+p.HeadsBonus)) / 2
	default:
		return float64(base)
	}
}
