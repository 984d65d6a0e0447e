package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stclaire/cardbrain/internal/engine"
)

func TestParseCoinFlip(t *testing.T) {
	tests := []struct {
		name string
		text string
		want engine.CoinFlipProfile
	}{
		{
			name: "no coin flip",
			text: "Discard 1 Energy card attached to this Pokémon.",
			want: engine.CoinFlipProfile{},
		},
		{
			name: "tails does nothing",
			text: "Flip a coin. If tails, this attack does nothing.",
			want: engine.CoinFlipProfile{HasCoinFlip: true, TailsDoesNothing: true},
		},
		{
			name: "heads bonus",
			text: "Flip a coin. If heads, this attack does 20 more damage.",
			want: engine.CoinFlipProfile{HasCoinFlip: true, HeadsBonus: 20},
		},
		{
			name: "status only flip",
			text: "Flip a coin. If heads, the Defending Pokémon is now Paralyzed.",
			want: engine.CoinFlipProfile{HasCoinFlip: true},
		},
		{
			name: "empty text",
			text: "",
			want: engine.CoinFlipProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ParseCoinFlip(tt.text))
		})
	}
}

func TestCoinFlipStatusOnly(t *testing.T) {
	statusOnly := engine.ParseCoinFlip("Flip a coin. If heads, the Defending Pokémon is now Asleep.")
	assert.True(t, statusOnly.StatusOnly())

	withBonus := engine.ParseCoinFlip("Flip a coin. If heads, this attack does 10 more damage.")
	assert.False(t, withBonus.StatusOnly())

	noFlip := engine.ParseCoinFlip("Does 10 damage to itself.")
	assert.False(t, noFlip.StatusOnly())
}

func TestAverageDamage(t *testing.T) {
	tests := []struct {
		name string
		base int
		text string
		want float64
	}{
		{"tails nothing halves", 40, "Flip a coin. If tails, this attack does nothing.", 20},
		{"heads bonus averages", 30, "Flip a coin. If heads, this attack does 20 more damage.", 40},
		{"status-only flip leaves base", 30, "Flip a coin. If heads, the Defending Pokémon is now Poisoned.", 30},
		{"no flip leaves base", 50, "", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.ParseCoinFlip(tt.text)
			assert.InDelta(t, tt.want, engine.AverageDamage(tt.base, p), 0.001)
		})
	}
}
