package entities

// CardInstance is one physical card in play. Owned exclusively by the
// PlayerGameState that contains it; analyzers explore hypotheticals
// through WithAdditionalEnergy and synthetic copies, never by writing
// through an instance they were handed.
type CardInstance struct {
	InstanceID     string            `json:"instanceId" yaml:"instanceId"`
	CardID         string            `json:"cardId" yaml:"cardId"`
	Position       Position          `json:"position" yaml:"position"`
	CurrentHP      int               `json:"currentHp" yaml:"currentHp"`
	MaxHP          int               `json:"maxHp" yaml:"maxHp"`
	AttachedEnergy []string          `json:"attachedEnergy,omitempty" yaml:"attachedEnergy,omitempty"`
	StatusEffects  []StatusCondition `json:"statusEffects,omitempty" yaml:"statusEffects,omitempty"`
	EvolutionChain []string          `json:"evolutionChain,omitempty" yaml:"evolutionChain,omitempty"`
}

// IsKnockedOut reports whether the Pokémon has no HP left
func (ci *CardInstance) IsKnockedOut() bool {
	return ci.CurrentHP <= 0
}

// DamageTaken returns how much damage the Pokémon currently carries
func (ci *CardInstance) DamageTaken() int {
	d := ci.MaxHP - ci.CurrentHP
	if d < 0 {
		return 0
	}
	return d
}

// HasStatus reports whether the given condition is on the Pokémon
func (ci *CardInstance) HasStatus(cond StatusCondition) bool {
	for _, s := range ci.StatusEffects {
		if s == cond {
			return true
		}
	}
	return false
}

// WithAdditionalEnergy returns a synthetic attached-energy list with
// the candidate energy card appended. The instance is not modified;
// this is the what-if helper every speculative validation goes
// through.
func (ci *CardInstance) WithAdditionalEnergy(energyCardID string) []string {
	out := make([]string, 0, len(ci.AttachedEnergy)+1)
	out = append(out, ci.AttachedEnergy...)
	return append(out, energyCardID)
}

// CanReceiveEnergy reports whether energy may be attached to this
// Pokémon. Always true today; the hook exists for energy-blocking
// abilities.
func (ci *CardInstance) CanReceiveEnergy() bool {
	return true
}

// NewHandInstance builds a synthetic full-HP instance for a Pokémon
// card still in hand, used when scoring hand Pokémon.
func NewHandInstance(card *Card) *CardInstance {
	return &CardInstance{
		InstanceID: "hand_" + card.CardID,
		CardID:     card.CardID,
		Position:   PositionHand,
		CurrentHP:  card.HP,
		MaxHP:      card.HP,
	}
}
