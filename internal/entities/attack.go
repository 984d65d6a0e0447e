package entities

// AttackEffectType identifies a rider effect on an attack
type AttackEffectType string

// Attack effect types
const (
	AttackEffectStatus        AttackEffectType = "STATUS_CONDITION"
	AttackEffectDiscardEnergy AttackEffectType = "DISCARD_ENERGY"
	AttackEffectRecoil        AttackEffectType = "RECOIL"
	AttackEffectPreventDamage AttackEffectType = "PREVENT_DAMAGE"
	AttackEffectHeal          AttackEffectType = "HEAL"
)

// PreconditionType identifies a requirement an attack declares before
// it resolves
type PreconditionType string

// Precondition types
const (
	PreconditionCoinFlip PreconditionType = "COIN_FLIP"
)

// AttackPrecondition is a declared requirement on an attack
type AttackPrecondition struct {
	Type PreconditionType `json:"type" yaml:"type"`
}

// AttackEffect is a rider effect attached to an attack
type AttackEffect struct {
	Type   AttackEffectType `json:"type" yaml:"type"`
	Target EffectTarget     `json:"target,omitempty" yaml:"target,omitempty"`
	Status StatusCondition  `json:"status,omitempty" yaml:"status,omitempty"`
	Value  int              `json:"value,omitempty" yaml:"value,omitempty"`
	// CoinFlipGated marks effects that only apply on heads
	CoinFlipGated bool `json:"coinFlipGated,omitempty" yaml:"coinFlipGated,omitempty"`
}

// Attack is one attack printed on a Pokémon card. EnergyCost is an
// order-insensitive multiset; COLORLESS entries may be satisfied by
// any energy type. Damage keeps the printed string ("30", "40+",
// "20×"); only the leading integer is parsed as base damage.
type Attack struct {
	Name          string               `json:"name" yaml:"name"`
	EnergyCost    []EnergyType         `json:"energyCost" yaml:"energyCost"`
	Damage        string               `json:"damage" yaml:"damage"`
	Text          string               `json:"text,omitempty" yaml:"text,omitempty"`
	Preconditions []AttackPrecondition `json:"preconditions,omitempty" yaml:"preconditions,omitempty"`
	Effects       []AttackEffect       `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// HasCoinFlipPrecondition reports whether the attack declares a coin
// flip precondition
func (a *Attack) HasCoinFlipPrecondition() bool {
	for _, p := range a.Preconditions {
		if p.Type == PreconditionCoinFlip {
			return true
		}
	}
	return false
}

// StatusEffect returns the first status-condition effect, or nil
func (a *Attack) StatusEffect() *AttackEffect {
	for i := range a.Effects {
		if a.Effects[i].Type == AttackEffectStatus {
			return &a.Effects[i]
		}
	}
	return nil
}

// HasPoisonEffect reports whether any effect poisons
func (a *Attack) HasPoisonEffect() bool {
	for _, e := range a.Effects {
		if e.Type == AttackEffectStatus && e.Status == StatusPoisoned {
			return true
		}
	}
	return false
}

// HasEffectTargeting reports whether any effect targets the given scope
func (a *Attack) HasEffectTargeting(targets ...EffectTarget) bool {
	for _, e := range a.Effects {
		for _, t := range targets {
			if e.Target == t {
				return true
			}
		}
	}
	return false
}
