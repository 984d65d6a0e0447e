// Package entities holds the card and game state model. Card
// definitions are immutable after load; game state values are mutated
// only by replacement (copy-on-write), never written through by
// analyzers.
package entities

// ModifierOp is how a weakness/resistance modifier combines with damage
type ModifierOp string

// Modifier operations
const (
	ModMultiply ModifierOp = "MULTIPLY"
	ModAdd      ModifierOp = "ADD"
	ModSubtract ModifierOp = "SUBTRACT"
)

// Modifier is a parsed weakness or resistance modifier, e.g. ×2 for
// weakness or -30 for resistance. Parsed once at catalog load, never
// re-derived from card text.
type Modifier struct {
	Op    ModifierOp `json:"op" yaml:"op"`
	Value int        `json:"value" yaml:"value"`
}

// TypeModifier binds a modifier to the attacking energy type that
// triggers it
type TypeModifier struct {
	EnergyType EnergyType `json:"energyType" yaml:"energyType"`
	Modifier   Modifier   `json:"modifier" yaml:"modifier"`
}

// EnergyProvision describes an energy card that counts as more than
// one unit, e.g. Double Colorless provides 2×COLORLESS.
type EnergyProvision struct {
	// EnergyTypes lists the types provided; units cycle through the
	// list when Amount exceeds its length
	EnergyTypes []EnergyType `json:"energyTypes" yaml:"energyTypes"`
	Amount      int          `json:"amount" yaml:"amount"`
}

// TrainerEffect is one effect printed on a trainer card
type TrainerEffect struct {
	EffectType TrainerEffectType `json:"effectType" yaml:"effectType"`
	Target     EffectTarget      `json:"target,omitempty" yaml:"target,omitempty"`
	Value      int               `json:"value,omitempty" yaml:"value,omitempty"`
}

// Card is an immutable card definition keyed by CardID. Exactly one of
// the Pokémon / trainer / energy field groups is populated, per
// CardType.
type Card struct {
	CardID   string   `json:"cardId" yaml:"cardId"`
	Name     string   `json:"name" yaml:"name"`
	CardType CardType `json:"cardType" yaml:"cardType"`

	// Pokémon fields
	HP          int           `json:"hp,omitempty" yaml:"hp,omitempty"`
	PokemonType EnergyType    `json:"pokemonType,omitempty" yaml:"pokemonType,omitempty"`
	Attacks     []Attack      `json:"attacks,omitempty" yaml:"attacks,omitempty"`
	Weakness    *TypeModifier `json:"weakness,omitempty" yaml:"weakness,omitempty"`
	Resistance  *TypeModifier `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	RetreatCost int           `json:"retreatCost,omitempty" yaml:"retreatCost,omitempty"`
	// FreeRetreat marks a card rule that waives retreat cost
	FreeRetreat bool `json:"freeRetreat,omitempty" yaml:"freeRetreat,omitempty"`
	// CannotRetreat marks a card rule that forbids retreating
	CannotRetreat bool `json:"cannotRetreat,omitempty" yaml:"cannotRetreat,omitempty"`

	// Energy fields
	EnergyType      EnergyType       `json:"energyType,omitempty" yaml:"energyType,omitempty"`
	EnergyProvision *EnergyProvision `json:"energyProvision,omitempty" yaml:"energyProvision,omitempty"`

	// Trainer fields
	TrainerType    TrainerType     `json:"trainerType,omitempty" yaml:"trainerType,omitempty"`
	TrainerEffects []TrainerEffect `json:"trainerEffects,omitempty" yaml:"trainerEffects,omitempty"`
}

// IsPokemon reports whether the card is a Pokémon card
func (c *Card) IsPokemon() bool {
	return c.CardType == CardTypePokemon
}

// IsEnergy reports whether the card is an energy card
func (c *Card) IsEnergy() bool {
	return c.CardType == CardTypeEnergy
}

// IsTrainer reports whether the card is a trainer card
func (c *Card) IsTrainer() bool {
	return c.CardType == CardTypeTrainer
}

// ProvidedTypes returns the distinct energy types this energy card can
// supply: the provision list when present, else the card's own type.
func (c *Card) ProvidedTypes() []EnergyType {
	if c.EnergyProvision != nil && len(c.EnergyProvision.EnergyTypes) > 0 {
		seen := make(map[EnergyType]bool, len(c.EnergyProvision.EnergyTypes))
		var types []EnergyType
		for _, et := range c.EnergyProvision.EnergyTypes {
			if !seen[et] {
				seen[et] = true
				types = append(types, et)
			}
		}
		return types
	}
	if c.EnergyType != "" {
		return []EnergyType{c.EnergyType}
	}
	return nil
}

// ProvidedUnits expands this energy card into the individual energy
// units it contributes. A plain energy card contributes one unit of
// its type; a provision card contributes Amount units cycling through
// its listed types.
func (c *Card) ProvidedUnits() []EnergyType {
	if c.EnergyProvision != nil && c.EnergyProvision.Amount > 0 && len(c.EnergyProvision.EnergyTypes) > 0 {
		units := make([]EnergyType, 0, c.EnergyProvision.Amount)
		for i := 0; i < c.EnergyProvision.Amount; i++ {
			units = append(units, c.EnergyProvision.EnergyTypes[i%len(c.EnergyProvision.EnergyTypes)])
		}
		return units
	}
	if c.EnergyType != "" {
		return []EnergyType{c.EnergyType}
	}
	return nil
}
