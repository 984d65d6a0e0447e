package entities

// PlayerGameState is one player's half of the match
type PlayerGameState struct {
	Deck                      []string        `json:"deck" yaml:"deck"`
	Hand                      []string        `json:"hand" yaml:"hand"`
	ActivePokemon             *CardInstance   `json:"activePokemon,omitempty" yaml:"activePokemon,omitempty"`
	Bench                     []*CardInstance `json:"bench,omitempty" yaml:"bench,omitempty"`
	PrizeCards                []string        `json:"prizeCards" yaml:"prizeCards"`
	DiscardPile               []string        `json:"discardPile,omitempty" yaml:"discardPile,omitempty"`
	HasAttachedEnergyThisTurn bool            `json:"hasAttachedEnergyThisTurn" yaml:"hasAttachedEnergyThisTurn"`
}

// PokemonInPlay returns the active Pokémon followed by the bench.
// Never includes nil entries.
func (ps *PlayerGameState) PokemonInPlay() []*CardInstance {
	out := make([]*CardInstance, 0, 1+len(ps.Bench))
	if ps.ActivePokemon != nil {
		out = append(out, ps.ActivePokemon)
	}
	for _, b := range ps.Bench {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

// PokemonAt returns the Pokémon in the given position, or nil
func (ps *PlayerGameState) PokemonAt(pos Position) *CardInstance {
	if pos == PositionActive {
		return ps.ActivePokemon
	}
	for _, b := range ps.Bench {
		if b != nil && b.Position == pos {
			return b
		}
	}
	return nil
}

// PreventionAmount is how much incoming damage a prevention effect
// absorbs. All overrides every other pipeline step and forces the
// final damage to zero.
type PreventionAmount struct {
	All   bool `json:"all,omitempty" yaml:"all,omitempty"`
	Value int  `json:"value,omitempty" yaml:"value,omitempty"`
}

// DamagePrevention is a transient per-instance modifier queried during
// damage calculation. It lives on the GameState, not the CardInstance,
// because it is scoped to the current exchange.
type DamagePrevention struct {
	Player     PlayerID         `json:"player" yaml:"player"`
	InstanceID string           `json:"instanceId" yaml:"instanceId"`
	Amount     PreventionAmount `json:"amount" yaml:"amount"`
}

// CoinFlipState tracks a pending coin flip awaiting resolution
type CoinFlipState struct {
	Pending bool   `json:"pending" yaml:"pending"`
	Count   int    `json:"count,omitempty" yaml:"count,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// GameState is the full snapshot of a match in progress. Analyzers
// treat it as immutable; every hypothetical change is expressed as a
// new value.
type GameState struct {
	Player1State  *PlayerGameState `json:"player1State" yaml:"player1State"`
	Player2State  *PlayerGameState `json:"player2State" yaml:"player2State"`
	TurnNumber    int              `json:"turnNumber" yaml:"turnNumber"`
	Phase         Phase            `json:"phase" yaml:"phase"`
	CurrentPlayer PlayerID         `json:"currentPlayer" yaml:"currentPlayer"`
	LastAction    string           `json:"lastAction,omitempty" yaml:"lastAction,omitempty"`
	ActionHistory []string         `json:"actionHistory,omitempty" yaml:"actionHistory,omitempty"`
	CoinFlip      *CoinFlipState   `json:"coinFlipState,omitempty" yaml:"coinFlipState,omitempty"`

	// AbilityUsageThisTurn records which card ids used an ability this
	// turn, per player
	AbilityUsageThisTurn map[PlayerID]map[string]bool `json:"abilityUsageThisTurn,omitempty" yaml:"abilityUsageThisTurn,omitempty"`

	// DamagePreventions are transient modifiers for the current
	// exchange, installed via WithDamagePrevention
	DamagePreventions []DamagePrevention `json:"damagePreventions,omitempty" yaml:"damagePreventions,omitempty"`
}

// Player returns the state for the given player id
func (gs *GameState) Player(id PlayerID) *PlayerGameState {
	if id == Player1 {
		return gs.Player1State
	}
	return gs.Player2State
}

// OpponentOf returns the state for the other player
func (gs *GameState) OpponentOf(id PlayerID) *PlayerGameState {
	return gs.Player(id.Opponent())
}

// WithDamagePrevention returns a new GameState with a prevention
// effect installed for the given instance. The receiver is unchanged.
func (gs *GameState) WithDamagePrevention(player PlayerID, instanceID string, amount PreventionAmount) *GameState {
	next := *gs
	next.DamagePreventions = make([]DamagePrevention, 0, len(gs.DamagePreventions)+1)
	next.DamagePreventions = append(next.DamagePreventions, gs.DamagePreventions...)
	next.DamagePreventions = append(next.DamagePreventions, DamagePrevention{
		Player:     player,
		InstanceID: instanceID,
		Amount:     amount,
	})
	return &next
}

// PreventionFor returns the active prevention effect for an instance,
// or nil
func (gs *GameState) PreventionFor(player PlayerID, instanceID string) *DamagePrevention {
	for i := range gs.DamagePreventions {
		p := &gs.DamagePreventions[i]
		if p.Player == player && p.InstanceID == instanceID {
			return p
		}
	}
	return nil
}
