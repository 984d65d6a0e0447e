// Package carddata loads card catalogs and game state snapshots from
// YAML documents.
package carddata

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
	"github.com/stclaire/cardbrain/internal/pkg/idgen"
)

// instanceIDs names board instances a hand-authored document left
// anonymous
var instanceIDs idgen.Generator = idgen.NewUUID("inst")

// Catalog is the YAML document shape for a card set
type Catalog struct {
	Name  string           `yaml:"name,omitempty"`
	Cards []*entities.Card `yaml:"cards"`
}

// LoadCatalog reads a card catalog document and indexes it by card
// id. Duplicate or empty ids are document errors.
func LoadCatalog(path string) (map[string]*entities.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML bytes
func ParseCatalog(data []byte) (map[string]*entities.Card, error) {
	var doc Catalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	cards := make(map[string]*entities.Card, len(doc.Cards))
	for i, c := range doc.Cards {
		if c == nil || c.CardID == "" {
			return nil, errors.InvalidArgumentf("catalog entry %d has no card id", i)
		}
		if _, ok := cards[c.CardID]; ok {
			return nil, errors.InvalidArgumentf("duplicate card id %s in catalog", c.CardID)
		}
		cards[c.CardID] = c
	}
	return cards, nil
}

// LoadGameState reads a game state snapshot document
func LoadGameState(path string) (*entities.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read game state %s", path)
	}
	return ParseGameState(data)
}

// ParseGameState parses game state YAML bytes and checks the basic
// document shape.
func ParseGameState(data []byte) (*entities.GameState, error) {
	var state entities.GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse game state")
	}

	vb := errors.NewValidationBuilder()
	if state.Player1State == nil {
		vb.RequiredField("player1State")
	}
	if state.Player2State == nil {
		vb.RequiredField("player2State")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for _, ps := range []*entities.PlayerGameState{state.Player1State, state.Player2State} {
		for _, inst := range ps.PokemonInPlay() {
			if inst.InstanceID == "" {
				inst.InstanceID = instanceIDs.Generate()
			}
		}
	}

	return &state, nil
}

// ReferencedCardIDs returns every card id a state's active play
// references: hands, boards, and attached energy. Discard piles and
// decks are inert for analysis and are not included.
func ReferencedCardIDs(state *entities.GameState) []string {
	seen := map[string]bool{}
	ids := []string{}

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	for _, ps := range []*entities.PlayerGameState{state.Player1State, state.Player2State} {
		if ps == nil {
			continue
		}
		for _, id := range ps.Hand {
			add(id)
		}
		for _, inst := range ps.PokemonInPlay() {
			add(inst.CardID)
			for _, id := range inst.AttachedEnergy {
				add(id)
			}
		}
	}

	return ids
}

// MissingCardIDs returns the referenced card ids the catalog does not
// carry.
func MissingCardIDs(state *entities.GameState, catalog map[string]*entities.Card) []string {
	missing := []string{}
	for _, id := range ReferencedCardIDs(state) {
		if _, ok := catalog[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
