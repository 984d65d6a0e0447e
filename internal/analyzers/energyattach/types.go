package energyattach

import (
	"github.com/stclaire/cardbrain/internal/entities"
)

// AttachmentOption is one (energy card, target Pokémon) pairing that
// survived evaluation, annotated with everything ranking needs.
type AttachmentOption struct {
	EnergyCardID string
	EnergyCard   *entities.Card

	Target         *entities.CardInstance
	TargetPosition entities.Position

	// BestAttack is the highest-damage attack performable once the
	// energy is attached
	BestAttack *entities.Attack

	// DamageWith is BestAttack's damage against the opponent's active
	// Pokémon
	DamageWith int

	// DamageWithout is the best damage already available before the
	// attachment, nil when no attack is performable today
	DamageWithout *int

	EnablesKnockout bool
	IncreasesDamage bool

	// IsExactMatch is true when the energy covers exactly what the
	// attack still needs, no overflow
	IsExactMatch bool

	// TurnsToEnable is 1 when the attack works immediately, otherwise
	// 1 plus the energy units still missing after this attachment
	TurnsToEnable int

	// IsSameTypeAsAttached is true when the energy shares a type with
	// energy already on the target
	IsSameTypeAsAttached bool

	Priority int
}

// EvaluateAttachmentsInput holds the parameters for
// EvaluateAttachments
type EvaluateAttachmentsInput struct {
	State  *entities.GameState
	Player entities.PlayerID
}

// EvaluateAttachmentsOutput holds the surviving options, best first.
// Empty when the hand has no energy or nothing is worth attaching.
type EvaluateAttachmentsOutput struct {
	Options []AttachmentOption
}
