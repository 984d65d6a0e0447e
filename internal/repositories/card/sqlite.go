package card

import (
	"context"
	"encoding/json"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stclaire/cardbrain/internal/entities"
	"github.com/stclaire/cardbrain/internal/errors"
)

// cardRow is the persisted shape of a card: a keyed row with the full
// definition serialized as JSON. The catalog is read-heavy reference
// data; no per-field queries are needed.
type cardRow struct {
	CardID   string `gorm:"primaryKey;column:card_id"`
	Name     string `gorm:"column:name"`
	CardType string `gorm:"column:card_type;index"`
	Data     []byte `gorm:"column:data"`
}

func (cardRow) TableName() string {
	return "cards"
}

// OpenSQLite opens (or creates) the catalog database and migrates the
// schema.
func OpenSQLite(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite catalog")
	}
	if err := db.AutoMigrate(&cardRow{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate card schema")
	}
	return db, nil
}

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	DB *gorm.DB
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("gorm DB is required")
	}
	return nil
}

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository creates a SQLite-backed card catalog
func NewSQLiteRepository(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

var _ Repository = (*sqliteRepository)(nil)

// Get retrieves a single card by id
func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CardID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	var row cardRow
	err := r.db.WithContext(ctx).First(&row, "card_id = ?", input.CardID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFoundf("card not found: %s", input.CardID).
				WithMeta("card_id", input.CardID)
		}
		return nil, errors.Wrapf(err, "failed to query card %s", input.CardID)
	}

	c, err := rowToCard(&row)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Card: c}, nil
}

// GetBatch retrieves several cards at once
func (r *sqliteRepository) GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error) {
	out := &GetBatchOutput{Cards: make(map[string]*entities.Card, len(input.CardIDs))}
	if len(input.CardIDs) == 0 {
		return out, nil
	}
	for _, id := range input.CardIDs {
		if id == "" {
			return nil, errors.InvalidArgument(errCardIDEmpty)
		}
	}

	var rows []cardRow
	if err := r.db.WithContext(ctx).Where("card_id IN ?", input.CardIDs).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to batch query cards")
	}

	for i := range rows {
		c, err := rowToCard(&rows[i])
		if err != nil {
			return nil, err
		}
		out.Cards[c.CardID] = c
	}
	return out, nil
}

// Put stores a card definition, replacing any existing row
func (r *sqliteRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument(errCardNil)
	}
	if input.Card.CardID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal card")
	}

	row := cardRow{
		CardID:   input.Card.CardID,
		Name:     input.Card.Name,
		CardType: string(input.Card.CardType),
		Data:     data,
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store card %s", input.Card.CardID)
	}

	return &PutOutput{Card: input.Card}, nil
}

// List returns every card in the catalog
func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	var rows []cardRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cards")
	}

	out := &ListOutput{Cards: make([]*entities.Card, 0, len(rows))}
	for i := range rows {
		c, err := rowToCard(&rows[i])
		if err != nil {
			return nil, err
		}
		out.Cards = append(out.Cards, c)
	}
	return out, nil
}

func rowToCard(row *cardRow) (*entities.Card, error) {
	var c entities.Card
	if err := json.Unmarshal(row.Data, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal card").
			WithMeta("card_id", row.CardID)
	}
	return &c, nil
}
