package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// Migrations creates the tables used by CardPostgresRepository.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS cards (
		id            TEXT PRIMARY KEY,
		position      INTEGER NOT NULL,
		name          TEXT NOT NULL,
		number        TEXT NOT NULL DEFAULT '',
		pin           TEXT NOT NULL DEFAULT '',
		initial_value NUMERIC NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		is_archived   BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE TABLE IF NOT EXISTS card_transactions (
		id          TEXT PRIMARY KEY,
		card_id     TEXT NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		description TEXT NOT NULL,
		location    TEXT NOT NULL DEFAULT '',
		amount      NUMERIC NOT NULL,
		date        TIMESTAMPTZ NOT NULL
	);`,
}

type cardRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Number       string          `db:"number"`
	PIN          string          `db:"pin"`
	InitialValue decimal.Decimal `db:"initial_value"`
	CreatedAt    time.Time       `db:"created_at"`
	IsArchived   bool            `db:"is_archived"`
}

type transactionRow struct {
	ID          string          `db:"id"`
	CardID      string          `db:"card_id"`
	Description string          `db:"description"`
	Location    string          `db:"location"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
}

// CardPostgresRepository stores cards and transactions in PostgreSQL tables.
type CardPostgresRepository struct {
	db *sqlx.DB
}

func NewCardPostgresRepository(db *sqlx.DB) *CardPostgresRepository {
	return &CardPostgresRepository{db: db}
}

// EnsureSchema runs the migrations.
func (r *CardPostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, m := range Migrations {
		_, err := r.db.ExecContext(ctx, m)

		logger.Log.Infow("migration",
			"query", oneLine(m),
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}

// Load reads every card and its transactions in insertion order.
func (r *CardPostgresRepository) Load(ctx context.Context) ([]models.Card, error) {
	const cardsQuery = `
		SELECT id, name, number, pin, initial_value, created_at, is_archived
		FROM cards
		ORDER BY position
	`
	const txQuery = `
		SELECT id, card_id, description, location, amount, date
		FROM card_transactions
		ORDER BY card_id, position
	`

	var cardRows []cardRow
	err := r.db.SelectContext(ctx, &cardRows, cardsQuery)

	logger.Log.Infow("query",
		"query", oneLine(cardsQuery),
		"result", len(cardRows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var txRows []transactionRow
	err = r.db.SelectContext(ctx, &txRows, txQuery)

	logger.Log.Infow("query",
		"query", oneLine(txQuery),
		"result", len(txRows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	byCard := make(map[string][]models.Transaction, len(cardRows))
	for _, t := range txRows {
		byCard[t.CardID] = append(byCard[t.CardID], models.Transaction{
			ID:          t.ID,
			CardID:      t.CardID,
			Description: t.Description,
			Location:    t.Location,
			Amount:      t.Amount,
			Date:        t.Date.UTC(),
		})
	}

	cards := make([]models.Card, 0, len(cardRows))
	for _, c := range cardRows {
		txs := byCard[c.ID]
		if txs == nil {
			txs = []models.Transaction{}
		}
		cards = append(cards, models.Card{
			ID:           c.ID,
			Name:         c.Name,
			Number:       c.Number,
			PIN:          c.PIN,
			InitialValue: c.InitialValue,
			CreatedAt:    c.CreatedAt.UTC(),
			IsArchived:   c.IsArchived,
			Transactions: txs,
		})
	}
	return cards, nil
}

// Save replaces both tables inside one database transaction.
func (r *CardPostgresRepository) Save(ctx context.Context, cards []models.Card) (err error) {
	const insertCard = `
		INSERT INTO cards (id, position, name, number, pin, initial_value, created_at, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	const insertTransaction = `
		INSERT INTO card_transactions (id, card_id, position, description, location, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}

		logger.Log.Infow("query",
			"query", "replace cards",
			"args", len(cards),
			"error", err,
		)
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM card_transactions`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM cards`); err != nil {
		return err
	}

	for i, c := range cards {
		if _, err = tx.ExecContext(ctx, insertCard,
			c.ID, i, c.Name, c.Number, c.PIN, c.InitialValue, c.CreatedAt, c.IsArchived,
		); err != nil {
			return fmt.Errorf("insert card %s: %w", c.ID, err)
		}
		for j, t := range c.Transactions {
			if _, err = tx.ExecContext(ctx, insertTransaction,
				t.ID, c.ID, j, t.Description, t.Location, t.Amount, t.Date,
			); err != nil {
				return fmt.Errorf("insert transaction %s: %w", t.ID, err)
			}
		}
	}

	return tx.Commit()
}

// oneLine collapses a query onto a single line for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
