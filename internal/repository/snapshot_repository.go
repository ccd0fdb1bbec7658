package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ErrNoSnapshot is returned when a snapshot table has no rows yet.
var ErrNoSnapshot = errors.New("no snapshot available")

// SnapshotRepository provides data access to the quote_snapshot and
// fx_snapshot tables. Each refresh cycle overwrites quote rows per symbol
// and appends one fx row, so the dashboard can serve the last known data
// while providers are unreachable.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveQuotes upserts one row per quote, stamped with the provider that
// produced the batch.
func (s *SnapshotRepository) SaveQuotes(quotes []model.Quote, source string, fetchedAt time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin quote snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
          INSERT INTO quote_snapshot
              (symbol, name, price, previous_close, change, change_percent,
               currency, exchange, market_state, source, fetched_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
          ON CONFLICT(symbol) DO UPDATE SET
              name = excluded.name,
              price = excluded.price,
              previous_close = excluded.previous_close,
              change = excluded.change,
              change_percent = excluded.change_percent,
              currency = excluded.currency,
              exchange = excluded.exchange,
              market_state = excluded.market_state,
              source = excluded.source,
              fetched_at = excluded.fetched_at
      `)
	if err != nil {
		return fmt.Errorf("failed to prepare quote snapshot upsert: %w", err)
	}
	defer stmt.Close()

	at := fetchedAt.UTC().Format(time.RFC3339)
	for _, q := range quotes {
		if q.Symbol == "" {
			continue
		}
		_, err := stmt.Exec(
			q.Symbol,
			q.Name,
			q.Price,
			q.PreviousClose,
			q.Change,
			q.ChangePercent,
			string(q.Currency),
			q.Exchange,
			q.MarketState,
			source,
			at,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert quote snapshot for %s: %w", q.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quote snapshot: %w", err)
	}
	return nil
}

// GetQuotes retrieves the cached quotes for the given symbols. Symbols with
// no cached row are simply absent from the result.
func (s *SnapshotRepository) GetQuotes(symbols []string) ([]model.Quote, error) {
	if len(symbols) == 0 {
		return []model.Quote{}, nil
	}

	symbolPlaceholders := make([]string, len(symbols))
	args := make([]any, len(symbols))
	for i, sym := range symbols {
		symbolPlaceholders[i] = "?"
		args[i] = sym
	}

	query := `
          SELECT symbol, name, price, previous_close, change, change_percent,
                 currency, exchange, market_state
          FROM quote_snapshot
          WHERE symbol IN (` + strings.Join(symbolPlaceholders, ",") + `)
      `

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote_snapshot table: %w", err)
	}
	defer rows.Close()

	quotes := []model.Quote{}
	for rows.Next() {
		var q model.Quote
		var currency string

		err := rows.Scan(
			&q.Symbol,
			&q.Name,
			&q.Price,
			&q.PreviousClose,
			&q.Change,
			&q.ChangePercent,
			&currency,
			&q.Exchange,
			&q.MarketState,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote snapshot row: %w", err)
		}
		q.Currency = model.Currency(currency)
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quote snapshot rows: %w", err)
	}
	return quotes, nil
}

// SaveFxRates appends one fx snapshot row.
func (s *SnapshotRepository) SaveFxRates(result forex.Result) error {
	_, err := s.db.Exec(`
          INSERT INTO fx_snapshot (base, usd_rate, gbp_rate, inr_rate, source, fetched_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `,
		string(result.Base),
		result.Rates.USD,
		result.Rates.GBP,
		result.Rates.INR,
		result.Source,
		result.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fx snapshot: %w", err)
	}
	return nil
}

// LatestFxRates retrieves the most recent fx snapshot.
// Returns ErrNoSnapshot if no rates have been persisted yet.
func (s *SnapshotRepository) LatestFxRates() (forex.Result, error) {
	var result forex.Result
	var base, fetchedAt string

	err := s.db.QueryRow(`
          SELECT base, usd_rate, gbp_rate, inr_rate, source, fetched_at
          FROM fx_snapshot
          ORDER BY id DESC
          LIMIT 1
      `).Scan(
		&base,
		&result.Rates.USD,
		&result.Rates.GBP,
		&result.Rates.INR,
		&result.Source,
		&fetchedAt,
	)
	if err == sql.ErrNoRows {
		return forex.Result{}, ErrNoSnapshot
	}
	if err != nil {
		return forex.Result{}, fmt.Errorf("failed to query fx_snapshot table: %w", err)
	}

	result.Base = model.Currency(base)
	result.Timestamp, err = ParseTime(fetchedAt)
	if err != nil {
		return forex.Result{}, fmt.Errorf("failed to parse fx snapshot timestamp: %w", err)
	}
	return result, nil
}

// PruneFxSnapshots deletes fx rows older than the cutoff, keeping the table
// from growing without bound.
func (s *SnapshotRepository) PruneFxSnapshots(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(
		"DELETE FROM fx_snapshot WHERE fetched_at < ?",
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune fx snapshots: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned fx snapshots: %w", err)
	}
	return deleted, nil
}
