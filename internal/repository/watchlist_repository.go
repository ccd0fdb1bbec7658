package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// WatchlistRepository provides data access to the watchlist_item and alert
// tables.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// GetItems retrieves all symbols on the named watchlist, oldest first.
func (s *WatchlistRepository) GetItems(list string) ([]model.WatchlistItem, error) {
	rows, err := s.db.Query(`
          SELECT list, symbol, added_at
          FROM watchlist_item
          WHERE list = ?
          ORDER BY added_at
      `, list)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist_item table: %w", err)
	}
	defer rows.Close()

	items := []model.WatchlistItem{}
	for rows.Next() {
		var item model.WatchlistItem
		var addedAt string

		if err := rows.Scan(&item.List, &item.Symbol, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		item.AddedAt, err = ParseTime(addedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse watchlist timestamp: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist rows: %w", err)
	}
	return items, nil
}

// AddItem adds a symbol to a watchlist. Adding an existing symbol is a
// no-op.
func (s *WatchlistRepository) AddItem(item model.WatchlistItem) error {
	_, err := s.db.Exec(`
          INSERT INTO watchlist_item (list, symbol, added_at)
          VALUES (?, ?, ?)
          ON CONFLICT(list, symbol) DO NOTHING
      `, item.List, item.Symbol, item.AddedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert watchlist item: %w", err)
	}
	return nil
}

// RemoveItem removes a symbol from a watchlist. Returns true if a row was
// deleted.
func (s *WatchlistRepository) RemoveItem(list, symbol string) (bool, error) {
	result, err := s.db.Exec(
		"DELETE FROM watchlist_item WHERE list = ? AND symbol = ?",
		list, symbol,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete watchlist item: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted watchlist items: %w", err)
	}
	return deleted > 0, nil
}

// HasItem reports whether a symbol is on the named watchlist.
func (s *WatchlistRepository) HasItem(list, symbol string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(1) FROM watchlist_item WHERE list = ? AND symbol = ?",
		list, symbol,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query watchlist membership: %w", err)
	}
	return count > 0, nil
}

// CreateAlert persists a new price alert.
func (s *WatchlistRepository) CreateAlert(alert model.Alert) error {
	_, err := s.db.Exec(`
          INSERT INTO alert (id, symbol, type, condition, message, triggered, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `,
		alert.ID,
		alert.Symbol,
		string(alert.Type),
		alert.Condition,
		alert.Message,
		boolToInt(alert.Triggered),
		alert.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// GetAlerts retrieves alerts, newest first. Pass activeOnly to exclude
// alerts that have already fired.
func (s *WatchlistRepository) GetAlerts(activeOnly bool) ([]model.Alert, error) {
	query := `
          SELECT id, symbol, type, condition, message, triggered, created_at
          FROM alert
      `
	if activeOnly {
		query += " WHERE triggered = 0"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert table: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		var a model.Alert
		var alertType, createdAt string
		var triggered int

		err := rows.Scan(
			&a.ID,
			&a.Symbol,
			&alertType,
			&a.Condition,
			&a.Message,
			&triggered,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		a.Type = model.AlertType(alertType)
		a.Triggered = triggered != 0
		a.CreatedAt, err = ParseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse alert timestamp: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alert rows: %w", err)
	}
	return alerts, nil
}

// MarkTriggered flags an alert as fired so it is not raised twice.
func (s *WatchlistRepository) MarkTriggered(alertID string) error {
	_, err := s.db.Exec("UPDATE alert SET triggered = 1 WHERE id = ?", alertID)
	if err != nil {
		return fmt.Errorf("failed to mark alert triggered: %w", err)
	}
	return nil
}

// DeleteAlert removes an alert. Returns true if a row was deleted.
func (s *WatchlistRepository) DeleteAlert(alertID string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM alert WHERE id = ?", alertID)
	if err != nil {
		return false, fmt.Errorf("failed to delete alert: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted alerts: %w", err)
	}
	return deleted > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
