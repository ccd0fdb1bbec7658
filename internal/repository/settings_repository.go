package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ErrNoSettings is returned before the settings row has been seeded.
var ErrNoSettings = errors.New("settings not initialized")

// SettingsRepository provides data access to the single-row settings table.
// The AlphaVantage key is stored as ciphertext; encryption happens in the
// settings service before it reaches this layer.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the settings row. Returns ErrNoSettings when the table is
// empty.
func (s *SettingsRepository) Get() (model.Settings, error) {
	var settings model.Settings
	var provider, currency string

	err := s.db.QueryRow(`
          SELECT dashboard_name, data_provider, alpha_vantage_key,
                 refresh_interval_sec, reporting_currency
          FROM settings
          WHERE id = 1
      `).Scan(
		&settings.DashboardName,
		&provider,
		&settings.AlphaVantageKey,
		&settings.RefreshIntervalSec,
		&currency,
	)
	if err == sql.ErrNoRows {
		return model.Settings{}, ErrNoSettings
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to query settings table: %w", err)
	}

	settings.DataProvider = model.DataProvider(provider)
	settings.ReportingCurrency = model.Currency(currency)
	return settings, nil
}

// Save upserts the settings row.
func (s *SettingsRepository) Save(settings model.Settings) error {
	_, err := s.db.Exec(`
          INSERT INTO settings
              (id, dashboard_name, data_provider, alpha_vantage_key,
               refresh_interval_sec, reporting_currency, updated_at)
          VALUES (1, ?, ?, ?, ?, ?, ?)
          ON CONFLICT(id) DO UPDATE SET
              dashboard_name = excluded.dashboard_name,
              data_provider = excluded.data_provider,
              alpha_vantage_key = excluded.alpha_vantage_key,
              refresh_interval_sec = excluded.refresh_interval_sec,
              reporting_currency = excluded.reporting_currency,
              updated_at = excluded.updated_at
      `,
		settings.DashboardName,
		string(settings.DataProvider),
		settings.AlphaVantageKey,
		settings.RefreshIntervalSec,
		string(settings.ReportingCurrency),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
