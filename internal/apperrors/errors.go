package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrAlertNotFound indicates that an alert with the given ID does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrWatchlistItemNotFound indicates that a symbol is not on the named watchlist.
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")

	// ErrSnapshotNotFound indicates that no market snapshot has been cached yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrMissingSymbols indicates that a quote request named no symbols.
	ErrMissingSymbols = errors.New("symbols parameter is required")

	// ErrMissingSymbol indicates that a chart or alert request named no symbol.
	ErrMissingSymbol = errors.New("symbol is required")

	// ErrInvalidTimeframe indicates an unsupported chart timeframe.
	ErrInvalidTimeframe = errors.New("invalid timeframe")

	// ErrInvalidAlertType indicates an unsupported alert type.
	ErrInvalidAlertType = errors.New("invalid alert type")

	// ErrInvalidBase indicates an unsupported forex base currency.
	ErrInvalidBase = errors.New("invalid base currency")

	// ErrInvalidNumber indicates that a numeric query parameter failed to parse.
	ErrInvalidNumber = errors.New("invalid numeric value")

	// ErrInvalidSettings indicates that a settings update failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)

// Infrastructure errors represent failures in external systems.
var (
	// ErrDatabaseOperation wraps unexpected storage failures.
	ErrDatabaseOperation = errors.New("database operation failed")

	// ErrProviderUnavailable indicates that every provider in a chain failed.
	// The chains degrade to mock data instead of surfacing this to clients;
	// it exists for internal reporting.
	ErrProviderUnavailable = errors.New("all providers unavailable")
)
