// Package settings manages per-dashboard preferences. The AlphaVantage API
// key is encrypted with fernet before it touches the database.
package settings

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
)

// ErrInvalidKey is returned when a stored API key cannot be decrypted,
// usually because the encryption key changed.
var ErrInvalidKey = errors.New("cannot decrypt stored api key")

// Service reads and writes dashboard settings.
type Service struct {
	repo *repository.SettingsRepository
	keys []*fernet.Key
}

// NewService creates a settings service. encryptionKey is a base64 fernet
// key; when empty, API keys are stored in plaintext.
func NewService(repo *repository.SettingsRepository, encryptionKey string) (*Service, error) {
	svc := &Service{repo: repo}

	if encryptionKey != "" {
		key, err := fernet.DecodeKey(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode settings encryption key: %w", err)
		}
		svc.keys = []*fernet.Key{key}
	}
	return svc, nil
}

// Get returns the current settings with the API key decrypted. Before any
// settings have been saved it returns the defaults.
func (s *Service) Get() (model.Settings, error) {
	stored, err := s.repo.Get()
	if err == repository.ErrNoSettings {
		return model.DefaultSettings, nil
	}
	if err != nil {
		return model.Settings{}, err
	}

	if stored.AlphaVantageKey != "" {
		plaintext, err := s.decrypt(stored.AlphaVantageKey)
		if err != nil {
			return model.Settings{}, err
		}
		stored.AlphaVantageKey = plaintext
	}
	return stored, nil
}

// Update validates and persists new settings, encrypting the API key.
func (s *Service) Update(settings model.Settings) error {
	if err := validate(settings); err != nil {
		return err
	}

	if settings.AlphaVantageKey != "" {
		ciphertext, err := s.encrypt(settings.AlphaVantageKey)
		if err != nil {
			return err
		}
		settings.AlphaVantageKey = ciphertext
	}
	return s.repo.Save(settings)
}

func validate(settings model.Settings) error {
	if settings.DashboardName == "" {
		return fmt.Errorf("%w: dashboard name is required", apperrors.ErrInvalidSettings)
	}
	switch settings.DataProvider {
	case model.ProviderYahoo, model.ProviderAlphaVantage:
	default:
		return fmt.Errorf("%w: unknown data provider %q", apperrors.ErrInvalidSettings, settings.DataProvider)
	}
	if settings.RefreshIntervalSec < 5 {
		return fmt.Errorf("%w: refresh interval must be at least 5 seconds", apperrors.ErrInvalidSettings)
	}
	switch settings.ReportingCurrency {
	case model.EUR, model.USD, model.GBP:
	default:
		return fmt.Errorf("%w: unknown reporting currency %q", apperrors.ErrInvalidSettings, settings.ReportingCurrency)
	}
	return nil
}

func (s *Service) encrypt(plaintext string) (string, error) {
	if len(s.keys) == 0 {
		return plaintext, nil
	}
	token, err := fernet.EncryptAndSign([]byte(plaintext), s.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt api key: %w", err)
	}
	return string(token), nil
}

func (s *Service) decrypt(ciphertext string) (string, error) {
	if len(s.keys) == 0 {
		return ciphertext, nil
	}
	plaintext := fernet.VerifyAndDecrypt([]byte(ciphertext), 0, s.keys)
	if plaintext == nil {
		return "", ErrInvalidKey
	}
	return string(plaintext), nil
}
