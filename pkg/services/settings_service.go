package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/existential-birds/amelia-sub003/ent"
	"github.com/existential-birds/amelia-sub003/ent/serversetting"
)

// Known server setting keys.
const (
	SettingTraceRetentionDays = "trace_retention_days"
)

// SettingsService reads and writes runtime-tunable server settings that
// override the static config file.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// GetSetting returns the value for a key, or ErrNotFound.
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	setting, err := s.client.ServerSetting.Query().
		Where(serversetting.IDEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return setting.Value, nil
}

// SetSetting upserts a key/value pair.
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ServerSetting.Create().
		SetID(key).
		SetValue(value).
		OnConflictColumns(serversetting.FieldID).
		SetValue(value).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}

	return nil
}

// GetIntSetting returns a setting parsed as int, falling back to def when
// the key is absent.
func (s *SettingsService) GetIntSetting(ctx context.Context, key string, def int) (int, error) {
	raw, err := s.GetSetting(ctx, key)
	if err != nil {
		if err == ErrNotFound {
			return def, nil
		}
		return 0, err
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("setting %s is not an integer: %w", key, err)
	}

	return v, nil
}
