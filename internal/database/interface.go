package database

import "context"

// SettingsRepository is the configuration store the preferences layer reads and writes.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	SetSettings(ctx context.Context, values map[string]string) error
	DeleteSetting(ctx context.Context, key string) error
	Settings(ctx context.Context, prefix string) (map[string]string, error)
}

var _ SettingsRepository = (*Database)(nil)
