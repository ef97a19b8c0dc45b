package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key and whether it exists.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapSettingErr("get", key, err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// SetSettings stores every value in one transaction, so readers never see
// half of a group such as a timer's settings.
func (d *Database) SetSettings(ctx context.Context, values map[string]string) error {
	var failed string
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for key, value := range values {
			if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value); err != nil {
				failed = key
				return err
			}
		}
		return nil
	})
	return wrapSettingErr("set", failed, err)
}

// DeleteSetting removes key so readers fall back to their defaults.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}

// Settings returns every stored key with the given prefix.
func (d *Database) Settings(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings WHERE key LIKE ? ESCAPE '\\' ORDER BY key", escapeLike(prefix)+"%")
	if err != nil {
		return nil, wrapSettingErr("list", prefix, err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, wrapSettingErr("list", prefix, err)
		}
		if value.Valid {
			out[key] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSettingErr("list", prefix, err)
	}
	return out, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
