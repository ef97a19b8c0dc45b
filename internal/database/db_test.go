package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		db, err := Open(ctx, dbPath)
		if err != nil {
			t.Fatalf("Open #%d failed: %v", i, err)
		}
		v, err := db.SchemaVersion(ctx)
		if err != nil {
			t.Fatalf("SchemaVersion failed: %v", err)
		}
		if v != schemaVersion {
			t.Fatalf("schema version = %d, want %d", v, schemaVersion)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("db close failed: %v", err)
		}
	}
}

func TestOpen_FoldsLegacySoundKeys(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "legacy.db")
	raw, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	for _, stmt := range []string{
		`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT)`,
		`INSERT INTO settings (key, value) VALUES ('sound/enabled', '1'), ('sound/device', 'speaker')`,
	} {
		if _, err := raw.Exec(stmt); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	if err := raw.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	mode, ok, err := db.GetSetting(ctx, "sound/mode")
	if err != nil || !ok || mode != "speaker" {
		t.Fatalf("sound/mode = %q, %v, %v", mode, ok, err)
	}
	if _, ok, _ := db.GetSetting(ctx, "sound/device"); ok {
		t.Fatalf("legacy key should be removed")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok, err := db.GetSetting(ctx, "timers/rest_break/limit"); err != nil || ok {
		t.Fatalf("expected missing setting, ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, "timers/rest_break/limit", "2700"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "timers/rest_break/limit", "3000"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	v, ok, err := db.GetSetting(ctx, "timers/rest_break/limit")
	if err != nil || !ok || v != "3000" {
		t.Fatalf("GetSetting = %q, %v, %v", v, ok, err)
	}
	if err := db.DeleteSetting(ctx, "timers/rest_break/limit"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok, _ := db.GetSetting(ctx, "timers/rest_break/limit"); ok {
		t.Fatalf("expected setting to be deleted")
	}
}

func TestSettingsByPrefix(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for k, v := range map[string]string{
		"timers/micro_pause/limit": "180",
		"timers/rest_break/limit":  "2700",
		"timersX/other":            "1",
		"sound/mode":               "none",
	} {
		if err := db.SetSetting(ctx, k, v); err != nil {
			t.Fatalf("SetSetting(%s) failed: %v", k, err)
		}
	}
	got, err := db.Settings(ctx, "timers/")
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if len(got) != 2 || got["timers/rest_break/limit"] != "2700" {
		t.Fatalf("unexpected settings: %v", got)
	}
	if _, ok := got["timersX/other"]; ok {
		t.Fatalf("prefix match leaked")
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`a_b%c\d`); got != `a\_b\%c\\d` {
		t.Fatalf("escapeLike = %q", got)
	}
}

func TestClosedDatabaseWrapsErrors(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	err := db.SetSetting(ctx, "k", "v")
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if opErr.Op != "set" || opErr.Key != "k" {
		t.Fatalf("unexpected OpError: %+v", opErr)
	}
}

func TestOpError(t *testing.T) {
	inner := errors.New("boom")
	err := &OpError{Op: "get", Resource: "setting", Key: "a", Err: inner}
	if err.Error() != "get setting a: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected Unwrap to expose inner error")
	}
	noKey := &OpError{Op: "create", Resource: "schema", Err: inner}
	if noKey.Error() != "create schema: boom" {
		t.Fatalf("Error() = %q", noKey.Error())
	}
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("nil OpError should render empty")
	}
}
