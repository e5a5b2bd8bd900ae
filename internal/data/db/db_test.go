package db

import (
	"testing"

	"github.com/yungbote/aislechef-backend/internal/config"
	"github.com/yungbote/aislechef-backend/internal/platform/logger"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file:db_open_test?mode=memory&cache=shared"}
	gdb, err := Open(cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gdb) })

	if err := AutoMigrateAll(gdb); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"store", "ingredient", "recipe", "pairing"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %q", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "mysql", DSN: "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestCloseNil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("Close(nil): %v", err)
	}
}
