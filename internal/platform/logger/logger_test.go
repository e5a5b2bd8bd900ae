package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"redis_password", "hunter2",
		"store_id", 3,
		"db_dsn", "postgres://chef:pw@db:5432/aislechef?sslmode=disable",
		"dangling",
	})
	if len(out) != 7 {
		t.Fatalf("unexpected length: %d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", out[1])
	}
	if out[3] != 3 {
		t.Fatalf("store_id changed: %v", out[3])
	}
	dsn, _ := out[5].(string)
	if strings.Contains(dsn, "pw") || !strings.Contains(dsn, "db:5432") {
		t.Fatalf("dsn not redacted: %q", dsn)
	}
	if out[6] != "dangling" {
		t.Fatalf("dangling key dropped: %v", out[6])
	}
}

func TestRedactURLWithoutScheme(t *testing.T) {
	if got := redactURL("file:aislechef.db?cache=shared"); got != "file:aislechef.db?cache=shared" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := redactURL("not a url at all"); got != "[REDACTED]" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"production", "development", "test", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("component", "test").Debug("hello", "k", "v")
	}
	Nop().Info("discarded")
}
