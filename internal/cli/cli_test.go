package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func useTempDB(t *testing.T) {
	t.Helper()
	t.Setenv("AISLECHEF_CONFIG_PATH", "")
	t.Setenv("LOG_MODE", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "aislechef.db"))
	t.Setenv("REDIS_ADDR", "")
}

func TestSeedThenRoute(t *testing.T) {
	useTempDB(t)

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")

	out, err = execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded store 1: 34 ingredients, 5 recipes, 5 pairings")

	out, err = execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "already seeded")

	out, err = execute(t, "route", "5", "--pairing")
	require.NoError(t, err)
	var res struct {
		Route []struct {
			Code string `json:"code"`
		} `json:"route"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	codes := make([]string, 0, len(res.Route))
	for _, e := range res.Route {
		codes = append(codes, e.Code)
	}
	// Classic Burger plus its cola pairing.
	assert.Equal(t, []string{"A1", "A2", "B1", "C3", "E1", "F1", "H1"}, codes)
}

func TestRouteRejectsBadID(t *testing.T) {
	useTempDB(t)
	_, err := execute(t, "route", "zero")
	require.Error(t, err)

	_, err = execute(t, "route")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
