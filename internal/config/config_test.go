package config

import (
	"os"
	"path/filepath"
	"testing"

	"StockBoard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, DefaultWatchlist, cfg.Watchlist)
	assert.Equal(t, "1y", cfg.DataSource.DefaultRange)
	assert.Equal(t, 60, cfg.Cache.TTLMinutes)
	assert.True(t, cfg.Refresh.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  listen: ":9000"
watchlist:
  - name: Tesla
    symbol: TSLA
data_source:
  default_range: 6mo
cache:
  ttl_minutes: 5
refresh:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Listen, "env wins over file")
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
	assert.Len(t, cfg.Watchlist, 1)
	assert.Equal(t, "TSLA", cfg.Watchlist[0].Symbol)
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
	assert.False(t, cfg.Refresh.Enabled)
	assert.Equal(t, model.Lookback6M, cfg.DefaultLookback())
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.DataSource.DefaultRange = "7mo"
	assert.Error(t, cfg.Validate())

	cfg.DataSource.DefaultRange = "1mo"
	cfg.Watchlist = []model.WatchlistEntry{{Name: "", Symbol: "TSLA"}}
	assert.Error(t, cfg.Validate())

	cfg.Watchlist = []model.WatchlistEntry{{Name: "Tesla", Symbol: "TSLA"}}
	require.NoError(t, cfg.Validate())
}
