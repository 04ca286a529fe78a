package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)

	cfg := Default()
	cfg.Report.Format = FormatCSV
	cfg.Report.BalanceUsers = []uint64{1, 18446744073709551615}

	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.True(t, cfg.Report.ShowEntries)
	assert.Equal(t, []uint64{2456938384156277127}, cfg.Report.BalanceUsers)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Report.Format)
	assert.Equal(t, "UTC", cfg.Report.Timezone)
	assert.True(t, cfg.Report.ShowEntries)
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  format: xml\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid report format")
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("report:\n  timezone: Mars/Olympus\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid timezone")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("report: [\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
