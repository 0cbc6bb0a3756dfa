package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	fs := newTestFlagSet(t,
		"-c", "/etc/vault.json",
		"--dsn", "/tmp/vault.db",
		"--db-driver", "sqlite3",
		"--owner", "alice",
		"--log-level", "warn",
		"--key-encoding", "hex",
	)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "alice", cfg.App.OwnerID)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, KeyEncodingHex, cfg.Crypto.KeyEncoding)
}

func TestParseFlags_NoFlagsGiveZeroConfig(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnregisteredFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("empty", pflag.ContinueOnError)

	cfg, err := parseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestRegisterFlags_NoKeyFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Nil(t, fs.Lookup("key"))
	assert.Nil(t, fs.Lookup("encryption-key"))
}

func TestParseFlags_ConfigAliasShorthand(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(t, "--config", "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.JSONFilePath)
}
