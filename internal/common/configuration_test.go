package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 4, cfg.Converter.Workers)
	assert.True(t, cfg.Converter.Heuristics.OrAlternatives)
	assert.Equal(t, 2, cfg.Converter.Heuristics.MaxSplitContinuationRows)
	assert.Equal(t, "basyx.smtconverter.conversions", cfg.Events.Subject)
}

func TestLoadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 6000
  contextPath: /smt
converter:
  namePrefix: IDTA_
  heuristics:
    orAlternatives: false
storage:
  backend: mongodb
  mongo:
    database: templates
`), 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "/smt", cfg.Server.ContextPath)
	assert.Equal(t, "IDTA_", cfg.Converter.NamePrefix)
	assert.False(t, cfg.Converter.Heuristics.OrAlternatives)
	assert.True(t, cfg.Converter.Heuristics.GenericFieldPairing)
	assert.Equal(t, "mongodb", cfg.Storage.Backend)
	assert.Equal(t, "templates", cfg.Storage.Mongo.Database)
	assert.Equal(t, "conversions", cfg.Storage.Mongo.Collection)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		return cfg
	}

	tests := map[string]func(*Config){
		"backend":   func(c *Config) { c.Storage.Backend = "redis" },
		"driver":    func(c *Config) { c.Postgres.Driver = "mysql" },
		"s3 bucket": func(c *Config) { c.Storage.S3.Enabled = true },
		"oidc":      func(c *Config) { c.OIDC.Enabled = true; c.OIDC.Issuer = "" },
		"workers":   func(c *Config) { c.Converter.Workers = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsErrBadRequest(err))
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "admin", Password: "p@ss", DBName: "basyx"}
	assert.Equal(t, "postgres://admin:p%40ss@db:5432/basyx?sslmode=disable", p.DSN())
}
