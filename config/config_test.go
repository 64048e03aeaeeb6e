package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_WithDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_ENVIRONMENT", "SERVER_PORT", "DATABASE_DRIVER",
		"DATABASE_HOST", "DATABASE_DBNAME", "TIMEZONE", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eventure", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_PATH", "/tmp/events.db")
	t.Setenv("TIMEZONE", "Europe/Paris")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/events.db", cfg.Database.Path)
	assert.Equal(t, "Europe/Paris", cfg.Location.String())
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid timezone")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Name: "eventure"},
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverPostgres, Host: "db", DBName: "eventure"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing app name", mutate: func(c *Config) { c.App.Name = "" }, wantErr: "app name"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "invalid server port"},
		{name: "missing host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "database host"},
		{name: "missing db name", mutate: func(c *Config) { c.Database.DBName = "" }, wantErr: "database name"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.Driver = DriverSQLite }, wantErr: "database path"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "unsupported database driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable TimeZone=UTC"
	assert.Equal(t, expected, cfg.DSN())
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	assert.Equal(t, "eventure.db?_foreign_keys=on", (&DatabaseConfig{Path: "eventure.db"}).SQLiteDSN())
	assert.Equal(t,
		"file:test?mode=memory&cache=shared&_foreign_keys=on",
		(&DatabaseConfig{Path: "file:test?mode=memory&cache=shared"}).SQLiteDSN(),
	)
}

func TestInitDatabase_SQLite(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "file:config_init_test?mode=memory&cache=shared",
		},
	}

	db, err := InitDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, table := range []string{"categories", "events", "participants", "event_participants"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.True(t, db.Migrator().HasIndex("events", "idx_events_date"))
	assert.True(t, db.Migrator().HasIndex("events", "idx_events_category_date"))

	// Migrating twice is a no-op.
	assert.NoError(t, Migrate(db))
}

func TestInitDatabase_UnknownDriver(t *testing.T) {
	_, err := InitDatabase(&Config{Database: DatabaseConfig{Driver: "oracle"}}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}
