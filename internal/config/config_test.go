package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5432
user = "parking"
password = "secret"
dbname = "parking"

[logs]
file = "logs/app.log"
level = "debug"

[auth]
jwt_secret = "test-secret"

[parking]
total_slots = 6
price_per_hour = 35.5
currency = "EUR"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.HTTPPort)
	require.Equal(t, 6, cfg.Parking.TotalSlots)
	require.InDelta(t, 35.5, cfg.Parking.PricePerHour, 1e-9)
	require.Equal(t, "EUR", cfg.Parking.Currency)
	require.Equal(t,
		"host=db port=5432 user=parking password=secret dbname=parking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[auth]
jwt_secret = "test-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.HTTPPort)
	require.Equal(t, domain.DefaultTotalSlots, cfg.Parking.TotalSlots)
	require.InDelta(t, domain.DefaultPricePerHour, cfg.Parking.PricePerHour, 1e-9)
	require.Equal(t, domain.DefaultCurrency, cfg.Parking.Currency)
	require.Equal(t, "tickets", cfg.Tickets.Dir)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
	require.Equal(t, 12*60, cfg.Auth.TokenTTLMinutes)
	require.False(t, cfg.PlateRecognition.Enabled)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing jwt secret",
			content: `[server]` + "\n" + `http_port = 8080`,
		},
		{
			name: "total slots out of range",
			content: `
[auth]
jwt_secret = "test-secret"

[parking]
total_slots = 100000
`,
		},
		{
			name: "negative price",
			content: `
[auth]
jwt_secret = "test-secret"

[parking]
price_per_hour = -5.0
`,
		},
		{
			name: "recognition enabled without url",
			content: `
[auth]
jwt_secret = "test-secret"

[plate_recognition]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
