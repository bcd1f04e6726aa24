package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	require.Equal(t, 1500*time.Millisecond, cfg.ReportSubmitDelay)
	require.Equal(t, "simulate", cfg.ReportTransport)
	require.Equal(t, 3, cfg.NotificationLimit)
}

func TestLoad_BaseURLOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://intake.example.org/")
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://intake.example.org", cfg.APIBaseURL)
	ep := cfg.Endpoints()
	require.Equal(t, "https://intake.example.org/api/upload", ep.Upload)
	require.Equal(t, "https://intake.example.org/api/counselor", ep.Counselor)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{FrontendURL: "http://localhost:3000, http://127.0.0.1:3000,,"}
	require.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins())
}

func TestLoad_UnparsableDuration(t *testing.T) {
	t.Setenv("CONSULTATION_RATE_WINDOW", "soon")
	cfg, err := Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_RejectsNonPositiveDurations(t *testing.T) {
	cases := map[string]string{
		"CONSULTATION_RATE_WINDOW": "0s",
		"NOTIFICATION_TTL":         "0s",
		"SESSION_TTL":              "-1h",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			cfg, err := Load()
			require.Error(t, err)
			require.Nil(t, cfg)
			require.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_RejectsZeroRateLimit(t *testing.T) {
	t.Setenv("CONSULTATION_RATE_LIMIT", "0")
	_, err := Load()
	require.ErrorContains(t, err, "CONSULTATION_RATE_LIMIT")
}
