package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_New_Valid(t *testing.T) {
	cfg, err := New(
		"8080",
		"http://localhost:8080",
		"/tmp/test.db",
		"localhost:6379",
		time.Minute,
		10,
		true,
	)

	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Verify server config
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)

	// Verify database config
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)

	// Verify redis config
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	// Verify rate limit config
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, int64(10), cfg.RateLimit.MaxRequests)

	// Verify logging config
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfig_Validate_EmptyServerPort(t *testing.T) {
	_, err := New(
		"", // empty port
		"http://localhost:8080",
		"/tmp/test.db",
		"localhost:6379",
		time.Minute,
		10,
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server port cannot be empty")
}

func TestConfig_Validate_EmptyBaseURL(t *testing.T) {
	_, err := New(
		"8080",
		"", // empty base URL
		"/tmp/test.db",
		"localhost:6379",
		time.Minute,
		10,
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base URL cannot be empty")
}

func TestConfig_Validate_EmptyDatabasePath(t *testing.T) {
	_, err := New(
		"8080",
		"http://localhost:8080",
		"", // empty database path
		"localhost:6379",
		time.Minute,
		10,
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
}

func TestConfig_Validate_EmptyRedisAddr(t *testing.T) {
	_, err := New(
		"8080",
		"http://localhost:8080",
		"/tmp/test.db",
		"", // empty redis address
		time.Minute,
		10,
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis address cannot be empty")
}

func TestConfig_Validate_NonPositiveWindow(t *testing.T) {
	_, err := New(
		"8080",
		"http://localhost:8080",
		"/tmp/test.db",
		"localhost:6379",
		0, // zero window
		10,
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit window must be positive")
}

func TestConfig_Validate_NonPositiveMaxRequests(t *testing.T) {
	_, err := New(
		"8080",
		"http://localhost:8080",
		"/tmp/test.db",
		"localhost:6379",
		time.Minute,
		0, // zero cap
		false,
	)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit max requests must be positive")
}

func TestConfig_FromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, "links.db", cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, DefaultRateLimitWindow, cfg.RateLimit.Window)
	assert.Equal(t, int64(DefaultRateLimitMax), cfg.RateLimit.MaxRequests)
	assert.False(t, cfg.Logging.Verbose)
}

func TestConfig_FromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://sho.rt")
	t.Setenv("DATABASE_PATH", "/tmp/override.db")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_LIMIT_WINDOW_MS", "30000")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("VERBOSE", "1")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://sho.rt", cfg.Server.BaseURL)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, int64(5), cfg.RateLimit.MaxRequests)
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfig_FromEnv_MalformedWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_MS", "sixty-thousand")

	_, err := FromEnv()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_WINDOW_MS")
}
