package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"base_url": "https://resumes.example.com",
		"timeout_seconds": 90,
		"cache_dir": "/tmp/cache",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://resumes.example.com", cfg.BaseURL)
	assert.Equal(t, 90, cfg.TimeoutSeconds)
	assert.Equal(t, 90*time.Second, cfg.Timeout())
	assert.Equal(t, "/tmp/cache", cfg.CacheDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingChromeBinary(t *testing.T) {
	cfg := &Config{ChromePath: "/nonexistent/chrome"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chrome binary not found")
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{BaseURL: "https://custom.example.com"}

	merged := partial.MergeWithDefaults(Defaults())

	assert.Equal(t, "https://custom.example.com", merged.BaseURL)
	assert.Equal(t, 60, merged.TimeoutSeconds)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "uploads", merged.UploadDir)
}

func TestApplyEnv_OverridesSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-wins")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{DatabaseURL: "postgres://file", APIKey: "file-key"}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env-wins", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-long-enough-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewJWTConfig_RejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, cfg.VerifyPassword("correct-horse", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}
	withoutPepper := &PasswordConfig{BcryptCost: 10}

	hash, err := withPepper.HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, withPepper.VerifyPassword("secret", hash))
	assert.False(t, withoutPepper.VerifyPassword("secret", hash))
}

func TestPasswordConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	_, err := NewPasswordConfig()
	assert.Error(t, err)
}
