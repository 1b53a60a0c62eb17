package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"database_dsn":                    "postgres://db/cls",
		"directory_base_url":              "https://dir.example.com",
		"directory_api_key":               "key-1",
		"directory_timeout":               "3s",
		"bcrypt_cost":                     12,
		"temp_password_validity_duration": "15m",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"clsadmin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "postgres://db/cls", cfg.DatabaseDSN)
		assert.Equal(t, "https://dir.example.com", cfg.DirectoryBaseURL)
		assert.Equal(t, "key-1", cfg.DirectoryAPIKey)
		assert.Equal(t, 3*time.Second, cfg.DirectoryTimeout)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, 15*time.Minute, cfg.TempPasswordValidity)
	})

	t.Run("partial file keeps remaining values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_dsn": "postgres://other/cls",
		})
		os.Args = []string{"clsadmin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "postgres://other/cls", cfg.DatabaseDSN)
		assert.Equal(t, "http://companydir:8080", cfg.DirectoryBaseURL)
		assert.Equal(t, 10, cfg.BcryptCost)
		assert.Equal(t, 10*time.Minute, cfg.TempPasswordValidity)
	})

	t.Run("no config flag leaves cfg untouched", func(t *testing.T) {
		os.Args = []string{"clsadmin"}

		cfg := &Config{
			DatabaseDSN:          "postgres://keep/cls",
			DirectoryBaseURL:     "http://keep",
			BcryptCost:           11,
			TempPasswordValidity: 2 * time.Minute,
		}
		parseJson(cfg)

		assert.Equal(t, "postgres://keep/cls", cfg.DatabaseDSN)
		assert.Equal(t, "http://keep", cfg.DirectoryBaseURL)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.Equal(t, 2*time.Minute, cfg.TempPasswordValidity)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"clsadmin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"clsadmin", "-config", filepath.Join(dir, "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
