package config

import (
	"encoding/json"
	"os"

	"github.com/devmoodys/cls-node-final/internal/flagx"
	"github.com/devmoodys/cls-node-final/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Duration
// fields rely on timex.Duration so JSON can specify them either as strings
// like "10m" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabaseDSN          string         `json:"database_dsn"`
	DirectoryBaseURL     string         `json:"directory_base_url"`
	DirectoryAPIKey      string         `json:"directory_api_key"`
	DirectoryTimeout     timex.Duration `json:"directory_timeout"`
	BcryptCost           int            `json:"bcrypt_cost"`
	TempPasswordValidity timex.Duration `json:"temp_password_validity_duration"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Fields absent from the file keep their current
// values, so a partial file only overrides what it mentions. When no flag is
// given, nothing is loaded. Read or unmarshal errors panic.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := &JsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DirectoryBaseURL != "" {
		cfg.DirectoryBaseURL = jc.DirectoryBaseURL
	}
	if jc.DirectoryAPIKey != "" {
		cfg.DirectoryAPIKey = jc.DirectoryAPIKey
	}
	if jc.DirectoryTimeout.Duration != 0 {
		cfg.DirectoryTimeout = jc.DirectoryTimeout.Duration
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.TempPasswordValidity.Duration != 0 {
		cfg.TempPasswordValidity = jc.TempPasswordValidity.Duration
	}
}
