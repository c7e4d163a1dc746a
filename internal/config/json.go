package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/tgpolish/internal/flagx"
	"github.com/dmitrijs2005/tgpolish/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "20s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	VaultSecret      string         `json:"vault_secret"`
	TelegramAppID    int            `json:"telegram_app_id"`
	TelegramAppHash  string         `json:"telegram_app_hash"`
	OracleEndpoint   string         `json:"oracle_endpoint"`
	OracleAPIKey     string         `json:"oracle_api_key"`
	OracleModel      string         `json:"oracle_model"`
	OracleTimeout    timex.Duration `json:"oracle_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.VaultSecret = c.VaultSecret
	config.TelegramAppID = c.TelegramAppID
	config.TelegramAppHash = c.TelegramAppHash
	config.OracleEndpoint = c.OracleEndpoint
	config.OracleAPIKey = c.OracleAPIKey
	config.OracleModel = c.OracleModel
	config.OracleTimeout = time.Duration(c.OracleTimeout.Duration)
}
