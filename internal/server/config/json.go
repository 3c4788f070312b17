package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tokenkeeper/internal/flagx"
	"github.com/dmitrijs2005/tokenkeeper/internal/timex"
)

// ConfigFileEnv names the environment variable consulted when no -c/-config
// flag is given.
const ConfigFileEnv = "TOKENKEEPER_CONFIG"

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	MetricsAddr           string         `json:"metrics_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SigningKey            string         `json:"signing_key"`
	SigningAlgorithm      string         `json:"signing_algorithm"`
	Issuer                string         `json:"issuer"`
	AccessTokenTTL        timex.Duration `json:"access_token_ttl"`
	RefreshTokenTTL       timex.Duration `json:"refresh_token_ttl"`
	RedisAddr             string         `json:"redis_addr"`
	ReuseCascadeThreshold int            `json:"reuse_cascade_threshold"`
	ReuseWindow           timex.Duration `json:"reuse_window"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config (or
// TOKENKEEPER_CONFIG). Fields missing from the file keep their current value.
func parseJson(config *Config) error {
	path := flagx.ConfigPath(ConfigFileEnv)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SigningKey, c.SigningKey)
	setString(&config.SigningAlgorithm, c.SigningAlgorithm)
	setString(&config.Issuer, c.Issuer)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.LogLevel, c.LogLevel)
	if c.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = c.AccessTokenTTL.Duration
	}
	if c.RefreshTokenTTL.Duration != 0 {
		config.RefreshTokenTTL = c.RefreshTokenTTL.Duration
	}
	if c.ReuseWindow.Duration != 0 {
		config.ReuseWindow = c.ReuseWindow.Duration
	}
	if c.ReuseCascadeThreshold != 0 {
		config.ReuseCascadeThreshold = c.ReuseCascadeThreshold
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
