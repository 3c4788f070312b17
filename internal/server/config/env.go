package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Environment variables read by parseEnv. TTLs use the same units as the
// flags: minutes for access tokens, days for refresh tokens.
const (
	EnvGRPCAddr              = "TOKENKEEPER_GRPC_ADDR"
	EnvMetricsAddr           = "TOKENKEEPER_METRICS_ADDR"
	EnvDatabaseDSN           = "TOKENKEEPER_DATABASE_DSN"
	EnvSigningKey            = "TOKENKEEPER_SIGNING_KEY"
	EnvSigningAlgorithm      = "TOKENKEEPER_SIGNING_ALGORITHM"
	EnvIssuer                = "TOKENKEEPER_ISSUER"
	EnvAccessTokenTTL        = "TOKENKEEPER_ACCESS_TOKEN_TTL_MINUTES"
	EnvRefreshTokenTTL       = "TOKENKEEPER_REFRESH_TOKEN_TTL_DAYS"
	EnvRedisAddr             = "TOKENKEEPER_REDIS_ADDR"
	EnvReuseCascadeThreshold = "TOKENKEEPER_REUSE_CASCADE_THRESHOLD"
	EnvReuseWindow           = "TOKENKEEPER_REUSE_WINDOW"
	EnvLogLevel              = "TOKENKEEPER_LOG_LEVEL"
)

func parseEnv(config *Config) error {
	var result *multierror.Error

	envString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	envString(&config.MetricsAddr, EnvMetricsAddr)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SigningKey, EnvSigningKey)
	envString(&config.SigningAlgorithm, EnvSigningAlgorithm)
	envString(&config.Issuer, EnvIssuer)
	envString(&config.RedisAddr, EnvRedisAddr)
	envString(&config.LogLevel, EnvLogLevel)

	if v, ok := os.LookupEnv(EnvAccessTokenTTL); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvAccessTokenTTL, err))
		} else {
			config.AccessTokenTTL = time.Duration(n) * time.Minute
		}
	}
	if v, ok := os.LookupEnv(EnvRefreshTokenTTL); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvRefreshTokenTTL, err))
		} else {
			config.RefreshTokenTTL = time.Duration(n) * 24 * time.Hour
		}
	}
	if v, ok := os.LookupEnv(EnvReuseCascadeThreshold); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvReuseCascadeThreshold, err))
		} else {
			config.ReuseCascadeThreshold = n
		}
	}
	if v, ok := os.LookupEnv(EnvReuseWindow); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvReuseWindow, err))
		} else {
			config.ReuseWindow = d
		}
	}

	return result.ErrorOrNil()
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
