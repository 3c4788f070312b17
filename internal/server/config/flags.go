package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN, or "memory"
//	-s string   signing key (at least 32 bytes)
//	-g string   signing algorithm (HS256, HS384, HS512)
//	-i string   issuer name
//	-t int      access token TTL, minutes
//	-r int      refresh token TTL, days
//	-R string   Redis address for reuse tracking
//	-n int      reuse cascade threshold (0 disables)
//	-w int      reuse window, minutes
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs first so -c/-config and
// flags owned by other components do not break parsing.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-g", "-i", "-t", "-r", "-R", "-n", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to serve metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SigningKey, "s", config.SigningKey, "signing key")
	fs.StringVar(&config.SigningAlgorithm, "g", config.SigningAlgorithm, "signing algorithm")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "token issuer")

	accessTokenTTL := fs.Int("t", int(config.AccessTokenTTL.Minutes()), "access token TTL (in minutes)")
	refreshTokenTTL := fs.Int("r", int(config.RefreshTokenTTL.Hours()/24), "refresh token TTL (in days)")

	fs.StringVar(&config.RedisAddr, "R", config.RedisAddr, "redis address")
	fs.IntVar(&config.ReuseCascadeThreshold, "n", config.ReuseCascadeThreshold, "reuse cascade threshold")
	reuseWindow := fs.Int("w", int(config.ReuseWindow.Minutes()), "reuse window (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.AccessTokenTTL = time.Duration(*accessTokenTTL) * time.Minute
	config.RefreshTokenTTL = time.Duration(*refreshTokenTTL) * 24 * time.Hour
	config.ReuseWindow = time.Duration(*reuseWindow) * time.Minute
	return nil
}
