package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected Config fields from command-line flags and
// stores what follows them in Config.Args.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-f string   session file
//	-t int      request timeout (in seconds)
//
// -c/-config are accepted here and read by parseJson.
func parseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.SessionFile, "f", cfg.SessionFile, "session file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.String("c", "", "config file")
	fs.String("config", "", "config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.Args = fs.Args()
	return nil
}
