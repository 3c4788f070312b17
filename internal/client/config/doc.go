// Package config loads runtime configuration for the tokenkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or TOKENKEEPER_CLI_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   session file
//	-t int      request timeout (seconds)
//
// Flags go before the command; everything after the first positional
// argument ends up in Config.Args.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_file": "/home/me/.tokenkeeper.db",
//	  "request_timeout": "10s"
//	}
package config
