package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote store base URL
//	-d local cache SQLite path
//	-c/-config json file path with configs
//	-username operator account name
//	-identity-url external IP lookup endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval periodic full resync interval (e.g., "5m")
//	-debounce save debounce window (e.g., "1s")
//	-min-save-interval minimum spacing between executed saves
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var databaseDSN string
	var jsonConfigPath string
	var username string
	var identityURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var debounce time.Duration
	var minSaveInterval time.Duration

	flag.StringVar(&remoteAddress, "a", "", "Remote store base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache SQLite path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&username, "username", "", "Operator account name")
	flag.StringVar(&identityURL, "identity-url", "", "External IP lookup endpoint")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Full resync interval (e.g., 5m)")
	flag.DurationVar(&debounce, "debounce", 0, "Save debounce window (e.g., 1s)")
	flag.DurationVar(&minSaveInterval, "min-save-interval", 0, "Minimum spacing between saves")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Username: username,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			IdentityURL:    identityURL,
			RequestTimeout: requestTimeout,
		},
		Scheduler: Scheduler{
			Debounce:        debounce,
			MinSaveInterval: minSaveInterval,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}
