// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// admin-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the operator account
	// name and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistent cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote store address and timeout settings used by
	// the outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Scheduler holds debounce, retry, and cooldown settings for the save
	// scheduler.
	Scheduler Scheduler `envPrefix:"SCHEDULER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Username is the operator account name stamped into actor identities
	// ("username@ip") and activity log entries.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistent cache.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache file.
type DB struct {
	// DSN is the SQLite file path used for the durable local cache
	// (e.g. "admin-sync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the remote key-value store adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store
	// (e.g. "https://store.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// IdentityURL is the endpoint used for the best-effort external IP
	// lookup that feeds actor identities. Empty disables the lookup and
	// identities fall back to "unknown" for the IP part.
	// Env: ADAPTER_IDENTITY_URL
	IdentityURL string `env:"IDENTITY_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Scheduler holds tuning knobs for the save scheduler. Zero values are
// replaced with defaults by [GetClientConfig].
type Scheduler struct {
	// Debounce is the quiet period that collapses a burst of local
	// mutations into a single save.
	// Env: SCHEDULER_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// MinSaveInterval is the minimum spacing between two executed saves.
	// Env: SCHEDULER_MIN_SAVE_INTERVAL
	MinSaveInterval time.Duration `env:"MIN_SAVE_INTERVAL"`

	// MaxRetries bounds transient-failure retries per executed save.
	// Env: SCHEDULER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// RetryWait is the base wait between transient retries; attempt n
	// waits n × RetryWait.
	// Env: SCHEDULER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// CooldownBase is the first cooldown window after a rate-limit signal;
	// repeated signals double it.
	// Env: SCHEDULER_COOLDOWN_BASE
	CooldownBase time.Duration `env:"COOLDOWN_BASE"`

	// CooldownMax caps the exponential cooldown growth.
	// Env: SCHEDULER_COOLDOWN_MAX
	CooldownMax time.Duration `env:"COOLDOWN_MAX"`

	// TimestampedInventory opts into the per-entry protected inventory
	// merge instead of the wholesale server-wins policy. See the sync
	// service for the consistency window this closes.
	// Env: SCHEDULER_TIMESTAMPED_INVENTORY
	TimestampedInventory bool `env:"TIMESTAMPED_INVENTORY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the periodic full resync runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
