package config

import (
	"fmt"
	"time"
)

// Scheduler defaults. These mirror the save policy the remote store
// tolerates in production; override through config when tuning.
const (
	DefaultDebounce        = 1000 * time.Millisecond
	DefaultMinSaveInterval = 800 * time.Millisecond
	DefaultMaxRetries      = 3
	DefaultRetryWait       = 3 * time.Second
	DefaultCooldownBase    = 60 * time.Second
	DefaultCooldownMax     = 300 * time.Second
	DefaultSyncInterval    = 5 * time.Minute
	DefaultRequestTimeout  = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Username is the operator account name used in actor identities.
	Username string
	// Version is the running application version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store base URL.
	HTTPAddress string
	// IdentityURL is the external IP lookup endpoint.
	IdentityURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientScheduler groups save scheduler settings with defaults applied.
type ClientScheduler struct {
	Debounce             time.Duration
	MinSaveInterval      time.Duration
	MaxRetries           int
	RetryWait            time.Duration
	CooldownBase         time.Duration
	CooldownMax          time.Duration
	TimestampedInventory bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic full resync runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Scheduler contains save scheduler settings.
	Scheduler ClientScheduler
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills unset scheduler and worker values
// with defaults, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Username: cfg.App.Username,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			IdentityURL:    cfg.Adapter.IdentityURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Scheduler: ClientScheduler{
			Debounce:             cfg.Scheduler.Debounce,
			MinSaveInterval:      cfg.Scheduler.MinSaveInterval,
			MaxRetries:           cfg.Scheduler.MaxRetries,
			RetryWait:            cfg.Scheduler.RetryWait,
			CooldownBase:         cfg.Scheduler.CooldownBase,
			CooldownMax:          cfg.Scheduler.CooldownMax,
			TimestampedInventory: cfg.Scheduler.TimestampedInventory,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Scheduler.Debounce <= 0 {
		cfg.Scheduler.Debounce = DefaultDebounce
	}
	if cfg.Scheduler.MinSaveInterval <= 0 {
		cfg.Scheduler.MinSaveInterval = DefaultMinSaveInterval
	}
	if cfg.Scheduler.MaxRetries <= 0 {
		cfg.Scheduler.MaxRetries = DefaultMaxRetries
	}
	if cfg.Scheduler.RetryWait <= 0 {
		cfg.Scheduler.RetryWait = DefaultRetryWait
	}
	if cfg.Scheduler.CooldownBase <= 0 {
		cfg.Scheduler.CooldownBase = DefaultCooldownBase
	}
	if cfg.Scheduler.CooldownMax <= 0 {
		cfg.Scheduler.CooldownMax = DefaultCooldownMax
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.App.Username == "" {
		cfg.App.Username = "admin"
	}
}
