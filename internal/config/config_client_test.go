package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── applyDefaults ────────────────────────────────────────────────────────────

func TestClientConfig_ApplyDefaults_AllZero(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDebounce, cfg.Scheduler.Debounce)
	assert.Equal(t, DefaultMinSaveInterval, cfg.Scheduler.MinSaveInterval)
	assert.Equal(t, DefaultMaxRetries, cfg.Scheduler.MaxRetries)
	assert.Equal(t, DefaultRetryWait, cfg.Scheduler.RetryWait)
	assert.Equal(t, DefaultCooldownBase, cfg.Scheduler.CooldownBase)
	assert.Equal(t, DefaultCooldownMax, cfg.Scheduler.CooldownMax)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, "admin", cfg.App.Username)
}

func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		App: ClientApp{Username: "operator"},
		Scheduler: ClientScheduler{
			Debounce:     2 * time.Second,
			CooldownBase: 30 * time.Second,
		},
		Workers: ClientWorkers{SyncInterval: time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, "operator", cfg.App.Username)
	assert.Equal(t, 2*time.Second, cfg.Scheduler.Debounce)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.CooldownBase)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	// untouched fields still get defaults
	assert.Equal(t, DefaultMinSaveInterval, cfg.Scheduler.MinSaveInterval)
}

// ── validate ─────────────────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "https://store.example.com"},
		Storage: ClientStorage{DB: ClientDB{DSN: "admin-sync.db"}},
	}
	cfg.applyDefaults()
	return cfg
}

func TestClientConfig_Validate_OK(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfig_Validate_EmptyDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_InMemoryDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_MissingAddress(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfig_Validate_CooldownCapBelowBase(t *testing.T) {
	cfg := validClientConfig()
	cfg.Scheduler.CooldownBase = 2 * time.Minute
	cfg.Scheduler.CooldownMax = time.Minute
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSchedulerConfigs)
}

func TestClientConfig_Validate_ZeroSyncInterval(t *testing.T) {
	cfg := validClientConfig()
	cfg.Workers.SyncInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
