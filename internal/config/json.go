package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Username string `json:"username"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		IdentityURL    string   `json:"identity_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Scheduler struct {
		Debounce             Duration `json:"debounce"`
		MinSaveInterval      Duration `json:"min_save_interval"`
		MaxRetries           int      `json:"max_retries"`
		RetryWait            Duration `json:"retry_wait"`
		CooldownBase         Duration `json:"cooldown_base"`
		CooldownMax          Duration `json:"cooldown_max"`
		TimestampedInventory bool     `json:"timestamped_inventory"`
	} `json:"scheduler,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Username: jsonCfg.App.Username,
			Version:  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			IdentityURL:    jsonCfg.Adapter.IdentityURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Scheduler: Scheduler{
			Debounce:             time.Duration(jsonCfg.Scheduler.Debounce),
			MinSaveInterval:      time.Duration(jsonCfg.Scheduler.MinSaveInterval),
			MaxRetries:           jsonCfg.Scheduler.MaxRetries,
			RetryWait:            time.Duration(jsonCfg.Scheduler.RetryWait),
			CooldownBase:         time.Duration(jsonCfg.Scheduler.CooldownBase),
			CooldownMax:          time.Duration(jsonCfg.Scheduler.CooldownMax),
			TimestampedInventory: jsonCfg.Scheduler.TimestampedInventory,
		},
		Workers:      Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
