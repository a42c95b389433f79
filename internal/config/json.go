// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		HashKey string `json:"hash_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN           string `json:"dsn"`
		BookmarksFile string `json:"bookmarks_file"`
	} `json:"storage,omitempty"`

	Coordinator struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"coordinator,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval      Duration `json:"sync_interval"`
		InitialCheckDelay Duration `json:"initial_check_delay"`
		WatchDebounce     Duration `json:"watch_debounce"`
	} `json:"workers,omitempty"`

	Log struct {
		FilePath   string `json:"file_path"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`
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

	return &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			HashKey: jsonCfg.App.HashKey,
		},
		Storage: Storage{
			DB:        DB{DSN: jsonCfg.Storage.DSN},
			Bookmarks: Bookmarks{FilePath: jsonCfg.Storage.BookmarksFile},
		},
		Coordinator: Coordinator{
			Address:        jsonCfg.Coordinator.Address,
			RequestTimeout: time.Duration(jsonCfg.Coordinator.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
		},
		Workers: Workers{
			SyncInterval:      time.Duration(jsonCfg.Workers.SyncInterval),
			InitialCheckDelay: time.Duration(jsonCfg.Workers.InitialCheckDelay),
			WatchDebounce:     time.Duration(jsonCfg.Workers.WatchDebounce),
		},
		Log: Log{
			FilePath:   jsonCfg.Log.FilePath,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
