package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONSettings mirrors [Settings] for the optional JSON settings
// file. Durations accept both "5m"-style strings and raw nanosecond
// numbers.
type StructuredJSONSettings struct {
	App struct {
		Hostname    string `json:"hostname"`
		Environment string `json:"environment"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		Path   string `json:"path"`
		DSN    string `json:"dsn"`
	} `json:"storage,omitempty"`

	Flush struct {
		Interval Duration `json:"interval"`
		Debounce Duration `json:"debounce"`
	} `json:"flush,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonSettings StructuredJSONSettings
	if err := json.NewDecoder(jsonFile).Decode(&jsonSettings); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	settings := &Settings{
		App: AppSettings{
			Hostname:    jsonSettings.App.Hostname,
			Environment: jsonSettings.App.Environment,
			LogLevel:    jsonSettings.App.LogLevel,
		},
		Storage: StorageSettings{
			Driver: jsonSettings.Storage.Driver,
			Path:   jsonSettings.Storage.Path,
			DSN:    jsonSettings.Storage.DSN,
		},
		Flush: FlushSettings{
			Interval: time.Duration(jsonSettings.Flush.Interval),
			Debounce: time.Duration(jsonSettings.Flush.Debounce),
		},
		JSONFilePath: "",
	}

	return settings, nil
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
