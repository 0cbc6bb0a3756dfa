package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
// It deliberately has no field for the encryption key.
type StructuredJSONConfig struct {
	App struct {
		OwnerID  string `json:"owner_id"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Crypto struct {
		KeyEncoding string `json:"key_encoding"`
		KDFSalt     string `json:"kdf_salt"`
	} `json:"crypto,omitempty"`

	Generator struct {
		DefaultLength int      `json:"default_length"`
		MinLength     int      `json:"min_length"`
		MaxLength     int      `json:"max_length"`
		ClipboardTTL  Duration `json:"clipboard_ttl"`
		BatchLimit    int      `json:"batch_limit"`
	} `json:"generator,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
			OwnerID:  jsonCfg.App.OwnerID,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Crypto: Crypto{
			KeyEncoding: jsonCfg.Crypto.KeyEncoding,
			KDFSalt:     jsonCfg.Crypto.KDFSalt,
		},
		Generator: Generator{
			DefaultLength: jsonCfg.Generator.DefaultLength,
			MinLength:     jsonCfg.Generator.MinLength,
			MaxLength:     jsonCfg.Generator.MaxLength,
			ClipboardTTL:  time.Duration(jsonCfg.Generator.ClipboardTTL),
			BatchLimit:    jsonCfg.Generator.BatchLimit,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
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
