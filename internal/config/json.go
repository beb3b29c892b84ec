package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
// Durations are decoded from strings like "1h" or "30s" via [Duration].
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	RateLimit struct {
		AuthLimit  int      `json:"auth_limit"`
		AuthWindow Duration `json:"auth_window"`
		APILimit   int      `json:"api_limit"`
		APIWindow  Duration `json:"api_window"`
	} `json:"rate_limit,omitempty"`

	Seed struct {
		DemoData bool `json:"demo_data"`
	} `json:"seed,omitempty"`
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
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		RateLimit: RateLimit{
			AuthLimit:  jsonCfg.RateLimit.AuthLimit,
			AuthWindow: time.Duration(jsonCfg.RateLimit.AuthWindow),
			APILimit:   jsonCfg.RateLimit.APILimit,
			APIWindow:  time.Duration(jsonCfg.RateLimit.APIWindow),
		},
		Seed: Seed{
			DemoData: jsonCfg.Seed.DemoData,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
