package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from a JSON string in
// time.ParseDuration format (e.g. "1h", "30s").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-encoded durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		ResetTokenDuration   Duration `json:"reset_token_duration"`
		ResetBaseURL         string   `json:"reset_base_url"`
		BcryptCost           int      `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	AI struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai,omitempty"`
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

	return jsonCfg.toStructuredConfig(), nil
}

func (j *StructuredJSONConfig) toStructuredConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         j.App.TokenSignKey,
			TokenIssuer:          j.App.TokenIssuer,
			AccessTokenDuration:  time.Duration(j.App.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(j.App.RefreshTokenDuration),
			ResetTokenDuration:   time.Duration(j.App.ResetTokenDuration),
			ResetBaseURL:         j.App.ResetBaseURL,
			BcryptCost:           j.App.BcryptCost,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		AI: AI{
			APIKey:         j.AI.APIKey,
			BaseURL:        j.AI.BaseURL,
			Model:          j.AI.Model,
			RequestTimeout: time.Duration(j.AI.RequestTimeout),
		},
	}
	cfg.Storage.DB.DSN = j.Storage.DB.DSN

	return cfg
}
