package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Resources struct {
		Admins         string `json:"admins"`
		Trainers       string `json:"trainers"`
		Blogs          string `json:"blogs"`
		Upload         string `json:"upload"`
		Login          string `json:"login"`
		ChangePassword string `json:"change_password"`
		Profile        string `json:"profile"`
	} `json:"resources,omitempty"`

	Storage struct {
		CredentialsPath string `json:"credentials_path"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Resources: Resources{
			Admins:         jsonCfg.Resources.Admins,
			Trainers:       jsonCfg.Resources.Trainers,
			Blogs:          jsonCfg.Resources.Blogs,
			Upload:         jsonCfg.Resources.Upload,
			Login:          jsonCfg.Resources.Login,
			ChangePassword: jsonCfg.Resources.ChangePassword,
			Profile:        jsonCfg.Resources.Profile,
		},
		Storage: Storage{
			CredentialsPath: jsonCfg.Storage.CredentialsPath,
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
