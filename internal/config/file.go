package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of the config file. The same struct is
// decoded from JSON and YAML.
type fileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Remote struct {
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"remote" yaml:"remote"`

	Retry struct {
		Backoff     Duration `json:"backoff" yaml:"backoff"`
		Timeout     Duration `json:"timeout" yaml:"timeout"`
		MaxAttempts int      `json:"max_attempts" yaml:"max_attempts"`
	} `json:"retry" yaml:"retry"`

	Server struct {
		HTTPAddress string `json:"http_address" yaml:"http_address"`
	} `json:"server" yaml:"server"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: fileCfg.App.Version,
		},
		Remote: Remote{
			GRPCAddress:    fileCfg.Remote.GRPCAddress,
			HTTPAddress:    fileCfg.Remote.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Remote.RequestTimeout),
		},
		Retry: Retry{
			Backoff:     time.Duration(fileCfg.Retry.Backoff),
			Timeout:     time.Duration(fileCfg.Retry.Timeout),
			MaxAttempts: fileCfg.Retry.MaxAttempts,
		},
		Server: Server{
			HTTPAddress: fileCfg.Server.HTTPAddress,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML.
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
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
