package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"version": "2.0.0"},
		"remote": {
			"grpc_address": "tfa-config:9090",
			"http_address": "http://tfa-config:8080",
			"request_timeout": "4s"
		},
		"retry": {"backoff": "250ms", "timeout": "30s", "max_attempts": 3},
		"server": {"http_address": ":8080"}
	}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		App: App{Version: "2.0.0"},
		Remote: Remote{
			GRPCAddress:    "tfa-config:9090",
			HTTPAddress:    "http://tfa-config:8080",
			RequestTimeout: 4 * time.Second,
		},
		Retry: Retry{
			Backoff:     250 * time.Millisecond,
			Timeout:     30 * time.Second,
			MaxAttempts: 3,
		},
		Server: Server{HTTPAddress: ":8080"},
	}, cfg)
}

func TestParseFile_JSONNumericDuration(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"retry": {"backoff": 1000000000}}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Retry.Backoff)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
remote:
  http_address: http://tfa-config:8080
  request_timeout: 2s
retry:
  timeout: 45s
  max_attempts: -1
`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "http://tfa-config:8080", cfg.Remote.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Retry.Timeout)
	assert.Equal(t, -1, cfg.Retry.MaxAttempts)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "unsupported extension", file: "config.toml", content: "a = 1", wantErr: ErrUnsupportedConfigFile},
		{name: "broken json", file: "config.json", content: "{"},
		{name: "bad duration", file: "config.yaml", content: "retry:\n  backoff: soon\n"},
		{name: "bad json duration type", file: "config.json", content: `{"retry": {"backoff": true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			cfg, err := parseFile(path)

			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
