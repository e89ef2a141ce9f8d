package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, secret string
		wantErr                      string
	}{
		"missing-server": {token: "t", mount: "secret", secret: "bomi", wantErr: "server is required"},
		"missing-token":  {server: "http://localhost:8200", mount: "secret", secret: "bomi", wantErr: "token is required"},
		"missing-mount":  {server: "http://localhost:8200", token: "t", secret: "bomi", wantErr: "mountPath is required"},
		"missing-secret": {server: "http://localhost:8200", token: "t", mount: "secret", wantErr: "secretPath is required"},
		"valid":          {server: "http://localhost:8200", token: "t", mount: "secret", secret: "bomi"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.secret)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/bomi", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"data":{"DB_PASS":"s3cret","DB_PORT":5432,"llm_api_key":"sk-local","bootstrap_on_start":true,"labels":{"env":"dev"}},"metadata":{"version":1}}}`))
	}))
	defer server.Close()

	vp, err := NewVaultProvider(server.URL, "token", "secret", "bomi")
	require.NoError(t, err)

	tests := map[string]struct {
		key     string
		want    string
		wantErr string
	}{
		"exact-key":           {key: "DB_PASS", want: "s3cret"},
		"lower-case-fallback": {key: "LLM_API_KEY", want: "sk-local"},
		"number":              {key: "DB_PORT", want: "5432"},
		"bool":                {key: "BOOTSTRAP_ON_START", want: "true"},
		"missing":             {key: "MISSING", wantErr: "does not contain key MISSING"},
		"nested-object":       {key: "LABELS", wantErr: "vault value of LABELS is not a scalar"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, err := vp.Get(context.Background(), tt.key)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		init    InitVaultProvider
		enabled bool
		wantErr bool
	}{
		"disabled-by-default": {
			init: InitVaultProvider{Server: "-", Token: "-", MountPath: "secret", SecretPath: "bomi"},
		},
		"enabled-without-token": {
			init:    InitVaultProvider{Server: "http://localhost:8200", Token: "-", MountPath: "secret", SecretPath: "bomi"},
			enabled: true,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.enabled, tt.init.Enabled())
			ctx, err := tt.init.Initialize(context.Background())
			assert.NotNil(t, ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
