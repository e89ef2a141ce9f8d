package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from HashiCorp Vault.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The token is the Vault authentication token.
// The mountPath is the mount point for the KV secrets engine (e.g., "secret").
// The secretPath is the path to the secret within the mount (e.g., "bomi").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(token)

	vp := VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}

	return vp, nil
}

// Get retrieves a configuration value from the configured secret.
//
// The key is looked up as given and then in lower case, so DB_PASSWORD also
// matches a db_password entry. Numbers and booleans are returned in their
// textual form.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return "", err
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	value, ok := secret.Data[key]
	if !ok {
		value, ok = secret.Data[strings.ToLower(key)]
	}
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	return scalarString(key, value)
}

func scalarString(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("vault value of %s is not a scalar", key)
	}
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// It is a no-op unless VAULT_ADDR is set.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"bomi"`
}

// Enabled reports whether a Vault server is configured.
func (ivp InitVaultProvider) Enabled() bool {
	return ivp.Server != "" && ivp.Server != "-"
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if !ivp.Enabled() {
		return ctx, nil
	}

	token := ivp.Token
	if token == "-" {
		token = ""
	}
	vaultProvider, err := NewVaultProvider(ivp.Server, token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
