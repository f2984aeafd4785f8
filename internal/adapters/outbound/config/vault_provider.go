// Package config provides configuration sources composed with the environment.
package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider reads configuration values from a single HashiCorp Vault KV v2 secret.
// The secret is fetched once and served from memory afterwards; failed reads are retried
// on the next Get.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	cache *secretCache
}

type secretCache struct {
	mu     sync.Mutex
	values map[string]string
}

// NewVaultProvider creates a new VaultProvider.
//
// The mountPath is the KV v2 mount (e.g. "secret") and secretPath the secret
// holding the service keys (e.g. "ai-directory").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, fmt.Errorf("server is required")
	case token == "":
		return VaultProvider{}, fmt.Errorf("token is required")
	case mountPath == "":
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server
	cfg.MaxRetries = 1

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{},
	}, nil
}

// Get returns the value stored under key in the configured secret.
// Missing keys are reported as errors so a composite provider can fall through.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	return value, nil
}

func (vp VaultProvider) load(ctx context.Context) (map[string]string, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.values != nil {
		return vp.cache.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	values := make(map[string]string, len(secret.Data))
	for k, v := range secret.Data {
		// non-string entries (nested maps, numbers) are not configuration values
		if s, ok := v.(string); ok {
			values[k] = s
		}
	}
	vp.cache.values = values
	return values, nil
}

// Ensure VaultProvider implements config.Provider interface.
var _ config.Provider = (*VaultProvider)(nil)

// disabled is the VAULT_ADDR value that keeps configuration on environment variables only.
const disabled = "-"

// InitVaultProvider composes Vault with the environment as the global config provider.
// Environment variables take precedence over Vault values.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR" default:"-"`
	Token      string `config:"VAULT_TOKEN" default:"-"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"ai-directory"`
}

// Initialize sets up the VaultProvider and registers it in a composite provider as a global config provider.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == disabled {
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
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
