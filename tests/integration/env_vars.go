package integration

import (
	"context"
	"os"
)

// initEnvVars exports envVars for the lifetime of the app under test.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for k := range i.envVars {
		_ = os.Unsetenv(k)
	}
}
