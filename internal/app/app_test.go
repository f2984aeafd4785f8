package app

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/outbound/log"
	"github.com/stretchr/testify/require"
)

type noopRunner struct{}

func (noopRunner) Run(context.Context) error { return nil }

func TestNewDirectoryApp_Initializers(t *testing.T) {
	app := NewDirectoryApp()
	require.NotNil(t, app, "NewDirectoryApp should not return nil")
}

func TestNewBackfillApp_Initializers(t *testing.T) {
	app := NewBackfillApp(noopRunner{})
	require.NotNil(t, app, "NewBackfillApp should not return nil")
}

func TestCoreInitializers(t *testing.T) {
	initializers := coreInitializers()
	require.NotEmpty(t, initializers)

	// the logger is resolved by every other initializer
	require.IsType(t, &log.InitLogger{}, initializers[0])
}
