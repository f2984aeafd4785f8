package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Messages carry the component name as their own prefix (e.g. "InitDB: ..."),
// so the logger only adds the service prefix and, optionally, UTC timestamps.
type InitLogger struct {
	Service    string `config:"SERVICE_NAME" default:"ai-directory"`
	Timestamps bool   `config:"LOG_TIMESTAMPS" default:"true"`
	output     io.Writer
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.output
	if out == nil {
		out = os.Stdout
	}

	flags := log.Lmsgprefix
	if il.Timestamps {
		flags |= log.LstdFlags | log.LUTC
	}

	prefix := ""
	if il.Service != "" {
		prefix = "[" + il.Service + "] "
	}

	depend.Register(log.New(out, prefix, flags))
	return ctx, nil
}
