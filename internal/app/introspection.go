package app

import (
	"context"
	stdlog "log"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the dependency graph as Mermaid and
// registers it for the /introspect page.
type MermaidGraphIntrospector struct{}

// Introspect registers the graph under http.IntrospectionGraphName.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs the configuration keys read during startup and
// whether each one fell back to its default.
type ReportLoggerIntrospector struct {
	Logger *stdlog.Logger
}

// Introspect writes one line per configuration key.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*stdlog.Logger]()
		if err != nil {
			return err
		}
		logger = resolved
	}
	for _, c := range r.Configs {
		logger.Printf("Config: %s (default=%t)", c.Key, c.UsedDefault)
	}
	return nil
}
