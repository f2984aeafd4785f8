package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	const graph = "graph TD;\nA-->B;\nB-->C;\nA-->C;"
	register := func(t *testing.T) {
		depend.RegisterNamed(graph, IntrospectionGraphName)
		t.Cleanup(depend.ClearContainer)
	}

	tests := map[string]struct {
		target               string
		registerDependencies func(t *testing.T)
		expectedCode         int
		expectedType         string
		shouldContain        []string
	}{
		"html-page": {
			target:               "/introspect",
			registerDependencies: register,
			expectedCode:         http.StatusOK,
			expectedType:         "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>AI Directory Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"mermaid.initialize({ startOnLoad: false });",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>AI Directory Introspection Graph</h1>",
				`const { svg } = await mermaid.render('mermaid-svg-id', "graph TD;\nA--\u003eB;\nB--\u003eC;\nA--\u003eC;");`,
			},
		},
		"raw-mermaid": {
			target:               "/introspect?format=mermaid",
			registerDependencies: register,
			expectedCode:         http.StatusOK,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{graph},
		},
		"graph-not-registered": {
			target:               "/introspect",
			registerDependencies: func(t *testing.T) {},
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.registerDependencies(t)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			IntrospectHandler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			for _, expected := range tt.shouldContain {
				assert.Contains(t, w.Body.String(), expected)
			}
		})
	}
}
