package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
)

const introspectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// IntrospectHandler renders the dependency graph of the running app together
// with the current state of the emotion index. A nil health use case skips the index line.
func IntrospectHandler(health usecases.GetEngineHealth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mermaidGraph, err := depend.ResolveNamed[string](introspectionGraphName)
		if err != nil {
			http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
			return
		}

		var engine string
		if health != nil {
			h, err := health.Query(r.Context())
			if err != nil {
				engine = "emotion index: unavailable"
			} else {
				engine = fmt.Sprintf("emotion index: %s (%d examples)", h.Status, h.VectorStoreCount)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, struct {
			Title  string
			Engine string
			Graph  string
		}{
			Title:  "Bomi Introspection Graph",
			Engine: engine,
			Graph:  mermaidGraph,
		}); err != nil {
			http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		}
	}
}
