// Package graphhttp connects a depgraph.Graph to net/http.
//
// [Middleware] makes the graph available to handlers through the request
// context, and [Router] exposes a read-only view of the registrations for
// debugging:
//
//	r := chi.NewRouter()
//	r.Use(graphhttp.Middleware(g))
//	r.Mount("/debug/graph", graphhttp.Router(g))
package graphhttp

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ARTM2000/depgraph"
)

// Middleware stores g in every request context. Handlers read it back with
// depgraph.FromContext(r.Context()).
func Middleware(g *depgraph.Graph) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(depgraph.WithGraph(r.Context(), g)))
		})
	}
}

// Registration is the JSON form of one graph item.
type Registration struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// Registrations describes the items of g in lookup order.
func Registrations(g *depgraph.Graph) []Registration {
	items := g.Items()
	out := make([]Registration, 0, len(items))
	for i, it := range items {
		typ := "<empty>"
		if t := it.Type(); t != nil {
			typ = t.String()
		}
		out = append(out, Registration{Index: i, Type: typ, Scope: it.Scope().String()})
	}
	return out
}

// Router serves:
//
//	GET /    the registrations of g
//	GET /id  the graph identifier
func Router(g *depgraph.Graph) chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Registrations(g))
	})
	r.Get("/id", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"id": g.ID().String()})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
