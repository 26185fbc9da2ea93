// Package docs serves the development-only API documentation page: a
// hand-maintained OpenAPI document plus a small Swagger UI shell around it.
package docs

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed openapi.json swagger.html
var content embed.FS

// Mount attaches the documentation routes to the router.
func Mount(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/", func(w http.ResponseWriter, req *http.Request) {
		page, err := content.ReadFile("swagger.html")
		if err != nil {
			http.Error(w, "Documentation unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	r.Get("/swagger/v1/swagger.json", func(w http.ResponseWriter, req *http.Request) {
		doc, err := content.ReadFile("openapi.json")
		if err != nil {
			http.Error(w, "Documentation unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(doc)
	})
}
