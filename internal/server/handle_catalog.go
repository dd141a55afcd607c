package server

import (
	"net/http"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

type CatalogResponse struct {
	Regions     []geoquiz.Region     `json:"regions"`
	Settlements []geoquiz.Settlement `json:"settlements"`
}

// handleCatalog exposes the entity catalog for the map layer.
func handleCatalog(catalog *geoquiz.Catalog) http.HandlerFunc {
	resp := CatalogResponse{
		Regions:     catalog.Regions,
		Settlements: catalog.Settlements,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
