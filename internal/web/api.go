package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"grocer-be/internal/catalog"
	"grocer-be/internal/logger"
	"grocer-be/internal/metrics"
)

type healthResponse struct {
	Status  string           `json:"status"`
	Metrics metrics.Snapshot `json:"metrics"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "OK", Metrics: s.metrics.Snapshot()})
}

// listProducts answers GET /api/products, optionally filtered by ?q=.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.List(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("list products failed", zap.String("layer", "web"), zap.Error(err))
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
		return
	}

	out := catalog.Filter(products, r.URL.Query().Get("q"))
	if out == nil {
		out = []catalog.Product{}
	}
	writeJSON(w, r, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromCtx(r.Context()).Warn("encode response failed", zap.Error(err))
	}
}
