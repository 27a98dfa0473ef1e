package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lowtide-records/label-api/internal/ports"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "Not found", nil)
}

// writeAdapterError maps the closed error set from the adapter layer onto
// a response: upstream failures keep their status, configuration gaps are
// a 500 the operator must fix, everything else is an opaque 500.
func writeAdapterError(w http.ResponseWriter, log *zap.SugaredLogger, op string, err error) {
	var upstream *ports.UpstreamError
	switch {
	case errors.As(err, &upstream):
		log.Warnw("upstream error", "op", op, "service", upstream.Service, "status", upstream.Status)
		writeError(w, upstream.Status, upstream.Error(), upstream.Detail)
	case errors.Is(err, ports.ErrNotConfigured):
		log.Errorw("missing configuration", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "Service not configured", nil)
	default:
		log.Errorw("unhandled error", "op", op, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// setCache advertises the public freshness window plus the
// stale-while-revalidate allowance honored by the CDN in front.
func setCache(w http.ResponseWriter, maxAge, staleWhileRevalidate int) {
	w.Header().Set("Cache-Control", fmt.Sprintf(
		"public, s-maxage=%d, stale-while-revalidate=%d",
		maxAge, staleWhileRevalidate,
	))
}
