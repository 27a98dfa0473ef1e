package delivery

import (
	"net/http"

	"github.com/lowtide-records/label-api/internal/ports"
	"go.uber.org/zap"
)

type AdminHandler struct {
	newsletter ports.NewsletterRepository
	content    ports.ContentRepository
	log        *zap.SugaredLogger
}

func NewAdminHandler(newsletter ports.NewsletterRepository, content ports.ContentRepository, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		newsletter: newsletter,
		content:    content,
		log:        log,
	}
}

// GET /api/admin/newsletter/stats
func (h *AdminHandler) NewsletterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.newsletter.Stats(r.Context())
	if err != nil {
		h.log.Errorw("newsletter stats failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GET /api/admin/releases/categories
func (h *AdminHandler) ReleaseCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.ListCategories(r.Context())
	if err != nil {
		h.log.Errorw("list categories failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}
