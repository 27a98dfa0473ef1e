package delivery

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lowtide-records/label-api/internal/models"
	"github.com/lowtide-records/label-api/internal/ports"
	"go.uber.org/zap"
)

// Freshness windows per route family, in seconds. The revalidation
// allowance is a day everywhere.
const (
	contentMaxAge   = 300
	artistsMaxAge   = 600
	staleRevalidate = 86400
)

type ContentHandler struct {
	repo      ports.ContentRepository
	imageBase string
	log       *zap.SugaredLogger
}

// imageBase is the storage host prefixed onto relative image keys; rows
// that already carry an absolute URL pass through untouched.
func NewContentHandler(repo ports.ContentRepository, imageBase string, log *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{
		repo:      repo,
		imageBase: imageBase,
		log:       log,
	}
}

func (h *ContentHandler) imageURL(ref string) string {
	if ref == "" || h.imageBase == "" {
		return ref
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(h.imageBase, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// GET /api/releases/{slug}
func (h *ContentHandler) GetRelease(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	rel, err := h.repo.GetReleaseBySlug(r.Context(), slug)
	if err != nil {
		h.log.Errorw("get release failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if rel == nil {
		writeNotFound(w)
		return
	}
	rel.CoverURL = h.imageURL(rel.CoverURL)

	setCache(w, contentMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, rel)
}

// GET /api/news/{slug}
func (h *ContentHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	n, err := h.repo.GetNewsBySlug(r.Context(), slug)
	if err != nil {
		h.log.Errorw("get news failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if n == nil {
		writeNotFound(w)
		return
	}

	setCache(w, contentMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, n)
}

// GET /api/artists/{slug}
//
// No cache header here; every other read route sets one. Kept as observed.
func (h *ContentHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	a, err := h.repo.GetArtistBySlug(r.Context(), slug)
	if err != nil {
		h.log.Errorw("get artist failed", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if a == nil {
		writeNotFound(w)
		return
	}
	a.ImageURL = h.imageURL(a.ImageURL)

	writeJSON(w, http.StatusOK, a)
}

type artistListResponse struct {
	Items      []models.Artist `json:"items"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// GET /api/artists?page=&limit=&search=
func (h *ContentHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	q := ports.ArtistQuery{
		Search: r.URL.Query().Get("search"),
		Page:   parsePage(r.URL.Query().Get("page")),
		Limit:  parseLimit(r.URL.Query().Get("limit")),
	}

	items, total, err := h.repo.ListArtists(r.Context(), q)
	if err != nil {
		h.log.Errorw("list artists failed", "search", q.Search, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if items == nil {
		items = []models.Artist{}
	}
	for i := range items {
		items[i].ImageURL = h.imageURL(items[i].ImageURL)
	}

	setCache(w, artistsMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, artistListResponse{
		Items:      items,
		Total:      total,
		TotalPages: totalPages(total, q.Limit),
	})
}

type postListResponse struct {
	Items []models.Release `json:"items"`
}

// GET /api/posts/by-artist?artist=
func (h *ContentHandler) PostsByArtist(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist")

	// Empty query short-circuits without touching the store.
	if artist == "" {
		setCache(w, contentMaxAge, staleRevalidate)
		writeJSON(w, http.StatusOK, postListResponse{Items: []models.Release{}})
		return
	}

	items, err := h.repo.ListReleasesByArtist(r.Context(), artist)
	if err != nil {
		h.log.Errorw("posts by artist failed", "artist", artist, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if items == nil {
		items = []models.Release{}
	}
	for i := range items {
		items[i].CoverURL = h.imageURL(items[i].CoverURL)
	}

	setCache(w, contentMaxAge, staleRevalidate)
	writeJSON(w, http.StatusOK, postListResponse{Items: items})
}
