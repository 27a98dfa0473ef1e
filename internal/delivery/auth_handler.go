package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lowtide-records/label-api/internal/domain"
	"github.com/lowtide-records/label-api/internal/ports"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth ports.AuthService
	log  *zap.SugaredLogger
}

func NewAuthHandler(auth ports.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.log.Errorw("login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	h.log.Infow("admin login", "email", req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
