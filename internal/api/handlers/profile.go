package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/karankatare99/uber/internal/auth"
	"github.com/karankatare99/uber/internal/config"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/karankatare99/uber/internal/service"
)

type ProfileHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewProfileHandler(authService *service.AuthService, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{authService: authService, cfg: cfg}
}

// UpdateProfileRequest is a partial update; omitted fields stay unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (r UpdateProfileRequest) Validate() error {
	if r.FirstName == nil && r.LastName == nil {
		return errors.New("at least one of firstName, lastName is required")
	}
	if r.FirstName != nil && *r.FirstName == "" {
		return errors.New("firstName cannot be blank")
	}
	if r.LastName != nil && *r.LastName == "" {
		return errors.New("lastName cannot be blank")
	}
	return nil
}

// Update changes the caller's name fields and refreshes the session cookie
// so the token claims match the stored record.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	if token == "" {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondIssues(w, err)
		return
	}

	result, err := h.authService.UpdateProfile(r.Context(), token, service.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, service.ErrEmptyPatch):
			respondMessage(w, http.StatusBadRequest, "No fields to update")
		default:
			log.Printf("ERROR [profile.Update] failed to update user: %v", err)
			respondMessage(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	auth.SetSessionCookie(w, result.SessionToken, h.cfg.SessionTTL, h.cfg.IsProduction())
	respondJSON(w, http.StatusOK, map[string]domain.PublicUser{
		"updatedUser": result.User.Public(),
	})
}
