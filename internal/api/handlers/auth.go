package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/karankatare99/uber/internal/auth"
	"github.com/karankatare99/uber/internal/config"
	"github.com/karankatare99/uber/internal/domain"
	"github.com/karankatare99/uber/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	UserType  string `json:"userType"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.UserType, validation.Required,
			validation.In(string(domain.UserTypeRider), string(domain.UserTypeDriver))),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UserSummary is the minimal view returned by register and login.
type UserSummary struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	UserType domain.UserType `json:"userType"`
}

func summarize(user *domain.User) UserSummary {
	return UserSummary{
		ID:       user.ID.String(),
		Email:    user.Email,
		UserType: user.UserType,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondIssues(w, err)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		UserType:  domain.UserType(req.UserType),
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			respondMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("ERROR [auth.Register] failed to create user: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	auth.SetSessionCookie(w, result.SessionToken, h.cfg.SessionTTL, h.cfg.IsProduction())
	respondJSON(w, http.StatusCreated, map[string]UserSummary{
		"newUserData": summarize(result.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondIssues(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User doesn't exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondMessage(w, http.StatusUnauthorized, "Wrong Password")
		default:
			log.Printf("ERROR [auth.Login] failed to login user: %v", err)
			respondMessage(w, http.StatusInternalServerError, "Failed to login user")
		}
		return
	}

	auth.SetSessionCookie(w, result.SessionToken, h.cfg.SessionTTL, h.cfg.IsProduction())
	respondJSON(w, http.StatusCreated, map[string]UserSummary{
		"userData": summarize(result.User),
	})
}

// Logout clears the cookie and the stored token. It never requires the
// caller to be authenticated and always reports success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		log.Printf("ERROR [auth.Logout] failed to clear stored token: %v", err)
	}

	auth.ClearSessionCookie(w, h.cfg.IsProduction())
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// Session answers "who is logged in". Verification failures are not
// errors; the response is simply a null user.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	if token == "" {
		respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.authService.Session(r.Context(), token)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	respondJSON(w, http.StatusOK, map[string]domain.PublicUser{"user": user.Public()})
}

func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(auth.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
