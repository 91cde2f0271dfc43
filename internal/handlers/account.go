package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mosorio19/Lomito/internal/middleware"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/rs/zerolog/log"
)

const maxUploadSize = 10 << 20 // 10 MiB

// AccountHandler handles registration, login and profile HTTP requests
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Landing handles GET /
func (h *AccountHandler) Landing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"name":   "Lomito",
		"signup": "/signup",
		"login":  "/login",
	})
}

// LoginForm handles GET /login
func (h *AccountHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"email", "password"},
	})
}

// SignupForm handles GET /signup
func (h *AccountHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"name", "sex", "lastname", "age", "email", "password"},
	})
}

// Signup handles POST /signup (registration step 1)
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, err := h.accountService.Signup(ctx, services.SignupInput{
		Name:     r.FormValue("name"),
		Sex:      r.FormValue("sex"),
		Surname:  r.FormValue("lastname"),
		Age:      r.FormValue("age"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("account_id", account.ID).
		Str("email", account.Email).
		Msg("Account created")

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"account":   account,
		"next_step": "/signup_step_2",
	})
}

// SignupStep2 handles POST /signup_step_2 (profile completion + photo)
func (h *AccountHandler) SignupStep2(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, "photo is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	account, err := h.accountService.CompleteProfile(ctx, services.ProfileInput{
		AccountID: r.FormValue("account_id"),
		Region:    r.FormValue("estado"),
		Phone:     r.FormValue("phone"),
		Bio:       r.FormValue("about_me"),
		IdealPet:  r.FormValue("about_pet"),
		Photo:     file,
		Filename:  header.Filename,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to complete profile")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("account_id", account.ID).Msg("Profile completed")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"account":   account,
		"next_step": "/login",
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, account, err := h.accountService.Login(ctx, r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("account_id", account.ID).Msg("Login")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"account": account,
	})
}

// Logout handles GET /logout. The route is public: a missing or dead
// token still yields a successful logout.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token, ok := middleware.BearerToken(r); ok {
		if _, sessionID, err := h.accountService.Authenticate(ctx, token); err == nil {
			if err := h.accountService.Logout(ctx, sessionID); err != nil {
				log.Error().Err(err).Msg("Failed to delete session")
				respondError(w, "internal error", http.StatusInternalServerError)
				return
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Profile handles GET /profile
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	account, err := h.accountService.GetByID(ctx, accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"name": account.Name})
}

type pushTokenRequest struct {
	PushToken *string `json:"push_token"`
}

// UpdatePushToken handles PUT /profile/push_token
func (h *AccountHandler) UpdatePushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	var req pushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.accountService.RegisterPushToken(ctx, accountID, req.PushToken); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "push token updated"})
}
