package handlers

import (
	"net/http"

	"github.com/mosorio19/Lomito/internal/middleware"
	"github.com/mosorio19/Lomito/internal/models"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AdoptionHandler handles adoption workflow HTTP requests
type AdoptionHandler struct {
	adoptionService *services.AdoptionService
}

// NewAdoptionHandler creates a new adoption handler
func NewAdoptionHandler(adoptionService *services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

// NewForm handles GET /adopcion/new
func (h *AdoptionHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fields": []string{"pet_id", "mensaje", "fecha_solicitud"},
	})
}

// Create handles POST /adopcion
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	request, err := h.adoptionService.Create(ctx, accountID, services.CreateRequestInput{
		PetID:         r.FormValue("pet_id"),
		Message:       r.FormValue("mensaje"),
		RequestedDate: r.FormValue("fecha_solicitud"),
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("account_id", accountID).
			Msg("Failed to create adoption request")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("request_id", request.ID).
		Str("pet_id", request.PetID).
		Str("account_id", accountID).
		Msg("Adoption request created")

	respondJSON(w, http.StatusCreated, request)
}

// Get handles GET /adopcion/{id}
func (h *AdoptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chi.URLParam(r, "id")

	request, err := h.adoptionService.Get(ctx, requestID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, request)
}

// ListIncoming handles GET /adopcion: requests targeting the caller's
// own pets.
func (h *AdoptionHandler) ListIncoming(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	requests, err := h.adoptionService.ListIncoming(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Str("account_id", accountID).Msg("Failed to list incoming requests")
		respondServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []*models.AdoptionRequest{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    len(requests),
	})
}

// ListMine handles GET /adopcion/my_adoptions
func (h *AdoptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	requests, err := h.adoptionService.ListMine(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Str("account_id", accountID).Msg("Failed to list my requests")
		respondServiceError(w, err)
		return
	}
	if requests == nil {
		requests = []*models.AdoptionRequest{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    len(requests),
	})
}
