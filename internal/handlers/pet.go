package handlers

import (
	"net/http"

	"github.com/mosorio19/Lomito/internal/middleware"
	"github.com/mosorio19/Lomito/internal/models"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PetHandler handles pet listing HTTP requests
type PetHandler struct {
	petService *services.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// NewForm handles GET /mascotas/new
func (h *PetHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"breeds": []models.Breed{
			models.BreedGolden, models.BreedChihuahua,
			models.BreedLabrador, models.BreedExtraLarge,
		},
		"sizes": []models.Size{
			models.SizeSmall, models.SizeMedium,
			models.SizeLarge, models.SizeExtraLarge,
		},
	})
}

// Create handles POST /mascotas
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

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

	pet, err := h.petService.Create(ctx, accountID, services.CreatePetInput{
		Name:               r.FormValue("nombre"),
		Age:                r.FormValue("edad"),
		Characteristics:    r.FormValue("caracteristicas"),
		Description:        r.FormValue("descripcion"),
		Breed:              r.FormValue("raza"),
		Size:               r.FormValue("talla"),
		AdoptionAddress:    r.FormValue("direccionAdopcion"),
		VisitingHoursStart: r.FormValue("horasInicio"),
		VisitingHoursEnd:   r.FormValue("horasFin"),
		Requirements:       r.FormValue("requerimientos"),
		Photo:              file,
		Filename:           header.Filename,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("pet_id", pet.ID).
		Str("owner_id", accountID).
		Msg("Pet listed")

	respondJSON(w, http.StatusCreated, pet)
}

// Get handles GET /mascotas/{id}
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	petID := chi.URLParam(r, "id")

	pet, err := h.petService.Get(ctx, petID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pet)
}

// Delete handles GET /mascotas/delete/{id}
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)
	petID := chi.URLParam(r, "id")

	if err := h.petService.Delete(ctx, petID, accountID); err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("pet_id", petID).
		Str("owner_id", accountID).
		Msg("Pet deleted")

	respondJSON(w, http.StatusOK, map[string]string{"deleted": petID})
}

// ListAvailable handles GET /mascotas
func (h *PetHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pets, err := h.petService.ListAvailable(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list pets")
		respondServiceError(w, err)
		return
	}
	if pets == nil {
		pets = []*models.Pet{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pets":  pets,
		"total": len(pets),
	})
}

// ListMine handles GET /mascotas/my_pets/all
func (h *PetHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := middleware.GetAccountID(ctx)

	pets, err := h.petService.ListByOwner(ctx, accountID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", accountID).Msg("Failed to list my pets")
		respondServiceError(w, err)
		return
	}
	if pets == nil {
		pets = []*models.Pet{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pets":  pets,
		"total": len(pets),
	})
}
