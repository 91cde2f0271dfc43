package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mosorio19/Lomito/internal/models"

	"github.com/google/uuid"
)

// PetStore is the persistence surface the pet service needs.
type PetStore interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	Delete(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status models.PetStatus) ([]*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error)
}

// PetService handles pet listing logic.
type PetService struct {
	pets     PetStore
	uploader Uploader
}

// NewPetService creates a new pet service
func NewPetService(pets PetStore, uploader Uploader) *PetService {
	return &PetService{pets: pets, uploader: uploader}
}

// CreatePetInput carries the pet creation form fields plus the photo
// upload. Age arrives as text.
type CreatePetInput struct {
	Name               string
	Age                string
	Characteristics    string
	Description        string
	Breed              string
	Size               string
	AdoptionAddress    string
	VisitingHoursStart string
	VisitingHoursEnd   string
	Requirements       string
	Photo              io.Reader
	Filename           string
}

// Create validates the listing, uploads the photo and persists the pet
// owned by the calling account. New pets start as not-adopted so they
// show up in the adoption listing immediately.
func (s *PetService) Create(ctx context.Context, ownerID string, in CreatePetInput) (*models.Pet, error) {
	age, err := strconv.Atoi(strings.TrimSpace(in.Age))
	if err != nil || age < 0 {
		return nil, ErrInvalidAge
	}

	breed, err := parseBreed(in.Breed)
	if err != nil {
		return nil, err
	}
	size, err := parseSize(in.Size)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.uploader.Upload(ctx, "pets", in.Filename, in.Photo)
	if err != nil {
		return nil, fmt.Errorf("failed to upload pet photo: %w", err)
	}

	now := time.Now()
	pet := &models.Pet{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Age:                age,
		Characteristics:    in.Characteristics,
		Description:        in.Description,
		Breed:              breed,
		Size:               size,
		PhotoURL:           photoURL,
		AdoptionAddress:    in.AdoptionAddress,
		VisitingHoursStart: in.VisitingHoursStart,
		VisitingHoursEnd:   in.VisitingHoursEnd,
		Requirements:       in.Requirements,
		Status:             models.StatusNotAdopted,
		OwnerID:            ownerID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	return pet, nil
}

// Get returns a pet by its identifier.
func (s *PetService) Get(ctx context.Context, id string) (*models.Pet, error) {
	return s.pets.GetByID(ctx, id)
}

// Delete removes a pet. Only the owning account may delete a listing.
func (s *PetService) Delete(ctx context.Context, id, callerID string) error {
	pet, err := s.pets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pet.OwnerID != callerID {
		return ErrNotOwner
	}
	return s.pets.Delete(ctx, id)
}

// ListAvailable returns all pets still waiting for adoption.
func (s *PetService) ListAvailable(ctx context.Context) ([]*models.Pet, error) {
	return s.pets.ListByStatus(ctx, models.StatusNotAdopted)
}

// ListByOwner returns the pets listed by an account.
func (s *PetService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

// parseBreed normalizes and validates a breed value. Inputs are trimmed
// first: the legacy data set carried an "extragrande " variant with a
// trailing space.
func parseBreed(raw string) (models.Breed, error) {
	switch models.Breed(strings.TrimSpace(raw)) {
	case models.BreedGolden:
		return models.BreedGolden, nil
	case models.BreedChihuahua:
		return models.BreedChihuahua, nil
	case models.BreedLabrador:
		return models.BreedLabrador, nil
	case models.BreedExtraLarge:
		return models.BreedExtraLarge, nil
	}
	return "", ErrInvalidBreed
}

func parseSize(raw string) (models.Size, error) {
	switch models.Size(strings.TrimSpace(raw)) {
	case models.SizeSmall:
		return models.SizeSmall, nil
	case models.SizeMedium:
		return models.SizeMedium, nil
	case models.SizeLarge:
		return models.SizeLarge, nil
	case models.SizeExtraLarge:
		return models.SizeExtraLarge, nil
	}
	return "", ErrInvalidSize
}
