package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mosorio19/Lomito/internal/models"

	"github.com/google/uuid"
)

// AdoptionStore is the persistence surface the adoption service needs.
// CreateWithStatusFlip performs the request insert and the pet status
// transition as one transactional unit.
type AdoptionStore interface {
	CreateWithStatusFlip(ctx context.Context, request *models.AdoptionRequest) error
	GetByID(ctx context.Context, id string) (*models.AdoptionRequest, error)
	ListByPetOwner(ctx context.Context, ownerID string) ([]*models.AdoptionRequest, error)
	ListByAccount(ctx context.Context, accountID string) ([]*models.AdoptionRequest, error)
}

// AdoptionNotifier delivers best-effort notifications about new
// requests. Implementations must not fail the request on delivery
// problems.
type AdoptionNotifier interface {
	AdoptionRequested(ctx context.Context, pet *models.Pet, request *models.AdoptionRequest)
}

// AdoptionService handles the adoption workflow.
type AdoptionService struct {
	requests AdoptionStore
	pets     PetStore
	notifier AdoptionNotifier
}

// NewAdoptionService creates a new adoption service. notifier may be
// nil when no notification channel is configured.
func NewAdoptionService(requests AdoptionStore, pets PetStore, notifier AdoptionNotifier) *AdoptionService {
	return &AdoptionService{requests: requests, pets: pets, notifier: notifier}
}

// CreateRequestInput carries the adoption request form fields.
type CreateRequestInput struct {
	PetID         string
	Message       string
	RequestedDate string
}

// Create persists an adoption request for the calling account and moves
// the pet to in-process. Both writes commit together. The pet owner is
// notified after the commit; delivery is best-effort.
func (s *AdoptionService) Create(ctx context.Context, accountID string, in CreateRequestInput) (*models.AdoptionRequest, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return nil, fmt.Errorf("pet_id is required")
	}

	request := &models.AdoptionRequest{
		ID:            uuid.New().String(),
		Message:       in.Message,
		RequestedDate: in.RequestedDate,
		PetID:         in.PetID,
		AccountID:     accountID,
		CreatedAt:     time.Now(),
	}

	if err := s.requests.CreateWithStatusFlip(ctx, request); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if pet, err := s.pets.GetByID(ctx, request.PetID); err == nil {
			s.notifier.AdoptionRequested(ctx, pet, request)
		}
	}

	return request, nil
}

// Get returns an adoption request by its identifier.
func (s *AdoptionService) Get(ctx context.Context, id string) (*models.AdoptionRequest, error) {
	return s.requests.GetByID(ctx, id)
}

// ListIncoming returns the requests targeting pets owned by the caller.
func (s *AdoptionService) ListIncoming(ctx context.Context, ownerID string) ([]*models.AdoptionRequest, error) {
	return s.requests.ListByPetOwner(ctx, ownerID)
}

// ListMine returns the requests created by the caller.
func (s *AdoptionService) ListMine(ctx context.Context, accountID string) ([]*models.AdoptionRequest, error) {
	return s.requests.ListByAccount(ctx, accountID)
}
