// Package memory provides in-memory implementations of the service
// store interfaces. They back the tests and local development without a
// database.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mosorio19/Lomito/internal/models"
	"github.com/mosorio19/Lomito/internal/repository"
)

// AccountRepo is an in-memory account store
type AccountRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Account
}

// NewAccountRepo creates an empty in-memory account store
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{byID: make(map[string]models.Account)}
}

func (r *AccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.byID {
		if a.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.byID[account.ID] = *account
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Email == email {
			out := a
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *AccountRepo) CompleteProfile(ctx context.Context, id, region, phone, bio, idealPet, photoURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.Region = region
	a.Phone = phone
	a.Bio = bio
	a.IdealPet = idealPet
	a.PhotoURL = photoURL
	a.UpdatedAt = time.Now()
	r.byID[id] = a
	return nil
}

func (r *AccountRepo) UpdatePushToken(ctx context.Context, accountID string, pushToken *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[accountID]
	if !ok {
		return repository.ErrNotFound
	}
	a.PushToken = pushToken
	a.UpdatedAt = time.Now()
	r.byID[accountID] = a
	return nil
}

// Count returns the number of stored accounts
func (r *AccountRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// SessionRepo is an in-memory session store
type SessionRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Session
}

// NewSessionRepo creates an empty in-memory session store
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{byID: make(map[string]models.Session)}
}

func (r *SessionRepo) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[session.ID] = *session
	return nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok || s.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

// PetRepo is an in-memory pet store
type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Pet
}

// NewPetRepo creates an empty in-memory pet store
func NewPetRepo() *PetRepo {
	return &PetRepo{byID: make(map[string]models.Pet)}
}

func (r *PetRepo) Create(ctx context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(pet.ID) == "" {
		return errors.New("pet id required")
	}
	r.byID[pet.ID] = *pet
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *PetRepo) ListByStatus(ctx context.Context, status models.PetStatus) ([]*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Pet
	for _, p := range r.byID {
		if p.Status == status {
			pet := p
			out = append(out, &pet)
		}
	}
	return out, nil
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Pet
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			pet := p
			out = append(out, &pet)
		}
	}
	return out, nil
}

// AdoptionRepo is an in-memory adoption request store. It shares the
// pet store so the status flip stays one logical operation.
type AdoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]models.AdoptionRequest
	pets *PetRepo
}

// NewAdoptionRepo creates an empty in-memory adoption store
func NewAdoptionRepo(pets *PetRepo) *AdoptionRepo {
	return &AdoptionRepo{byID: make(map[string]models.AdoptionRequest), pets: pets}
}

func (r *AdoptionRepo) CreateWithStatusFlip(ctx context.Context, request *models.AdoptionRequest) error {
	r.pets.mu.Lock()
	defer r.pets.mu.Unlock()

	pet, ok := r.pets.byID[request.PetID]
	if !ok {
		return repository.ErrNotFound
	}
	if pet.Status != models.StatusNotAdopted {
		return repository.ErrPetUnavailable
	}

	r.mu.Lock()
	r.byID[request.ID] = *request
	r.mu.Unlock()

	pet.Status = models.StatusInProcess
	pet.UpdatedAt = time.Now()
	r.pets.byID[request.PetID] = pet
	return nil
}

func (r *AdoptionRepo) GetByID(ctx context.Context, id string) (*models.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &req, nil
}

func (r *AdoptionRepo) ListByPetOwner(ctx context.Context, ownerID string) ([]*models.AdoptionRequest, error) {
	// Snapshot the requests before touching the pet store:
	// CreateWithStatusFlip locks pets first, so resolving owners while
	// holding r.mu would invert the lock order.
	r.mu.RLock()
	snapshot := make([]models.AdoptionRequest, 0, len(r.byID))
	for _, req := range r.byID {
		snapshot = append(snapshot, req)
	}
	r.mu.RUnlock()

	var out []*models.AdoptionRequest
	for i := range snapshot {
		pet, err := r.pets.GetByID(ctx, snapshot[i].PetID)
		if err != nil {
			continue
		}
		if pet.OwnerID == ownerID {
			out = append(out, &snapshot[i])
		}
	}
	return out, nil
}

func (r *AdoptionRepo) ListByAccount(ctx context.Context, accountID string) ([]*models.AdoptionRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.AdoptionRequest
	for _, req := range r.byID {
		if req.AccountID == accountID {
			item := req
			out = append(out, &item)
		}
	}
	return out, nil
}
