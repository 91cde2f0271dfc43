package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosorio19/Lomito/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PetRepository handles database operations for pets
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

const petColumns = `
	id, name, age, characteristics, description, breed, size, photo_url,
	adoption_address, visiting_hours_start, visiting_hours_end,
	requirements, status, owner_id, created_at, updated_at
`

func scanPet(row pgx.Row) (*models.Pet, error) {
	var p models.Pet
	err := row.Scan(
		&p.ID, &p.Name, &p.Age, &p.Characteristics, &p.Description,
		&p.Breed, &p.Size, &p.PhotoURL, &p.AdoptionAddress,
		&p.VisitingHoursStart, &p.VisitingHoursEnd, &p.Requirements,
		&p.Status, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new pet listing
func (r *PetRepository) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (id, name, age, characteristics, description, breed, size,
			photo_url, adoption_address, visiting_hours_start, visiting_hours_end,
			requirements, status, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Exec(ctx, query,
		pet.ID, pet.Name, pet.Age, pet.Characteristics, pet.Description,
		pet.Breed, pet.Size, pet.PhotoURL, pet.AdoptionAddress,
		pet.VisitingHoursStart, pet.VisitingHoursEnd, pet.Requirements,
		pet.Status, pet.OwnerID, pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID retrieves a pet by ID
func (r *PetRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	pet, err := scanPet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return pet, nil
}

// Delete removes a pet by ID
func (r *PetRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM pets WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByStatus retrieves all pets with the given adoption status
func (r *PetRepository) ListByStatus(ctx context.Context, status models.PetStatus) ([]*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE status = $1`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by status: %w", err)
	}
	defer rows.Close()
	return collectPets(rows)
}

// ListByOwner retrieves all pets owned by an account
func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by owner: %w", err)
	}
	defer rows.Close()
	return collectPets(rows)
}

func collectPets(rows pgx.Rows) ([]*models.Pet, error) {
	var pets []*models.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}
	return pets, nil
}
