package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mosorio19/Lomito/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdoptionRepository handles database operations for adoption requests
type AdoptionRepository struct {
	db *pgxpool.Pool
}

// NewAdoptionRepository creates a new adoption repository
func NewAdoptionRepository(db *pgxpool.Pool) *AdoptionRepository {
	return &AdoptionRepository{db: db}
}

const adoptionColumns = `
	id, message, requested_date, pet_id, account_id, created_at
`

func scanAdoption(row pgx.Row) (*models.AdoptionRequest, error) {
	var a models.AdoptionRequest
	err := row.Scan(&a.ID, &a.Message, &a.RequestedDate, &a.PetID, &a.AccountID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateWithStatusFlip inserts an adoption request and moves the target
// pet from not-adopted to in-process in a single transaction. Returns
// ErrNotFound if the pet does not exist and ErrPetUnavailable if it is
// already in-process or adopted.
func (r *AdoptionRepository) CreateWithStatusFlip(ctx context.Context, request *models.AdoptionRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status models.PetStatus
	err = tx.QueryRow(ctx, `SELECT status FROM pets WHERE id = $1 FOR UPDATE`, request.PetID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock pet: %w", err)
	}
	if status != models.StatusNotAdopted {
		return ErrPetUnavailable
	}

	insert := `
		INSERT INTO adoption_requests (id, message, requested_date, pet_id, account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.Exec(ctx, insert,
		request.ID, request.Message, request.RequestedDate,
		request.PetID, request.AccountID, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create adoption request: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE pets SET status = $1, updated_at = now() WHERE id = $2`,
		models.StatusInProcess, request.PetID)
	if err != nil {
		return fmt.Errorf("failed to update pet status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit adoption request: %w", err)
	}
	return nil
}

// GetByID retrieves an adoption request by ID
func (r *AdoptionRepository) GetByID(ctx context.Context, id string) (*models.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE id = $1`
	request, err := scanAdoption(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get adoption request: %w", err)
	}
	return request, nil
}

// ListByPetOwner retrieves all requests targeting pets owned by an account
func (r *AdoptionRepository) ListByPetOwner(ctx context.Context, ownerID string) ([]*models.AdoptionRequest, error) {
	query := `
		SELECT ar.id, ar.message, ar.requested_date, ar.pet_id, ar.account_id, ar.created_at
		FROM adoption_requests ar
		JOIN pets p ON p.id = ar.pet_id
		WHERE p.owner_id = $1
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption requests by pet owner: %w", err)
	}
	defer rows.Close()
	return collectAdoptions(rows)
}

// ListByAccount retrieves all requests created by an account
func (r *AdoptionRepository) ListByAccount(ctx context.Context, accountID string) ([]*models.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests WHERE account_id = $1`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption requests by account: %w", err)
	}
	defer rows.Close()
	return collectAdoptions(rows)
}

func collectAdoptions(rows pgx.Rows) ([]*models.AdoptionRequest, error) {
	var requests []*models.AdoptionRequest
	for rows.Next() {
		request, err := scanAdoption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adoption request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adoption requests: %w", err)
	}
	return requests, nil
}
