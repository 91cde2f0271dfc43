package models

import "time"

// PetStatus describes where a pet is in its adoption lifecycle.
type PetStatus int

const (
	StatusAdopted    PetStatus = 1
	StatusInProcess  PetStatus = 2
	StatusNotAdopted PetStatus = 3
)

// Breed is the set of breeds a pet listing may carry. The canonical
// value for the extra-large variant is the trimmed "extragrande";
// legacy inputs with trailing whitespace are normalized before
// validation.
type Breed string

const (
	BreedGolden     Breed = "golden"
	BreedChihuahua  Breed = "chihuahua"
	BreedLabrador   Breed = "labrador"
	BreedExtraLarge Breed = "extragrande"
)

// Size is the set of sizes a pet listing may carry.
type Size string

const (
	SizeSmall      Size = "chico"
	SizeMedium     Size = "mediano"
	SizeLarge      Size = "grande"
	SizeExtraLarge Size = "extragrande"
)

// Account represents a registered user.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Age          int       `json:"age"`
	Sex          string    `json:"sex"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Region       string    `json:"region,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	IdealPet     string    `json:"ideal_pet,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PushToken    *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Pet represents a pet listed for adoption.
type Pet struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Age                int       `json:"age"`
	Characteristics    string    `json:"characteristics"`
	Description        string    `json:"description"`
	Breed              Breed     `json:"breed"`
	Size               Size      `json:"size"`
	PhotoURL           string    `json:"photo_url"`
	AdoptionAddress    string    `json:"adoption_address"`
	VisitingHoursStart string    `json:"visiting_hours_start"`
	VisitingHoursEnd   string    `json:"visiting_hours_end"`
	Requirements       string    `json:"requirements"`
	Status             PetStatus `json:"status"`
	OwnerID            string    `json:"owner_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AdoptionRequest represents a claim by an account to adopt a pet.
type AdoptionRequest struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	RequestedDate string    `json:"requested_date"`
	PetID         string    `json:"pet_id"`
	AccountID     string    `json:"account_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session is a server-side login session. A JWT is only accepted while
// its session row is still present, which makes logout effective.
type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
