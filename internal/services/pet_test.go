package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mosorio19/Lomito/internal/models"
	"github.com/mosorio19/Lomito/internal/repository"
	"github.com/mosorio19/Lomito/internal/repository/memory"
	"github.com/mosorio19/Lomito/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPetService() (*services.PetService, *memory.PetRepo) {
	pets := memory.NewPetRepo()
	return services.NewPetService(pets, fakeUploader{}), pets
}

func validPet() services.CreatePetInput {
	return services.CreatePetInput{
		Name:               "Firulais",
		Age:                "3",
		Characteristics:    "juguetón",
		Description:        "muy amigable",
		Breed:              "labrador",
		Size:               "mediano",
		AdoptionAddress:    "Av. Siempre Viva 742",
		VisitingHoursStart: "10:00",
		VisitingHoursEnd:   "18:00",
		Requirements:       "jardín",
		Photo:              bytes.NewReader([]byte("fake-image")),
		Filename:           "firulais.jpg",
	}
}

func TestCreatePet(t *testing.T) {
	svc, _ := newPetService()
	ctx := context.Background()

	pet, err := svc.Create(ctx, "owner-1", validPet())
	require.NoError(t, err)

	assert.Equal(t, "owner-1", pet.OwnerID)
	assert.Equal(t, models.StatusNotAdopted, pet.Status, "new pets must be listed as not adopted")
	assert.Equal(t, models.BreedLabrador, pet.Breed)
	assert.Equal(t, "18:00", pet.VisitingHoursEnd)
	assert.Equal(t, "https://cdn.test/pets/firulais.jpg", pet.PhotoURL)
}

func TestCreatePetEnumValidation(t *testing.T) {
	svc, _ := newPetService()
	ctx := context.Background()

	in := validPet()
	in.Breed = "husky"
	_, err := svc.Create(ctx, "owner-1", in)
	assert.ErrorIs(t, err, services.ErrInvalidBreed)

	in = validPet()
	in.Size = "gigante"
	_, err = svc.Create(ctx, "owner-1", in)
	assert.ErrorIs(t, err, services.ErrInvalidSize)

	// The legacy value space carried "extragrande " with a trailing
	// space; it must still be accepted and stored trimmed.
	in = validPet()
	in.Breed = "extragrande "
	in.Size = "extragrande "
	pet, err := svc.Create(ctx, "owner-1", in)
	require.NoError(t, err)
	assert.Equal(t, models.BreedExtraLarge, pet.Breed)
	assert.Equal(t, models.SizeExtraLarge, pet.Size)
}

func TestCreatePetInvalidAge(t *testing.T) {
	svc, _ := newPetService()

	for _, age := range []string{"cachorro", "-3"} {
		in := validPet()
		in.Age = age
		_, err := svc.Create(context.Background(), "owner-1", in)
		assert.ErrorIs(t, err, services.ErrInvalidAge, "age %q", age)
	}
}

func TestDeletePetOwnership(t *testing.T) {
	svc, _ := newPetService()
	ctx := context.Background()

	pet, err := svc.Create(ctx, "owner-1", validPet())
	require.NoError(t, err)

	err = svc.Delete(ctx, pet.ID, "intruder")
	assert.ErrorIs(t, err, services.ErrNotOwner)

	_, err = svc.Get(ctx, pet.ID)
	require.NoError(t, err, "pet must survive a forbidden delete")

	require.NoError(t, svc.Delete(ctx, pet.ID, "owner-1"))

	_, err = svc.Get(ctx, pet.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMissingPet(t *testing.T) {
	svc, _ := newPetService()

	err := svc.Delete(context.Background(), "no-such-pet", "owner-1")
	assert.ErrorIs(t, err, repository.ErrNotFound, "delete must report missing pets like the read path does")
}

func TestListAvailableExcludesRequestedPets(t *testing.T) {
	svc, pets := newPetService()
	ctx := context.Background()

	available, err := svc.Create(ctx, "owner-1", validPet())
	require.NoError(t, err)

	in := validPet()
	in.Name = "Solovino"
	in.Photo = bytes.NewReader([]byte("fake-image"))
	requested, err := svc.Create(ctx, "owner-2", in)
	require.NoError(t, err)

	adoptions := memory.NewAdoptionRepo(pets)
	err = adoptions.CreateWithStatusFlip(ctx, &models.AdoptionRequest{
		ID:        "req-1",
		PetID:     requested.ID,
		AccountID: "owner-1",
	})
	require.NoError(t, err)

	listed, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, available.ID, listed[0].ID)
}

func TestListByOwner(t *testing.T) {
	svc, _ := newPetService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", validPet())
	require.NoError(t, err)

	in := validPet()
	in.Photo = bytes.NewReader([]byte("fake-image"))
	_, err = svc.Create(ctx, "owner-2", in)
	require.NoError(t, err)

	mine, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "owner-1", mine[0].OwnerID)
}
