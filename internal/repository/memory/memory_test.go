package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mosorio19/Lomito/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creating requests and listing by pet owner touch both stores. Run
// them concurrently to make sure the two paths cannot wedge each other
// on the store mutexes.
func TestConcurrentCreateAndListByPetOwner(t *testing.T) {
	ctx := context.Background()
	pets := NewPetRepo()
	adoptions := NewAdoptionRepo(pets)

	const writers = 8
	const petsPerWriter = 50

	for w := 0; w < writers; w++ {
		for i := 0; i < petsPerWriter; i++ {
			require.NoError(t, pets.Create(ctx, &models.Pet{
				ID:      fmt.Sprintf("pet-%d-%d", w, i),
				Name:    "Firulais",
				Status:  models.StatusNotAdopted,
				OwnerID: "owner-1",
			}))
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)

		go func(w int) {
			defer wg.Done()
			for i := 0; i < petsPerWriter; i++ {
				err := adoptions.CreateWithStatusFlip(ctx, &models.AdoptionRequest{
					ID:        fmt.Sprintf("req-%d-%d", w, i),
					PetID:     fmt.Sprintf("pet-%d-%d", w, i),
					AccountID: "adopter-1",
				})
				assert.NoError(t, err)
			}
		}(w)

		go func() {
			defer wg.Done()
			for i := 0; i < petsPerWriter; i++ {
				_, err := adoptions.ListByPetOwner(ctx, "owner-1")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	requests, err := adoptions.ListByPetOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, requests, writers*petsPerWriter)
}
