package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

func TestCustomerRepoSearchNewestFirst(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	older := &models.Customer{ID: uuid.New(), Name: "Fahad Al-Otaibi", Phone: "+966500000001"}
	newer := &models.Customer{ID: uuid.New(), Name: "Fahad Al-Harbi", Phone: "+966500000002"}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	out, err := repo.Search(ctx, "fahad")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, newer.ID, out[0].ID)
	require.Equal(t, older.ID, out[1].ID)

	// phone fragments match too
	out, err = repo.Search(ctx, "0002")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, newer.ID, out[0].ID)
}

func TestCustomerRepoFindByPhone(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	c := &models.Customer{ID: uuid.New(), Name: "Sara", Phone: "+966500000002"}
	require.NoError(t, repo.Create(ctx, c))

	found, err := repo.FindByPhone(ctx, "+966500000002")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, c.ID, found.ID)

	missing, err := repo.FindByPhone(ctx, "+966599999999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCustomerRepoCustomDataRoundTrip(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	raw := json.RawMessage(`{"item_id":"offer-1","rooms":4,"features":["pool"]}`)
	c := &models.Customer{ID: uuid.New(), Name: "Fahad", Phone: "+966500000001", CustomData: raw}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []byte(raw), []byte(got.CustomData))
}

func TestCustomerRepoReturnsIsolatedCopies(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	c := &models.Customer{ID: uuid.New(), Name: "Fahad", Phone: "+966500000001", Tags: []string{"vip"}}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "mutated"
	got.Tags[0] = "mutated"

	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Fahad", again.Name)
	require.Equal(t, []string{"vip"}, again.Tags)
}

func TestCustomerRepoDelete(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()

	c := &models.Customer{ID: uuid.New(), Name: "Fahad", Phone: "+966500000001"}
	require.NoError(t, repo.Create(ctx, c))

	deleted, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
