package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

func TestOfferArchiveOffersWinOverRequests(t *testing.T) {
	repo := NewOfferArchiveRepository().(*offerArchiveRepo)
	ctx := context.Background()

	// the same item id exists in a request collection and an offer
	// collection; the offer copy must be returned
	require.NoError(t, repo.Save(ctx, "owner-b", models.KindRequest, &models.AcceptedItem{
		ItemID: "dup-1",
		Title:  "request copy",
	}))
	require.NoError(t, repo.Save(ctx, "owner-a", models.KindOffer, &models.AcceptedItem{
		ItemID: "dup-1",
		Title:  "offer copy",
	}))

	found, err := repo.FindByItemID(ctx, "dup-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "offer copy", found.Title)
}

func TestOfferArchiveSkipsCorruptRecords(t *testing.T) {
	repo := NewOfferArchiveRepository().(*offerArchiveRepo)
	ctx := context.Background()

	repo.SeedRaw("owner-full-offers-x", json.RawMessage(`{"item_id": "broken`))
	require.NoError(t, repo.Save(ctx, "x", models.KindOffer, &models.AcceptedItem{
		ItemID: "good-1",
		Title:  "still findable",
	}))

	found, err := repo.FindByItemID(ctx, "good-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "still findable", found.Title)

	// listing the collection also skips the corrupt entry
	items, err := repo.ListByOwner(ctx, "x", models.KindOffer)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "good-1", items[0].ItemID)
}

func TestOfferArchiveMissingItem(t *testing.T) {
	repo := NewOfferArchiveRepository()

	found, err := repo.FindByItemID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestOfferArchiveListByOwnerKeepsInsertOrder(t *testing.T) {
	repo := NewOfferArchiveRepository()
	ctx := context.Background()

	for _, id := range []string{"r-1", "r-2", "r-3"} {
		require.NoError(t, repo.Save(ctx, "owner-1", models.KindRequest, &models.AcceptedItem{ItemID: id}))
	}

	items, err := repo.ListByOwner(ctx, "owner-1", models.KindRequest)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "r-1", items[0].ItemID)
	require.Equal(t, "r-3", items[2].ItemID)

	// offers for the same owner live in a separate collection
	offers, err := repo.ListByOwner(ctx, "owner-1", models.KindOffer)
	require.NoError(t, err)
	require.Empty(t, offers)
}
