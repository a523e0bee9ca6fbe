package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

func TestSynthesizeNotesRendersPopulatedSections(t *testing.T) {
	item := &models.AcceptedItem{
		City:        "Riyadh",
		Districts:   []string{"Al Malqa", "Hittin"},
		Rooms:       4,
		AreaM2:      320,
		Price:       950_000,
		Features:    models.FeatureList("pool"),
		Description: "Two-storey villa",
	}

	want := "Location:\n" +
		"City: Riyadh\n" +
		"Districts: Al Malqa, Hittin\n\n" +
		"Specs:\n" +
		"Rooms: 4\n" +
		"Area: 320 m²\n\n" +
		"Pricing:\n" +
		"Price: 950000 SAR\n\n" +
		"Features:\n" +
		"pool\n\n" +
		"Details:\n" +
		"Description: Two-storey villa"

	require.Equal(t, want, SynthesizeNotes(item))
}

func TestSynthesizeNotesOmitsEmptySections(t *testing.T) {
	// only pricing data present; no other headers may appear
	item := &models.AcceptedItem{PriceMin: 500_000, PriceMax: 700_000}

	want := "Pricing:\n" +
		"Price from: 500000 SAR\n" +
		"Price to: 700000 SAR"

	require.Equal(t, want, SynthesizeNotes(item))
}

func TestSynthesizeNotesEmptyItem(t *testing.T) {
	require.Empty(t, SynthesizeNotes(&models.AcceptedItem{}))
}

func TestSynthesizeNotesRendersCountedFlags(t *testing.T) {
	item := &models.AcceptedItem{
		Features: models.FeatureFlags(map[string]float64{
			"parking":  2,
			"pool":     1,
			"basement": 0,
		}),
	}

	require.Equal(t, "Features:\nparking x2, pool", SynthesizeNotes(item))
}
