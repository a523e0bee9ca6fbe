package services

import (
	"fmt"
	"strings"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

// SynthesizeNotes renders every populated optional attribute of an
// accepted item into the long-form notes block stored on a new customer.
// Empty and zero fields are omitted, so the block only carries what was
// actually captured.
func SynthesizeNotes(item *models.AcceptedItem) string {
	var b notesBuilder

	b.section("Location")
	b.line("City", item.City)
	b.line("Districts", strings.Join(item.Districts, ", "))
	b.line("Street", item.Street)
	b.line("Plan no", item.PlanNo)
	b.line("Parcel no", item.ParcelNo)

	b.section("Specs")
	b.count("Rooms", item.Rooms)
	b.count("Bathrooms", item.Bathrooms)
	b.count("Living rooms", item.LivingRooms)
	b.count("Floor", item.FloorNo)
	b.count("Age (years)", item.AgeYears)
	if item.AreaM2 > 0 {
		b.line("Area", fmt.Sprintf("%.0f m²", item.AreaM2))
	}

	b.section("Pricing")
	b.amount("Price", item.Price)
	b.amount("Price from", item.PriceMin)
	b.amount("Price to", item.PriceMax)
	b.amount("Commission", item.Commission)

	if names := item.Features.Names(); len(names) > 0 {
		b.section("Features")
		b.raw(strings.Join(names, ", "))
	}

	b.section("Details")
	b.line("Guarantees", item.Guarantees)
	b.line("Description", item.Description)
	b.line("Virtual tour", item.VirtualTourURL)
	b.line("Agreement terms", item.AgreementTerms)

	return b.String()
}

// notesBuilder writes labeled lines grouped under section headers,
// emitting a header only once a line under it is actually written.
type notesBuilder struct {
	sb      strings.Builder
	pending string
}

func (b *notesBuilder) section(title string) {
	b.pending = title
}

func (b *notesBuilder) line(label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.raw(label + ": " + value)
}

func (b *notesBuilder) count(label string, n int) {
	if n <= 0 {
		return
	}
	b.raw(fmt.Sprintf("%s: %d", label, n))
}

func (b *notesBuilder) amount(label string, v float64) {
	if v <= 0 {
		return
	}
	b.raw(fmt.Sprintf("%s: %.0f SAR", label, v))
}

func (b *notesBuilder) raw(text string) {
	if b.pending != "" {
		if b.sb.Len() > 0 {
			b.sb.WriteString("\n\n")
		}
		b.sb.WriteString(b.pending)
		b.sb.WriteString(":\n")
		b.pending = ""
	} else if b.sb.Len() > 0 {
		b.sb.WriteString("\n")
	}
	b.sb.WriteString(text)
}

func (b *notesBuilder) String() string {
	return b.sb.String()
}
