// api/data/itineraries_test.go
package data

import "testing"

func TestItineraryBySlug(t *testing.T) {
	itinerary, ok := ItineraryBySlug("japan-tokyo-hakone-osaka")
	if !ok {
		t.Fatal("known slug not found")
	}
	if itinerary.Destination != "Japan" || itinerary.Duration.Days != 7 {
		t.Errorf("itinerary = %+v", itinerary)
	}

	if _, ok := ItineraryBySlug("nope"); ok {
		t.Error("unknown slug should not resolve")
	}
}

func TestItinerariesByDestination_CaseInsensitive(t *testing.T) {
	upper := ItinerariesByDestination("JAPAN")
	lower := ItinerariesByDestination("japan")
	if len(upper) == 0 || len(upper) != len(lower) {
		t.Errorf("JAPAN = %d, japan = %d", len(upper), len(lower))
	}
}

func TestFeaturedItineraries(t *testing.T) {
	featured := FeaturedItineraries()
	if len(featured) == 0 {
		t.Fatal("no featured itineraries")
	}
	for _, i := range featured {
		if !i.Featured {
			t.Errorf("%q is not featured", i.Slug)
		}
	}
	if len(featured) == len(Itineraries()) {
		t.Error("expected at least one non-featured itinerary in the catalog")
	}
}

func TestCatalogSlugsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, i := range Itineraries() {
		if seen[i.Slug] {
			t.Errorf("duplicate slug %q", i.Slug)
		}
		seen[i.Slug] = true
	}
}
