package entity

import "testing"

func TestCollectionNames(t *testing.T) {
	names := CollectionNames()
	want := []string{"owner", "restaurant", "review", "event", "reservation", "campaign", "discount"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestOwnerDefaults(t *testing.T) {
	o := &Owner{Name: "Arben", Email: "arben@example.com"}
	o.ApplyDefaults()

	if len(o.Languages) != 2 || o.Languages[0] != "sq" || o.Languages[1] != "en" {
		t.Errorf("languages = %v, want [sq en]", o.Languages)
	}
	if o.IsActive == nil || !*o.IsActive {
		t.Error("is_active must default to true")
	}

	f := false
	o2 := &Owner{Languages: []string{"de"}, IsActive: &f}
	o2.ApplyDefaults()
	if len(o2.Languages) != 1 || *o2.IsActive {
		t.Error("explicit values must not be overwritten")
	}
}

func TestRestaurantDefaults(t *testing.T) {
	r := &Restaurant{Name: "Oda", Address: "Rruga e Barrikadave", City: "Tirana"}
	r.ApplyDefaults()

	if r.Cuisine == nil || r.Menu == nil || r.Images == nil || r.TouristDiscounts == nil {
		t.Error("list fields must default to empty slices")
	}
	if r.AcceptsReservations == nil || !*r.AcceptsReservations {
		t.Error("accepts_reservations must default to true")
	}
	if r.AvgRating != 0 {
		t.Errorf("avg_rating = %v, want 0", r.AvgRating)
	}

	f := false
	r2 := &Restaurant{AcceptsReservations: &f}
	r2.ApplyDefaults()
	if *r2.AcceptsReservations {
		t.Error("explicit accepts_reservations=false must survive")
	}
}

func TestReviewDefaults(t *testing.T) {
	r := &Review{RestaurantID: "abc", UserName: "Ana", Rating: 4}
	r.ApplyDefaults()
	if r.IsTrusted == nil || !*r.IsTrusted {
		t.Error("is_trusted must default to true")
	}
}

func TestEventDefaults(t *testing.T) {
	e := &Event{Title: "Wine Night", City: "Berat", Date: "2026-09-01"}
	e.ApplyDefaults()
	if e.Category != "food" {
		t.Errorf("category = %q, want food", e.Category)
	}

	e2 := &Event{Category: "music"}
	e2.ApplyDefaults()
	if e2.Category != "music" {
		t.Error("explicit category must survive")
	}
}

func TestReservationDefaults(t *testing.T) {
	r := &Reservation{RestaurantID: "abc", Name: "Ana", Email: "ana@example.com", PartySize: 2, DateTime: "2026-09-01T19:00"}
	r.ApplyDefaults()
	if r.Status != "pending" {
		t.Errorf("status = %q, want pending", r.Status)
	}
}

func TestCampaignDefaults(t *testing.T) {
	cp := &Campaign{RestaurantID: "abc", Name: "Summer", Message: "Visit us"}
	cp.ApplyDefaults()
	if cp.TargetCuisines == nil || cp.TargetCities == nil {
		t.Error("target lists must default to empty slices")
	}
	if cp.Active == nil || !*cp.Active {
		t.Error("active must default to true")
	}
}

func TestDiscountDefaults(t *testing.T) {
	d := &Discount{RestaurantID: "abc", Code: "SUMMER10"}
	d.ApplyDefaults()
	if d.Active == nil || !*d.Active {
		t.Error("active must default to true")
	}
}
