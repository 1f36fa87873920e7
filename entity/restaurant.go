package entity

type Restaurant struct {
	OwnerID             *string          `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	Name                string           `json:"name" bson:"name" binding:"required"`
	Address             string           `json:"address" bson:"address" binding:"required"`
	City                string           `json:"city" bson:"city" binding:"required"`
	Cuisine             []string         `json:"cuisine" bson:"cuisine"`
	Description         *string          `json:"description,omitempty" bson:"description,omitempty"`
	Latitude            *float64         `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude           *float64         `json:"longitude,omitempty" bson:"longitude,omitempty"`
	AvgRating           float64          `json:"avg_rating" bson:"avg_rating"`
	PriceLevel          *int             `json:"price_level,omitempty" bson:"price_level,omitempty" binding:"omitempty,oneof=1 2 3 4"`
	Menu                []map[string]any `json:"menu" bson:"menu"`
	Images              []string         `json:"images" bson:"images"`
	AcceptsReservations *bool            `json:"accepts_reservations" bson:"accepts_reservations"`
	TouristDiscounts    []map[string]any `json:"tourist_discounts" bson:"tourist_discounts"`
}

func (r *Restaurant) ApplyDefaults() {
	if r.Cuisine == nil {
		r.Cuisine = []string{}
	}
	if r.Menu == nil {
		r.Menu = []map[string]any{}
	}
	if r.Images == nil {
		r.Images = []string{}
	}
	if r.TouristDiscounts == nil {
		r.TouristDiscounts = []map[string]any{}
	}
	if r.AcceptsReservations == nil {
		t := true
		r.AcceptsReservations = &t
	}
}
