package entity

type Reservation struct {
	RestaurantID string  `json:"restaurant_id" bson:"restaurant_id" binding:"required"`
	Name         string  `json:"name" bson:"name" binding:"required"`
	Email        string  `json:"email" bson:"email" binding:"required,email"`
	PartySize    int     `json:"party_size" bson:"party_size" binding:"required,gte=1"`
	DateTime     string  `json:"date_time" bson:"date_time" binding:"required"`
	Status       string  `json:"status" bson:"status" binding:"omitempty,oneof=confirmed pending waitlist"`
	Notes        *string `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (r *Reservation) ApplyDefaults() {
	if r.Status == "" {
		r.Status = "pending"
	}
}
