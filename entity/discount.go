package entity

type Discount struct {
	RestaurantID string   `json:"restaurant_id" bson:"restaurant_id" binding:"required"`
	Code         string   `json:"code" bson:"code" binding:"required"`
	Description  *string  `json:"description,omitempty" bson:"description,omitempty"`
	Percent      *float64 `json:"percent" bson:"percent" binding:"required,gte=0,lte=100"`
	Active       *bool    `json:"active" bson:"active"`
}

func (d *Discount) ApplyDefaults() {
	if d.Active == nil {
		t := true
		d.Active = &t
	}
}
