package entity

type Review struct {
	RestaurantID string  `json:"restaurant_id" bson:"restaurant_id" binding:"required"`
	UserName     string  `json:"user_name" bson:"user_name" binding:"required"`
	UserCountry  *string `json:"user_country,omitempty" bson:"user_country,omitempty"`
	Rating       int     `json:"rating" bson:"rating" binding:"required,gte=1,lte=5"`
	Comment      *string `json:"comment,omitempty" bson:"comment,omitempty"`
	IsTrusted    *bool   `json:"is_trusted" bson:"is_trusted"`
}

func (r *Review) ApplyDefaults() {
	if r.IsTrusted == nil {
		t := true
		r.IsTrusted = &t
	}
}
