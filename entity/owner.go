package entity

// Owner has no routes of its own; it exists as part of the schema
// surface and is referenced from Restaurant.owner_id by string id.
type Owner struct {
	Name      string   `json:"name" bson:"name" binding:"required"`
	Email     string   `json:"email" bson:"email" binding:"required,email"`
	Phone     *string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Languages []string `json:"languages" bson:"languages"`
	IsActive  *bool    `json:"is_active" bson:"is_active"`
}

func (o *Owner) ApplyDefaults() {
	if o.Languages == nil {
		o.Languages = []string{"sq", "en"}
	}
	if o.IsActive == nil {
		t := true
		o.IsActive = &t
	}
}
