package entity

type Campaign struct {
	RestaurantID   string   `json:"restaurant_id" bson:"restaurant_id" binding:"required"`
	Name           string   `json:"name" bson:"name" binding:"required"`
	Message        string   `json:"message" bson:"message" binding:"required"`
	TargetCuisines []string `json:"target_cuisines" bson:"target_cuisines"`
	TargetCities   []string `json:"target_cities" bson:"target_cities"`
	BudgetEUR      *float64 `json:"budget_eur,omitempty" bson:"budget_eur,omitempty"`
	Active         *bool    `json:"active" bson:"active"`
}

func (cp *Campaign) ApplyDefaults() {
	if cp.TargetCuisines == nil {
		cp.TargetCuisines = []string{}
	}
	if cp.TargetCities == nil {
		cp.TargetCities = []string{}
	}
	if cp.Active == nil {
		t := true
		cp.Active = &t
	}
}
