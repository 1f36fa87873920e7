package entity

// Event.Date is an ISO date string; the upcoming filter compares it
// lexicographically against today's date.
type Event struct {
	Title       string  `json:"title" bson:"title" binding:"required"`
	City        string  `json:"city" bson:"city" binding:"required"`
	Date        string  `json:"date" bson:"date" binding:"required"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string  `json:"category" bson:"category" binding:"omitempty,oneof=festival food music culture other"`
	Venue       *string `json:"venue,omitempty" bson:"venue,omitempty"`
}

func (e *Event) ApplyDefaults() {
	if e.Category == "" {
		e.Category = "food"
	}
}
