package entity

// Collection names, one per entity type. The lowercase entity name is
// the collection name; GET /schema mirrors this list.
const (
	CollectionOwner       = "owner"
	CollectionRestaurant  = "restaurant"
	CollectionReview      = "review"
	CollectionEvent       = "event"
	CollectionReservation = "reservation"
	CollectionCampaign    = "campaign"
	CollectionDiscount    = "discount"
)

func CollectionNames() []string {
	return []string{
		CollectionOwner,
		CollectionRestaurant,
		CollectionReview,
		CollectionEvent,
		CollectionReservation,
		CollectionCampaign,
		CollectionDiscount,
	}
}
