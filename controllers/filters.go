package controllers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildRestaurantFilter maps list query parameters to filter clauses:
// case-insensitive substring on city, exact membership on cuisine,
// free-text q ORed over name/description/address, and a per-axis
// bounding box when both coordinates are present.
func buildRestaurantFilter(city, cuisine, q string, lat, lng *float64, radiusKM float64) bson.M {
	filter := bson.M{}
	if city != "" {
		filter["city"] = primitive.Regex{Pattern: city, Options: "i"}
	}
	if cuisine != "" {
		filter["cuisine"] = bson.M{"$in": []string{cuisine}}
	}
	if q != "" {
		filter["$or"] = []bson.M{
			{"name": primitive.Regex{Pattern: q, Options: "i"}},
			{"description": primitive.Regex{Pattern: q, Options: "i"}},
			{"address": primitive.Regex{Pattern: q, Options: "i"}},
		}
	}
	if lat != nil && lng != nil {
		// Box filter, approx degrees per km; deliberately not a true
		// radius, so no geo index is required.
		deg := radiusKM / 111.0
		filter["latitude"] = bson.M{"$gte": *lat - deg, "$lte": *lat + deg}
		filter["longitude"] = bson.M{"$gte": *lng - deg, "$lte": *lng + deg}
	}
	return filter
}

// buildEventFilter keeps events whose ISO date string compares >= today.
// String comparison, not parsed dates.
func buildEventFilter(city string, upcomingOnly bool, today string) bson.M {
	filter := bson.M{}
	if city != "" {
		filter["city"] = primitive.Regex{Pattern: city, Options: "i"}
	}
	if upcomingOnly {
		filter["date"] = bson.M{"$gte": today}
	}
	return filter
}
