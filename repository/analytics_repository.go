// repository/analytics_repository.go
package repository

import (
	"context"
	"fmt"

	"touristtable/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository runs the grouped aggregations behind the report
// endpoints and the review-rating average.
type AnalyticsRepository struct {
	Store *Store
}

func NewAnalyticsRepository(store *Store) *AnalyticsRepository {
	return &AnalyticsRepository{Store: store}
}

// ReviewCountsByRating groups a restaurant's reviews by rating value.
func (r *AnalyticsRepository) ReviewCountsByRating(ctx context.Context, restaurantID string) (map[string]int64, error) {
	return r.groupCounts(ctx, entity.CollectionReview, bson.M{"restaurant_id": restaurantID}, "rating")
}

// ReservationCountsByStatus groups a restaurant's reservations by status.
func (r *AnalyticsRepository) ReservationCountsByStatus(ctx context.Context, restaurantID string) (map[string]int64, error) {
	return r.groupCounts(ctx, entity.CollectionReservation, bson.M{"restaurant_id": restaurantID}, "status")
}

// RestaurantCountsByCity groups all restaurants by city.
func (r *AnalyticsRepository) RestaurantCountsByCity(ctx context.Context) (map[string]int64, error) {
	return r.groupCounts(ctx, entity.CollectionRestaurant, nil, "city")
}

// RestaurantCountsByCuisine unwinds cuisine tags before grouping, so a
// restaurant with N tags contributes to N buckets.
func (r *AnalyticsRepository) RestaurantCountsByCuisine(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$cuisine"}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$cuisine", "count": bson.M{"$sum": 1}}}},
	}
	rows, err := r.Store.Aggregate(ctx, entity.CollectionRestaurant, pipeline)
	if err != nil {
		return nil, err
	}
	return countRows(rows), nil
}

// AverageRating computes the mean review rating for a restaurant.
// ok is false when the restaurant has no reviews.
func (r *AnalyticsRepository) AverageRating(ctx context.Context, restaurantID string) (avg float64, ok bool, err error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"restaurant_id": restaurantID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$restaurant_id",
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	rows, err := r.Store.Aggregate(ctx, entity.CollectionReview, pipeline)
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return toFloat64(rows[0]["avg"]), true, nil
}

func (r *AnalyticsRepository) groupCounts(ctx context.Context, collection string, match bson.M, key string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":   "$" + key,
		"count": bson.M{"$sum": 1},
	}}})

	rows, err := r.Store.Aggregate(ctx, collection, pipeline)
	if err != nil {
		return nil, err
	}
	return countRows(rows), nil
}

// countRows shapes group rows into a stringified-key → count map.
func countRows(rows []bson.M) map[string]int64 {
	out := map[string]int64{}
	for _, row := range rows {
		out[fmt.Sprint(row["_id"])] = toInt64(row["count"])
	}
	return out
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
