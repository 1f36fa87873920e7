// controllers/review_controller.go
package controllers

import (
	"errors"
	"net/http"

	"touristtable/entity"
	"touristtable/pkg/resp"
	"touristtable/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewController struct {
	Store     *repository.Store
	Analytics *repository.AnalyticsRepository
}

func NewReviewController(store *repository.Store, analytics *repository.AnalyticsRepository) *ReviewController {
	return &ReviewController{Store: store, Analytics: analytics}
}

// POST /restaurants/:id/reviews
// After a successful insert the restaurant's avg_rating is recomputed
// from all its reviews. Aggregate and write are two independent store
// operations; concurrent inserts for the same restaurant can interleave.
func (rc *ReviewController) Create(c *gin.Context) {
	restaurantID := c.Param("id")
	oid, err := repository.ParseID(restaurantID)
	if err != nil {
		resp.BadRequest(c, "Invalid id format")
		return
	}

	var payload entity.Review
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if payload.RestaurantID != restaurantID {
		resp.BadRequest(c, "restaurant_id mismatch")
		return
	}
	payload.ApplyDefaults()

	ctx := c.Request.Context()
	id, err := rc.Store.Insert(ctx, entity.CollectionReview, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	avg, ok, err := rc.Analytics.AverageRating(ctx, restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if ok {
		err := rc.Store.SetFields(ctx, entity.CollectionRestaurant, oid, bson.M{"avg_rating": round2(avg)})
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			resp.ServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /restaurants/:id/reviews?limit
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	filter := bson.M{"restaurant_id": c.Param("id")}
	limit := clampLimit(c.Query("limit"), 50, 200)

	docs, err := rc.Store.Find(c.Request.Context(), entity.CollectionReview, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}
