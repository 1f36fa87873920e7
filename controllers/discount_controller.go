// controllers/discount_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"touristtable/entity"
	"touristtable/pkg/resp"
	"touristtable/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type DiscountController struct {
	Store *repository.Store
}

func NewDiscountController(store *repository.Store) *DiscountController {
	return &DiscountController{Store: store}
}

// POST /restaurants/:id/discounts
func (dc *DiscountController) Create(c *gin.Context) {
	var payload entity.Discount
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if payload.RestaurantID != c.Param("id") {
		resp.BadRequest(c, "restaurant_id mismatch")
		return
	}
	payload.ApplyDefaults()

	id, err := dc.Store.Insert(c.Request.Context(), entity.CollectionDiscount, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /restaurants/:id/discounts?active&limit
func (dc *DiscountController) ListForRestaurant(c *gin.Context) {
	filter := bson.M{"restaurant_id": c.Param("id")}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter["active"] = active
		}
	}
	limit := clampLimit(c.Query("limit"), 50, 200)

	docs, err := dc.Store.Find(c.Request.Context(), entity.CollectionDiscount, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}
