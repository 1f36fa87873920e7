// controllers/campaign_controller.go
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

type CampaignController struct {
	Store *repository.Store
}

func NewCampaignController(store *repository.Store) *CampaignController {
	return &CampaignController{Store: store}
}

// POST /restaurants/:id/campaigns
func (cc *CampaignController) Create(c *gin.Context) {
	var payload entity.Campaign
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if payload.RestaurantID != c.Param("id") {
		resp.BadRequest(c, "restaurant_id mismatch")
		return
	}
	payload.ApplyDefaults()

	id, err := cc.Store.Insert(c.Request.Context(), entity.CollectionCampaign, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /restaurants/:id/campaigns?active&limit
func (cc *CampaignController) ListForRestaurant(c *gin.Context) {
	filter := bson.M{"restaurant_id": c.Param("id")}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter["active"] = active
		}
	}
	limit := clampLimit(c.Query("limit"), 50, 200)

	docs, err := cc.Store.Find(c.Request.Context(), entity.CollectionCampaign, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}
