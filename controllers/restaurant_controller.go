// controllers/restaurant_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"touristtable/entity"
	"touristtable/pkg/resp"
	"touristtable/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RestaurantController struct {
	Store *repository.Store
}

func NewRestaurantController(store *repository.Store) *RestaurantController {
	return &RestaurantController{Store: store}
}

// ===== DTO =====

type RestaurantPatch struct {
	Name                *string  `json:"name"`
	Address             *string  `json:"address"`
	City                *string  `json:"city"`
	Cuisine             []string `json:"cuisine"`
	Description         *string  `json:"description"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	PriceLevel          *int     `json:"price_level" binding:"omitempty,oneof=1 2 3 4"`
	AcceptsReservations *bool    `json:"accepts_reservations"`
}

// Updates collects the provided fields into a sparse update set.
func (p *RestaurantPatch) Updates() bson.M {
	u := bson.M{}
	if p.Name != nil {
		u["name"] = *p.Name
	}
	if p.Address != nil {
		u["address"] = *p.Address
	}
	if p.City != nil {
		u["city"] = *p.City
	}
	if p.Cuisine != nil {
		u["cuisine"] = p.Cuisine
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	if p.Latitude != nil {
		u["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		u["longitude"] = *p.Longitude
	}
	if p.PriceLevel != nil {
		u["price_level"] = *p.PriceLevel
	}
	if p.AcceptsReservations != nil {
		u["accepts_reservations"] = *p.AcceptsReservations
	}
	return u
}

// ===== Handlers =====

// POST /restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var payload entity.Restaurant
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payload.ApplyDefaults()

	id, err := rc.Store.Insert(c.Request.Context(), entity.CollectionRestaurant, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /restaurants?city&cuisine&q&lat&lng&radius_km&limit
func (rc *RestaurantController) List(c *gin.Context) {
	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}
	radiusKM := 5.0
	if v, err := strconv.ParseFloat(c.Query("radius_km"), 64); err == nil {
		radiusKM = v
	}

	filter := buildRestaurantFilter(c.Query("city"), c.Query("cuisine"), c.Query("q"), lat, lng, radiusKM)
	limit := clampLimit(c.Query("limit"), 50, 200)

	docs, err := rc.Store.Find(c.Request.Context(), entity.CollectionRestaurant, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid id format")
		return
	}

	doc, err := rc.Store.FindByID(c.Request.Context(), entity.CollectionRestaurant, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyID(doc))
}

// PATCH /restaurants/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid id format")
		return
	}

	var patch RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := patch.Updates()
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	if err := rc.Store.UpdatePartial(c.Request.Context(), entity.CollectionRestaurant, id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			resp.NotFound(c, "Restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
