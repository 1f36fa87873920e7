// controllers/reservation_controller.go
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

type ReservationController struct {
	Store *repository.Store
}

func NewReservationController(store *repository.Store) *ReservationController {
	return &ReservationController{Store: store}
}

// ===== DTO =====

type ReservationPatch struct {
	Status *string `json:"status" binding:"omitempty,oneof=confirmed pending waitlist"`
	Notes  *string `json:"notes"`
}

func (p *ReservationPatch) Updates() bson.M {
	u := bson.M{}
	if p.Status != nil {
		u["status"] = *p.Status
	}
	if p.Notes != nil {
		u["notes"] = *p.Notes
	}
	return u
}

// ===== Handlers =====

// POST /restaurants/:id/reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var payload entity.Reservation
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if payload.RestaurantID != c.Param("id") {
		resp.BadRequest(c, "restaurant_id mismatch")
		return
	}
	payload.ApplyDefaults()

	id, err := rc.Store.Insert(c.Request.Context(), entity.CollectionReservation, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /restaurants/:id/reservations?status&limit
func (rc *ReservationController) ListForRestaurant(c *gin.Context) {
	filter := bson.M{"restaurant_id": c.Param("id")}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	limit := clampLimit(c.Query("limit"), 100, 500)

	docs, err := rc.Store.Find(c.Request.Context(), entity.CollectionReservation, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}

// PATCH /reservations/:id
func (rc *ReservationController) Update(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid id format")
		return
	}

	var patch ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := patch.Updates()
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	if err := rc.Store.UpdatePartial(c.Request.Context(), entity.CollectionReservation, id, updates); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			resp.NotFound(c, "Reservation not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
