// controllers/event_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"touristtable/entity"
	"touristtable/pkg/resp"
	"touristtable/repository"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	Store *repository.Store
}

func NewEventController(store *repository.Store) *EventController {
	return &EventController{Store: store}
}

// POST /events
func (ec *EventController) Create(c *gin.Context) {
	var payload entity.Event
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payload.ApplyDefaults()

	id, err := ec.Store.Insert(c.Request.Context(), entity.CollectionEvent, payload)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// GET /events?city&upcoming_only&limit
func (ec *EventController) List(c *gin.Context) {
	upcomingOnly := true
	if v, err := strconv.ParseBool(c.Query("upcoming_only")); err == nil {
		upcomingOnly = v
	}
	today := time.Now().UTC().Format("2006-01-02")

	filter := buildEventFilter(c.Query("city"), upcomingOnly, today)
	limit := clampLimit(c.Query("limit"), 50, 200)

	docs, err := ec.Store.Find(c.Request.Context(), entity.CollectionEvent, filter, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stringifyIDs(docs))
}
