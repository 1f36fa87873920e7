// controllers/analytics_controller.go
package controllers

import (
	"net/http"

	"touristtable/pkg/resp"
	"touristtable/repository"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *repository.AnalyticsRepository
}

func NewAnalyticsController(analytics *repository.AnalyticsRepository) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// GET /restaurants/:id/analytics
func (ac *AnalyticsController) Restaurant(c *gin.Context) {
	ctx := c.Request.Context()
	restaurantID := c.Param("id")

	reviews, err := ac.Analytics.ReviewCountsByRating(ctx, restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	reservations, err := ac.Analytics.ReservationCountsByStatus(ctx, restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":      reviews,
		"reservations": reservations,
	})
}

// GET /analytics/overview
func (ac *AnalyticsController) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	byCity, err := ac.Analytics.RestaurantCountsByCity(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	byCuisine, err := ac.Analytics.RestaurantCountsByCuisine(ctx)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants_by_city":    byCity,
		"restaurants_by_cuisine": byCuisine,
	})
}
