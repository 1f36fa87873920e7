package routes

import (
	"touristtable/controllers"
	"touristtable/repository"
	"touristtable/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database) {
	store := repository.NewStore(db)
	analytics := repository.NewAnalyticsRepository(store)

	// Controllers
	sysCtrl := controllers.NewSystemController(db)
	restCtrl := controllers.NewRestaurantController(store)
	reviewCtrl := controllers.NewReviewController(store, analytics)
	rsvCtrl := controllers.NewReservationController(store)
	eventCtrl := controllers.NewEventController(store)
	discountCtrl := controllers.NewDiscountController(store)
	campaignCtrl := controllers.NewCampaignController(store)
	analyticsCtrl := controllers.NewAnalyticsController(analytics)
	translateCtrl := controllers.NewTranslateController(services.NewTranslateService())

	// Root & health
	r.GET("/", sysCtrl.Root)
	r.GET("/test", sysCtrl.Test)
	r.GET("/schema", sysCtrl.Schema)

	// Restaurants
	r.POST("/restaurants", restCtrl.Create)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.PATCH("/restaurants/:id", restCtrl.Update)

	// Reviews
	r.POST("/restaurants/:id/reviews", reviewCtrl.Create)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)

	// Reservations
	r.POST("/restaurants/:id/reservations", rsvCtrl.Create)
	r.GET("/restaurants/:id/reservations", rsvCtrl.ListForRestaurant)
	r.PATCH("/reservations/:id", rsvCtrl.Update)

	// Events
	r.POST("/events", eventCtrl.Create)
	r.GET("/events", eventCtrl.List)

	// Discounts & campaigns
	r.POST("/restaurants/:id/discounts", discountCtrl.Create)
	r.GET("/restaurants/:id/discounts", discountCtrl.ListForRestaurant)
	r.POST("/restaurants/:id/campaigns", campaignCtrl.Create)
	r.GET("/restaurants/:id/campaigns", campaignCtrl.ListForRestaurant)

	// Analytics
	r.GET("/restaurants/:id/analytics", analyticsCtrl.Restaurant)
	r.GET("/analytics/overview", analyticsCtrl.Overview)

	// Translation
	r.POST("/translate_menu", translateCtrl.TranslateMenu)
}
