// controllers/system_controller.go
package controllers

import (
	"net/http"
	"os"

	"touristtable/entity"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const version = "0.1.0"

type SystemController struct {
	DB *mongo.Database
}

func NewSystemController(db *mongo.Database) *SystemController {
	return &SystemController{DB: db}
}

// GET /
func (sc *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "TouristTable Backend running", "version": version})
}

// GET /schema
func (sc *SystemController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": entity.CollectionNames()})
}

// GET /test — connectivity diagnostics. Never fails the request; store
// problems degrade the reported status instead.
func (sc *SystemController) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if sc.DB == nil {
		response["database"] = "⚠️ Available but not initialized"
		c.JSON(http.StatusOK, response)
		return
	}

	response["connection_status"] = "Connected"
	names, err := sc.DB.ListCollectionNames(c.Request.Context(), bson.M{})
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		response["database"] = "⚠️ Connected but Error: " + msg
	} else {
		response["collections"] = names
		response["database"] = "✅ Connected & Working"
	}
	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
