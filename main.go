package main

import (
	"log"

	"touristtable/configs"
	"touristtable/middlewares"
	"touristtable/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (handle stays nil when unconfigured; GET /test reports the state)
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db)

	addr := ":" + cfg.Port
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
