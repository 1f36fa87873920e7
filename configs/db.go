package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var db *mongo.Database

func DB() *mongo.Database {
	return db
}

// ConnectionDB connects to MongoDB. A missing DATABASE_URL leaves the
// handle nil: the API still serves and GET /test reports the degraded
// state. A failed ping is logged but keeps the handle, since the driver
// reconnects on demand.
func ConnectionDB(cfg *Config) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, running without a database")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Println("mongo connect failed:", err)
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("mongo ping failed:", err)
	} else {
		log.Println("Connected to MongoDB")
	}

	db = client.Database(cfg.DatabaseName)
}
