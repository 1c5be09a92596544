package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// InitDB connects to MongoDB and selects the application database.
// Called once at startup; fatal on failure.
func InitDB(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %q", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatalf("Error pinging MongoDB: %q", err)
	}

	db = client.Database(dbName)
}

// GetDB returns the application database handle.
func GetDB() *mongo.Database {
	return db
}

// Close disconnects the client. Used on shutdown.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
