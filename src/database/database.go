package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	ActivityCollection     *mongo.Collection
	UserCollection         *mongo.Collection
	CheckinTokenCollection *mongo.Collection
)

const dbName = "VolunteerHubDB"

// ConnectMongoDB connects once and wires the collection globals.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		ActivityCollection = GetCollection(dbName, "activities")
		UserCollection = GetCollection(dbName, "users")
		CheckinTokenCollection = GetCollection(dbName, "checkinTokens")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
