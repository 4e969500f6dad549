package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "PlacementCellDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	StudentCollection      *mongo.Collection
	DriveCollection        *mongo.Collection
	ApplicationCollection  *mongo.Collection
	NotificationCollection *mongo.Collection
	UserCollection         *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and binds the shared collections.
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

		log.Println("✅ MongoDB connected successfully")

		StudentCollection = GetCollection(DBName, "students")
		DriveCollection = GetCollection(DBName, "drives")
		ApplicationCollection = GetCollection(DBName, "applications")
		NotificationCollection = GetCollection(DBName, "notifications")
		UserCollection = GetCollection(DBName, "users")
	})

	return connectErr
}

// EnsureIndexes creates the indexes the application relies on. The compound
// unique index on applications is what serializes concurrent apply() calls
// for the same (student, drive) pair — the second writer gets E11000.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := ApplicationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "studentId", Value: 1},
			{Key: "driveId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	log.Println("✅ MongoDB indexes ensured")
	return nil
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
