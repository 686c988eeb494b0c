package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB using the MONGO_URI environment variable.
func ConnectMongo() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// collectionDoc is how a collection payload is stored: one document per key.
type collectionDoc struct {
	Key     string `bson:"_id"`
	Payload []byte `bson:"payload"`
}

// MongoGateway keeps every collection payload as a single document in one
// Mongo collection, keyed by collection name.
type MongoGateway struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// NewMongoGateway returns a gateway backed by the given database.
func NewMongoGateway(client *mongo.Client, dbName string) *MongoGateway {
	return &MongoGateway{
		Client:     client,
		Collection: client.Database(dbName).Collection("collections"),
	}
}

// Save upserts the payload document for key.
func (g *MongoGateway) Save(ctx context.Context, key string, data []byte) error {
	if g.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := collectionDoc{Key: key, Payload: data}
	opts := options.Replace().SetUpsert(true)
	_, err := g.Collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	if err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Load fetches the payload document for key; (nil, nil) when absent.
func (g *MongoGateway) Load(ctx context.Context, key string) ([]byte, error) {
	if g.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var doc collectionDoc
	err := g.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", key, err)
	}
	return doc.Payload, nil
}

// Close disconnects the underlying client.
func (g *MongoGateway) Close(ctx context.Context) error {
	if g.Client == nil {
		return nil
	}
	return g.Client.Disconnect(ctx)
}
