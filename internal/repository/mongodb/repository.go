package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrojasc/despensa/internal/domain/models"
)

// Repository defines the interface for inventory record storage.
type Repository interface {
	Insert(ctx context.Context, record models.InventoryRecord) error
	FindAll(ctx context.Context) ([]models.InventoryRecord, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "inventory_records",
	}, nil
}

// Insert appends one inventory record. There is no upsert: repeated
// submissions of the same code intentionally produce separate documents.
func (r *MongoDBRepository) Insert(ctx context.Context, record models.InventoryRecord) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	if _, err := collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}
	return nil
}

// FindAll scans the full collection. Ordering is left to the caller.
func (r *MongoDBRepository) FindAll(ctx context.Context) ([]models.InventoryRecord, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.InventoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode inventory records: %w", err)
	}

	return records, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
