package officeRepo

import (
	"context"
	"fmt"
	"time"

	"vango/database"
	"vango/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOfficeRepo implements OfficeRepository using MongoDB.
type MongoOfficeRepo struct {
	coll *mongo.Collection
}

// NewMongoOfficeRepo creates a new instance of OfficeRepository using MongoDB.
func NewMongoOfficeRepo() OfficeRepository {
	repo := &MongoOfficeRepo{coll: database.Collection("offices")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOfficeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an office by its unique ID.
func (r *MongoOfficeRepo) GetByID(id string) (*models.Office, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var office models.Office
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&office); err != nil {
		return nil, fmt.Errorf("failed to fetch office with id %s: %w", id, err)
	}
	return &office, nil
}

// GetAll retrieves all offices.
func (r *MongoOfficeRepo) GetAll() ([]models.Office, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve offices: %w", err)
	}
	defer cursor.Close(ctx)

	var offices []models.Office
	for cursor.Next(ctx) {
		var o models.Office
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, nil
}

// Create inserts a new office document.
func (r *MongoOfficeRepo) Create(office *models.Office) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	office.CreatedAt = now
	office.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, office); err != nil {
		return fmt.Errorf("failed to create office: %w", err)
	}
	return nil
}

// Update modifies an existing office document.
func (r *MongoOfficeRepo) Update(office *models.Office) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	office.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": office.ID}, bson.M{"$set": office})
	if err != nil {
		return fmt.Errorf("failed to update office with id %s: %w", office.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("office with id %s not found", office.ID)
	}
	return nil
}

// Delete removes an office document by its ID.
func (r *MongoOfficeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete office with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("office with id %s not found", id)
	}
	return nil
}
