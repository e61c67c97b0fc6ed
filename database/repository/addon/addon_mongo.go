package addonRepo

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

// MongoAddOnRepo implements AddOnRepository using MongoDB.
type MongoAddOnRepo struct {
	coll *mongo.Collection
}

// NewMongoAddOnRepo creates a new instance of AddOnRepository using MongoDB.
func NewMongoAddOnRepo() AddOnRepository {
	repo := &MongoAddOnRepo{coll: database.Collection("addons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAddOnRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an add-on by its unique ID.
func (r *MongoAddOnRepo) GetByID(id string) (*models.AddOn, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addOn models.AddOn
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&addOn); err != nil {
		return nil, fmt.Errorf("failed to fetch add-on with id %s: %w", id, err)
	}
	return &addOn, nil
}

// GetAll retrieves all add-ons.
func (r *MongoAddOnRepo) GetAll() ([]models.AddOn, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve add-ons: %w", err)
	}
	defer cursor.Close(ctx)

	var addOns []models.AddOn
	for cursor.Next(ctx) {
		var a models.AddOn
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode add-on: %w", err)
		}
		addOns = append(addOns, a)
	}
	return addOns, nil
}

// Create inserts a new add-on document.
func (r *MongoAddOnRepo) Create(addOn *models.AddOn) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	addOn.CreatedAt = now
	addOn.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, addOn); err != nil {
		return fmt.Errorf("failed to create add-on: %w", err)
	}
	return nil
}

// Update modifies an existing add-on document.
func (r *MongoAddOnRepo) Update(addOn *models.AddOn) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	addOn.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": addOn.ID}, bson.M{"$set": addOn})
	if err != nil {
		return fmt.Errorf("failed to update add-on with id %s: %w", addOn.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("add-on with id %s not found", addOn.ID)
	}
	return nil
}

// Delete removes an add-on document by its ID.
func (r *MongoAddOnRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete add-on with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("add-on with id %s not found", id)
	}
	return nil
}
