package categoryRepo

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

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a new instance of CategoryRepository using MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	repo := &MongoCategoryRepo{coll: database.Collection("categories")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCategoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a category by its unique ID.
func (r *MongoCategoryRepo) GetByID(id string) (*models.Category, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var category models.Category
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&category); err != nil {
		return nil, fmt.Errorf("failed to fetch category with id %s: %w", id, err)
	}
	return &category, nil
}

// GetAll retrieves all categories.
func (r *MongoCategoryRepo) GetAll() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	for cursor.Next(ctx) {
		var c models.Category
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// GetRateTable retrieves the pricing tiers of a category via projection.
func (r *MongoCategoryRepo) GetRateTable(id string) ([]models.PricingTier, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"rate_table": 1})
	var category models.Category
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&category); err != nil {
		return nil, fmt.Errorf("failed to fetch rate table for category %s: %w", id, err)
	}
	return category.RateTable, nil
}

// Create inserts a new category document.
func (r *MongoCategoryRepo) Create(category *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update modifies an existing category document.
func (r *MongoCategoryRepo) Update(category *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	category.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": category.ID}, bson.M{"$set": category})
	if err != nil {
		return fmt.Errorf("failed to update category with id %s: %w", category.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %s not found", category.ID)
	}
	return nil
}

// Delete removes a category document by its ID.
func (r *MongoCategoryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}
	return nil
}
