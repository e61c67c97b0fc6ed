package vehicleRepo

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

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{coll: database.Collection("vehicles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "plate", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "office_id", Value: 1}, {Key: "category_id", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by its unique ID.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

// GetAll retrieves vehicles, optionally filtered by office and category.
func (r *MongoVehicleRepo) GetAll(officeID, categoryID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if officeID != "" {
		filter["office_id"] = officeID
	}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	for cursor.Next(ctx) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleActive
	}

	if _, err := r.coll.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update modifies an existing vehicle document.
func (r *MongoVehicleRepo) Update(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	vehicle.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": vehicle.ID}, bson.M{"$set": vehicle})
	if err != nil {
		return fmt.Errorf("failed to update vehicle with id %s: %w", vehicle.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", vehicle.ID)
	}
	return nil
}

// Delete removes a vehicle document by its ID.
func (r *MongoVehicleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle with id %s not found", id)
	}
	return nil
}
