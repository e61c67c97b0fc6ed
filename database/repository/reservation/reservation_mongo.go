package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	repo := &MongoReservationRepo{coll: database.Collection("reservations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "office_id", Value: 1},
			{Key: "category_id", Value: 1},
			{Key: "start_date", Value: 1},
			{Key: "end_date", Value: 1},
		}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its unique ID.
func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &res, nil
}

// GetAll retrieves reservations matching the filter, newest first.
func (r *MongoReservationRepo) GetAll(filter ReservationFilter) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.OfficeID != "" {
		query["office_id"] = filter.OfficeID
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// FindOverlapping returns windows of live reservations for the office and
// category that overlap [start,end). Two intervals conflict iff
// existingStart < requestedEnd && existingEnd > requestedStart, so touching
// boundaries do not count.
func (r *MongoReservationRepo) FindOverlapping(officeID, categoryID string, start, end time.Time) ([]models.Window, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"office_id":   officeID,
		"category_id": categoryID,
		"status":      bson.M{"$ne": models.ReservationCanceled},
		"start_date":  bson.M{"$lt": end},
		"end_date":    bson.M{"$gt": start},
	}
	opts := options.Find().SetProjection(bson.M{"start_date": 1, "end_date": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.Window
	for cursor.Next(ctx) {
		var w models.Window
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode reservation window: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Create inserts a new reservation document.
func (r *MongoReservationRepo) Create(reservation *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now
	if reservation.Status == "" {
		reservation.Status = models.ReservationPending
	}

	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// UpdateStatus changes a reservation's status.
func (r *MongoReservationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}

// Delete removes a reservation document by its ID.
func (r *MongoReservationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}

// CountByStatus aggregates reservation counts per status.
func (r *MongoReservationRepo) CountByStatus() ([]StatusCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reservation statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode status aggregate: %w", err)
	}
	return counts, nil
}

func (r *MongoReservationRepo) revenueBy(field string) ([]RevenueBucket, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": models.ReservationCanceled}}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$" + field,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total_price"},
		}}},
		{{Key: "$sort", Value: bson.M{"revenue": -1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var buckets []RevenueBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	return buckets, nil
}

// RevenueByCategory aggregates count and revenue per category.
func (r *MongoReservationRepo) RevenueByCategory() ([]RevenueBucket, error) {
	return r.revenueBy("category_id")
}

// RevenueByOffice aggregates count and revenue per office.
func (r *MongoReservationRepo) RevenueByOffice() ([]RevenueBucket, error) {
	return r.revenueBy("office_id")
}
