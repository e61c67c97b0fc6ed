package blogRepo

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

// MongoBlogRepo implements BlogRepository using MongoDB.
type MongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo creates a new instance of BlogRepository using MongoDB.
func NewMongoBlogRepo() BlogRepository {
	repo := &MongoBlogRepo{coll: database.Collection("blog_posts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its unique ID.
func (r *MongoBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to fetch blog post with id %s: %w", id, err)
	}
	return &post, nil
}

// GetBySlug retrieves a post by slug; (nil, nil) when absent.
func (r *MongoBlogRepo) GetBySlug(slug string) (*models.BlogPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blog post with slug %s: %w", slug, err)
	}
	return &post, nil
}

// GetAll retrieves posts, newest first.
func (r *MongoBlogRepo) GetAll(publishedOnly bool) ([]models.BlogPost, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	for cursor.Next(ctx) {
		var p models.BlogPost
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// Create inserts a new post document.
func (r *MongoBlogRepo) Create(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update modifies an existing post document.
func (r *MongoBlogRepo) Update(post *models.BlogPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	post.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update blog post with id %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", post.ID)
	}
	return nil
}

// Delete removes a post document by its ID.
func (r *MongoBlogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blog post with id %s not found", id)
	}
	return nil
}
