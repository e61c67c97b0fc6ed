package blogRepo

import "vango/models"

// BlogRepository defines methods for blog-post data access.
type BlogRepository interface {
	// GetByID retrieves a post by its unique ID.
	GetByID(id string) (*models.BlogPost, error)
	// GetBySlug retrieves a post by its URL slug. Returns (nil, nil) when absent.
	GetBySlug(slug string) (*models.BlogPost, error)
	// GetAll retrieves posts; publishedOnly restricts to published ones.
	GetAll(publishedOnly bool) ([]models.BlogPost, error)
	// Create inserts a new post.
	Create(post *models.BlogPost) error
	// Update modifies an existing post.
	Update(post *models.BlogPost) error
	// Delete removes a post by its ID.
	Delete(id string) error
}
