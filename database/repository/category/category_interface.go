package categoryRepo

import "vango/models"

// CategoryRepository defines methods for vehicle-category data access.
type CategoryRepository interface {
	// GetByID retrieves a category by its unique ID.
	GetByID(id string) (*models.Category, error)
	// GetAll retrieves all categories.
	GetAll() ([]models.Category, error)
	// GetRateTable retrieves only the pricing tiers of a category.
	GetRateTable(id string) ([]models.PricingTier, error)
	// Create inserts a new category record.
	Create(category *models.Category) error
	// Update modifies an existing category record.
	Update(category *models.Category) error
	// Delete removes a category record by its ID.
	Delete(id string) error
}
