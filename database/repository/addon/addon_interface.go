package addonRepo

import "vango/models"

// AddOnRepository defines methods for add-on data access.
type AddOnRepository interface {
	// GetByID retrieves an add-on by its unique ID.
	GetByID(id string) (*models.AddOn, error)
	// GetAll retrieves all add-ons.
	GetAll() ([]models.AddOn, error)
	// Create inserts a new add-on record.
	Create(addOn *models.AddOn) error
	// Update modifies an existing add-on record.
	Update(addOn *models.AddOn) error
	// Delete removes an add-on record by its ID.
	Delete(id string) error
}
