package officeRepo

import "vango/models"

// OfficeRepository defines methods for rental-office data access.
type OfficeRepository interface {
	// GetByID retrieves an office by its unique ID.
	GetByID(id string) (*models.Office, error)
	// GetAll retrieves all offices.
	GetAll() ([]models.Office, error)
	// Create inserts a new office record.
	Create(office *models.Office) error
	// Update modifies an existing office record.
	Update(office *models.Office) error
	// Delete removes an office record by its ID.
	Delete(id string) error
}
