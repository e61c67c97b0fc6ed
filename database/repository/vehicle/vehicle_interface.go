package vehicleRepo

import "vango/models"

// VehicleRepository defines methods for vehicle data access.
type VehicleRepository interface {
	// GetByID retrieves a vehicle by its unique ID.
	GetByID(id string) (*models.Vehicle, error)
	// GetAll retrieves all vehicles, optionally filtered by office and category.
	GetAll(officeID, categoryID string) ([]models.Vehicle, error)
	// Create inserts a new vehicle record.
	Create(vehicle *models.Vehicle) error
	// Update modifies an existing vehicle record.
	Update(vehicle *models.Vehicle) error
	// Delete removes a vehicle record by its ID.
	Delete(id string) error
}
