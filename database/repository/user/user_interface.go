package userRepo

import "vango/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetByPhone retrieves a user by phone number. Returns (nil, nil) when no
	// user matches, so callers can distinguish "not found" from a query error.
	GetByPhone(phone string) (*models.User, error)
	// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
