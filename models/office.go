package models

import "time"

// Office represents a rental office customers can pick vehicles up from.
type Office struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	City      string    `bson:"city" json:"city"`
	Phone     string    `bson:"phone" json:"phone"`
	OpenHours string    `bson:"open_hours,omitempty" json:"open_hours,omitempty"` // e.g. "08:00-20:00"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
