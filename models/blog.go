package models

import "time"

// BlogPost is a marketing article, either written by hand or drafted by the
// content generator.
type BlogPost struct {
	ID        string    `bson:"id" json:"id"`
	Slug      string    `bson:"slug" json:"slug"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Generated bool      `bson:"generated" json:"generated"`
	Published bool      `bson:"published" json:"published"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
