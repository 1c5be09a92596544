package models

import "time"

// DesignItem is one entry of a project's design aggregate. The id is generated
// when the item is added and scopes item-level updates and deletes.
type DesignItem struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	ImageLink  *string `json:"imageLink,omitempty" bson:"imageLink,omitempty"`
	DesignLink *string `json:"designLink,omitempty" bson:"designLink,omitempty"`
}

// Design owns the design items of one project. Item mutations rewrite the
// whole document in a single atomic write.
type Design struct {
	ID        string       `json:"id" bson:"id"`
	ProjectID string       `json:"projectId" bson:"projectId"`
	Items     []DesignItem `json:"items" bson:"items"`
	CreatedAt time.Time    `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updatedAt"`
}

// MaxDesignItems caps the number of items accepted in one design document.
const MaxDesignItems = 50
