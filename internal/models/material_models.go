package models

import "time"

// MaterialItem is one selected material of a project.
type MaterialItem struct {
	ID        string  `json:"id" bson:"id"`
	Name      string  `json:"name" bson:"name"`
	Color     *string `json:"color,omitempty" bson:"color,omitempty"`
	ImageLink *string `json:"imageLink,omitempty" bson:"imageLink,omitempty"`
}

// Material owns the material selections of one project; at most one document
// exists per project. Item mutations rewrite the whole document atomically.
type Material struct {
	ID        string         `json:"id" bson:"id"`
	ProjectID string         `json:"projectId" bson:"projectId"`
	Materials []MaterialItem `json:"materials" bson:"materials"`
	CreatedAt time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updatedAt"`
}
