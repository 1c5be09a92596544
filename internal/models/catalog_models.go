package models

import "time"

// CatalogItem is one product in the shared catalog.
// Invariant: WorkType belongs to Department's configured work-type list.
type CatalogItem struct {
	ID                 string    `json:"id" bson:"id"`
	Name               string    `json:"name" bson:"name"`
	Description        *string   `json:"description,omitempty" bson:"description,omitempty"`
	ImageLink          *string   `json:"imageLink,omitempty" bson:"imageLink,omitempty"`
	Video              *string   `json:"video,omitempty" bson:"video,omitempty"`
	Department         string    `json:"department" bson:"department"`
	WorkType           string    `json:"workType" bson:"workType"`
	Category           string    `json:"category" bson:"category"`
	Price              float64   `json:"price" bson:"price"`
	Type               string    `json:"type" bson:"type"`
	DisplayedToClients bool      `json:"displayedToClients" bson:"displayedToClients"`
	CreatedAt          time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updatedAt"`
}
