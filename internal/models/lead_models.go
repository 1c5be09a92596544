package models

import "time"

// Lead is a prospective customer inquiry prior to becoming a Project.
// AssignedRoles is derived from Requirements at write time; it is never
// supplied by the caller.
type Lead struct {
	ID               string    `json:"id" bson:"id"`
	Name             string    `json:"name" bson:"name"`
	Address          *string   `json:"address,omitempty" bson:"address,omitempty"`
	ContactNumber    *string   `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	ArchitectName    *string   `json:"architectName,omitempty" bson:"architectName,omitempty"`
	ArchitectContact *string   `json:"architectContact,omitempty" bson:"architectContact,omitempty"`
	ArchitectAddress *string   `json:"architectAddress,omitempty" bson:"architectAddress,omitempty"`
	Requirements     []string  `json:"requirements" bson:"requirements"`
	Category         []string  `json:"category" bson:"category"`
	AssignedRoles    []string  `json:"assignedRoles" bson:"assignedRoles"`
	CreatedAt        time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updatedAt"`
}

// Architect is a flat contact record, deduplicated on name + contact number.
type Architect struct {
	ID               string    `json:"id" bson:"id"`
	ArchitectName    string    `json:"architectName" bson:"architectName"`
	ArchitectContact string    `json:"architectContact" bson:"architectContact"`
	ArchitectAddress *string   `json:"architectAddress,omitempty" bson:"architectAddress,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updatedAt"`
}
