package models

import "time"

// Project lifecycle stages, in order. A project always sits on exactly one stage.
const (
	StageNew               = "New"
	StageDesign            = "Design"
	StageQuotation         = "Quotation"
	StageSiteInspection    = "Site Inspection"
	StageMaterialSelection = "Material Selection"
	StageExecution         = "Execution"
	StageHandover          = "Handover"
)

// ProjectStages returns the ordered lifecycle stage set.
func ProjectStages() []string {
	return []string{
		StageNew, StageDesign, StageQuotation, StageSiteInspection,
		StageMaterialSelection, StageExecution, StageHandover,
	}
}

var validStages = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, s := range ProjectStages() {
		m[s] = struct{}{}
	}
	return m
}()

// IsValidStage reports whether value is one of the lifecycle stages.
func IsValidStage(value string) bool {
	_, ok := validStages[value]
	return ok
}

// KitchenConfig describes the kitchen a project is building.
type KitchenConfig struct {
	Layout     string   `json:"layout,omitempty" bson:"layout,omitempty"` // e.g. L-Shape, U-Shape, Parallel, Island
	Finish     string   `json:"finish,omitempty" bson:"finish,omitempty"`
	Countertop string   `json:"countertop,omitempty" bson:"countertop,omitempty"`
	Appliances []string `json:"appliances,omitempty" bson:"appliances,omitempty"`
	Notes      string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// WardrobeConfig describes the wardrobe a project is building.
type WardrobeConfig struct {
	DoorType string `json:"doorType,omitempty" bson:"doorType,omitempty"` // e.g. Sliding, Hinged
	Finish   string `json:"finish,omitempty" bson:"finish,omitempty"`
	HeightMM int    `json:"heightMm,omitempty" bson:"heightMm,omitempty"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Project is the central aggregate everything else references by its generated
// id. Exactly one of Kitchen/Wardrobe is set; the pair is never both present.
type Project struct {
	ID            string          `json:"id" bson:"id"`
	UserEmail     string          `json:"userEmail" bson:"userEmail"`
	ArchitectName *string         `json:"architectName,omitempty" bson:"architectName,omitempty"`
	Category      *string         `json:"category,omitempty" bson:"category,omitempty"`
	Status        string          `json:"status" bson:"status"`
	Kitchen       *KitchenConfig  `json:"kitchen,omitempty" bson:"kitchen,omitempty"`
	Wardrobe      *WardrobeConfig `json:"wardrobe,omitempty" bson:"wardrobe,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time       `json:"updated_at" bson:"updatedAt"`
}
