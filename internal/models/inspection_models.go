package models

import "time"

// Site inspection aspect statuses.
const (
	InspectionPending     = "Pending"
	InspectionCompleted   = "Completed"
	InspectionInProgress  = "In Progress"
	InspectionNotRequired = "Not Required"
)

var validInspectionStatuses = map[string]struct{}{
	InspectionPending:     {},
	InspectionCompleted:   {},
	InspectionInProgress:  {},
	InspectionNotRequired: {},
}

// InspectionStatuses returns the closed set of aspect statuses.
func InspectionStatuses() []string {
	return []string{InspectionPending, InspectionCompleted, InspectionInProgress, InspectionNotRequired}
}

// IsValidInspectionStatus reports whether value is a known aspect status.
func IsValidInspectionStatus(value string) bool {
	_, ok := validInspectionStatuses[value]
	return ok
}

// Inspection records a site visit for a project: one status (and optional
// walkthrough video) per inspected aspect, plus free-form extra videos.
type Inspection struct {
	ID                string    `json:"id" bson:"id"`
	ProjectID         string    `json:"projectId" bson:"projectId"`
	InspectionDate    time.Time `json:"inspectionDate" bson:"inspectionDate"`
	PlumbingStatus    string    `json:"plumbingStatus" bson:"plumbingStatus"`
	PlumbingVideo     *string   `json:"plumbingVideo,omitempty" bson:"plumbingVideo,omitempty"`
	ElectricityStatus string    `json:"electricityStatus" bson:"electricityStatus"`
	ElectricityVideo  *string   `json:"electricityVideo,omitempty" bson:"electricityVideo,omitempty"`
	ChimneyPointStatus string   `json:"chimneyPointStatus" bson:"chimneyPointStatus"`
	ChimneyPointVideo  *string  `json:"chimneyPointVideo,omitempty" bson:"chimneyPointVideo,omitempty"`
	FalseCeilingStatus string   `json:"falseCeilingStatus" bson:"falseCeilingStatus"`
	FalseCeilingVideo  *string  `json:"falseCeilingVideo,omitempty" bson:"falseCeilingVideo,omitempty"`
	FlooringStatus    string    `json:"flooringStatus" bson:"flooringStatus"`
	FlooringVideo     *string   `json:"flooringVideo,omitempty" bson:"flooringVideo,omitempty"`
	OtherVideos       []string  `json:"otherVideos" bson:"otherVideos"`
	ReadyForNextPhase bool      `json:"readyForNextPhase" bson:"readyForNextPhase"`
	CreatedAt         time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updatedAt"`
}

// VideoURLs collects every stored video reference of the inspection.
func (i *Inspection) VideoURLs() []string {
	var urls []string
	for _, v := range []*string{i.PlumbingVideo, i.ElectricityVideo, i.ChimneyPointVideo, i.FalseCeilingVideo, i.FlooringVideo} {
		if v != nil && *v != "" {
			urls = append(urls, *v)
		}
	}
	urls = append(urls, i.OtherVideos...)
	return urls
}
