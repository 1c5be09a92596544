package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InspectionRepository defines the interface for inspection document operations.
type InspectionRepository interface {
	CreateInspection(ctx context.Context, inspection *models.Inspection) error
	GetInspectionByID(ctx context.Context, id string) (*models.Inspection, error)
	GetInspectionsByProjectID(ctx context.Context, projectID string) ([]models.Inspection, error)
	UpdateInspection(ctx context.Context, inspection *models.Inspection) error
	DeleteInspection(ctx context.Context, id string) error
}

type inspectionRepository struct {
	coll *mongo.Collection
}

// NewInspectionRepository creates a new instance of InspectionRepository.
func NewInspectionRepository(db *mongo.Database) InspectionRepository {
	return &inspectionRepository{coll: db.Collection("inspections")}
}

func (r *inspectionRepository) CreateInspection(ctx context.Context, inspection *models.Inspection) error {
	if _, err := r.coll.InsertOne(ctx, inspection); err != nil {
		return fmt.Errorf("%w: creating inspection: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *inspectionRepository) GetInspectionByID(ctx context.Context, id string) (*models.Inspection, error) {
	var inspection models.Inspection
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inspection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inspection %s: %v", ErrDatabaseError, id, err)
	}
	return &inspection, nil
}

func (r *inspectionRepository) GetInspectionsByProjectID(ctx context.Context, projectID string) ([]models.Inspection, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("%w: querying inspections for %s: %v", ErrDatabaseError, projectID, err)
	}
	defer cursor.Close(ctx)

	inspections := []models.Inspection{}
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, fmt.Errorf("%w: decoding inspections: %v", ErrDatabaseError, err)
	}
	return inspections, nil
}

func (r *inspectionRepository) UpdateInspection(ctx context.Context, inspection *models.Inspection) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": inspection.ID}, inspection)
	if err != nil {
		return fmt.Errorf("%w: updating inspection %s: %v", ErrDatabaseError, inspection.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inspectionRepository) DeleteInspection(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting inspection %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
