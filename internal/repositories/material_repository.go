package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MaterialRepository defines the interface for material aggregate operations.
// At most one material document exists per project; item mutations replace
// the whole parent document in one atomic write.
type MaterialRepository interface {
	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterialByProjectID(ctx context.Context, projectID string) (*models.Material, error)
	UpdateMaterial(ctx context.Context, material *models.Material) error
	DeleteMaterialByProjectID(ctx context.Context, projectID string) error
}

type materialRepository struct {
	coll *mongo.Collection
}

// NewMaterialRepository creates a new instance of MaterialRepository.
func NewMaterialRepository(db *mongo.Database) MaterialRepository {
	return &materialRepository{coll: db.Collection("materials")}
}

func (r *materialRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	if _, err := r.coll.InsertOne(ctx, material); err != nil {
		return fmt.Errorf("%w: creating material document: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *materialRepository) GetMaterialByProjectID(ctx context.Context, projectID string) (*models.Material, error) {
	var material models.Material
	err := r.coll.FindOne(ctx, bson.M{"projectId": projectID}).Decode(&material)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting materials for %s: %v", ErrDatabaseError, projectID, err)
	}
	return &material, nil
}

func (r *materialRepository) UpdateMaterial(ctx context.Context, material *models.Material) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": material.ID}, material)
	if err != nil {
		return fmt.Errorf("%w: updating material document %s: %v", ErrDatabaseError, material.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *materialRepository) DeleteMaterialByProjectID(ctx context.Context, projectID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return fmt.Errorf("%w: deleting materials for %s: %v", ErrDatabaseError, projectID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
