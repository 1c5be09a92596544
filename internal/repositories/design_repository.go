package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesignRepository defines the interface for design aggregate operations.
// Item-level mutations go through UpdateDesign, replacing the whole parent
// document in one atomic write.
type DesignRepository interface {
	CreateDesign(ctx context.Context, design *models.Design) error
	GetDesignByID(ctx context.Context, id string) (*models.Design, error)
	GetDesignsByProjectID(ctx context.Context, projectID string) ([]models.Design, error)
	UpdateDesign(ctx context.Context, design *models.Design) error
	DeleteDesign(ctx context.Context, id string) error
}

type designRepository struct {
	coll *mongo.Collection
}

// NewDesignRepository creates a new instance of DesignRepository.
func NewDesignRepository(db *mongo.Database) DesignRepository {
	return &designRepository{coll: db.Collection("designs")}
}

func (r *designRepository) CreateDesign(ctx context.Context, design *models.Design) error {
	if _, err := r.coll.InsertOne(ctx, design); err != nil {
		return fmt.Errorf("%w: creating design: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *designRepository) GetDesignByID(ctx context.Context, id string) (*models.Design, error) {
	var design models.Design
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&design)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting design %s: %v", ErrDatabaseError, id, err)
	}
	return &design, nil
}

func (r *designRepository) GetDesignsByProjectID(ctx context.Context, projectID string) ([]models.Design, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("%w: querying designs for %s: %v", ErrDatabaseError, projectID, err)
	}
	defer cursor.Close(ctx)

	designs := []models.Design{}
	if err := cursor.All(ctx, &designs); err != nil {
		return nil, fmt.Errorf("%w: decoding designs: %v", ErrDatabaseError, err)
	}
	return designs, nil
}

func (r *designRepository) UpdateDesign(ctx context.Context, design *models.Design) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": design.ID}, design)
	if err != nil {
		return fmt.Errorf("%w: updating design %s: %v", ErrDatabaseError, design.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *designRepository) DeleteDesign(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting design %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
