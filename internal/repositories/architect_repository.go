package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArchitectRepository defines the interface for architect document operations.
type ArchitectRepository interface {
	CreateArchitect(ctx context.Context, architect *models.Architect) error
	GetArchitectByID(ctx context.Context, id string) (*models.Architect, error)
	// GetArchitectByNameAndContact is the dedup lookup used before inserts.
	GetArchitectByNameAndContact(ctx context.Context, name, contact string) (*models.Architect, error)
	GetAllArchitects(ctx context.Context) ([]models.Architect, error)
	UpdateArchitect(ctx context.Context, architect *models.Architect) error
	DeleteArchitect(ctx context.Context, id string) error
}

type architectRepository struct {
	coll *mongo.Collection
}

// NewArchitectRepository creates a new instance of ArchitectRepository.
func NewArchitectRepository(db *mongo.Database) ArchitectRepository {
	return &architectRepository{coll: db.Collection("architects")}
}

func (r *architectRepository) CreateArchitect(ctx context.Context, architect *models.Architect) error {
	if _, err := r.coll.InsertOne(ctx, architect); err != nil {
		return fmt.Errorf("%w: creating architect: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *architectRepository) GetArchitectByID(ctx context.Context, id string) (*models.Architect, error) {
	var architect models.Architect
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&architect)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting architect %s: %v", ErrDatabaseError, id, err)
	}
	return &architect, nil
}

func (r *architectRepository) GetArchitectByNameAndContact(ctx context.Context, name, contact string) (*models.Architect, error) {
	var architect models.Architect
	err := r.coll.FindOne(ctx, bson.M{"architectName": name, "architectContact": contact}).Decode(&architect)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting architect %s/%s: %v", ErrDatabaseError, name, contact, err)
	}
	return &architect, nil
}

func (r *architectRepository) GetAllArchitects(ctx context.Context) ([]models.Architect, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: querying architects: %v", ErrDatabaseError, err)
	}
	defer cursor.Close(ctx)

	architects := []models.Architect{}
	if err := cursor.All(ctx, &architects); err != nil {
		return nil, fmt.Errorf("%w: decoding architects: %v", ErrDatabaseError, err)
	}
	return architects, nil
}

func (r *architectRepository) UpdateArchitect(ctx context.Context, architect *models.Architect) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": architect.ID}, architect)
	if err != nil {
		return fmt.Errorf("%w: updating architect %s: %v", ErrDatabaseError, architect.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *architectRepository) DeleteArchitect(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting architect %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
