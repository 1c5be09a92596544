package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogFilter narrows catalog queries. Zero-value fields are ignored.
type CatalogFilter struct {
	Department string
	WorkType   string
	Category   string
	Type       string
}

// CatalogRepository defines the interface for catalog item operations.
type CatalogRepository interface {
	CreateCatalogItem(ctx context.Context, item *models.CatalogItem) error
	GetCatalogItemByID(ctx context.Context, id string) (*models.CatalogItem, error)
	GetCatalogItems(ctx context.Context, filter CatalogFilter) ([]models.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, item *models.CatalogItem) error
	DeleteCatalogItem(ctx context.Context, id string) error
}

type catalogRepository struct {
	coll *mongo.Collection
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *mongo.Database) CatalogRepository {
	return &catalogRepository{coll: db.Collection("catalog_items")}
}

func (r *catalogRepository) CreateCatalogItem(ctx context.Context, item *models.CatalogItem) error {
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("%w: creating catalog item: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *catalogRepository) GetCatalogItemByID(ctx context.Context, id string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting catalog item %s: %v", ErrDatabaseError, id, err)
	}
	return &item, nil
}

func (r *catalogRepository) GetCatalogItems(ctx context.Context, filter CatalogFilter) ([]models.CatalogItem, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.WorkType != "" {
		query["workType"] = filter.WorkType
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying catalog items: %v", ErrDatabaseError, err)
	}
	defer cursor.Close(ctx)

	items := []models.CatalogItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding catalog items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *catalogRepository) UpdateCatalogItem(ctx context.Context, item *models.CatalogItem) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("%w: updating catalog item %s: %v", ErrDatabaseError, item.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *catalogRepository) DeleteCatalogItem(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting catalog item %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
