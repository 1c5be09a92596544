package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuotationRepository defines the interface for quotation document operations.
type QuotationRepository interface {
	CreateQuotation(ctx context.Context, quotation *models.Quotation) error
	GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error)
	GetAllQuotations(ctx context.Context) ([]models.Quotation, error)
	GetQuotationsByProjectID(ctx context.Context, projectID string) ([]models.Quotation, error)
	UpdateQuotation(ctx context.Context, quotation *models.Quotation) error
	DeleteQuotation(ctx context.Context, id string) error
}

type quotationRepository struct {
	coll *mongo.Collection
}

// NewQuotationRepository creates a new instance of QuotationRepository.
func NewQuotationRepository(db *mongo.Database) QuotationRepository {
	return &quotationRepository{coll: db.Collection("quotations")}
}

func (r *quotationRepository) CreateQuotation(ctx context.Context, quotation *models.Quotation) error {
	if _, err := r.coll.InsertOne(ctx, quotation); err != nil {
		return fmt.Errorf("%w: creating quotation: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *quotationRepository) GetQuotationByID(ctx context.Context, id string) (*models.Quotation, error) {
	var quotation models.Quotation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quotation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting quotation %s: %v", ErrDatabaseError, id, err)
	}
	return &quotation, nil
}

func (r *quotationRepository) GetAllQuotations(ctx context.Context) ([]models.Quotation, error) {
	return r.findQuotations(ctx, bson.M{})
}

func (r *quotationRepository) GetQuotationsByProjectID(ctx context.Context, projectID string) ([]models.Quotation, error) {
	return r.findQuotations(ctx, bson.M{"projectId": projectID})
}

func (r *quotationRepository) findQuotations(ctx context.Context, query bson.M) ([]models.Quotation, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying quotations: %v", ErrDatabaseError, err)
	}
	defer cursor.Close(ctx)

	quotations := []models.Quotation{}
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("%w: decoding quotations: %v", ErrDatabaseError, err)
	}
	return quotations, nil
}

func (r *quotationRepository) UpdateQuotation(ctx context.Context, quotation *models.Quotation) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": quotation.ID}, quotation)
	if err != nil {
		return fmt.Errorf("%w: updating quotation %s: %v", ErrDatabaseError, quotation.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *quotationRepository) DeleteQuotation(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting quotation %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
