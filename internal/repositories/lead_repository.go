package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepository defines the interface for lead document operations.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	GetLeadByID(ctx context.Context, id string) (*models.Lead, error)
	GetAllLeads(ctx context.Context) ([]models.Lead, error)
	// GetLeadsByAssignedRole returns leads whose assignedRoles list contains role.
	GetLeadsByAssignedRole(ctx context.Context, role string) ([]models.Lead, error)
	UpdateLead(ctx context.Context, lead *models.Lead) error
	DeleteLead(ctx context.Context, id string) error
}

type leadRepository struct {
	coll *mongo.Collection
}

// NewLeadRepository creates a new instance of LeadRepository.
func NewLeadRepository(db *mongo.Database) LeadRepository {
	return &leadRepository{coll: db.Collection("leads")}
}

func (r *leadRepository) CreateLead(ctx context.Context, lead *models.Lead) error {
	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("%w: creating lead: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *leadRepository) GetLeadByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting lead %s: %v", ErrDatabaseError, id, err)
	}
	return &lead, nil
}

func (r *leadRepository) GetAllLeads(ctx context.Context) ([]models.Lead, error) {
	return r.findLeads(ctx, bson.M{})
}

func (r *leadRepository) GetLeadsByAssignedRole(ctx context.Context, role string) ([]models.Lead, error) {
	// Matching a scalar against an array field selects documents whose
	// assignedRoles contains the role.
	return r.findLeads(ctx, bson.M{"assignedRoles": role})
}

func (r *leadRepository) findLeads(ctx context.Context, query bson.M) ([]models.Lead, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying leads: %v", ErrDatabaseError, err)
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("%w: decoding leads: %v", ErrDatabaseError, err)
	}
	return leads, nil
}

func (r *leadRepository) UpdateLead(ctx context.Context, lead *models.Lead) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": lead.ID}, lead)
	if err != nil {
		return fmt.Errorf("%w: updating lead %s: %v", ErrDatabaseError, lead.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *leadRepository) DeleteLead(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting lead %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
