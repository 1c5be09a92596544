package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectRepository defines the interface for project document operations.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetProjectsByUserEmail(ctx context.Context, userEmail string) ([]models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error
}

type projectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{coll: db.Collection("projects")}
}

func (r *projectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return fmt.Errorf("%w: creating project: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *projectRepository) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting project %s: %v", ErrDatabaseError, id, err)
	}
	return &project, nil
}

func (r *projectRepository) GetProjectsByUserEmail(ctx context.Context, userEmail string) ([]models.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, fmt.Errorf("%w: querying projects for %s: %v", ErrDatabaseError, userEmail, err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("%w: decoding projects: %v", ErrDatabaseError, err)
	}
	return projects, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": project.ID}, project)
	if err != nil {
		return fmt.Errorf("%w: updating project %s: %v", ErrDatabaseError, project.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("%w: deleting project %s: %v", ErrDatabaseError, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
