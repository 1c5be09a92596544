package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeveda_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user document operations.
// Users are keyed by email.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, email string) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// CreateUser inserts a new user document.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: user %s", ErrDuplicateKey, user.Email)
		}
		return fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user %s: %v", ErrDatabaseError, email, err)
	}
	return &user, nil
}

// UpdateUser replaces the stored document for the user's email.
func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"email": user.Email}, user)
	if err != nil {
		return fmt.Errorf("%w: updating user %s: %v", ErrDatabaseError, user.Email, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user document by email.
func (r *userRepository) DeleteUser(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("%w: deleting user %s: %v", ErrDatabaseError, email, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAllUsers retrieves every user document.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: decoding users: %v", ErrDatabaseError, err)
	}
	return users, nil
}
