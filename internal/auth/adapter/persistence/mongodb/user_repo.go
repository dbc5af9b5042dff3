package mongodb

import (
	"context"
	"time"

	"bookmarks-api/internal/auth/domain/model"
	"bookmarks-api/internal/auth/domain/repository"
	"bookmarks-api/internal/shared/database"
	apperrors "bookmarks-api/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userSequence = "users"

// MongoAuthRepository implements the AuthRepository interface using MongoDB
type MongoAuthRepository struct {
	users     *mongo.Collection
	sequences *database.SequenceGenerator
}

// NewMongoAuthRepository creates a new MongoDB auth repository
func NewMongoAuthRepository(db *mongo.Database, sequences *database.SequenceGenerator) (*MongoAuthRepository, error) {
	repo := &MongoAuthRepository{
		users:     db.Collection("users"),
		sequences: sequences,
	}

	ctx := context.Background()

	// Unique email index: the insert itself is the duplicate check.
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.users.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return nil, err
	}

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.users.Indexes().CreateOne(ctx, idIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// CreateUser inserts a new identity, minting its integer id from the user
// sequence. A duplicate email surfaces as ErrEmailTaken.
func (r *MongoAuthRepository) CreateUser(ctx context.Context, user *model.User) error {
	id, err := r.sequences.Next(ctx, userSequence)
	if err != nil {
		return err
	}
	user.ID = id

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err = r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		return apperrors.WrapError(err, "failed to insert user")
	}

	return nil
}

// GetUserByEmail retrieves an identity by email
func (r *MongoAuthRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByID retrieves an identity by its integer id
func (r *MongoAuthRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUser applies a partial update and returns the updated identity.
// Only fields present in the patch are written.
func (r *MongoAuthRepository) UpdateUser(ctx context.Context, id int64, patch repository.UserPatch) (*model.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user model.User
	err := r.users.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.WrapError(err, "failed to update user")
	}

	return &user, nil
}
