package mongodb

import (
	"context"
	"time"

	"bookmarks-api/internal/bookmark/domain/model"
	"bookmarks-api/internal/shared/database"
	apperrors "bookmarks-api/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookmarkSequence = "bookmarks"

// MongoBookmarkRepository implements the BookmarkRepository interface using
// MongoDB. The owner id is part of every filter, never applied after the
// fact, so the store decides ownership atomically.
type MongoBookmarkRepository struct {
	bookmarks *mongo.Collection
	sequences *database.SequenceGenerator
}

// NewMongoBookmarkRepository creates a new MongoDB bookmark repository
func NewMongoBookmarkRepository(db *mongo.Database, sequences *database.SequenceGenerator) (*MongoBookmarkRepository, error) {
	repo := &MongoBookmarkRepository{
		bookmarks: db.Collection("bookmarks"),
		sequences: sequences,
	}

	ctx := context.Background()

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.bookmarks.Indexes().CreateOne(ctx, idIndex); err != nil {
		return nil, err
	}

	// Owner listing is the hot path.
	ownerIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "id", Value: 1}},
	}
	if _, err := repo.bookmarks.Indexes().CreateOne(ctx, ownerIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Create inserts a new bookmark, minting its integer id from the bookmark
// sequence.
func (r *MongoBookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	id, err := r.sequences.Next(ctx, bookmarkSequence)
	if err != nil {
		return err
	}
	bookmark.ID = id

	now := time.Now()
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = now
	}
	bookmark.UpdatedAt = now

	if _, err := r.bookmarks.InsertOne(ctx, bookmark); err != nil {
		return apperrors.WrapError(err, "failed to insert bookmark")
	}
	return nil
}

// GetByID fetches a bookmark by {id, owner_id}
func (r *MongoBookmarkRepository) GetByID(ctx context.Context, ownerID, id int64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.bookmarks.FindOne(ctx, bson.M{"id": id, "owner_id": ownerID}).Decode(&bookmark)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, err
	}

	return &bookmark, nil
}

// ListByOwner returns all of the owner's bookmarks ordered by id ascending,
// which is insertion order for sequence-minted ids.
func (r *MongoBookmarkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*model.Bookmark, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := r.bookmarks.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookmarks := make([]*model.Bookmark, 0)
	for cursor.Next(ctx) {
		var bookmark model.Bookmark
		if err := cursor.Decode(&bookmark); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &bookmark)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// Update applies a partial update in a single filtered FindOneAndUpdate.
// The {id, owner_id} filter means a not-owned row is never touched and is
// reported exactly like a missing one.
func (r *MongoBookmarkRepository) Update(ctx context.Context, ownerID, id int64, patch model.BookmarkPatch) (*model.Bookmark, error) {
	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Link != nil {
		set["link"] = *patch.Link
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var bookmark model.Bookmark
	err := r.bookmarks.FindOneAndUpdate(
		ctx,
		bson.M{"id": id, "owner_id": ownerID},
		bson.M{"$set": set},
		opts,
	).Decode(&bookmark)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, err
	}

	return &bookmark, nil
}

// Delete removes the bookmark matching {id, owner_id}
func (r *MongoBookmarkRepository) Delete(ctx context.Context, ownerID, id int64) error {
	result, err := r.bookmarks.DeleteOne(ctx, bson.M{"id": id, "owner_id": ownerID})
	if err != nil {
		return apperrors.WrapError(err, "failed to delete bookmark")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	return nil
}
