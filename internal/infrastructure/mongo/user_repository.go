package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// UserRepository implements application.UserRepository using MongoDB. Users
// are created by the external auth service; only the heart set is mutated.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new Mongo-backed user repository.
func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName)}
}

// FindByID returns a single user by its identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user := mapUserDocument(doc)
	return &user, nil
}

// ToggleHeart flips heart membership with $addToSet or $pull depending on the
// current state and returns the updated user.
func (r *UserRepository) ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error) {
	userObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return nil, domain.ErrNotFound
	}
	storeObjID, err := primitive.ObjectIDFromHex(strings.TrimSpace(storeID))
	if err != nil {
		return nil, domain.ErrNotFound
	}

	current, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	operator := "$addToSet"
	if current.HasHearted(storeID) {
		operator = "$pull"
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated UserDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userObjID},
		bson.M{operator: bson.M{"hearts": storeObjID}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user := mapUserDocument(updated)
	return &user, nil
}

func mapUserDocument(doc UserDocument) domain.User {
	hearts := make([]string, 0, len(doc.Hearts))
	for _, id := range doc.Hearts {
		hearts = append(hearts, id.Hex())
	}
	return domain.User{
		ID:     doc.ID.Hex(),
		Name:   doc.Name,
		Email:  doc.Email,
		Hearts: hearts,
	}
}
