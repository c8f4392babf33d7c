package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// Create inserts the review and writes the assigned id back. Both references
// must already be valid object ids; the caller validates presence.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	storeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.Store))
	if err != nil {
		return err
	}
	authorID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.Author))
	if err != nil {
		return err
	}

	doc := ReviewDocument{
		ID:      primitive.NewObjectID(),
		Store:   storeID,
		Author:  authorID,
		Text:    review.Text,
		Rating:  review.Rating,
		Created: review.Created,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	review.ID = doc.ID.Hex()
	return nil
}

// FindByStore returns a store's reviews, newest first. This is the read-time
// join behind the store detail view.
func (r *ReviewRepository) FindByStore(ctx context.Context, storeID string) ([]domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(storeID))
	if err != nil {
		return []domain.Review{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"store": objectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor)
}

// FindAll returns every review for the top-store ranking join.
func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor)
}

func decodeReviews(ctx context.Context, cursor *mongo.Cursor) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:      doc.ID.Hex(),
		Store:   doc.Store.Hex(),
		Author:  doc.Author.Hex(),
		Text:    doc.Text,
		Rating:  doc.Rating,
		Created: doc.Created,
	}
}
