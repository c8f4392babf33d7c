package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storeatlas/directory-services/api/internal/public/application"
	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// StoreRepository implements application.StoreRepository using MongoDB.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository creates a new Mongo-backed store repository.
func NewStoreRepository(db *mongo.Database, collectionName string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collectionName)}
}

// Find returns stores matching the filter, newest first, honoring paging
// when a limit is set.
func (r *StoreRepository) Find(ctx context.Context, filter application.StoreFilter, paging application.Paging) ([]domain.Store, error) {
	mongoFilter := storeListFilter(filter)

	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	if paging.Limit > 0 {
		page := paging.Page
		if page <= 0 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * paging.Limit))
		opts.SetLimit(int64(paging.Limit))
	}

	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// Count returns the total number of stores for pagination.
func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

// FindAll returns every store; the tag and top-store aggregations join and
// group client-side.
func (r *StoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// FindByID returns a single store by its identifier.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	store := mapStoreDocument(doc)
	return &store, nil
}

// FindBySlug returns a single store by its slug.
func (r *StoreRepository) FindBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	var doc StoreDocument
	if err := r.collection.FindOne(ctx, bson.M{"slug": strings.TrimSpace(slug)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	store := mapStoreDocument(doc)
	return &store, nil
}

// FindByIDs returns the stores whose ids are in the given set, used for the
// hearted-store listing. Unknown ids are skipped silently.
func (r *StoreRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Store, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []domain.Store{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// FindSlugs returns every persisted slug matching the base slug or one of its
// numeric suffixes. The scan and the subsequent insert are not transactional,
// so a concurrent creation with the same base can still collide.
func (r *StoreRepository) FindSlugs(ctx context.Context, base string) ([]string, error) {
	if base == "" {
		return nil, nil
	}
	filter := slugScanFilter(base)
	opts := options.Find().SetProjection(bson.M{"slug": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	slugs := make([]string, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Slug string `bson:"slug"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		slugs = append(slugs, doc.Slug)
	}
	return slugs, cursor.Err()
}

// FindNearby returns stores within maxDistanceMeters of the point, nearest
// first per the 2dsphere index, projecting only the map-pin field set.
func (r *StoreRepository) FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error) {
	filter := nearbyFilter(lng, lat, maxDistanceMeters)
	opts := options.Find().
		SetProjection(bson.M{"slug": 1, "name": 1, "description": 1, "location": 1, "photo": 1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// Search runs a $text query over the (name, description) index and returns
// matches ordered by the engine's relevance score, highest first.
func (r *StoreRepository) Search(ctx context.Context, query string, limit int) ([]domain.Store, error) {
	filter := searchFilter(query)
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeStores(ctx, cursor)
}

// Create inserts the store and writes the assigned id back.
func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	doc, err := buildStoreDocument(store)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	store.ID = doc.ID.Hex()
	return nil
}

// Update replaces the mutable fields of an existing store.
func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(store.ID))
	if err != nil {
		return domain.ErrNotFound
	}
	doc, err := buildStoreDocument(store)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":        doc.Name,
		"slug":        doc.Slug,
		"description": doc.Description,
		"tags":        doc.Tags,
		"location":    doc.Location,
		"photo":       doc.Photo,
	}}
	result, err := r.collection.UpdateByID(ctx, objectID, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// storeListFilter builds the list query. An empty filter matches everything;
// Tagged without a tag matches any store carrying a tags field.
func storeListFilter(filter application.StoreFilter) bson.M {
	mongoFilter := bson.M{}
	if filter.Tag != "" {
		mongoFilter["tags"] = strings.TrimSpace(filter.Tag)
	} else if filter.Tagged {
		mongoFilter["tags"] = bson.M{"$exists": true}
	}
	return mongoFilter
}

// slugScanFilter matches the base slug and its numeric suffixes, case
// insensitively, for slug derivation.
func slugScanFilter(base string) bson.M {
	return bson.M{"slug": primitive.Regex{Pattern: domain.SlugPattern(base), Options: "i"}}
}

// nearbyFilter builds the $near query the 2dsphere index answers.
func nearbyFilter(lng, lat, maxDistanceMeters float64) bson.M {
	return bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{lng, lat},
				},
				"$maxDistance": maxDistanceMeters,
			},
		},
	}
}

// searchFilter builds the $text query over the (name, description) index.
func searchFilter(query string) bson.M {
	return bson.M{"$text": bson.M{"$search": query}}
}

func decodeStores(ctx context.Context, cursor *mongo.Cursor) ([]domain.Store, error) {
	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}

func mapStoreDocument(doc StoreDocument) domain.Store {
	author := ""
	if !doc.Author.IsZero() {
		author = doc.Author.Hex()
	}
	return domain.Store{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		Tags:        append([]string{}, doc.Tags...),
		Created:     doc.Created,
		Location: domain.Location{
			Type:        doc.Location.Type,
			Coordinates: append([]float64{}, doc.Location.Coordinates...),
			Address:     doc.Location.Address,
		},
		Photo:  doc.Photo,
		Author: author,
	}
}

func buildStoreDocument(store *domain.Store) (StoreDocument, error) {
	author, err := primitive.ObjectIDFromHex(strings.TrimSpace(store.Author))
	if err != nil {
		return StoreDocument{}, err
	}
	locationType := store.Location.Type
	if locationType == "" {
		locationType = "Point"
	}
	return StoreDocument{
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        append([]string{}, store.Tags...),
		Created:     store.Created,
		Location: LocationDocument{
			Type:        locationType,
			Coordinates: append([]float64{}, store.Location.Coordinates...),
			Address:     store.Location.Address,
		},
		Photo:  store.Photo,
		Author: author,
	}, nil
}
