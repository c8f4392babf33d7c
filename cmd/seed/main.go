package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongodoc "github.com/storeatlas/directory-services/api/internal/infrastructure/mongo"
	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

type seedOptions struct {
	mongoURI        string
	database        string
	storeCount      int
	reviewCount     int
	userCount       int
	dropCollections bool
	randomSeed      int64
}

var storeNames = []string{
	"Bean Around the Block", "The Copper Kettle", "Night Owl Noodles",
	"Slice of Heaven", "Golden Gyoza", "The Rusted Spoon", "Maple & Thyme",
	"Fog City Creamery", "Harbor Light Diner", "Juniper Street Bakery",
	"The Daily Grind", "Pine Box Barbecue", "Salt Flats Taqueria",
	"Driftwood Tap House", "The Velvet Radish",
}

var tagPool = []string{"Wifi", "Open Late", "Family Friendly", "Vegetarian", "Licensed"}

var addresses = []string{
	"125 Queen St W", "48 Spadina Ave", "301 Front St", "77 King St E",
	"940 Dundas St W", "18 Ossington Ave", "560 College St",
}

var reviewTexts = []string{
	"Great spot, would come back.",
	"Friendly staff but a little slow on a Friday night.",
	"The best in the neighborhood, hands down.",
	"Solid. Nothing fancy, does the basics well.",
	"Overpriced for what you get.",
	"Hidden gem. Do not sleep on the daily specials.",
}

// validate rejects flag combinations that would leave an entity without a
// referenced parent to pick from.
func (o seedOptions) validate() error {
	if o.storeCount > 0 && o.userCount < 1 {
		return errors.New("stores need at least one user to author them")
	}
	if o.reviewCount > 0 && (o.storeCount < 1 || o.userCount < 1) {
		return errors.New("reviews need at least one store and one user")
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := opts.validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	rng := rand.New(rand.NewSource(opts.randomSeed))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.mongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	db := client.Database(opts.database)
	stores := db.Collection("stores")
	reviews := db.Collection("reviews")
	users := db.Collection("users")

	if opts.dropCollections {
		for _, coll := range []*mongo.Collection{stores, reviews, users} {
			if err := coll.Drop(ctx); err != nil {
				log.Fatalf("failed to drop %s: %v", coll.Name(), err)
			}
		}
	}

	if err := mongodoc.EnsureStoreIndexes(ctx, stores); err != nil {
		log.Fatalf("failed to ensure store indexes: %v", err)
	}
	if err := mongodoc.EnsureReviewIndexes(ctx, reviews); err != nil {
		log.Fatalf("failed to ensure review indexes: %v", err)
	}

	userIDs := seedUsers(ctx, users, opts.userCount)
	storeIDs := seedStores(ctx, stores, userIDs, opts.storeCount, rng)
	seedReviews(ctx, reviews, storeIDs, userIDs, opts.reviewCount, rng)

	log.Printf("seeded %d users, %d stores, %d reviews", len(userIDs), len(storeIDs), opts.reviewCount)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.StringVar(&opts.mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	flag.StringVar(&opts.database, "db", "storeatlas", "database name")
	flag.IntVar(&opts.storeCount, "stores", 12, "number of stores to create")
	flag.IntVar(&opts.reviewCount, "reviews", 40, "number of reviews to create")
	flag.IntVar(&opts.userCount, "users", 5, "number of users to create")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
	return opts
}

func seedUsers(ctx context.Context, coll *mongo.Collection, count int) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, count)
	for i := 0; i < count; i++ {
		id := primitive.NewObjectID()
		doc := bson.M{
			"_id":   id,
			"name":  fmt.Sprintf("Seed User %d", i+1),
			"email": fmt.Sprintf("seed%d@example.com", i+1),
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			log.Fatalf("failed to insert user: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func seedStores(ctx context.Context, coll *mongo.Collection, userIDs []primitive.ObjectID, count int, rng *rand.Rand) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, count)
	slugs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name := storeNames[i%len(storeNames)]
		slug := domain.DeriveSlug(slugs, name)
		slugs = append(slugs, slug)

		// Jitter around downtown Toronto so proximity queries have data.
		lng := -79.38 + rng.Float64()*0.1 - 0.05
		lat := 43.65 + rng.Float64()*0.1 - 0.05

		tags := make([]string, 0)
		for _, tag := range tagPool {
			if rng.Intn(2) == 0 {
				tags = append(tags, tag)
			}
		}

		doc := mongodoc.StoreDocument{
			ID:          primitive.NewObjectID(),
			Name:        name,
			Slug:        slug,
			Description: fmt.Sprintf("%s is a neighborhood favorite.", name),
			Tags:        tags,
			Created:     time.Now().UTC().Add(-time.Duration(rng.Intn(90*24)) * time.Hour),
			Location: mongodoc.LocationDocument{
				Type:        "Point",
				Coordinates: []float64{lng, lat},
				Address:     addresses[i%len(addresses)],
			},
			Author: userIDs[rng.Intn(len(userIDs))],
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			log.Fatalf("failed to insert store: %v", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids
}

func seedReviews(ctx context.Context, coll *mongo.Collection, storeIDs, userIDs []primitive.ObjectID, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		doc := mongodoc.ReviewDocument{
			ID:      primitive.NewObjectID(),
			Store:   storeIDs[rng.Intn(len(storeIDs))],
			Author:  userIDs[rng.Intn(len(userIDs))],
			Text:    reviewTexts[rng.Intn(len(reviewTexts))],
			Rating:  1 + rng.Intn(5),
			Created: time.Now().UTC().Add(-time.Duration(rng.Intn(60*24)) * time.Hour),
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			log.Fatalf("failed to insert review: %v", err)
		}
	}
}
