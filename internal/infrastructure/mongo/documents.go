package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationDocument is the GeoJSON point embedded in a store document. The
// 2dsphere index over it expects [longitude, latitude] order.
type LocationDocument struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
	Address     string    `bson:"address"`
}

// StoreDocument is the MongoDB schema of a store listing.
type StoreDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	Created     time.Time          `bson:"created"`
	Location    LocationDocument   `bson:"location"`
	Photo       string             `bson:"photo,omitempty"`
	Author      primitive.ObjectID `bson:"author"`
}

// ReviewDocument is the MongoDB schema of a review. It references its store
// and author by id; referential integrity is advisory.
type ReviewDocument struct {
	ID      primitive.ObjectID `bson:"_id"`
	Store   primitive.ObjectID `bson:"store"`
	Author  primitive.ObjectID `bson:"author"`
	Text    string             `bson:"text,omitempty"`
	Rating  int                `bson:"rating"`
	Created time.Time          `bson:"created"`
}

// UserDocument carries the heart set. Account fields are owned by the
// external auth service and only read here.
type UserDocument struct {
	ID     primitive.ObjectID   `bson:"_id"`
	Name   string               `bson:"name,omitempty"`
	Email  string               `bson:"email,omitempty"`
	Hearts []primitive.ObjectID `bson:"hearts,omitempty"`
}
