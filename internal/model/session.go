package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session binds an opaque bearer token to a farmer identifier for a fixed
// validity window (7 days by default). Sessions are never renewed or
// revoked; a token simply stops validating once its expiry is in the past,
// and the expired document remains in the `session` collection.
//
// Fields:
//  FarmerID  – canonical farmer identifier the token authenticates.
//  Token     – high-entropy URL-safe bearer token, unique by entropy.
//  CreatedAt – issuance timestamp.
//  ExpiresAt – issuance time plus the session TTL.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FarmerID  string             `bson:"farmer_id"`
	Token     string             `bson:"token"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}
