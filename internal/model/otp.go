package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTPChallenge is a pending one-time-code document in the `otprequest`
// collection. Challenges are append-only: a new document is inserted for
// every request and verification only ever consults the most recently
// created one for a phone number. Expired and superseded challenges stay
// in the collection as inert records; expiry is enforced at read time.
//
// Fields:
//  Phone     – phone number the code was issued for.
//  Code      – 6-digit zero-padded numeric code.
//  FarmerID  – optional pre-known farmer identifier carried through to
//              identity resolution.
//  ExpiresAt – issuance time plus the OTP TTL.
//  Verified  – reserved flag; verification never mutates the document.
//  CreatedAt – insertion timestamp, used to pick the latest challenge.
type OTPChallenge struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Phone     string             `bson:"phone"`
	Code      string             `bson:"otp"`
	FarmerID  string             `bson:"farmer_id,omitempty"`
	ExpiresAt time.Time          `bson:"expires_at"`
	Verified  bool               `bson:"verified"`
	CreatedAt time.Time          `bson:"created_at"`
}
