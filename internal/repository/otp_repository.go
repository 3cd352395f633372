package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// OTPRepo persists one-time-code challenges in the 'otprequest' collection.
// Challenges are append-only: CreateChallenge always inserts a new document
// and LatestByPhone picks the newest, so older challenges for the same
// phone are superseded but never deleted.
type OTPRepo struct{ DB *mongo.Database }

func NewOTPRepo(db *mongo.Database) *OTPRepo { return &OTPRepo{DB: db} }

// CreateChallenge inserts a new challenge document.
func (r *OTPRepo) CreateChallenge(ctx context.Context, ch model.OTPChallenge) error {
	if r.DB == nil {
		return ErrStorageUnavailable
	}
	_, err := r.DB.Collection("otprequest").InsertOne(ctx, ch)
	return err
}

// LatestByPhone returns the most recently created challenge for a phone
// number. Sorting is by created_at descending with _id descending as a
// deterministic tie-break when two challenges share a timestamp.
func (r *OTPRepo) LatestByPhone(ctx context.Context, phone string) (model.OTPChallenge, error) {
	var ch model.OTPChallenge
	if r.DB == nil {
		return ch, ErrStorageUnavailable
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	err := r.DB.Collection("otprequest").FindOne(ctx, bson.M{"phone": phone}, opts).Decode(&ch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ch, ErrNotFound
	}
	return ch, err
}
