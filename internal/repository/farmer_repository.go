package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// FarmerRepo persists farmer profiles in the 'farmer' collection, keyed by
// the canonical farmer_id.
type FarmerRepo struct{ DB *mongo.Database }

func NewFarmerRepo(db *mongo.Database) *FarmerRepo { return &FarmerRepo{DB: db} }

// ByFarmerID fetches a profile by its canonical identifier.
func (r *FarmerRepo) ByFarmerID(ctx context.Context, farmerID string) (model.Farmer, error) {
	var f model.Farmer
	if r.DB == nil {
		return f, ErrStorageUnavailable
	}
	err := r.DB.Collection("farmer").FindOne(ctx, bson.M{"farmer_id": farmerID}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return f, ErrNotFound
	}
	return f, err
}

// Upsert creates the profile if absent, otherwise overwrites the identity
// fields with the supplied values — including empty ones. This is a full
// replace of the verification-supplied fields, not a merge; crops and
// soil_type are managed elsewhere and are not touched here.
func (r *FarmerRepo) Upsert(ctx context.Context, f model.Farmer, now time.Time) error {
	if r.DB == nil {
		return ErrStorageUnavailable
	}
	update := bson.M{
		"$set": bson.M{
			"phone":      f.Phone,
			"aadhaar":    f.Aadhaar,
			"language":   f.Language,
			"name":       f.Name,
			"location":   f.Location,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := r.DB.Collection("farmer").UpdateOne(ctx,
		bson.M{"farmer_id": f.FarmerID}, update, options.Update().SetUpsert(true))
	return err
}
