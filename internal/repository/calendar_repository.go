package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// CalendarRepo persists crop calendar activities in the 'cropcalendaritem'
// collection.
type CalendarRepo struct{ DB *mongo.Database }

func NewCalendarRepo(db *mongo.Database) *CalendarRepo { return &CalendarRepo{DB: db} }

// ListForFarmer returns a farmer's calendar items sorted by date ascending.
func (r *CalendarRepo) ListForFarmer(ctx context.Context, farmerID string) ([]model.CropCalendarItem, error) {
	if r.DB == nil {
		return nil, ErrStorageUnavailable
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.DB.Collection("cropcalendaritem").Find(ctx, bson.M{"farmer_id": farmerID}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.CropCalendarItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertMany seeds a batch of calendar items, used when a farmer has no
// calendar yet.
func (r *CalendarRepo) InsertMany(ctx context.Context, items []model.CropCalendarItem) error {
	if r.DB == nil {
		return ErrStorageUnavailable
	}
	docs := make([]interface{}, len(items))
	for i, it := range items {
		docs[i] = it
	}
	_, err := r.DB.Collection("cropcalendaritem").InsertMany(ctx, docs)
	return err
}
