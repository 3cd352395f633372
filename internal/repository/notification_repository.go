package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// NotificationRepo persists in-app notifications in the 'notification'
// collection. Documents are written by the queue consumer and read back by
// the dashboard.
type NotificationRepo struct{ DB *mongo.Database }

func NewNotificationRepo(db *mongo.Database) *NotificationRepo {
	return &NotificationRepo{DB: db}
}

// Create inserts a notification document.
func (r *NotificationRepo) Create(ctx context.Context, n model.Notification) error {
	if r.DB == nil {
		return ErrStorageUnavailable
	}
	_, err := r.DB.Collection("notification").InsertOne(ctx, n)
	return err
}

// LatestForFarmer returns up to limit notifications for a farmer, newest
// first.
func (r *NotificationRepo) LatestForFarmer(ctx context.Context, farmerID string, limit int64) ([]model.Notification, error) {
	if r.DB == nil {
		return nil, ErrStorageUnavailable
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.DB.Collection("notification").Find(ctx, bson.M{"farmer_id": farmerID}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.Notification
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
