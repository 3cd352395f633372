package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrimitra/smart-crop-advisory/internal/model"
)

// SessionRepo persists bearer-token sessions in the 'session' collection.
// Sessions are write-once: there is no renewal or revocation path, expiry
// is evaluated by the caller at read time.
type SessionRepo struct{ DB *mongo.Database }

func NewSessionRepo(db *mongo.Database) *SessionRepo { return &SessionRepo{DB: db} }

// CreateSession inserts a new session document.
func (r *SessionRepo) CreateSession(ctx context.Context, s model.Session) error {
	if r.DB == nil {
		return ErrStorageUnavailable
	}
	_, err := r.DB.Collection("session").InsertOne(ctx, s)
	return err
}

// ByToken resolves a session by exact token match.
func (r *SessionRepo) ByToken(ctx context.Context, token string) (model.Session, error) {
	var s model.Session
	if r.DB == nil {
		return s, ErrStorageUnavailable
	}
	err := r.DB.Collection("session").FindOne(ctx, bson.M{"token": token}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return s, ErrNotFound
	}
	return s, err
}
