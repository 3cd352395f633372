package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an in-app message for a farmer, written by the queue
// consumer and read back by the dashboard (latest ten, newest first).
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FarmerID  string             `bson:"farmer_id" json:"farmer_id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Level     string             `bson:"level" json:"level"` // info|warning|critical
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// CropCalendarItem is one dated activity on a farmer's crop calendar.
// Phase is one of sowing|irrigation|fertilizer|pest|harvest.
type CropCalendarItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FarmerID string             `bson:"farmer_id" json:"farmer_id"`
	Crop     string             `bson:"crop" json:"crop"`
	Phase    string             `bson:"phase" json:"phase"`
	Date     time.Time          `bson:"date" json:"date"`
	Note     string             `bson:"note,omitempty" json:"note,omitempty"`
}

// Scheme is a government support scheme entry. Nil State or CropTypes
// means the scheme applies everywhere / to every crop.
type Scheme struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	State       string   `json:"state,omitempty"`
	CropTypes   []string `json:"crop_types,omitempty"`
	Benefit     string   `json:"benefit,omitempty"`
	Link        string   `json:"link,omitempty"`
}
