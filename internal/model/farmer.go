package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Farmer represents a farmer profile document in the `farmer` collection.
// The farmer_id field is the canonical identifier: clients may supply their
// own ID during OTP verification, otherwise the phone number is used. The
// bson tags mirror the document field names; handlers define separate
// response types with appropriate JSON shapes.
//
// Fields:
//  FarmerID  – unique canonical identifier (client-supplied ID or phone).
//  Name      – full name of the farmer (optional).
//  Phone     – mobile phone number.
//  Aadhaar   – national ID number (optional).
//  Language  – preferred language code, defaults to "en".
//  Location  – free-form "Village, District, State" string (optional).
//  Crops     – primary crops grown (optional).
//  SoilType  – soil type such as loam or clay (optional).
//  UpdatedAt – timestamp of last profile overwrite.
type Farmer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FarmerID  string             `bson:"farmer_id"`
	Name      string             `bson:"name,omitempty"`
	Phone     string             `bson:"phone"`
	Aadhaar   string             `bson:"aadhaar,omitempty"`
	Language  string             `bson:"language"`
	Location  string             `bson:"location,omitempty"`
	Crops     []string           `bson:"crops,omitempty"`
	SoilType  string             `bson:"soil_type,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
