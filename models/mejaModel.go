package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TableStatusAvailable = "available"
	TableStatusReserved  = "reserved"
)

// Meja is a reservable restaurant table. Table_number is the natural key
// used for every lookup; the object id is never matched on.
//
// A reserved table is held either by a named reservation (Customer_name set
// via the reserve endpoint) or by an open order (Customer_name empty).
type Meja struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Table_number  *int               `bson:"tableNumber" json:"tableNumber" validate:"required"`
	Capacity      *int               `bson:"capacity" json:"capacity" validate:"required,gt=0"`
	Status        string             `bson:"status" json:"status"`
	Customer_name string             `bson:"customerName" json:"customerName"`
	Created_at    time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
