package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu is a single menu item. Items are immutable once created; there is
// no update or delete path.
type Menu struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         *string            `bson:"name" json:"name" validate:"required"`
	Description  *string            `bson:"description" json:"description"`
	Price        *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Category     *string            `bson:"category" json:"category" validate:"required"`
	Is_available *bool              `bson:"isAvailable" json:"isAvailable"`
	Created_at   time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
