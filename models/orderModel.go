package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is one line of an order: a menu item id (hex object id) and a
// positive quantity.
type OrderItem struct {
	Menu_id  string `bson:"menuId" json:"menuId" validate:"required"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// Order references its table by number and its menu items by id; it owns
// neither. Total is a snapshot of Σ(price × quantity) taken at creation
// time and is never recomputed.
type Order struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Table_number *int               `bson:"tableNumber" json:"tableNumber" validate:"required"`
	Items        []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	Created_at   time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
