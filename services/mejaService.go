package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/models"
)

// TableService owns table status transitions. Reserve and Cancel go through
// a single atomic filter-and-update so two callers racing on the same table
// cannot both win; SetStatus is the unconditional setter the order workflow
// uses for its side effects.
type TableService struct {
	tables database.Collection
}

func NewTableService(tables database.Collection) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) Create(ctx context.Context, meja *models.Meja) error {
	var existing models.Meja
	err := s.tables.FindOne(ctx, bson.M{"tableNumber": meja.Table_number}, &existing)
	if err == nil {
		return apperr.Validation(fmt.Sprintf("table %d already exists", *meja.Table_number))
	}
	if !errors.Is(err, database.ErrNotFound) {
		return apperr.Internal(err)
	}

	meja.ID = primitive.NewObjectID()
	meja.Status = models.TableStatusAvailable
	meja.Customer_name = ""
	meja.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	meja.Updated_at = meja.Created_at

	if err := s.tables.InsertOne(ctx, meja); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *TableService) ListAll(ctx context.Context) ([]models.Meja, error) {
	var all []models.Meja
	if err := s.tables.Find(ctx, bson.M{}, nil, &all); err != nil {
		return nil, apperr.Internal(err)
	}
	return all, nil
}

// Available returns the table iff it exists and currently has status
// available; nil otherwise.
func (s *TableService) Available(ctx context.Context, tableNumber int) (*models.Meja, error) {
	var meja models.Meja
	err := s.tables.FindOne(ctx, bson.M{"tableNumber": tableNumber, "status": models.TableStatusAvailable}, &meja)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &meja, nil
}

// Reserve takes the table for a named customer. A table that is absent and
// a table that is already reserved are indistinguishable to the caller;
// both come back as not found.
func (s *TableService) Reserve(ctx context.Context, tableNumber int, customerName string) (*models.Meja, error) {
	if customerName == "" {
		return nil, apperr.Validation("customer name is required")
	}
	var meja models.Meja
	found, err := s.tables.FindOneAndUpdate(ctx,
		bson.M{"tableNumber": tableNumber, "status": models.TableStatusAvailable},
		bson.M{"status": models.TableStatusReserved, "customerName": customerName},
		&meja,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("table is not available")
	}
	return &meja, nil
}

func (s *TableService) Cancel(ctx context.Context, tableNumber int) (*models.Meja, error) {
	updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	var meja models.Meja
	found, err := s.tables.FindOneAndUpdate(ctx,
		bson.M{"tableNumber": tableNumber, "status": models.TableStatusReserved},
		bson.M{"status": models.TableStatusAvailable, "customerName": "", "updatedAt": updatedAt},
		&meja,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Table not found or not currently reserved")
	}
	return &meja, nil
}

// SetStatus flips the table's status without any precondition on its
// current state. An unmatched table number returns (nil, nil); the caller
// decides whether that is fatal.
func (s *TableService) SetStatus(ctx context.Context, tableNumber int, status string) (*models.Meja, error) {
	var meja models.Meja
	found, err := s.tables.FindOneAndUpdate(ctx,
		bson.M{"tableNumber": tableNumber},
		bson.M{"status": status},
		&meja,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, nil
	}
	return &meja, nil
}
