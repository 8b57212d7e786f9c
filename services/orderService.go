package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/models"
)

// Notifier receives order events for push delivery to connected clients.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

// OrderService is the order workflow: it cross-checks table and menu state,
// snapshots the total, persists the order and drives the table status side
// effects through the TableService.
type OrderService struct {
	orders   database.Collection
	menus    database.Collection
	tables   *TableService
	notifier Notifier
}

func NewOrderService(orders, menus database.Collection, tables *TableService, notifier Notifier) *OrderService {
	return &OrderService{orders: orders, menus: menus, tables: tables, notifier: notifier}
}

func (s *OrderService) Create(ctx context.Context, tableNumber int, items []models.OrderItem) (*models.Order, error) {
	meja, err := s.tables.Available(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if meja == nil {
		return nil, apperr.Conflict("table not available or already reserved")
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.Menu_id)
		if err != nil {
			return nil, apperr.Validation("one or more menu items invalid")
		}
		ids = append(ids, id)
	}
	var menuItems []models.Menu
	if err := s.menus.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil, &menuItems); err != nil {
		return nil, apperr.Internal(err)
	}
	// The fetched set is keyed by id, so an order repeating a menu id
	// comes up short here and is rejected. Pinned by
	// TestCreateOrderDuplicateMenuID.
	if len(menuItems) != len(items) {
		return nil, apperr.Validation("one or more menu items invalid")
	}

	priceByID := make(map[string]float64, len(menuItems))
	for _, m := range menuItems {
		priceByID[m.ID.Hex()] = *m.Price
	}
	var total float64
	for _, item := range items {
		total += priceByID[item.Menu_id] * float64(item.Quantity)
	}

	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	order := models.Order{
		ID:           primitive.NewObjectID(),
		Table_number: &tableNumber,
		Items:        items,
		Total:        total,
		Status:       models.OrderStatusPending,
		Created_at:   now,
		Updated_at:   now,
	}
	if err := s.orders.InsertOne(ctx, &order); err != nil {
		return nil, apperr.Internal(err)
	}

	// The table is locked for the order without a customer name; only the
	// reserve endpoint records who holds a table. The insert above and
	// this update are not atomic as a pair.
	if _, err := s.tables.SetStatus(ctx, tableNumber, models.TableStatusReserved); err != nil {
		return nil, err
	}

	s.notify("orderCreated", order)
	return &order, nil
}

// List returns every order, most recent first.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	sort := bson.D{{Key: "createdAt", Value: -1}}
	if err := s.orders.Find(ctx, bson.M{}, sort, &orders); err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// UpdateStatus stores any non-empty status string as-is; there is no
// transition table. Completing an order releases its table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if status == "" {
		return nil, apperr.Validation("status is required")
	}
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}

	updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	var order models.Order
	found, err := s.orders.UpdateByID(ctx, oid, bson.M{"status": status, "updatedAt": updatedAt}, &order)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("order not found")
	}

	if status == models.OrderStatusCompleted {
		if _, err := s.tables.SetStatus(ctx, *order.Table_number, models.TableStatusAvailable); err != nil {
			return nil, err
		}
	}

	s.notify("orderStatus", order)
	return &order, nil
}

func (s *OrderService) notify(event string, order models.Order) {
	if s.notifier != nil {
		s.notifier.Broadcast(event, order)
	}
}
