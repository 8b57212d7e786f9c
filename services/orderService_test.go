package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/models"
)

type eventRecorder struct {
	events []string
}

func (r *eventRecorder) Broadcast(event string, payload interface{}) {
	r.events = append(r.events, event)
}

type orderFixture struct {
	orders   *OrderService
	tables   *TableService
	orderCol *database.Memory
	menuCol  *database.Memory
	mejaCol  *database.Memory
	recorder *eventRecorder
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orderCol: database.NewMemory(),
		menuCol:  database.NewMemory(),
		mejaCol:  database.NewMemory(),
		recorder: &eventRecorder{},
	}
	f.tables = NewTableService(f.mejaCol)
	f.orders = NewOrderService(f.orderCol, f.menuCol, f.tables, f.recorder)
	return f
}

func (f *orderFixture) seedMenu(t *testing.T, name string, price float64) models.Menu {
	t.Helper()
	category := "main"
	available := true
	menu := models.Menu{
		ID:           primitive.NewObjectID(),
		Name:         &name,
		Price:        &price,
		Category:     &category,
		Is_available: &available,
	}
	require.NoError(t, f.menuCol.InsertOne(context.Background(), &menu))
	return menu
}

func (f *orderFixture) seedTable(t *testing.T, tableNumber int) {
	t.Helper()
	require.NoError(t, f.tables.Create(context.Background(), newMeja(tableNumber, 4)))
}

func (f *orderFixture) tableStatus(t *testing.T, tableNumber int) string {
	t.Helper()
	var meja models.Meja
	require.NoError(t, f.mejaCol.FindOne(context.Background(), bson.M{"tableNumber": tableNumber}, &meja))
	return meja.Status
}

func TestCreateOrderTotal(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)
	nasi := f.seedMenu(t, "Nasi Goreng", 12.5)
	teh := f.seedMenu(t, "Teh Manis", 3)

	order, err := f.orders.Create(ctx, 5, []models.OrderItem{
		{Menu_id: nasi.ID.Hex(), Quantity: 2},
		{Menu_id: teh.ID.Hex(), Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 12.5*2+3*3, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 5, *order.Table_number)
	assert.Equal(t, 1, f.orderCol.Count(bson.M{}))
	assert.Equal(t, models.TableStatusReserved, f.tableStatus(t, 5))
	assert.Equal(t, []string{"orderCreated"}, f.recorder.events)

	// the table is held by the order, not by a named customer
	var meja models.Meja
	require.NoError(t, f.mejaCol.FindOne(ctx, bson.M{"tableNumber": 5}, &meja))
	assert.Empty(t, meja.Customer_name)
}

func TestCreateOrderTableUnavailable(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)
	nasi := f.seedMenu(t, "Nasi Goreng", 12.5)
	_, err := f.tables.Reserve(ctx, 5, "Budi")
	require.NoError(t, err)

	_, err = f.orders.Create(ctx, 5, []models.OrderItem{{Menu_id: nasi.ID.Hex(), Quantity: 1}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "table not available or already reserved", apperr.Message(err))
	assert.Equal(t, 0, f.orderCol.Count(bson.M{}))
}

func TestCreateOrderUnknownMenuItem(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)

	_, err := f.orders.Create(ctx, 5, []models.OrderItem{
		{Menu_id: primitive.NewObjectID().Hex(), Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, f.orderCol.Count(bson.M{}))
	assert.Equal(t, models.TableStatusAvailable, f.tableStatus(t, 5))
}

func TestCreateOrderMalformedMenuID(t *testing.T) {
	f := newOrderFixture(t)
	f.seedTable(t, 5)

	_, err := f.orders.Create(context.Background(), 5, []models.OrderItem{
		{Menu_id: "not-an-object-id", Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

// An order repeating a menu id is rejected: the fetched set holds each
// matching item once, so it always comes up shorter than the request.
func TestCreateOrderDuplicateMenuID(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)
	nasi := f.seedMenu(t, "Nasi Goreng", 12.5)

	_, err := f.orders.Create(ctx, 5, []models.OrderItem{
		{Menu_id: nasi.ID.Hex(), Quantity: 1},
		{Menu_id: nasi.ID.Hex(), Quantity: 2},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, f.orderCol.Count(bson.M{}))
}

func TestUpdateStatusCompletedReleasesTable(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)
	nasi := f.seedMenu(t, "Nasi Goreng", 12.5)

	order, err := f.orders.Create(ctx, 5, []models.OrderItem{{Menu_id: nasi.ID.Hex(), Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusReserved, f.tableStatus(t, 5))

	updated, err := f.orders.UpdateStatus(ctx, order.ID.Hex(), models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, models.TableStatusAvailable, f.tableStatus(t, 5))
	assert.Equal(t, []string{"orderCreated", "orderStatus"}, f.recorder.events)
}

func TestUpdateStatusCancelledLeavesTable(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.seedTable(t, 5)
	nasi := f.seedMenu(t, "Nasi Goreng", 12.5)

	order, err := f.orders.Create(ctx, 5, []models.OrderItem{{Menu_id: nasi.ID.Hex(), Quantity: 1}})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, order.ID.Hex(), models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.TableStatusReserved, f.tableStatus(t, 5))
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.orders.UpdateStatus(ctx, primitive.NewObjectID().Hex(), models.OrderStatusCompleted)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = f.orders.UpdateStatus(ctx, "garbage", models.OrderStatusCompleted)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateStatusEmpty(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestListNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	tableNumber := 5
	older := models.Order{
		ID:           primitive.NewObjectID(),
		Table_number: &tableNumber,
		Items:        []models.OrderItem{{Menu_id: primitive.NewObjectID().Hex(), Quantity: 1}},
		Status:       models.OrderStatusPending,
		Created_at:   time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.ID = primitive.NewObjectID()
	newer.Created_at = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.orderCol.InsertOne(ctx, &older))
	require.NoError(t, f.orderCol.InsertOne(ctx, &newer))

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}
