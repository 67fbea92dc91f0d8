package order

import (
	"context"
	"testing"

	itemapp "shop/application/item"
	memberapp "shop/application/member"
	"shop/domain/item"
	"shop/domain/order"
	"shop/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	orders  *ApplicationService
	members *memberapp.ApplicationService
	items   *itemapp.ApplicationService

	itemRepo *memory.ItemRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	memberRepo := memory.NewMemberRepository(store)
	itemRepo := memory.NewItemRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	queries := memory.NewOrderQueryRepository(store)
	uow := memory.NewUnitOfWork()

	return &testEnv{
		orders:   NewApplicationService(orderRepo, memberRepo, itemRepo, queries, uow),
		members:  memberapp.NewApplicationService(memberRepo),
		items:    itemapp.NewApplicationService(itemRepo),
		itemRepo: itemRepo,
	}
}

func (e *testEnv) registerMember(t *testing.T, name string) string {
	t.Helper()
	m, err := e.members.RegisterMember(context.Background(), memberapp.RegisterMemberRequest{
		Name:    name,
		City:    "Seoul",
		Street:  "Teheran-ro 1",
		Zipcode: "06000",
	})
	require.NoError(t, err)
	return m.ID
}

func (e *testEnv) createItem(t *testing.T, name string, price int64, stock int) string {
	t.Helper()
	it, err := e.items.CreateItem(context.Background(), itemapp.CreateItemRequest{
		Kind:          "BOOK",
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		Author:        "kim",
	})
	require.NoError(t, err)
	return it.ID
}

func (e *testEnv) stockOf(t *testing.T, itemID string) int {
	t.Helper()
	it, err := e.itemRepo.FindByID(context.Background(), itemID)
	require.NoError(t, err)
	return it.StockQuantity()
}

func (e *testEnv) placeOrder(t *testing.T, memberID string, lines ...OrderLineRequest) *OrderResponse {
	t.Helper()
	resp, err := e.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		MemberID: memberID,
		Items:    lines,
	})
	require.NoError(t, err)
	return resp
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 10)

	resp := env.placeOrder(t, memberID, OrderLineRequest{ItemID: itemID, Count: 2})

	assert.Equal(t, "ORDER", resp.Status)
	assert.Equal(t, "READY", resp.DeliveryStatus)
	assert.Equal(t, int64(20000), resp.TotalPrice)
	assert.Equal(t, "kim", resp.MemberName)
	assert.Equal(t, "Seoul", resp.Address.City)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(10000), resp.Items[0].OrderPrice)
	assert.Equal(t, 2, resp.Items[0].Count)

	assert.Equal(t, 8, env.stockOf(t, itemID))
}

func TestPlaceOrderNotEnoughStock(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 1)

	_, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		MemberID: memberID,
		Items:    []OrderLineRequest{{ItemID: itemID, Count: 2}},
	})
	require.ErrorIs(t, err, item.ErrNotEnoughStock)

	// Nothing was persisted.
	assert.Equal(t, 1, env.stockOf(t, itemID))
	summaries, err := env.orders.GetOrderSummaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestPlaceOrderUnknownMember(t *testing.T) {
	env := newTestEnv(t)
	itemID := env.createItem(t, "JPA Book", 10000, 10)

	_, err := env.orders.PlaceOrder(context.Background(), PlaceOrderRequest{
		MemberID: "missing",
		Items:    []OrderLineRequest{{ItemID: itemID, Count: 1}},
	})
	require.Error(t, err)
}

func TestCancelOrder(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 10)

	resp := env.placeOrder(t, memberID, OrderLineRequest{ItemID: itemID, Count: 2})
	require.Equal(t, 8, env.stockOf(t, itemID))

	require.NoError(t, env.orders.CancelOrder(context.Background(), resp.ID))

	cancelled, err := env.orders.GetOrder(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCEL", cancelled.Status)
	assert.Equal(t, 10, env.stockOf(t, itemID))
}

func TestCancelOrderTwice(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 10)

	resp := env.placeOrder(t, memberID, OrderLineRequest{ItemID: itemID, Count: 2})
	require.NoError(t, env.orders.CancelOrder(context.Background(), resp.ID))

	err := env.orders.CancelOrder(context.Background(), resp.ID)
	require.ErrorIs(t, err, order.ErrInvalidOrderState)
	// Stock must not be restored twice.
	assert.Equal(t, 10, env.stockOf(t, itemID))
}

func TestCancelOrderDuplicateItemLines(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 10)

	// Two lines of the same item must deduct from, and restore to, one
	// stock counter.
	resp := env.placeOrder(t, memberID,
		OrderLineRequest{ItemID: itemID, Count: 2},
		OrderLineRequest{ItemID: itemID, Count: 3})
	require.Equal(t, 5, env.stockOf(t, itemID))
	assert.Equal(t, int64(50000), resp.TotalPrice)

	require.NoError(t, env.orders.CancelOrder(context.Background(), resp.ID))
	assert.Equal(t, 10, env.stockOf(t, itemID))
}

func TestCancelUnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	err := env.orders.CancelOrder(context.Background(), "missing")
	require.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestSearchOrders(t *testing.T) {
	env := newTestEnv(t)
	kimID := env.registerMember(t, "kim")
	leeID := env.registerMember(t, "lee")
	itemID := env.createItem(t, "JPA Book", 10000, 100)

	first := env.placeOrder(t, kimID, OrderLineRequest{ItemID: itemID, Count: 1})
	env.placeOrder(t, leeID, OrderLineRequest{ItemID: itemID, Count: 1})
	require.NoError(t, env.orders.CancelOrder(context.Background(), first.ID))

	// Status filter.
	cancelled, err := env.orders.SearchOrders(context.Background(), SearchOrdersRequest{Status: "CANCEL"})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	// Member name containment, case-sensitive.
	byName, err := env.orders.SearchOrders(context.Background(), SearchOrdersRequest{MemberName: "le"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "lee", byName[0].MemberName)

	upper, err := env.orders.SearchOrders(context.Background(), SearchOrdersRequest{MemberName: "LEE"})
	require.NoError(t, err)
	assert.Empty(t, upper)

	// Empty filter returns everything.
	all, err := env.orders.SearchOrders(context.Background(), SearchOrdersRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Search never loads lines.
	for _, o := range all {
		assert.Empty(t, o.Items)
	}
}

func TestLoaderShapes(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	bookID := env.createItem(t, "JPA Book", 10000, 100)
	penID := env.createItem(t, "Pen", 500, 100)

	env.placeOrder(t, memberID,
		OrderLineRequest{ItemID: bookID, Count: 2},
		OrderLineRequest{ItemID: penID, Count: 4})
	env.placeOrder(t, memberID, OrderLineRequest{ItemID: bookID, Count: 1})

	page := PageRequest{Offset: 0, Limit: 10}

	simple, err := env.orders.ListOrdersSimple(context.Background(), page)
	require.NoError(t, err)
	full, err := env.orders.ListOrdersFull(context.Background(), page)
	require.NoError(t, err)
	batched, err := env.orders.ListOrdersPage(context.Background(), page)
	require.NoError(t, err)

	require.Len(t, simple, 2)
	require.Len(t, full, 2)
	require.Len(t, batched, 2)

	for i := range simple {
		// Every strategy returns the same orders in the same sequence.
		assert.Equal(t, full[i].ID, simple[i].ID)
		assert.Equal(t, batched[i].ID, simple[i].ID)
		assert.Equal(t, full[i].TotalPrice, batched[i].TotalPrice)

		// The to-one loader leaves lines out; the others carry them.
		assert.Empty(t, simple[i].Items)
		assert.NotEmpty(t, full[i].Items)
		assert.Equal(t, full[i].Items, batched[i].Items)
	}
}

func TestListOrdersPagination(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	itemID := env.createItem(t, "JPA Book", 10000, 100)

	for i := 0; i < 5; i++ {
		env.placeOrder(t, memberID, OrderLineRequest{ItemID: itemID, Count: 1})
	}

	window, err := env.orders.ListOrdersSimple(context.Background(), PageRequest{Offset: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	// The collection fetch loader pages in memory but must produce the same
	// window as the database-paged strategies.
	fullWindow, err := env.orders.ListOrdersFull(context.Background(), PageRequest{Offset: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, fullWindow, 2)
	assert.Equal(t, window[0].ID, fullWindow[0].ID)
	assert.Equal(t, window[1].ID, fullWindow[1].ID)

	// Past-the-end offsets return empty, not an error.
	empty, err := env.orders.ListOrdersFull(context.Background(), PageRequest{Offset: 100, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSummaryVariantsAgree(t *testing.T) {
	env := newTestEnv(t)
	kimID := env.registerMember(t, "kim")
	leeID := env.registerMember(t, "lee")
	bookID := env.createItem(t, "JPA Book", 10000, 100)
	penID := env.createItem(t, "Pen", 500, 100)

	env.placeOrder(t, kimID,
		OrderLineRequest{ItemID: bookID, Count: 2},
		OrderLineRequest{ItemID: penID, Count: 1})
	env.placeOrder(t, leeID, OrderLineRequest{ItemID: penID, Count: 3})

	ctx := context.Background()

	each, err := env.orders.GetOrderSummariesEach(ctx)
	require.NoError(t, err)
	batched, err := env.orders.GetOrderSummariesBatched(ctx)
	require.NoError(t, err)
	flat, err := env.orders.GetOrderSummariesFlat(ctx)
	require.NoError(t, err)

	// All line-filling strategies agree on the final shape.
	assert.Equal(t, each, batched)
	assert.Equal(t, each, flat)

	// The to-one projection carries no lines but the same order-level data.
	plain, err := env.orders.GetOrderSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, plain, len(each))
	for i := range plain {
		assert.Equal(t, each[i].OrderID, plain[i].OrderID)
		assert.Equal(t, each[i].MemberName, plain[i].MemberName)
		assert.Empty(t, plain[i].Items)
	}
}

func TestGetOrderSummariesLines(t *testing.T) {
	env := newTestEnv(t)
	memberID := env.registerMember(t, "kim")
	bookID := env.createItem(t, "JPA Book", 10000, 100)

	placed := env.placeOrder(t, memberID, OrderLineRequest{ItemID: bookID, Count: 2})

	lines, err := env.orders.queries.FindOrderLines(context.Background(), placed.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "JPA Book", lines[0].ItemName)
	assert.Equal(t, int64(10000), lines[0].OrderPrice)
	assert.Equal(t, 2, lines[0].Count)
}
