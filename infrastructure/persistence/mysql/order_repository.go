package mysql

import (
	"context"
	"errors"
	"time"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/order"
	"shop/domain/shared"
	"shop/infrastructure/persistence"
	"shop/infrastructure/persistence/mysql/po"
	"shop/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderRepository - MySQL/GORM implementation of the order repository and
// its loading strategies.
//
// Writes never go through GORM association cascades: order, delivery and
// lines are persisted explicitly so the aggregate boundary stays visible.
// Reads pick one of the loader methods; each makes a different trade between
// round trips, transfer volume and pageability.
type OrderRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewOrderRepository creates the order repository. batchSize bounds the
// IN-clause fan-out of the batch prefetch loader.
func NewOrderRepository(db *gorm.DB, batchSize int) *OrderRepository {
	if batchSize < 1 {
		batchSize = 100
	}
	return &OrderRepository{db: db, batchSize: batchSize}
}

// getDB returns the transaction from context if available, otherwise the
// default session.
func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save persists the aggregate as a unit: the order row, its delivery row and
// its line rows. When called inside a unit of work it joins that transaction;
// standalone calls get their own.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	orderPO, deliveryPO, itemPOs := po.FromOrderDomain(o)

	if tx := persistence.TxFromContext(ctx); tx != nil {
		return r.saveWithTx(tx, o.ID(), orderPO, deliveryPO, itemPOs)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.saveWithTx(tx, o.ID(), orderPO, deliveryPO, itemPOs)
	})
}

func (r *OrderRepository) saveWithTx(tx *gorm.DB, orderID string, orderPO *po.OrderPO, deliveryPO *po.DeliveryPO, itemPOs []po.OrderItemPO) error {
	if err := tx.Save(orderPO).Error; err != nil {
		return err
	}
	if err := tx.Save(deliveryPO).Error; err != nil {
		return err
	}

	// Lines are replaced wholesale: delete then insert.
	if err := tx.Where("order_id = ?", orderID).Delete(&po.OrderItemPO{}).Error; err != nil {
		return err
	}
	if len(itemPOs) > 0 {
		if err := tx.Create(&itemPOs).Error; err != nil {
			return err
		}
	}

	return nil
}

// FindByID loads one full aggregate in two round trips: the order with its
// to-one joins, then the lines joined with their item rows so cancellation
// can restore stock.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	result := db.Model(&po.OrderPO{}).
		InnerJoins("Member").
		InnerJoins("Delivery").
		First(&orderPO, "orders.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, result.Error
	}

	itemsByOrder, err := r.loadItems(db, []string{id})
	if err != nil {
		return nil, err
	}

	return orderPO.ToDomain(itemsByOrder[id]), nil
}

// Search loads orders matching the filter, inner-joined to member so the
// name predicate can apply, capped at order.MaxSearchResults. Absent filter
// parts contribute no predicate at all; an empty filter returns everything
// up to the cap. Lines are not loaded.
func (r *OrderRepository) Search(ctx context.Context, filter order.SearchFilter) ([]*order.Order, error) {
	q := r.getDB(ctx).Model(&po.OrderPO{}).
		InnerJoins("Member").
		InnerJoins("Delivery")

	if filter.Status != nil {
		q = q.Where("orders.status = ?", string(*filter.Status))
	}
	if filter.MemberName != "" {
		// BINARY forces case-sensitive containment regardless of the
		// column collation.
		q = q.Where("BINARY `Member`.`name` LIKE ?", "%"+filter.MemberName+"%")
	}

	var rows []po.OrderPO
	if err := q.Order("orders.order_date DESC").
		Limit(order.MaxSearchResults).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainOrders(rows), nil
}

// FindAllWithMemberDelivery is the eager to-one loader: one query joining
// orders with members and deliveries. To-one joins cannot duplicate order
// rows, so the row count equals the order count and offset/limit is exact at
// the database level.
func (r *OrderRepository) FindAllWithMemberDelivery(ctx context.Context, page order.Page) ([]*order.Order, error) {
	rows, err := r.findOrderPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// findOrderPage runs the to-one fetch-join query with exact pagination.
func (r *OrderRepository) findOrderPage(ctx context.Context, page order.Page) ([]po.OrderPO, error) {
	page = page.Normalize()

	var rows []po.OrderPO
	err := r.getDB(ctx).Model(&po.OrderPO{}).
		InnerJoins("Member").
		InnerJoins("Delivery").
		Order("orders.order_date DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// orderGraphRow is one row of the fully joined graph query: order, member,
// delivery, line and item columns side by side, one row per line.
type orderGraphRow struct {
	OrderID       string    `gorm:"column:order_id"`
	MemberID      string    `gorm:"column:member_id"`
	MemberName    string    `gorm:"column:member_name"`
	MemberCity    string    `gorm:"column:member_city"`
	MemberStreet  string    `gorm:"column:member_street"`
	MemberZipcode string    `gorm:"column:member_zipcode"`
	OrderDate     time.Time `gorm:"column:order_date"`
	Status        string    `gorm:"column:status"`

	DeliveryID      string `gorm:"column:delivery_id"`
	DeliveryCity    string `gorm:"column:delivery_city"`
	DeliveryStreet  string `gorm:"column:delivery_street"`
	DeliveryZipcode string `gorm:"column:delivery_zipcode"`
	DeliveryStatus  string `gorm:"column:delivery_status"`

	OrderItemID string `gorm:"column:order_item_id"`
	ItemID      string `gorm:"column:item_id"`
	OrderPrice  int64  `gorm:"column:order_price"`
	Count       int    `gorm:"column:count"`

	ItemKind   string `gorm:"column:item_kind"`
	ItemName   string `gorm:"column:item_name"`
	ItemPrice  int64  `gorm:"column:item_price"`
	ItemStock  int    `gorm:"column:item_stock"`
	ItemAuthor string `gorm:"column:item_author"`
	ItemISBN   string `gorm:"column:item_isbn"`
}

const orderGraphSelect = "orders.id AS order_id, orders.member_id AS member_id, orders.order_date AS order_date, orders.status AS status, " +
	"members.name AS member_name, members.city AS member_city, members.street AS member_street, members.zipcode AS member_zipcode, " +
	"deliveries.id AS delivery_id, deliveries.city AS delivery_city, deliveries.street AS delivery_street, deliveries.zipcode AS delivery_zipcode, deliveries.status AS delivery_status, " +
	"order_items.id AS order_item_id, order_items.item_id AS item_id, order_items.order_price AS order_price, order_items.count AS count, " +
	"items.kind AS item_kind, items.name AS item_name, items.price AS item_price, items.stock_quantity AS item_stock, items.author AS item_author, items.isbn AS item_isbn"

// FindAllWithItems is the collection fetch loader: the whole graph in ONE
// query. The to-many join multiplies order rows by their line count, so
// duplicates are collapsed after materialization, keeping one logical order
// per identity with all its lines.
//
// The page is NOT honored by the store. Every matching row is fetched and the
// window is cut in application memory, which this method logs loudly. Use
// only for small, bounded result sets. Only one to-many association may ever
// join this way; a second independent collection would cross-multiply
// unrelated lines.
func (r *OrderRepository) FindAllWithItems(ctx context.Context, page order.Page) ([]*order.Order, error) {
	var rows []orderGraphRow
	err := r.getDB(ctx).Table("orders").
		Select(orderGraphSelect).
		Joins("INNER JOIN members ON members.id = orders.member_id").
		Joins("INNER JOIN deliveries ON deliveries.order_id = orders.id").
		Joins("INNER JOIN order_items ON order_items.order_id = orders.id").
		Joins("INNER JOIN items ON items.id = order_items.item_id").
		Order("orders.order_date DESC, orders.id, order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := collapseGraphRows(rows)

	page = page.Normalize()
	if page.Offset > 0 || page.Limit < len(orders) {
		logger.Warn("collection fetch: offset/limit applied in memory, full result set was fetched",
			zap.Int("fetched_orders", len(orders)),
			zap.Int("fetched_rows", len(rows)),
			zap.Int("offset", page.Offset),
			zap.Int("limit", page.Limit))
	}

	return sliceOrders(orders, page), nil
}

// collapseGraphRows rebuilds one aggregate per distinct order id from the
// multiplied join rows, preserving first-appearance order. Item entities are
// deduplicated by id across all rows.
func collapseGraphRows(rows []orderGraphRow) []*order.Order {
	index := make(map[string]int, len(rows))
	built := make([]order.ReconstructionDTO, 0)
	itemsByID := make(map[string]*item.Item)

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			i = len(built)
			index[row.OrderID] = i
			built = append(built, order.ReconstructionDTO{
				ID:       row.OrderID,
				MemberID: row.MemberID,
				Member: member.RebuildFromDTO(member.ReconstructionDTO{
					ID:      row.MemberID,
					Name:    row.MemberName,
					Address: shared.NewAddress(row.MemberCity, row.MemberStreet, row.MemberZipcode),
				}),
				Delivery: order.RebuildDeliveryFromDTO(order.DeliveryReconstructionDTO{
					ID:      row.DeliveryID,
					Address: shared.NewAddress(row.DeliveryCity, row.DeliveryStreet, row.DeliveryZipcode),
					Status:  order.DeliveryStatus(row.DeliveryStatus),
				}),
				OrderDate: row.OrderDate,
				Status:    order.Status(row.Status),
			})
		}
		built[i].Items = append(built[i].Items, rowToOrderItem(row, itemsByID))
	}

	orders := make([]*order.Order, len(built))
	for i := range built {
		orders[i] = order.RebuildFromDTO(built[i])
	}
	return orders
}

func rowToOrderItem(row orderGraphRow, itemsByID map[string]*item.Item) order.OrderItem {
	it, ok := itemsByID[row.ItemID]
	if !ok {
		it = item.RebuildFromDTO(item.ReconstructionDTO{
			ID:            row.ItemID,
			Kind:          item.Kind(row.ItemKind),
			Name:          row.ItemName,
			Price:         row.ItemPrice,
			StockQuantity: row.ItemStock,
			Author:        row.ItemAuthor,
			ISBN:          row.ItemISBN,
		})
		itemsByID[row.ItemID] = it
	}

	return order.RebuildOrderItemFromDTO(order.ItemReconstructionDTO{
		ID:         row.OrderItemID,
		ItemID:     row.ItemID,
		Item:       it,
		OrderPrice: row.OrderPrice,
		Count:      row.Count,
	})
}

func sliceOrders(orders []*order.Order, page order.Page) []*order.Order {
	if page.Offset >= len(orders) {
		return []*order.Order{}
	}
	end := page.Offset + page.Limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[page.Offset:end]
}

// FindPageWithItems is the batch prefetch loader. Phase one pages orders
// with their to-one joins at the database level - exact and cheap because no
// to-many join participates. Phase two prefetches the whole page's lines via
// chunked "order_id IN (...)" queries and reconciles them onto their orders
// through a map keyed by order id. Round trips: 1 + ceil(orderCount/batchSize)
// instead of 1 + orderCount.
func (r *OrderRepository) FindPageWithItems(ctx context.Context, page order.Page) ([]*order.Order, error) {
	rows, err := r.findOrderPage(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	orderIDs := make([]string, len(rows))
	for i, row := range rows {
		orderIDs[i] = row.ID
	}

	itemsByOrder, err := r.loadItems(r.getDB(ctx), orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(rows))
	for i := range rows {
		orders[i] = rows[i].ToDomain(itemsByOrder[rows[i].ID])
	}
	return orders, nil
}

// orderItemRow is one line row joined with its item columns.
type orderItemRow struct {
	ID         string `gorm:"column:id"`
	OrderID    string `gorm:"column:order_id"`
	ItemID     string `gorm:"column:item_id"`
	OrderPrice int64  `gorm:"column:order_price"`
	Count      int    `gorm:"column:count"`

	ItemKind   string `gorm:"column:item_kind"`
	ItemName   string `gorm:"column:item_name"`
	ItemPrice  int64  `gorm:"column:item_price"`
	ItemStock  int    `gorm:"column:item_stock"`
	ItemAuthor string `gorm:"column:item_author"`
	ItemISBN   string `gorm:"column:item_isbn"`
}

// loadItems fetches the lines (with their item rows) for the given orders,
// one IN-clause query per chunk of at most batchSize ids, and groups them by
// order id. Chunks are independent of each other; results reconcile by id,
// not by arrival order. Lines referencing the same item share ONE rebuilt
// item entity, so stock mutations from any line act on one counter.
func (r *OrderRepository) loadItems(db *gorm.DB, orderIDs []string) (map[string][]order.OrderItem, error) {
	itemsByOrder := make(map[string][]order.OrderItem, len(orderIDs))
	itemsByID := make(map[string]*item.Item)

	for _, chunk := range chunkIDs(orderIDs, r.batchSize) {
		var rows []orderItemRow
		err := db.Table("order_items").
			Select("order_items.id AS id, order_items.order_id AS order_id, order_items.item_id AS item_id, "+
				"order_items.order_price AS order_price, order_items.count AS count, "+
				"items.kind AS item_kind, items.name AS item_name, items.price AS item_price, "+
				"items.stock_quantity AS item_stock, items.author AS item_author, items.isbn AS item_isbn").
			Joins("INNER JOIN items ON items.id = order_items.item_id").
			Where("order_items.order_id IN ?", chunk).
			Order("order_items.id").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			it, ok := itemsByID[row.ItemID]
			if !ok {
				it = item.RebuildFromDTO(item.ReconstructionDTO{
					ID:            row.ItemID,
					Kind:          item.Kind(row.ItemKind),
					Name:          row.ItemName,
					Price:         row.ItemPrice,
					StockQuantity: row.ItemStock,
					Author:        row.ItemAuthor,
					ISBN:          row.ItemISBN,
				})
				itemsByID[row.ItemID] = it
			}

			itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], order.RebuildOrderItemFromDTO(order.ItemReconstructionDTO{
				ID:         row.ID,
				ItemID:     row.ItemID,
				Item:       it,
				OrderPrice: row.OrderPrice,
				Count:      row.Count,
			}))
		}
	}

	return itemsByOrder, nil
}

func toDomainOrders(rows []po.OrderPO) []*order.Order {
	orders := make([]*order.Order, len(rows))
	for i := range rows {
		orders[i] = rows[i].ToDomain(nil)
	}
	return orders
}

// chunkIDs splits ids into consecutive chunks of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
