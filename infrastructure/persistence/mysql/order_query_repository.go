package mysql

import (
	"context"
	"time"

	"shop/domain/order"
	"shop/domain/shared"
	"shop/infrastructure/persistence"

	"gorm.io/gorm"
)

// OrderQueryRepository - the read side. Every query here selects straight
// into read-model records with exactly the columns the view needs; no entity
// materialization, no reconstruction DTOs. Single-purpose by design.
type OrderQueryRepository struct {
	db *gorm.DB
}

func NewOrderQueryRepository(db *gorm.DB) *OrderQueryRepository {
	return &OrderQueryRepository{db: db}
}

func (r *OrderQueryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// summaryRow is the scan target for order-level projections; the address
// columns fold into shared.Address during mapping.
type summaryRow struct {
	OrderID    string    `gorm:"column:order_id"`
	MemberName string    `gorm:"column:member_name"`
	OrderDate  time.Time `gorm:"column:order_date"`
	Status     string    `gorm:"column:status"`
	City       string    `gorm:"column:city"`
	Street     string    `gorm:"column:street"`
	Zipcode    string    `gorm:"column:zipcode"`
}

func (row summaryRow) toSummary() order.OrderSummary {
	return order.OrderSummary{
		OrderID:    row.OrderID,
		MemberName: row.MemberName,
		OrderDate:  row.OrderDate,
		Status:     order.Status(row.Status),
		Address:    shared.NewAddress(row.City, row.Street, row.Zipcode),
	}
}

const summarySelect = "orders.id AS order_id, members.name AS member_name, orders.order_date AS order_date, orders.status AS status, " +
	"deliveries.city AS city, deliveries.street AS street, deliveries.zipcode AS zipcode"

// findSummaryRows runs the to-one projection query: one row per order.
func (r *OrderQueryRepository) findSummaryRows(ctx context.Context) ([]order.OrderSummary, error) {
	var rows []summaryRow
	err := r.getDB(ctx).Table("orders").
		Select(summarySelect).
		Joins("INNER JOIN members ON members.id = orders.member_id").
		Joins("INNER JOIN deliveries ON deliveries.order_id = orders.id").
		Order("orders.order_date DESC, orders.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]order.OrderSummary, len(rows))
	for i, row := range rows {
		summaries[i] = row.toSummary()
	}
	return summaries, nil
}

// FindOrderSummaries projects orders with their to-one data only: one row
// per order, one round trip, no line data.
func (r *OrderQueryRepository) FindOrderSummaries(ctx context.Context) ([]order.OrderSummary, error) {
	return r.findSummaryRows(ctx)
}

// FindOrderLines projects the lines of one order. One round trip.
func (r *OrderQueryRepository) FindOrderLines(ctx context.Context, orderID string) ([]order.OrderItemLine, error) {
	return r.findLines(ctx, "order_items.order_id = ?", orderID)
}

func (r *OrderQueryRepository) findLines(ctx context.Context, cond string, args ...interface{}) ([]order.OrderItemLine, error) {
	var lines []order.OrderItemLine
	err := r.getDB(ctx).Table("order_items").
		Select("order_items.order_id AS order_id, items.name AS item_name, order_items.order_price AS order_price, order_items.count AS count").
		Joins("INNER JOIN items ON items.id = order_items.item_id").
		Where(cond, args...).
		Order("order_items.order_id, order_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// FindOrderSummariesEach fills each summary's lines with one query per
// order: 1 + N round trips. The explicit baseline the batched variant is
// measured against.
func (r *OrderQueryRepository) FindOrderSummariesEach(ctx context.Context) ([]order.OrderSummary, error) {
	summaries, err := r.findSummaryRows(ctx)
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		lines, err := r.FindOrderLines(ctx, summaries[i].OrderID)
		if err != nil {
			return nil, err
		}
		summaries[i].Items = lines
	}
	return summaries, nil
}

// FindOrderSummariesBatched fills all lines with ONE IN-clause query over the
// collected order ids: 1 + 1 round trips, reconciled onto the summaries
// through a map keyed by order id.
func (r *OrderQueryRepository) FindOrderSummariesBatched(ctx context.Context) ([]order.OrderSummary, error) {
	summaries, err := r.findSummaryRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return summaries, nil
	}

	orderIDs := make([]string, len(summaries))
	for i := range summaries {
		orderIDs[i] = summaries[i].OrderID
	}

	lines, err := r.findLines(ctx, "order_items.order_id IN ?", orderIDs)
	if err != nil {
		return nil, err
	}

	linesByOrder := make(map[string][]order.OrderItemLine, len(summaries))
	for _, line := range lines {
		linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
	}

	for i := range summaries {
		summaries[i].Items = linesByOrder[summaries[i].OrderID]
	}
	return summaries, nil
}

// flatRow is the scan target of the fully denormalized single-query strategy.
type flatRow struct {
	OrderID    string    `gorm:"column:order_id"`
	MemberName string    `gorm:"column:member_name"`
	OrderDate  time.Time `gorm:"column:order_date"`
	Status     string    `gorm:"column:status"`
	City       string    `gorm:"column:city"`
	Street     string    `gorm:"column:street"`
	Zipcode    string    `gorm:"column:zipcode"`
	ItemName   string    `gorm:"column:item_name"`
	OrderPrice int64     `gorm:"column:order_price"`
	Count      int       `gorm:"column:count"`
}

// FindOrderSummariesFlat runs ONE query joining the whole graph - one row per
// order line - and regroups the flat rows into nested summaries in memory.
// Exactly one round trip; pagination by order is impossible because the
// database-level row count is the line count, not the order count.
func (r *OrderQueryRepository) FindOrderSummariesFlat(ctx context.Context) ([]order.OrderSummary, error) {
	var rows []flatRow
	err := r.getDB(ctx).Table("orders").
		Select(summarySelect+", items.name AS item_name, order_items.order_price AS order_price, order_items.count AS count").
		Joins("INNER JOIN members ON members.id = orders.member_id").
		Joins("INNER JOIN deliveries ON deliveries.order_id = orders.id").
		Joins("INNER JOIN order_items ON order_items.order_id = orders.id").
		Joins("INNER JOIN items ON items.id = order_items.item_id").
		Order("orders.order_date DESC, orders.id, order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	flat := make([]order.FlatOrderRow, len(rows))
	for i, row := range rows {
		flat[i] = order.FlatOrderRow{
			OrderID:    row.OrderID,
			MemberName: row.MemberName,
			OrderDate:  row.OrderDate,
			Status:     order.Status(row.Status),
			Address:    shared.NewAddress(row.City, row.Street, row.Zipcode),
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		}
	}

	return order.GroupFlatRows(flat), nil
}

// Compile-time interface implementation check
var _ order.QueryService = (*OrderQueryRepository)(nil)
