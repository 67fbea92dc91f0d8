/*
Package order Application Layer - order business process orchestration.

The application service owns transactions (through the unit of work) and the
choice of loading strategy per use case; the domain owns the rules. Writes
load full aggregates so invariants can act on complete state; listings pick
whichever loader matches their shape and volume.
*/
package order

import (
	"context"

	"shop/domain/item"
	"shop/domain/member"
	"shop/domain/order"
	"shop/domain/shared"
)

// ApplicationService - order application service.
type ApplicationService struct {
	orders  order.Repository
	members member.Repository
	items   item.Repository
	queries order.QueryService
	uow     shared.UnitOfWork
}

// NewApplicationService creates the order application service.
func NewApplicationService(
	orders order.Repository,
	members member.Repository,
	items item.Repository,
	queries order.QueryService,
	uow shared.UnitOfWork,
) *ApplicationService {
	return &ApplicationService{
		orders:  orders,
		members: members,
		items:   items,
		queries: queries,
		uow:     uow,
	}
}

// ============================================================================
// Commands
// ============================================================================

// PlaceOrder places an order: loads the member and every requested item,
// builds the lines (deducting stock as each line is created), creates the
// aggregate and persists both the order and the touched items in one
// transaction. The order price snapshots the item's current price.
func (s *ApplicationService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	var o *order.Order

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		m, err := s.members.FindByID(ctx, req.MemberID)
		if err != nil {
			return err
		}

		lines := make([]order.OrderItem, 0, len(req.Items))
		// One entity per distinct item: lines naming the same item must
		// deduct from the same stock counter.
		touched := make(map[string]*item.Item, len(req.Items))
		for _, lineReq := range req.Items {
			it, ok := touched[lineReq.ItemID]
			if !ok {
				var err error
				it, err = s.items.FindByID(ctx, lineReq.ItemID)
				if err != nil {
					return err
				}
				touched[lineReq.ItemID] = it
			}

			line, err := order.NewOrderItem(it, it.Price(), lineReq.Count)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		o, err = order.NewOrder(m, lines...)
		if err != nil {
			return err
		}

		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}
		for _, it := range touched {
			if err := s.items.Save(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(o), nil
}

// CancelOrder cancels an order and restores the stock of every line's item,
// all inside one transaction. The full aggregate is loaded first so the
// cancellation rules see the delivery status and the item entities.
func (s *ApplicationService) CancelOrder(ctx context.Context, orderID string) error {
	return s.uow.Execute(ctx, func(ctx context.Context) error {
		o, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := o.Cancel(); err != nil {
			return err
		}

		if err := s.orders.Save(ctx, o); err != nil {
			return err
		}
		for _, line := range o.Items() {
			it, ok := line.Item()
			if !ok {
				return order.ErrItemsNotLoaded
			}
			if err := s.items.Save(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
}

// ============================================================================
// Entity Queries - one method per loading strategy
// ============================================================================

// GetOrder loads one full order.
func (s *ApplicationService) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// SearchOrders runs the dynamic search: optional status, optional member-name
// containment, capped result set, no line data.
func (s *ApplicationService) SearchOrders(ctx context.Context, req SearchOrdersRequest) ([]*OrderResponse, error) {
	filter := order.SearchFilter{MemberName: req.MemberName}
	if req.Status != "" {
		status := order.Status(req.Status)
		filter.Status = &status
	}

	orders, err := s.orders.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListOrdersSimple lists orders through the eager to-one loader: member and
// delivery in one query, exact pagination, no lines.
func (s *ApplicationService) ListOrdersSimple(ctx context.Context, req PageRequest) ([]*OrderResponse, error) {
	orders, err := s.orders.FindAllWithMemberDelivery(ctx, toPage(req))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListOrdersFull lists orders through the collection fetch loader: the whole
// graph in one query, pagination applied in memory. Small result sets only.
func (s *ApplicationService) ListOrdersFull(ctx context.Context, req PageRequest) ([]*OrderResponse, error) {
	orders, err := s.orders.FindAllWithItems(ctx, toPage(req))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListOrdersPage lists orders through the batch prefetch loader: exact
// pagination plus lines in a bounded number of round trips.
func (s *ApplicationService) ListOrdersPage(ctx context.Context, req PageRequest) ([]*OrderResponse, error) {
	orders, err := s.orders.FindPageWithItems(ctx, toPage(req))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ============================================================================
// Read-Model Queries - direct projections, no entities
// ============================================================================

// GetOrderSummaries projects order-level data only.
func (s *ApplicationService) GetOrderSummaries(ctx context.Context) ([]order.OrderSummary, error) {
	return s.queries.FindOrderSummaries(ctx)
}

// GetOrderSummariesEach projects summaries with lines, one query per order.
func (s *ApplicationService) GetOrderSummariesEach(ctx context.Context) ([]order.OrderSummary, error) {
	return s.queries.FindOrderSummariesEach(ctx)
}

// GetOrderSummariesBatched projects summaries with lines via one batched
// line query.
func (s *ApplicationService) GetOrderSummariesBatched(ctx context.Context) ([]order.OrderSummary, error) {
	return s.queries.FindOrderSummariesBatched(ctx)
}

// GetOrderSummariesFlat projects summaries from one fully-joined query,
// regrouped in memory.
func (s *ApplicationService) GetOrderSummariesFlat(ctx context.Context) ([]order.OrderSummary, error) {
	return s.queries.FindOrderSummariesFlat(ctx)
}
