/*
Package order - order API controller.

Each listing endpoint is backed by a different loading strategy; the URL says
which one, so the cost model of every route is explicit:

	GET /orders            dynamic search, capped, no lines
	GET /orders/simple     eager to-one loader, exact pagination
	GET /orders/full       collection fetch loader, in-memory pagination
	GET /orders/page       batch prefetch loader, exact pagination + lines
	GET /orders/summaries  direct projections (read models, no entities)

Binding errors return 400 via response.HandleError; business errors go
through response.HandleAppError which maps error codes onto HTTP statuses.
*/
package order

import (
	"context"
	"net/http"

	"shop/api/response"
	orderapp "shop/application/order"
	"shop/domain/order"
	"shop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller - order controller.
type Controller struct {
	orderService *orderapp.ApplicationService
}

// NewController creates the order controller.
func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{
		orderService: orderService,
	}
}

// RegisterRoutes registers the order routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.PlaceOrder)
		orderGroup.GET("", c.SearchOrders)
		orderGroup.GET("/simple", c.ListOrdersSimple)
		orderGroup.GET("/full", c.ListOrdersFull)
		orderGroup.GET("/page", c.ListOrdersPage)
		orderGroup.GET("/summaries", c.GetOrderSummaries)
		orderGroup.GET("/summaries/each", c.GetOrderSummariesEach)
		orderGroup.GET("/summaries/batched", c.GetOrderSummariesBatched)
		orderGroup.GET("/summaries/flat", c.GetOrderSummariesFlat)
		orderGroup.GET("/:id", c.GetOrder)
		orderGroup.POST("/:id/cancel", c.CancelOrder)
	}
}

// PlaceOrder places an order.
// POST /api/v1/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.PlaceOrder(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, order, "order placed successfully")
}

// GetOrder loads one full order.
// GET /api/v1/orders/:id
func (c *Controller) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	order, err := c.orderService.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, order, "order retrieved successfully")
}

// CancelOrder cancels an order and restores its items' stock.
// POST /api/v1/orders/:id/cancel
func (c *Controller) CancelOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		response.HandleError(ctx, errors.BadRequest("order ID is required"), "order ID is required", http.StatusBadRequest)
		return
	}

	if err := c.orderService.CancelOrder(ctx.Request.Context(), orderID); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, nil, "order cancelled successfully")
}

// SearchOrders runs the dynamic search.
// GET /api/v1/orders?status=ORDER&member_name=kim
func (c *Controller) SearchOrders(ctx *gin.Context) {
	var req orderapp.SearchOrdersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.HandleError(ctx, err, "invalid search parameters", http.StatusBadRequest)
		return
	}

	orders, err := c.orderService.SearchOrders(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// ListOrdersSimple lists orders without line data.
// GET /api/v1/orders/simple?offset=0&limit=100
func (c *Controller) ListOrdersSimple(ctx *gin.Context) {
	c.listOrders(ctx, c.orderService.ListOrdersSimple)
}

// ListOrdersFull lists orders with full line data in one query.
// GET /api/v1/orders/full?offset=0&limit=100
func (c *Controller) ListOrdersFull(ctx *gin.Context) {
	c.listOrders(ctx, c.orderService.ListOrdersFull)
}

// ListOrdersPage lists orders with line data and exact pagination.
// GET /api/v1/orders/page?offset=0&limit=100
func (c *Controller) ListOrdersPage(ctx *gin.Context) {
	c.listOrders(ctx, c.orderService.ListOrdersPage)
}

// listOrders binds the page window and dispatches to the strategy the route
// selected.
func (c *Controller) listOrders(ctx *gin.Context, list func(context.Context, orderapp.PageRequest) ([]*orderapp.OrderResponse, error)) {
	var req orderapp.PageRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.HandleError(ctx, err, "invalid pagination parameters", http.StatusBadRequest)
		return
	}

	orders, err := list(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// GetOrderSummaries projects order-level data only.
// GET /api/v1/orders/summaries
func (c *Controller) GetOrderSummaries(ctx *gin.Context) {
	c.listSummaries(ctx, c.orderService.GetOrderSummaries)
}

// GetOrderSummariesEach projects summaries with lines, one query per order.
// GET /api/v1/orders/summaries/each
func (c *Controller) GetOrderSummariesEach(ctx *gin.Context) {
	c.listSummaries(ctx, c.orderService.GetOrderSummariesEach)
}

// GetOrderSummariesBatched projects summaries with one batched line query.
// GET /api/v1/orders/summaries/batched
func (c *Controller) GetOrderSummariesBatched(ctx *gin.Context) {
	c.listSummaries(ctx, c.orderService.GetOrderSummariesBatched)
}

// GetOrderSummariesFlat projects summaries from one fully-joined query.
// GET /api/v1/orders/summaries/flat
func (c *Controller) GetOrderSummariesFlat(ctx *gin.Context) {
	c.listSummaries(ctx, c.orderService.GetOrderSummariesFlat)
}

func (c *Controller) listSummaries(ctx *gin.Context, list func(context.Context) ([]order.OrderSummary, error)) {
	summaries, err := list(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, summaries, "order summaries retrieved successfully")
}
