// Package item - item catalog API controller.
package item

import (
	"net/http"

	"shop/api/response"
	itemapp "shop/application/item"
	"shop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller - item controller.
type Controller struct {
	itemService *itemapp.ApplicationService
}

// NewController creates the item controller.
func NewController(itemService *itemapp.ApplicationService) *Controller {
	return &Controller{
		itemService: itemService,
	}
}

// RegisterRoutes registers the item routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	itemGroup := router.Group("/items")
	{
		itemGroup.POST("", c.CreateItem)
		itemGroup.GET("", c.ListItems)
		itemGroup.GET("/:id", c.GetItem)
		itemGroup.PUT("/:id", c.UpdateItem)
	}
}

// CreateItem adds an item to the catalog.
// POST /api/v1/items
func (c *Controller) CreateItem(ctx *gin.Context) {
	var req itemapp.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	item, err := c.itemService.CreateItem(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, item, "item created successfully")
}

// UpdateItem applies the explicit field-level update.
// PUT /api/v1/items/:id
func (c *Controller) UpdateItem(ctx *gin.Context) {
	itemID := ctx.Param("id")
	if itemID == "" {
		response.HandleError(ctx, errors.BadRequest("item ID is required"), "item ID is required", http.StatusBadRequest)
		return
	}

	var req itemapp.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	item, err := c.itemService.UpdateItem(ctx.Request.Context(), itemID, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, item, "item updated successfully")
}

// GetItem loads one item.
// GET /api/v1/items/:id
func (c *Controller) GetItem(ctx *gin.Context) {
	itemID := ctx.Param("id")
	if itemID == "" {
		response.HandleError(ctx, errors.BadRequest("item ID is required"), "item ID is required", http.StatusBadRequest)
		return
	}

	item, err := c.itemService.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, item, "item retrieved successfully")
}

// ListItems lists the catalog.
// GET /api/v1/items
func (c *Controller) ListItems(ctx *gin.Context) {
	items, err := c.itemService.ListItems(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, items, "items retrieved successfully")
}
