// Package member - member API controller.
package member

import (
	"net/http"

	"shop/api/response"
	memberapp "shop/application/member"
	"shop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller - member controller.
type Controller struct {
	memberService *memberapp.ApplicationService
}

// NewController creates the member controller.
func NewController(memberService *memberapp.ApplicationService) *Controller {
	return &Controller{
		memberService: memberService,
	}
}

// RegisterRoutes registers the member routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	memberGroup := router.Group("/members")
	{
		memberGroup.POST("", c.RegisterMember)
		memberGroup.GET("", c.ListMembers)
		memberGroup.GET("/:id", c.GetMember)
	}
}

// RegisterMember registers a new member.
// POST /api/v1/members
func (c *Controller) RegisterMember(ctx *gin.Context) {
	var req memberapp.RegisterMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	member, err := c.memberService.RegisterMember(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, member, "member registered successfully")
}

// GetMember loads one member.
// GET /api/v1/members/:id
func (c *Controller) GetMember(ctx *gin.Context) {
	memberID := ctx.Param("id")
	if memberID == "" {
		response.HandleError(ctx, errors.BadRequest("member ID is required"), "member ID is required", http.StatusBadRequest)
		return
	}

	member, err := c.memberService.GetMember(ctx.Request.Context(), memberID)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, member, "member retrieved successfully")
}

// ListMembers lists all members.
// GET /api/v1/members
func (c *Controller) ListMembers(ctx *gin.Context) {
	members, err := c.memberService.ListMembers(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, members, "members retrieved successfully")
}
