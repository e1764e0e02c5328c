package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController exposes the admin-only user management operations. The
// admin role gate lives in the router; target invariants live in the service.
type UserController struct {
	AdminService *service.UserAdminService
}

func NewUserController(adminService *service.UserAdminService) *UserController {
	return &UserController{AdminService: adminService}
}

func (c *UserController) List(ctx *gin.Context) {
	users, err := c.AdminService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Add creates an account without logging it in.
func (c *UserController) Add(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AdminService.AddUser(req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (c *UserController) UpdateRole(ctx *gin.Context) {
	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	err := c.AdminService.UpdateRole(claims.UserID, ctx.Param("id"), model.UserRole(req.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *UserController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.AdminService.DeleteUser(claims.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
