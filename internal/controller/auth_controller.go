package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=instructor student"`
	FirstName  string `json:"firstName" binding:"required"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName" binding:"required"`
	Gender     string `json:"gender"`
	AgeRange   string `json:"ageRange"`
	Country    string `json:"country" binding:"required"`
}

func (r *RegisterRequest) toInput() *service.RegisterInput {
	return &service.RegisterInput{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		Role:       model.UserRole(r.Role),
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		Gender:     r.Gender,
		AgeRange:   r.AgeRange,
		Country:    r.Country,
	}
}

// Register creates the account and logs it straight in.
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Register(req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"user": user, "token": token})
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Identifier, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"user": user, "token": token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	user, err := c.AuthService.CurrentUser(claims)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"user": user, "canEdit": user.CanEdit()})
}
