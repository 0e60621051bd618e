package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services/container"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/code"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/response"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
	Me()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@afartech.com"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// HandleJWTFunc returns a gin handler dispatching to the authentication
// controller
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// Login verifies credentials and issues a bearer token
// @Summary      Admin login
// @Description  Verifies email/password and returns a signed token plus role
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  services.LoginResult
// @Failure      400  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody  "unknown email or wrong password"
// @Router       /admin/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound)
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrPasswordIncorrect)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, result)
}

// Me returns the account behind the presented bearer token
// @Summary      Current admin
// @Description  Resolves the authenticated admin from the bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Admin
// @Failure      401  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *JWTController) Me() {
	adminID := c.Ctx.GetUint("adminID")

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}
	if admin == nil {
		response.Fail(c.Ctx, code.ErrAdminNotFound)
		return
	}

	response.OK(c.Ctx, admin)
}
