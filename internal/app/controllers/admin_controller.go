package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/services/container"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/code"
	"github.com/OussemaDev7/AfarTech-Project/internal/error/response"
)

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController handles admin account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAdminRequest is the account creation payload
type CreateAdminRequest struct {
	FirstName string `json:"firstName" example:"Oussema"`
	LastName  string `json:"lastName" example:"Ben Salah"`
	Email     string `json:"email" binding:"required,email" example:"admin@afartech.com"`
	Password  string `json:"password" binding:"required" example:"Admin@123"`
	Role      string `json:"role" example:"ADMIN"`
	Image     string `json:"image" example:"https://cdn.afartech.com/avatars/1.png"`
}

// UpdateAdminRequest is the full replacement payload for an update. Every
// mutable field is overwritten from it; a field the client omits is written
// back as its zero value. Password is the exception: empty leaves the stored
// hash untouched.
type UpdateAdminRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Image     string `json:"image"`
}

// HandleAdminFunc returns a gin handler dispatching to the admin controller
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. GetAdmins lists every admin account
// @Summary      List admins
// @Description  Returns all admin accounts, no pagination
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {array}   models.Admin
// @Failure      500  {object}  response.MessageBody
// @Router       /admin [get]
func (c *AdminController) GetAdmins() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, err := adminService.GetAllAdmins()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, admins)
}

// 2. GetAdmin returns one admin account by id
// @Summary      Get admin
// @Description  Returns the admin with the given id, or null when absent
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Success      200  {object}  models.Admin
// @Failure      400  {object}  response.MessageBody
// @Router       /admin/{id} [get]
func (c *AdminController) GetAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid id parameter")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	// Absence is not an error here: the body is null for an unknown id.
	if admin == nil {
		response.OK(c.Ctx, nil)
		return
	}
	response.OK(c.Ctx, admin)
}

// 3. CreateAdmin creates a new admin account
// @Summary      Create admin
// @Description  Creates an admin account; the password is stored as a bcrypt hash
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "Admin account"
// @Success      201  {object}  models.Admin
// @Failure      400  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody  "email already registered"
// @Router       /admin [post]
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	admin := &models.Admin{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password, // hashed in the service layer
		Role:      req.Role,
		Image:     req.Image,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			response.Fail(c.Ctx, code.ErrEmailExists)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Created(c.Ctx, admin)
}

// 4. UpdateAdmin replaces an existing admin account
// @Summary      Update admin
// @Description  Overwrites every mutable field; password only when non-empty
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Param        request body UpdateAdminRequest true "Replacement payload"
// @Success      200  {object}  models.Admin
// @Failure      400  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody
// @Router       /admin/{id} [put]
func (c *AdminController) UpdateAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid id parameter")
		return
	}

	var req UpdateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "invalid request body: "+err.Error())
		return
	}

	replacement := &models.Admin{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Role:      req.Role,
		Image:     req.Image,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(uint(id), replacement)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.FailWithMessage(c.Ctx, code.ErrAdminNotFound, "Admin not found")
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, admin)
}

// 5. DeleteAdmin removes an admin account by id
// @Summary      Delete admin
// @Description  Deletes the admin with the given id; unknown ids succeed silently
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Success      200
// @Failure      400  {object}  response.MessageBody
// @Router       /admin/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "invalid id parameter")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(uint(id)); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.NoBody(c.Ctx)
}
