package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/backend/internal/application/identity"
)

// EmployeeHandler handles employee directory administration
type EmployeeHandler struct {
	BaseHandler
	employeeService *identity.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *identity.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployeeRequest is the employee registration request body
type CreateEmployeeRequest struct {
	EmpID    string `json:"emp_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	Team     string `json:"team" binding:"required"`
}

// UpdateEmployeeRequest is the employee update request body
type UpdateEmployeeRequest struct {
	Email         *string `json:"email" binding:"omitempty,email"`
	Team          *string `json:"team"`
	IsActive      *bool   `json:"is_active"`
	ResetPassword *string `json:"reset_password" binding:"omitempty,min=8"`
}

// MailPermissionRequest grants or revokes deployment mail access
type MailPermissionRequest struct {
	Grant       bool   `json:"grant"`
	IsManager   bool   `json:"is_manager"`
	Email       string `json:"email" binding:"omitempty,email"`
	AppPassword string `json:"app_password"`
}

// EmployeeListQuery is the employee list query string
type EmployeeListQuery struct {
	Search   string `form:"search"`
	Team     string `form:"team"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
}

// Create registers a new employee account
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.employeeService.Create(c.Request.Context(), identity.CreateEmployeeInput{
		EmpID:    req.EmpID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Team:     req.Team,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, info)
}

// GetByID returns a single employee
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	info, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// List returns the employee directory with pagination
func (h *EmployeeHandler) List(c *gin.Context) {
	var q EmployeeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	infos, total, err := h.employeeService.List(c.Request.Context(), identity.EmployeeListFilter{
		Search:   q.Search,
		Team:     q.Team,
		IsActive: q.IsActive,
		Page:     q.Page,
		PageSize: q.PageSize,
		SortBy:   q.SortBy,
		SortDesc: q.SortDesc,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, infos, total, q.Page, q.PageSize)
}

// Update modifies an employee's profile, team or active flag
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.employeeService.Update(c.Request.Context(), id, identity.UpdateEmployeeInput{
		Email:         req.Email,
		Team:          req.Team,
		IsActive:      req.IsActive,
		ResetPassword: req.ResetPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// SetMailPermission grants or revokes deployment mail rights
func (h *EmployeeHandler) SetMailPermission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req MailPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.employeeService.SetMailPermission(c.Request.Context(), id, identity.MailPermissionInput{
		Grant:       req.Grant,
		IsManager:   req.IsManager,
		Email:       req.Email,
		AppPassword: req.AppPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Delete soft-deletes an employee account
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
