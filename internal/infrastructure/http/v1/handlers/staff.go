package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/domain/staff"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// StaffHandler serves staff member management. There is no token layer:
// deployments sit on a trusted shop LAN and VerifyPassword backs the local
// login screen.
type StaffHandler struct {
	*BaseHandler
	service *staff.Service
}

// NewStaffHandler creates a staff handler.
func NewStaffHandler(base *BaseHandler, service *staff.Service) *StaffHandler {
	return &StaffHandler{BaseHandler: base, service: service}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *gin.Context) {
	filter := staff.ListFilter{}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	if raw := c.Query("role"); raw != "" {
		role := staff.Role(raw)
		filter.Role = &role
	}
	if raw := c.Query("isActive"); raw != "" {
		active := raw == "true"
		filter.IsActive = &active
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, m := range result.Items {
		items[i] = dto.FromStaffMember(m)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *gin.Context) {
	memberID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	member, err := h.service.GetByID(c.Request.Context(), memberID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStaffMember(member))
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.service.Create(c.Request.Context(), staff.CreateRequest{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Place:    req.Place,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromStaffMember(member))
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *gin.Context) {
	memberID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateStaffRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.service.Update(c.Request.Context(), memberID, staff.UpdateRequest{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Place:    req.Place,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStaffMember(member))
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *gin.Context) {
	memberID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), memberID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangePassword handles POST /staff/:id/password.
func (h *StaffHandler) ChangePassword(c *gin.Context) {
	memberID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), memberID, req.OldPassword, req.NewPassword); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "password changed")
}

// Verify handles POST /staff/verify - the local login check.
func (h *StaffHandler) Verify(c *gin.Context) {
	var req dto.VerifyPasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	member, err := h.service.VerifyPassword(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStaffMember(member))
}
