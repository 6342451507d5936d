package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dashboard/internal/errors"
	"dashboard/internal/service"
)

// CommunityHandler handles community endpoints.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new community handler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// CreateCommunityRequest represents a community creation request.
type CreateCommunityRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCommunities godoc
// @Summary List all communities newest-first
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Community
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /communities [get]
func (h *CommunityHandler) ListCommunities(c echo.Context) error {
	communities, err := h.communityService.ListCommunities(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, communities)
}

// CreateCommunity godoc
// @Summary Create a community; the creator is auto-enrolled as a member
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommunityRequest true "Community payload"
// @Success 201 {object} model.Community
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /communities [post]
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return respondError(err)
	}

	var req CreateCommunityRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	community, err := h.communityService.CreateCommunity(c.Request().Context(), userID, req.Name)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, community)
}
