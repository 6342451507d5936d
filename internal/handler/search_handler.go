package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dashboard/internal/service"
)

// SearchHandler handles the cross-entity search endpoint.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse wraps search results. Active is false for an empty or
// whitespace-only query, in which case Results is null.
type SearchResponse struct {
	Active  bool                   `json:"active"`
	Results *service.SearchResults `json:"results"`
}

// Search godoc
// @Summary Search users, posts and communities by substring
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {object} SearchResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	results, err := h.searchService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SearchResponse{
		Active:  results != nil,
		Results: results,
	})
}
