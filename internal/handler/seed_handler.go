package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dashboard/internal/errors"
	"dashboard/internal/service"
)

// SeedHandler handles demo data seeding.
type SeedHandler struct {
	authService      service.AuthService
	postService      service.PostService
	communityService service.CommunityService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, postService service.PostService, communityService service.CommunityService) *SeedHandler {
	return &SeedHandler{
		authService:      authService,
		postService:      postService,
		communityService: communityService,
	}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Posts   int    `json:"posts"`
}

type seedUser struct {
	Name     string
	Email    string
	Password string
	Posts    []string
}

var demoUsers = []seedUser{
	{
		Name:     "Anna Lee",
		Email:    "anna@example.com",
		Password: "password123",
		Posts:    []string{"Hello from the dashboard!", "Anyone up for coffee this week?"},
	},
	{
		Name:     "Ben Tan",
		Email:    "ben@example.com",
		Password: "password123",
		Posts:    []string{"Just moved to a new city, say hi."},
	},
}

// SeedDemo godoc
// @Summary Seed demo users, posts and a community
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()

	userCount := 0
	postCount := 0
	for i, su := range demoUsers {
		user, _, _, err := h.authService.Register(ctx, su.Name, su.Email, su.Password)
		if err != nil {
			// Already-seeded users are skipped on reruns.
			if errors.Is(err, apperrors.ErrDuplicateEmail) {
				continue
			}
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": fmt.Sprintf("failed to seed user %s: %v", su.Email, err),
			})
		}
		userCount++

		for _, text := range su.Posts {
			if _, err := h.postService.CreatePost(ctx, user.ID, text); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
					"error": fmt.Sprintf("failed to seed post: %v", err),
				})
			}
			postCount++
		}

		if i == 0 {
			if _, err := h.communityService.CreateCommunity(ctx, user.ID, "Newcomers"); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
					"error": fmt.Sprintf("failed to seed community: %v", err),
				})
			}
		}
	}

	return c.JSON(http.StatusOK, SeedResponse{
		Message: "demo data seeded successfully",
		Users:   userCount,
		Posts:   postCount,
	})
}
