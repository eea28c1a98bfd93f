package handlers

import (
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SearchHandler handles combined profile/post search requests
type SearchHandler struct {
	profileRepository repositories.ProfileRepository
	postRepository    repositories.PostRepository
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(profileRepo repositories.ProfileRepository, postRepo repositories.PostRepository) *SearchHandler {
	return &SearchHandler{
		profileRepository: profileRepo,
		postRepository:    postRepo,
	}
}

// RegisterSearchRoutes registers search-related routes
func (h *SearchHandler) RegisterSearchRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}

// Search matches posts by caption and profiles by username, display name
// or bio, all case-insensitive substrings. An empty query returns empty
// result sets, never the full tables.
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	profiles := []models.Profile{}
	posts := []models.Post{}

	if query != "" {
		var err error
		profiles, err = h.profileRepository.SearchProfiles(query)
		if err != nil {
			return httpError(err)
		}
		posts, err = h.postRepository.SearchPosts(query)
		if err != nil {
			return httpError(err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"query":    query,
		"profiles": profiles,
		"posts":    posts,
	})
}
