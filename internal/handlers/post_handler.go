package handlers

import (
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts and their photos
type PostHandler struct {
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:post_id", h.GetPost)
	g.PUT("/posts/:post_id", h.UpdatePost)
	g.DELETE("/posts/:post_id", h.DeletePost)
	g.GET("/profiles/:id/posts", h.GetPostsForProfile)
}

// CreatePost creates a post with its photos in one atomic operation
func (h *PostHandler) CreatePost(c echo.Context) error {
	profileID := getProfileIDFromContext(c)
	if profileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	photos := make([]models.Photo, 0, len(req.Photos))
	for _, in := range req.Photos {
		photo, err := in.ToPhoto()
		if err != nil {
			return httpError(err)
		}
		photos = append(photos, photo)
	}

	post := &models.Post{
		ProfileID: profileID,
		Caption:   req.Caption,
	}
	if err := h.postRepository.CreatePostWithPhotos(post, photos); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post with its photos
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}

	photos, err := h.postRepository.GetPhotosByPostID(postID)
	if err != nil {
		return httpError(err)
	}
	post.Photos = photos

	return c.JSON(http.StatusOK, post)
}

// UpdatePost updates a post's caption; only the owner may update
func (h *PostHandler) UpdatePost(c echo.Context) error {
	profileID := getProfileIDFromContext(c)
	if profileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.ProfileID != profileID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the owner may update this post")
	}

	updated, err := h.postRepository.UpdatePostCaption(postID, req.Caption)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePost deletes a post with its photos, comments and likes; only
// the owner may delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	profileID := getProfileIDFromContext(c)
	if profileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		return httpError(err)
	}
	if post.ProfileID != profileID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the owner may delete this post")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPostsForProfile lists a profile's posts, newest first
func (h *PostHandler) GetPostsForProfile(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByID(id); err != nil {
		return httpError(err)
	}

	posts, err := h.postRepository.GetPostsByProfileID(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}
