package handlers

import (
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository    repositories.LikeRepository
	postRepository    repositories.PostRepository
	profileRepository repositories.ProfileRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, profileRepo repositories.ProfileRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:    likeRepo,
		postRepository:    postRepo,
		profileRepository: profileRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.GET("/posts/:post_id/likes", h.GetLikesForPost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetLikeStatusForPost)
}

// LikePost likes a post. Liking twice, or liking your own post, is a
// no-op rather than an error.
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if err := h.likeRepository.EnsureLike(currentProfileID, postID); err != nil {
		return httpError(err)
	}

	liked, err := h.likeRepository.HasProfileLikedPost(currentProfileID, postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": liked})
}

// UnlikePost removes a like; unliking an absent like is a no-op
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return httpError(err)
	}

	if err := h.likeRepository.DeleteLike(currentProfileID, postID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": false})
}

// GetLikesForPost lists all likes on a post
func (h *LikeHandler) GetLikesForPost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return httpError(err)
	}

	likes, err := h.likeRepository.GetLikesByPostID(postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

// GetLikesCountForPost retrieves the total number of likes for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return httpError(err)
	}

	count, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetLikeStatusForPost checks if the authenticated profile has liked the post
func (h *LikeHandler) GetLikeStatusForPost(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return httpError(err)
	}

	liked, err := h.likeRepository.HasProfileLikedPost(currentProfileID, postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "profile_id": currentProfileID, "has_liked": liked})
}
