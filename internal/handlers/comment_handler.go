package handlers

import (
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsForPost)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
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

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment := &models.Comment{
		PostID:    postID,
		ProfileID: currentProfileID,
		Text:      req.Text,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsForPost lists all comments on a post, newest first
func (h *CommentHandler) GetCommentsForPost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return httpError(err)
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment updates a comment's text; only the author may update
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		return httpError(err)
	}
	if comment.ProfileID != currentProfileID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may update this comment")
	}

	comment.Text = req.Text
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; only the author may delete
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		return httpError(err)
	}
	if comment.ProfileID != currentProfileID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the author may delete this comment")
	}

	if err := h.commentRepository.DeleteComment(id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
