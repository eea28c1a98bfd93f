package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/cache"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository  repositories.FollowRepository
	profileRepository repositories.ProfileRepository
	feedCache         *cache.Cache
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, profileRepo repositories.ProfileRepository, feedCache *cache.Cache) *FollowHandler {
	return &FollowHandler{
		followRepository:  followRepo,
		profileRepository: profileRepo,
		feedCache:         feedCache,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/profiles/:id/follow", h.FollowProfile)
	g.DELETE("/profiles/:id/follow", h.UnfollowProfile)
	g.GET("/profiles/:id/followers", h.GetFollowers)
	g.GET("/profiles/:id/following", h.GetFollowing)
	g.GET("/profiles/:id/follow/status", h.GetFollowStatus)
}

// FollowProfile follows a profile. Following yourself or someone you
// already follow is a no-op, not an error.
func (h *FollowHandler) FollowProfile(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByID(targetID); err != nil {
		return httpError(err)
	}

	if err := h.followRepository.EnsureFollow(currentProfileID, targetID); err != nil {
		return httpError(err)
	}

	h.invalidateFeed(c, currentProfileID)

	following := currentProfileID != targetID
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": following}})
}

// UnfollowProfile unfollows a profile; unfollowing an absent edge is a no-op
func (h *FollowHandler) UnfollowProfile(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followRepository.DeleteFollow(currentProfileID, targetID); err != nil {
		return httpError(err)
	}

	h.invalidateFeed(c, currentProfileID)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowers lists the profiles following the given profile
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByID(id); err != nil {
		return httpError(err)
	}

	followers, err := h.followRepository.GetFollowers(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, followers)
}

// GetFollowing lists the profiles the given profile follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.profileRepository.GetProfileByID(id); err != nil {
		return httpError(err)
	}

	following, err := h.followRepository.GetFollowing(id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, following)
}

// GetFollowStatus reports whether the authenticated profile follows the target
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	currentProfileID := getProfileIDFromContext(c)
	if currentProfileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followRepository.IsFollowing(currentProfileID, targetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile_id": targetID, "following": following})
}

// invalidateFeed drops every cached feed page for the profile whose
// follow set just changed.
func (h *FollowHandler) invalidateFeed(c echo.Context, profileID uint) {
	h.feedCache.DeleteByPrefix(c.Request().Context(), fmt.Sprintf("feed:%d:", profileID))
}
