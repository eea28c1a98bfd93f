package handlers

import (
	"net/http"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests related to profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
	followRepository  repositories.FollowRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository, followRepo repositories.FollowRepository) *ProfileHandler {
	return &ProfileHandler{
		profileRepository: profileRepo,
		followRepository:  followRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles", h.GetProfiles)
	g.GET("/profiles/:id", h.GetProfile)
	g.GET("/profiles/username/:username", h.GetProfileByUsername)
	g.PUT("/profile", h.UpdateOwnProfile)
	g.DELETE("/profile", h.DeleteOwnProfile)
}

// GetProfiles lists all profiles ordered by username
func (h *ProfileHandler) GetProfiles(c echo.Context) error {
	profiles, err := h.profileRepository.GetProfiles()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetProfile retrieves a profile by ID, with follower/following counts
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByID(id)
	if err != nil {
		return httpError(err)
	}

	followers, _ := h.followRepository.GetFollowersCount(id)
	following, _ := h.followRepository.GetFollowingCount(id)

	return c.JSON(http.StatusOK, echo.Map{
		"profile":         profile,
		"followers_count": followers,
		"following_count": following,
	})
}

// GetProfileByUsername retrieves a profile by its unique username
func (h *ProfileHandler) GetProfileByUsername(c echo.Context) error {
	profile, err := h.profileRepository.GetProfileByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateOwnProfile updates the authenticated profile's mutable fields
func (h *ProfileHandler) UpdateOwnProfile(c echo.Context) error {
	profileID := getProfileIDFromContext(c)
	if profileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileRepository.UpdateProfile(profileID, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteOwnProfile deletes the authenticated profile and cascades to all
// of its posts, photos, comments, likes and follow edges.
func (h *ProfileHandler) DeleteOwnProfile(c echo.Context) error {
	profileID := getProfileIDFromContext(c)
	if profileID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Profile not authenticated")
	}

	if err := h.profileRepository.DeleteProfile(profileID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
