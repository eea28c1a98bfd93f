package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// getProfileIDFromContext extracts the authenticated profile ID set by
// the JWT middleware; 0 means unauthenticated.
func getProfileIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.ProfileID
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// httpError maps a domain error onto the matching HTTP status
func httpError(err error) *echo.HTTPError {
	switch models.ErrCode(err) {
	case models.CodeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case models.CodeConflict:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case models.CodeValidation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
