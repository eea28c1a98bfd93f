package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/anonto42/mini-insta/backend/internal/models"
	"github.com/anonto42/mini-insta/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	profileRepository    repositories.ProfileRepository
	credentialRepository repositories.CredentialRepository
	jwtSecret            string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(profileRepo repositories.ProfileRepository, credRepo repositories.CredentialRepository) *AuthHandler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "supersecretjwtkey"
	}
	return &AuthHandler{
		profileRepository:    profileRepo,
		credentialRepository: credRepo,
		jwtSecret:            jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
}

// Signup registers a new profile with its credential
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	profile := &models.Profile{
		Username:        req.Username,
		DisplayName:     req.DisplayName,
		BioText:         req.BioText,
		ProfileImageURL: req.ProfileImageURL,
	}
	if err := h.profileRepository.CreateProfile(profile); err != nil {
		return httpError(err)
	}

	cred := &models.Credential{
		ProfileID:    profile.ID,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := h.credentialRepository.CreateCredential(cred); err != nil {
		// Keep profile and credential creation all-or-nothing.
		_ = h.profileRepository.DeleteProfile(profile.ID)
		return httpError(err)
	}

	token, err := h.generateJWT(profile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "profile": profile})
}

// SignIn authenticates against a stored credential and issues a JWT
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cred, err := h.credentialRepository.GetCredentialByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unknown email or wrong password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unknown email or wrong password")
	}

	profile, err := h.profileRepository.GetProfileByID(cred.ProfileID)
	if err != nil {
		return httpError(err)
	}

	token, err := h.generateJWT(profile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "profile": profile})
}

// generateJWT issues a signed token carrying the profile identity
func (h *AuthHandler) generateJWT(profile *models.Profile) (string, error) {
	claims := &models.JwtCustomClaims{
		ProfileID: profile.ID,
		Username:  profile.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
