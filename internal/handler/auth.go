package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/utils"
)

// RoleManager is the role claim carried by staff tokens.  Every
// mutating endpoint requires it.
const RoleManager = "MANAGER"

// AuthHandler implements the staff login.  Credentials come from the
// environment; there is no user table.  The configured password is
// bcrypt-hashed once at construction so each login attempt runs a
// constant-time hash comparison.
type AuthHandler struct {
	cfg      config.Config
	passHash string
}

// NewAuthHandler builds an AuthHandler, hashing the configured staff
// password with the configured bcrypt cost.
func NewAuthHandler(cfg config.Config) (*AuthHandler, error) {
	hash, err := utils.HashPassword(cfg.AdminPass, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{cfg: cfg, passHash: hash}, nil
}

// Login handles POST /v1/auth/login.  It verifies the supplied
// credentials against the configured staff account and returns a signed
// access token with the MANAGER role.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username != h.cfg.AdminUser || !utils.VerifyPassword(h.passHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.cfg.JWTSecret, body.Username, RoleManager, h.cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
