package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
)

// AuthHandler maneja login, logout y verificación de sesión.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	expHours int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, expHours int) *AuthHandler {
	return &AuthHandler{uc: uc, expHours: expHours}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return internalError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(h.expHours) * time.Hour),
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// Check godoc
// @Summary      Verificar sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CheckResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/check [get]
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.CheckResponse{
		Authenticated: true,
		Email:         GetEmail(c),
		Role:          GetRole(c),
	})
}
