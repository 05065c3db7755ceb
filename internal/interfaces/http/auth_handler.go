package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/construmart/construmart-api/internal/application/auth"
	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/domain"
)

// AuthHandler maneja el inicio de sesión de clientes.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.BaseResponse
// @Failure      401   {object}  dto.BaseResponse
// @Failure      403   {object}  dto.BaseResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("email and password are required"))
	}

	out, err := h.uc.Login(in)
	switch {
	case err == nil:
		return c.JSON(dto.Ok(out))
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		// No distinguimos entre cuenta inexistente y contraseña incorrecta
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid credentials"))
	case errors.Is(err, domain.ErrAccountInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Account is not activated"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
