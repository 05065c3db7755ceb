package http

import (
	"errors"
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/construmart/construmart-api/internal/application/dto"
	"github.com/construmart/construmart-api/internal/application/onboarding"
	"github.com/construmart/construmart-api/internal/domain"
)

// CustomerHandler maneja el registro y la verificación de clientes.
type CustomerHandler struct {
	uc *onboarding.UseCase
}

// NewCustomerHandler construye el handler de onboarding.
func NewCustomerHandler(uc *onboarding.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "email, password, firstname, lastname, phoneNumber"
// @Success      201   {object}  dto.BaseResponse
// @Failure      400   {object}  dto.BaseResponse
// @Failure      422   {object}  dto.BaseResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if msg, ok := validateSignup(in); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg))
	}

	if err := h.uc.CreateCustomer(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("Email has been taken"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Unable to complete registration"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OkMessage(onboarding.MsgCheckEmail))
}

// Verify godoc
// @Summary      Verificar un cliente con el OTP enviado por correo
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCustomerRequest  true  "email, otp"
// @Success      200   {object}  dto.BaseResponse
// @Failure      404   {object}  dto.BaseResponse
// @Router       /api/customers/verify [post]
func (h *CustomerHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.Email == "" || in.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("email and otp are required"))
	}

	err := h.uc.VerifyCustomer(c.Context(), in)
	switch {
	case err == nil:
		return c.JSON(dto.BaseResponse{Status: true})
	case errors.Is(err, domain.ErrInvalidOTP):
		// Resultado semántico esperado, no un error HTTP
		return c.JSON(dto.Fail(onboarding.MsgInvalidOTP))
	case errors.Is(err, domain.ErrCodeExpired):
		return c.JSON(dto.Fail(onboarding.MsgOTPExpired))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Account not found"))
	case errors.Is(err, domain.ErrCodeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("No pending verification for this account"))
	case errors.Is(err, domain.ErrActivationFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Unable to activate account"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}

func validateSignup(in dto.CreateCustomerRequest) (string, bool) {
	if in.Email == "" || in.Password == "" || in.Firstname == "" || in.Lastname == "" {
		return "email, password, firstname and lastname are required", false
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return "email is not a valid address", false
	}
	if len(in.Password) < 8 {
		return "password must be at least 8 characters", false
	}
	return "", true
}
