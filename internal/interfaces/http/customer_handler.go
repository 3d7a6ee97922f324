package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain"
)

// CustomerHandler serves the party endpoints.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create adds a new party.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	customer, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and phone are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// List returns all parties, newest-first. ?q= searches name and phone.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q")))
}
