package billing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SumitSinghvi/invoice-bliss/internal/application/dto"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/entity"
	"github.com/SumitSinghvi/invoice-bliss/internal/domain/repository"
)

// CustomerUseCase covers the party screens: add a party, browse and search
// the party list.
type CustomerUseCase struct {
	store repository.Store
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(store repository.Store) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// Create adds a new party. Balance always starts at zero — it is adjusted
// out-of-band, never by invoice operations.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := entity.Customer{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   in.Email,
		Address: in.Address,
		GSTIN:   in.GSTIN,
		Balance: decimal.Zero,
	}
	uc.store.AddCustomer(customer)
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List returns all parties, newest-first, optionally filtered by a
// case-insensitive name/phone search term.
func (uc *CustomerUseCase) List(q string) []dto.CustomerResponse {
	q = strings.ToLower(strings.TrimSpace(q))
	customers := uc.store.Customers()
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) && !strings.Contains(c.Phone, q) {
			continue
		}
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

// ToCustomerResponse maps a party to its response shape.
func ToCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		GSTIN:   c.GSTIN,
		Balance: c.Balance,
	}
}
