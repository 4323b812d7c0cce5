package customer

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

type Customer struct {
	repository Repository
}

func New(repository Repository) *Customer {
	return &Customer{
		repository: repository,
	}
}

// CreateCustomer возвращает уже существующего клиента с такими же контактами
// или создаёт нового.
func (s *Customer) CreateCustomer(ctx context.Context, details entities.CustomerDetails) (*entities.Customer, error) {
	if err := Validate(details); err != nil {
		return nil, err
	}

	customer, err := s.repository.GetOrCreate(ctx, normalize(details))
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id int64) (*entities.Customer, error) {
	if id <= 0 {
		return nil, ErrInvalidCustomerID
	}

	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *Customer) DeleteCustomer(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCustomerID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
