package courier

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil ||
		courierModify.Name == nil ||
		courierModify.Email == nil ||
		courierModify.Phone == nil ||
		courierModify.Vehicle == nil {
		return nil, ErrMissingRequiredFields
	}

	if !IsValidCourierID(*courierModify.ID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*courierModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if !isValidVehicle(*courierModify.Vehicle) {
		return nil, ErrInvalidVehicle
	}

	// новый курьер всегда свободен, назначение идёт только через assign
	availability := entities.DefaultAvailability
	courierModify.Availability = &availability

	courier, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id string) (*entities.Courier, error) {
	if !IsValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, availability *entities.CourierAvailability) ([]entities.Courier, error) {
	if availability != nil && !availability.IsValid() {
		return nil, ErrInvalidAvailability
	}

	couriers, err := s.repository.GetAll(ctx, availability)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

func (s *Courier) DeleteCourier(ctx context.Context, id string) error {
	if !IsValidCourierID(id) {
		return ErrInvalidCourierID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete courier: %w", err)
	}
	return nil
}

// ClaimCourier занимает свободного курьера. Второй конкурентный вызов
// для того же курьера получает ErrCourierUnavailable.
func (s *Courier) ClaimCourier(ctx context.Context, id string) (*entities.Courier, error) {
	if !IsValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.Claim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("claim courier %s: %w", id, err)
	}
	return courier, nil
}

func (s *Courier) ReleaseCourier(ctx context.Context, id string) (*entities.Courier, error) {
	courier, err := s.repository.Release(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("release courier %s: %w", id, err)
	}
	return courier, nil
}
