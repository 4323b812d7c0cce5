package assignment

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
	"parcel-service/internal/pkg/factory/tracking_number"
	"parcel-service/internal/service/courier"
	"parcel-service/internal/service/parcel"
)

const unassignedDescriptionF = "Courier %s unassigned"

type Assignment struct {
	parcelRepository   ParcelRepository
	trackingRepository TrackingRepository
	courierService     CourierService
	txManager          TxManager
}

func New(
	parcelRepository ParcelRepository,
	trackingRepository TrackingRepository,
	courierService CourierService,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		parcelRepository:   parcelRepository,
		trackingRepository: trackingRepository,
		courierService:     courierService,
		txManager:          txManager,
	}
}

// AssignCourier привязывает свободного курьера к активной посылке.
// Статус посылки не меняется, назначение фиксируется записью журнала с текущим статусом.
func (a *Assignment) AssignCourier(ctx context.Context, trackingNumber, courierID string) (*entities.ParcelAssignment, error) {
	if !tracking_number.IsValid(trackingNumber) {
		return nil, parcel.ErrInvalidTrackingNumber
	}
	if !courier.IsValidCourierID(courierID) {
		return nil, courier.ErrInvalidCourierID
	}

	var assignment entities.ParcelAssignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := a.parcelRepository.GetByTrackingNumberForUpdate(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		// отсутствие курьера важнее состояния посылки
		if _, err := a.courierService.GetCourier(ctx, courierID); err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if !locked.IsActive() {
			return fmt.Errorf("%w: %s is %s", parcel.ErrParcelClosed, trackingNumber, locked.Status)
		}
		if locked.CourierID != nil {
			return fmt.Errorf("%w: %s", ErrParcelAlreadyAssigned, *locked.CourierID)
		}

		claimed, err := a.courierService.ClaimCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("claim courier: %w", err)
		}

		err = a.parcelRepository.SetCourier(ctx, locked.ID, &courierID)
		if err != nil {
			return fmt.Errorf("set parcel courier: %w", err)
		}

		update, err := a.trackingRepository.Append(ctx, entities.TrackingUpdateCreate{
			ParcelID:    locked.ID,
			Status:      locked.Status,
			Location:    parcel.SystemLocation,
			Description: parcel.AssignedDescription(courierID),
		})
		if err != nil {
			return fmt.Errorf("append assignment update: %w", err)
		}

		assignment = entities.ParcelAssignment{
			TrackingNumber: trackingNumber,
			CourierID:      claimed.ID,
			Availability:   claimed.Availability,
			Update:         *update,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UnassignCourier снимает курьера с посылки. Курьер освобождается,
// только если посылка ещё активна: у закрытой посылки он уже свободен.
func (a *Assignment) UnassignCourier(ctx context.Context, trackingNumber string) (*entities.ParcelUnassignment, error) {
	if !tracking_number.IsValid(trackingNumber) {
		return nil, parcel.ErrInvalidTrackingNumber
	}

	var unassignment entities.ParcelUnassignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := a.parcelRepository.GetByTrackingNumberForUpdate(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if locked.CourierID == nil {
			return fmt.Errorf("%w: %s", ErrNoCourierAssigned, trackingNumber)
		}
		courierID := *locked.CourierID

		err = a.parcelRepository.SetCourier(ctx, locked.ID, nil)
		if err != nil {
			return fmt.Errorf("clear parcel courier: %w", err)
		}

		availability := entities.CourierAvailable
		if locked.IsActive() {
			released, err := a.courierService.ReleaseCourier(ctx, courierID)
			if err != nil {
				return fmt.Errorf("release courier: %w", err)
			}
			availability = released.Availability
		}

		update, err := a.trackingRepository.Append(ctx, entities.TrackingUpdateCreate{
			ParcelID:    locked.ID,
			Status:      locked.Status,
			Location:    parcel.SystemLocation,
			Description: fmt.Sprintf(unassignedDescriptionF, courierID),
		})
		if err != nil {
			return fmt.Errorf("append unassignment update: %w", err)
		}

		unassignment = entities.ParcelUnassignment{
			TrackingNumber: trackingNumber,
			CourierID:      courierID,
			Availability:   availability,
			Update:         *update,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unassignment, nil
}
