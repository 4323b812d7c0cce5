package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/customer"
	"parcel-service/internal/service/courier"
	"parcel-service/pkg/retrier"
	"parcel-service/pkg/retrier/backoff_adapter"
)

// MaxTrackingNumberAttempts сколько раз пробуем создать посылку со свежим номером.
const MaxTrackingNumberAttempts = 5

const (
	SystemLocation       = "System"
	CreatedDescription   = "Parcel created"
	assignedDescriptionF = "Courier %s assigned"
)

type Parcel struct {
	repository         Repository
	trackingRepository TrackingRepository
	customerService    CustomerService
	courierService     CourierService
	trackingNumbers    TrackingNumberFactory
	estimateFactory    DeliveryEstimateFactory
	txManager          TxManager
	creationRetrier    retrier.Retrier
}

func New(
	repository Repository,
	trackingRepository TrackingRepository,
	customerService CustomerService,
	courierService CourierService,
	trackingNumbers TrackingNumberFactory,
	estimateFactory DeliveryEstimateFactory,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository:         repository,
		trackingRepository: trackingRepository,
		customerService:    customerService,
		courierService:     courierService,
		trackingNumbers:    trackingNumbers,
		estimateFactory:    estimateFactory,
		txManager:          txManager,
		creationRetrier: backoff_adapter.NewImmediate(
			MaxTrackingNumberAttempts-1,
			func(err error) bool { return errors.Is(err, ErrDuplicateTrackingNumber) },
		),
	}
}

// CreateParcel создаёт посылку вместе с первой записью журнала.
// Коллизия номера откатывает транзакцию целиком, поэтому повторяется вся транзакция.
func (s *Parcel) CreateParcel(ctx context.Context, create entities.ParcelCreate) (*entities.Parcel, error) {
	if err := validateCreate(&create); err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	estimatedDelivery := s.estimateFactory.EstimateDelivery(create.ServiceType, createdAt)
	if create.EstimatedDelivery != nil {
		estimatedDelivery = create.EstimatedDelivery.UTC()
	}

	var trackingNumber string
	err := s.creationRetrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		generated, err := s.trackingNumbers.Generate()
		if err != nil {
			return fmt.Errorf("generate tracking number: %w", err)
		}
		trackingNumber = generated

		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.createInTx(ctx, generated, create, createdAt, estimatedDelivery)
		})
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateTrackingNumber) {
			return nil, fmt.Errorf("%w: %w", ErrIdentifierExhaustion, err)
		}
		return nil, err
	}

	return s.GetParcel(ctx, trackingNumber)
}

func (s *Parcel) createInTx(
	ctx context.Context,
	trackingNumber string,
	create entities.ParcelCreate,
	createdAt, estimatedDelivery time.Time,
) error {
	sender, err := s.resolveCustomer(ctx, "sender", create.Sender)
	if err != nil {
		return err
	}

	recipient, err := s.resolveCustomer(ctx, "recipient", create.Recipient)
	if err != nil {
		return err
	}

	if sender.ID == recipient.ID {
		return ErrSameSenderRecipient
	}

	if create.CourierID != nil {
		_, err = s.courierService.ClaimCourier(ctx, *create.CourierID)
		if err != nil {
			if errors.Is(err, courier.ErrCourierNotFound) || errors.Is(err, courier.ErrInvalidCourierID) {
				return fmt.Errorf("%w: courier %s: %w", ErrInvalidReference, *create.CourierID, err)
			}
			return err
		}
	}

	parcelID, err := s.repository.Create(ctx, entities.ParcelInsert{
		TrackingNumber:    trackingNumber,
		SenderID:          sender.ID,
		RecipientID:       recipient.ID,
		CourierID:         create.CourierID,
		Weight:            create.Weight,
		Length:            create.Length,
		Width:             create.Width,
		Height:            create.Height,
		ServiceType:       create.ServiceType,
		EstimatedDelivery: estimatedDelivery,
		Description:       create.Description,
		Status:            entities.ParcelCreated,
		CreatedAt:         createdAt,
	})
	if err != nil {
		return fmt.Errorf("create parcel: %w", err)
	}

	_, err = s.trackingRepository.Append(ctx, entities.TrackingUpdateCreate{
		ParcelID:    parcelID,
		Status:      entities.ParcelCreated,
		Location:    SystemLocation,
		Description: CreatedDescription,
	})
	if err != nil {
		return fmt.Errorf("append created update: %w", err)
	}

	if create.CourierID != nil {
		_, err = s.trackingRepository.Append(ctx, entities.TrackingUpdateCreate{
			ParcelID:    parcelID,
			Status:      entities.ParcelCreated,
			Location:    SystemLocation,
			Description: AssignedDescription(*create.CourierID),
		})
		if err != nil {
			return fmt.Errorf("append assignment update: %w", err)
		}
	}

	return nil
}

func (s *Parcel) resolveCustomer(ctx context.Context, role string, ref entities.CustomerRef) (*entities.Customer, error) {
	if ref.ID != nil {
		found, err := s.customerService.GetCustomer(ctx, *ref.ID)
		if err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) || errors.Is(err, customer.ErrInvalidCustomerID) {
				return nil, fmt.Errorf("%w: %s %d", ErrInvalidReference, role, *ref.ID)
			}
			return nil, fmt.Errorf("get %s: %w", role, err)
		}
		return found, nil
	}

	created, err := s.customerService.CreateCustomer(ctx, *ref.Details)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", role, err)
	}
	return created, nil
}

// GetParcel посылка вместе с полной историей от старых записей к новым.
func (s *Parcel) GetParcel(ctx context.Context, trackingNumber string) (*entities.Parcel, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	parcel, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	history, err := s.trackingRepository.ListByParcelID(ctx, parcel.ID)
	if err != nil {
		return nil, fmt.Errorf("get parcel history: %w", err)
	}
	parcel.History = history

	return parcel, nil
}

func (s *Parcel) ListParcels(ctx context.Context, filter entities.ParcelFilter, page entities.Page) (*entities.ParcelList, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.CourierID != nil && *filter.CourierID == "" {
		return nil, ErrInvalidCourierID
	}

	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	parcels, total, err := s.repository.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	if err := s.attachHistory(ctx, parcels); err != nil {
		return nil, err
	}

	return &entities.ParcelList{
		Parcels:     parcels,
		Total:       total,
		Pages:       (total + page.PerPage - 1) / page.PerPage,
		CurrentPage: page.Page,
	}, nil
}

// ListParcelsByCourier все посылки курьера, включая закрытые.
// Для неизвестного курьера возвращается пустой список.
func (s *Parcel) ListParcelsByCourier(ctx context.Context, courierID string) ([]entities.Parcel, error) {
	if !courier.IsValidCourierID(courierID) {
		return []entities.Parcel{}, nil
	}

	parcels, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier parcels: %w", err)
	}

	if err := s.attachHistory(ctx, parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (s *Parcel) attachHistory(ctx context.Context, parcels []entities.Parcel) error {
	if len(parcels) == 0 {
		return nil
	}

	ids := make([]int64, len(parcels))
	for i := range parcels {
		ids[i] = parcels[i].ID
	}

	histories, err := s.trackingRepository.ListByParcelIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get parcels history: %w", err)
	}

	for i := range parcels {
		parcels[i].History = histories[parcels[i].ID]
	}
	return nil
}

// AppendUpdate добавляет запись в журнал и переносит её статус в посылку.
// Переход в терминальный статус освобождает курьера в той же транзакции.
func (s *Parcel) AppendUpdate(
	ctx context.Context,
	trackingNumber string,
	statusUpdate entities.ParcelStatusUpdate,
) (*entities.TrackingUpdate, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}
	if !statusUpdate.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, statusUpdate.Status)
	}

	var update *entities.TrackingUpdate
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByTrackingNumberForUpdate(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if !parcel.IsActive() {
			return fmt.Errorf("%w: %s is %s", ErrParcelClosed, trackingNumber, parcel.Status)
		}

		update, err = s.trackingRepository.Append(ctx, entities.TrackingUpdateCreate{
			ParcelID:    parcel.ID,
			Status:      statusUpdate.Status,
			Location:    statusUpdate.Location,
			Description: statusUpdate.Description,
		})
		if err != nil {
			return fmt.Errorf("append update: %w", err)
		}

		err = s.repository.UpdateStatus(ctx, parcel.ID, statusUpdate.Status)
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}

		if statusUpdate.Status.IsTerminal() && parcel.CourierID != nil {
			_, err = s.courierService.ReleaseCourier(ctx, *parcel.CourierID)
			if err != nil {
				return fmt.Errorf("release courier: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return update, nil
}

// CountByStatus число посылок в каждом статусе, статусы без посылок тоже попадают в ответ.
func (s *Parcel) CountByStatus(ctx context.Context) ([]entities.ParcelStatusCount, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count parcels by status: %w", err)
	}

	byStatus := make(map[entities.ParcelStatus]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	result := make([]entities.ParcelStatusCount, 0, len(entities.ParcelStatuses))
	for _, status := range entities.ParcelStatuses {
		result = append(result, entities.ParcelStatusCount{Status: status, Count: byStatus[status]})
	}
	return result, nil
}

func AssignedDescription(courierID string) string {
	return fmt.Sprintf(assignedDescriptionF, courierID)
}
