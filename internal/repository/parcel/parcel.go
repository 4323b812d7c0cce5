package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/courier"
	"parcel-service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	constraintTrackingNumber = "parcels_tracking_number_key"
	constraintSameCustomer   = "parcels_sender_recipient_check"
	constraintActiveCourier  = "parcels_active_courier_key"
)

var parcelColumns = []string{
	"p.id", "p.tracking_number", "p.courier_id",
	"p.weight", "p.length", "p.width", "p.height",
	"p.service_type", "p.estimated_delivery", "p.description", "p.status",
	"p.created_at", "p.updated_at",
	"s.id", "s.name", "s.email", "s.phone", "s.address", "s.created_at",
	"r.id", "r.name", "r.email", "r.phone", "r.address", "r.created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func selectParcels() sq.SelectBuilder {
	return qb.
		Select(parcelColumns...).
		From("parcels p").
		Join("customers s ON s.id = p.sender_id").
		Join("customers r ON r.id = p.recipient_id")
}

func applyFilter(builder sq.SelectBuilder, filter entities.ParcelFilter) sq.SelectBuilder {
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"p.status": filter.Status.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"p.courier_id": *filter.CourierID})
	}
	return builder
}

func (r *Repository) Create(ctx context.Context, insert entities.ParcelInsert) (int64, error) {
	query := `INSERT INTO parcels (
			tracking_number, sender_id, recipient_id, courier_id,
			weight, length, width, height,
			service_type, estimated_delivery, description, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		insert.TrackingNumber,
		insert.SenderID,
		insert.RecipientID,
		insert.CourierID,
		insert.Weight,
		insert.Length,
		insert.Width,
		insert.Height,
		insert.ServiceType.String(),
		insert.EstimatedDelivery,
		insert.Description,
		insert.Status.String(),
		insert.CreatedAt,
	).Scan(&id)
	if err != nil {
		switch {
		case repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, constraintTrackingNumber):
			return 0, parcel.ErrDuplicateTrackingNumber
		case repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, constraintActiveCourier):
			return 0, courier.ErrCourierUnavailable
		case repository.IsPgConstraintViolation(err, repository.PgErrCheckViolation, constraintSameCustomer):
			return 0, parcel.ErrSameSenderRecipient
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return 0, parcel.ErrInvalidReference
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return 0, fmt.Errorf("%w: %w", parcel.ErrInvalidParcel, err)
		}
		return 0, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Parcel, error) {
	return r.getOne(ctx, selectParcels().Where(sq.Eq{"p.tracking_number": trackingNumber}))
}

// GetByTrackingNumberForUpdate блокирует строку посылки до конца транзакции.
// Все записи журнала одной посылки проходят через эту блокировку.
func (r *Repository) GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber string) (*entities.Parcel, error) {
	return r.getOne(ctx, selectParcels().
		Where(sq.Eq{"p.tracking_number": trackingNumber}).
		Suffix("FOR UPDATE OF p"))
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder) (*entities.Parcel, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, parcelID int64, status entities.ParcelStatus) error {
	query, args, err := qb.
		Update("parcels").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": parcelID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected parcel repository update status error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository update status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}
	return nil
}

// SetCourier привязывает курьера к посылке, nil снимает привязку.
func (r *Repository) SetCourier(ctx context.Context, parcelID int64, courierID *string) error {
	query, args, err := qb.
		Update("parcels").
		Set("courier_id", courierID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": parcelID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected parcel repository set courier error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		switch {
		case repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, constraintActiveCourier):
			return courier.ErrCourierUnavailable
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return courier.ErrCourierNotFound
		}
		return fmt.Errorf("unexpected parcel repository set courier error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter, page entities.Page) ([]entities.Parcel, uint64, error) {
	countQuery, countArgs, err := applyFilter(qb.Select("COUNT(*)").From("parcels p"), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	var total uint64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}
	if total == 0 {
		return []entities.Parcel{}, 0, nil
	}

	builder := applyFilter(selectParcels(), filter).
		OrderBy("p.id").
		Limit(page.PerPage).
		Offset(page.Offset())

	parcels, err := r.list(ctx, builder)
	if err != nil {
		return nil, 0, err
	}
	return parcels, total, nil
}

func (r *Repository) ListByCourier(ctx context.Context, courierID string) ([]entities.Parcel, error) {
	return r.list(ctx, selectParcels().
		Where(sq.Eq{"p.courier_id": courierID}).
		OrderBy("p.id"))
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Parcel, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 16)
	for rows.Next() {
		parcelModel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, *parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) CountByStatus(ctx context.Context) ([]entities.ParcelStatusCount, error) {
	query := `SELECT status, COUNT(*) AS count
		FROM parcels
		GROUP BY status
		ORDER BY status`

	var counts []StatusCountDB
	err := pgxscan.Select(ctx, r.querier, &counts, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count by status error: %w", err)
	}

	return StatusCountsToDomain(counts), nil
}

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var p ParcelDB
	err := row.Scan(
		&p.ID,
		&p.TrackingNumber,
		&p.CourierID,
		&p.Weight,
		&p.Length,
		&p.Width,
		&p.Height,
		&p.ServiceType,
		&p.EstimatedDelivery,
		&p.Description,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Sender.ID,
		&p.Sender.Name,
		&p.Sender.Email,
		&p.Sender.Phone,
		&p.Sender.Address,
		&p.Sender.CreatedAt,
		&p.Recipient.ID,
		&p.Recipient.Name,
		&p.Recipient.Email,
		&p.Recipient.Phone,
		&p.Recipient.Address,
		&p.Recipient.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
