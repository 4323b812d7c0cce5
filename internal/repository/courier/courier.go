package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = "id, name, email, phone, vehicle, availability, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (id, name, email, phone, vehicle, availability)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 'available'))
		RETURNING ` + courierColumns

	courierModel, err := scanCourier(r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.ID,
		courierModifyModel.Name,
		courierModifyModel.Email,
		courierModifyModel.Phone,
		courierModifyModel.Vehicle,
		courierModifyModel.Availability,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context, availability *entities.CourierAvailability) ([]entities.Courier, error) {
	builder := qb.
		Select(courierColumns).
		From("couriers").
		OrderBy("id")

	if availability != nil {
		builder = builder.Where(sq.Eq{"availability": availability.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM couriers WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return courier.ErrReferentialConflict
		}
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

// Claim условный UPDATE: из двух конкурентных запросов строку обновит только один,
// второй после снятия блокировки перечитает availability и получит 0 строк.
func (r *Repository) Claim(ctx context.Context, id string) (*entities.Courier, error) {
	return r.setAvailability(ctx, id, entities.CourierAvailable, entities.CourierAssigned)
}

func (r *Repository) Release(ctx context.Context, id string) (*entities.Courier, error) {
	return r.setAvailability(ctx, id, entities.CourierAssigned, entities.CourierAvailable)
}

func (r *Repository) setAvailability(
	ctx context.Context,
	id string,
	from, to entities.CourierAvailability,
) (*entities.Courier, error) {
	query, args, err := qb.
		Update("couriers").
		Set("availability", to.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "availability": from.String()}).
		Suffix("RETURNING " + courierColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository set availability error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err == nil {
		return ToDomain(courierModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected courier repository set availability error: %w", err)
	}

	// 0 строк: курьера либо нет, либо он уже в целевом состоянии
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if to == entities.CourierAssigned {
		return nil, courier.ErrCourierUnavailable
	}
	// освобождение идемпотентно
	return current, nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Email,
		&courierModel.Phone,
		&courierModel.Vehicle,
		&courierModel.Availability,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}
