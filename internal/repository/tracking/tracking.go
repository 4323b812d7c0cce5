package tracking

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const updateColumns = "id, parcel_id, status, location, description, recorded_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет запись в журнал. Время берётся не меньше последней записи посылки,
// поэтому порядок по id и по времени совпадает даже при сдвиге часов.
// Вызывающий должен держать блокировку строки посылки.
func (r *Repository) Append(ctx context.Context, update entities.TrackingUpdateCreate) (*entities.TrackingUpdate, error) {
	query := `INSERT INTO tracking_updates (parcel_id, status, location, description, recorded_at)
		SELECT $1, $2, $3, $4, GREATEST(clock_timestamp(), COALESCE(MAX(recorded_at), '-infinity'::timestamptz))
		FROM tracking_updates
		WHERE parcel_id = $1
		RETURNING ` + updateColumns

	var updateModel TrackingUpdateDB
	err := pgxscan.Get(ctx, r.querier, &updateModel, query,
		update.ParcelID,
		update.Status.String(),
		update.Location,
		update.Description,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return ToDomain(&updateModel), nil
}

func (r *Repository) ListByParcelID(ctx context.Context, parcelID int64) ([]entities.TrackingUpdate, error) {
	query := `SELECT ` + updateColumns + `
		FROM tracking_updates
		WHERE parcel_id = $1
		ORDER BY recorded_at, id`

	var updates []TrackingUpdateDB
	err := pgxscan.Select(ctx, r.querier, &updates, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	return ToDomainList(updates), nil
}

// ListByParcelIDs история сразу для страницы посылок, ключ карты ID посылки.
func (r *Repository) ListByParcelIDs(ctx context.Context, parcelIDs []int64) (map[int64][]entities.TrackingUpdate, error) {
	result := make(map[int64][]entities.TrackingUpdate, len(parcelIDs))
	if len(parcelIDs) == 0 {
		return result, nil
	}

	query, args, err := qb.
		Select(updateColumns).
		From("tracking_updates").
		Where(sq.Eq{"parcel_id": parcelIDs}).
		OrderBy("parcel_id", "recorded_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	var updates []TrackingUpdateDB
	err = pgxscan.Select(ctx, r.querier, &updates, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	for _, update := range ToDomainList(updates) {
		result[update.ParcelID] = append(result[update.ParcelID], update)
	}
	return result, nil
}
