package customer

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/customer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetOrCreate ищет клиента по полному совпадению контактов, при отсутствии создаёт.
// DO UPDATE с тем же значением нужен, чтобы RETURNING вернул строку и при конфликте.
func (r *Repository) GetOrCreate(ctx context.Context, details entities.CustomerDetails) (*entities.Customer, error) {
	query := `INSERT INTO customers (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT customers_identity_key
		DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, email, phone, address, created_at`

	var customerModel CustomerDB
	err := pgxscan.Get(ctx, r.querier, &customerModel, query,
		details.Name,
		details.Email,
		details.Phone,
		details.Address,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository get or create error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Customer, error) {
	query := `SELECT id, name, email, phone, address, created_at
		FROM customers
		WHERE id = $1`

	var customerModel CustomerDB
	err := pgxscan.Get(ctx, r.querier, &customerModel, query, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return customer.ErrReferentialConflict
		}
		return fmt.Errorf("unexpected customer repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

