package customer

import "parcel-service/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
