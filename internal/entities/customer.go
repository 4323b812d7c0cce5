package entities

import "time"

type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// CustomerDetails контактные данные отправителя или получателя без идентификатора.
type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerRef ссылка на клиента: либо существующий ID, либо данные для поиска/создания.
type CustomerRef struct {
	ID      *int64
	Details *CustomerDetails
}
