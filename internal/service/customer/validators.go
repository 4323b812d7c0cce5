package customer

import (
	"net/mail"
	"strings"

	"parcel-service/internal/entities"
)

func isValidName(name string) bool {
	return name != ""
}

func isValidAddress(address string) bool {
	return address != ""
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// "Bob <bob@example.com>" парсится, но хранить нужно голый адрес
	return addr.Address == email
}

func isValidPhone(phone string) bool {
	digits := 0
	for i, char := range phone {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '+' && i == 0:
		case char == ' ', char == '-', char == '(', char == ')':
		default:
			return false
		}
	}
	return digits >= 5
}

func normalize(details entities.CustomerDetails) entities.CustomerDetails {
	return entities.CustomerDetails{
		Name:    strings.TrimSpace(details.Name),
		Email:   strings.TrimSpace(details.Email),
		Phone:   strings.TrimSpace(details.Phone),
		Address: strings.TrimSpace(details.Address),
	}
}

// Validate проверяет контактные данные так же, как CreateCustomer.
func Validate(details entities.CustomerDetails) error {
	details = normalize(details)

	if details == (entities.CustomerDetails{}) {
		return ErrMissingRequiredFields
	}
	if !isValidName(details.Name) {
		return ErrInvalidName
	}
	if !isValidEmail(details.Email) {
		return ErrInvalidEmail
	}
	if !isValidPhone(details.Phone) {
		return ErrInvalidPhone
	}
	if !isValidAddress(details.Address) {
		return ErrInvalidAddress
	}
	return nil
}
