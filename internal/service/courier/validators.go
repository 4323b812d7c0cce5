package courier

import (
	"net/mail"
	"regexp"
	"strings"
)

// короткий код вида CR001
var reCourierID = regexp.MustCompile(`^[A-Z]{2}[0-9]{3,8}$`)

func IsValidCourierID(id string) bool {
	return reCourierID.MatchString(id)
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidVehicle(vehicle string) bool {
	return strings.TrimSpace(vehicle) != ""
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < 5 {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
