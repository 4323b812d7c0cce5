package tracking_number

import (
	"crypto/rand"
	"io"
	"math/big"
)

const (
	Length   = 12
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type TrackingNumberFactory struct {
	random io.Reader
}

func New() *TrackingNumberFactory {
	return &TrackingNumberFactory{random: rand.Reader}
}

// NewWithReader для тестов с детерминированным источником.
func NewWithReader(random io.Reader) *TrackingNumberFactory {
	return &TrackingNumberFactory{random: random}
}

// Generate возвращает случайный номер из Length символов Alphabet.
// Уникальность не гарантируется, её проверяет уникальный индекс в БД.
func (f *TrackingNumberFactory) Generate() (string, error) {
	alphabetSize := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(f.random, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}

func IsValid(trackingNumber string) bool {
	if len(trackingNumber) != Length {
		return false
	}
	for i := 0; i < len(trackingNumber); i++ {
		c := trackingNumber[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
