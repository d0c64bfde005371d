package pricing

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден в справочнике
	ErrCourtNotFound = errors.New("pricing: court not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
