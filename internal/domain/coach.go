package domain

// Coach represents a coach available for booking.
// Справочные данные: создаются миграциями и не изменяются через API.
type Coach struct {
	ID         string
	Name       string
	Specialty  string
	HourlyRate float64
}
