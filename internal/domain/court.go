package domain

// CourtType represents the category of a court
type CourtType string

const (
	CourtIndoor  CourtType = "Indoor"
	CourtOutdoor CourtType = "Outdoor"
)

// Court represents a bookable court.
// Справочные данные: создаются миграциями и не изменяются через API.
type Court struct {
	ID        string
	Name      string
	Type      CourtType
	BasePrice float64 // цена за час
}
