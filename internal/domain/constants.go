package domain

// Границы часовых слотов. Часы задаются целыми числами, интервалы полуоткрытые.
const (
	MinBookingHour = 0
	MaxBookingHour = 23
)

// Ограничения на количество арендуемого инвентаря в одном бронировании
const (
	MaxRacketsPerBooking = 10
	MaxShoesPerBooking   = 10
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
