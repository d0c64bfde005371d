package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот конфликтует с существующим бронированием.
	// Конкретная причина (корт или тренер) доступна через SlotUnavailableError.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrCourtNotFound возвращается, когда корт не найден в справочнике
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotUnavailableError несет текст причины конфликта для отдачи клиенту дословно
type SlotUnavailableError struct {
	Reason string
}

// Error возвращает причину конфликта
func (e *SlotUnavailableError) Error() string {
	return e.Reason
}

// Is позволяет проверять ошибку через errors.Is(err, ErrSlotNotAvailable)
func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotNotAvailable
}
