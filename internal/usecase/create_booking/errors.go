package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля заявки
	ErrMissingFields = errors.New("create_booking: required fields are missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования (завтра .. +3 месяца)
	ErrDateOutOfRange = errors.New("create_booking: booking date is outside the booking window")

	// ErrInvalidAlternativeDate возвращается, когда альтернативная дата не позже сегодняшнего дня
	ErrInvalidAlternativeDate = errors.New("create_booking: invalid alternative date")

	// ErrPackageNotFound возвращается, когда пакета нет в каталоге
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrBookingIDExhausted возвращается, когда не удалось подобрать свободный номер бронирования
	ErrBookingIDExhausted = errors.New("create_booking: failed to allocate booking id")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
