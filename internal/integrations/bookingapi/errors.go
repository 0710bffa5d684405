package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (не удалось собрать запрос)
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrUnavailable возвращается, когда API недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("bookingapi client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrNotAnArray возвращается, когда GET /api/packages вернул не массив
	ErrNotAnArray = errors.New("bookingapi client: packages response is not an array")

	// ErrMissingBookingID возвращается, когда 2xx ответ на бронирование не содержит bookingId
	ErrMissingBookingID = errors.New("bookingapi client: response has no bookingId")

	// ErrRejected возвращается, когда API отклонил бронирование (4xx)
	ErrRejected = errors.New("bookingapi client: booking rejected")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")
)
