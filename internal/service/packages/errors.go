package packages

import "errors"

var (
	// ErrInvalidKind возвращается для неизвестного типа пакета
	ErrInvalidKind = errors.New("packages: invalid package type")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("packages: package not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("packages: internal error")
)
