package get_price_quote

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена в каталоге тенантов
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrCourtNotFound возвращается, когда корт не найден в конфигурации площадки
	ErrCourtNotFound = errors.New("court not found")

	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime возвращается при некорректной строке времени
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
