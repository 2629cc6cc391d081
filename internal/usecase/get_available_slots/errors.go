package get_available_slots

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена в каталоге тенантов
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
