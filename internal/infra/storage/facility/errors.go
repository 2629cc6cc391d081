package facility

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация площадки не найдена
	ErrConfigNotFound = errors.New("facility.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("facility.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("facility.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("facility.repository: failed to scan row")

	// ErrInvalidTimeValue возвращается, когда в БД хранится некорректное время
	ErrInvalidTimeValue = errors.New("facility.repository: invalid time value")
)
