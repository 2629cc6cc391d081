package domain

// Court represents a bookable court within a facility.
type Court struct {
	ID       int64
	Name     string
	Type     string  // например "padel", "tennis"
	Surface  *string // покрытие (опционально)
	IsActive bool

	// BasePrice переопределяет базовую цену площадки для этого корта
	// nil = используется EntityConfiguration.BasePrice
	BasePrice *float64
}
