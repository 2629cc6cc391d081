package get_price_quote

// Request модель запроса на расчет цены слота
type Request struct {
	FacilityID int64  // ID площадки
	Date       string // Дата в формате YYYY-MM-DD (гражданский день площадки)
	Time       string // Настенное время начала слота "HH:MM"
	CourtID    *int64 // ID корта (опционально: без корта цена агрегированная)
}

// Response модель ответа с рассчитанной ценой
type Response struct {
	FacilityID int64   // ID площадки
	Date       string  // Дата слота
	Time       string  // Время начала слота
	CourtID    *int64  // ID корта, если был указан
	Price      float64 // Цена в валюте площадки
}
