package get_available_slots

import (
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FacilityID int64  // ID площадки
	Date       string // Дата в формате YYYY-MM-DD (гражданский день площадки)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	FacilityID int64  // ID площадки
	Date       string // Дата, на которую запрашивались слоты
	Timezone   string // Гражданская таймзона, в которой указаны времена слотов
	Slots      []Slot // Список доступных слотов (хронологический порядок)
}

// Slot модель доступного временного слота
type Slot struct {
	Time            types.TimeString // Настенное время начала слота (например, "10:30")
	DurationMinutes int              // Длительность слота в минутах
	Price           float64          // Агрегированная цена слота (без привязки к корту)
	AvailableCourts []int64          // ID свободных кортов
}
