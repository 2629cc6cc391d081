package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FacilityID int64           `json:"facilityId"`
	Date       string          `json:"date"`
	Timezone   string          `json:"timezone"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного временного слота
type AvailableSlot struct {
	Time            string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	AvailableCourts []int64 `json:"availableCourts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:            slot.Time.String(),
			DurationMinutes: slot.DurationMinutes,
			Price:           slot.Price,
			AvailableCourts: slot.AvailableCourts,
		}
	}

	return &AvailableSlotsResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date,
		Timezone:   resp.Timezone,
		Slots:      slots,
	}
}
