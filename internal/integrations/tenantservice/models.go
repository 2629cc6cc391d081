package tenantservice

// FacilityStatus статус площадки в каталоге тенантов
type FacilityStatus string

const (
	FacilityStatusActive   FacilityStatus = "active"
	FacilityStatusArchived FacilityStatus = "archived"
)

// Facility модель площадки из TenantService
type Facility struct {
	ID         int64          `json:"id"`
	TenantID   int64          `json:"tenant_id"`
	Name       string         `json:"name"`
	City       string         `json:"city"`
	Status     FacilityStatus `json:"status"`
	ManagerIDs []int64        `json:"manager_ids"`
}

// IsActive returns true if the facility accepts bookings.
func (f *Facility) IsActive() bool {
	return f.Status == FacilityStatusActive
}

// HasManager проверяет, что пользователь является менеджером площадки
func (f *Facility) HasManager(userID int64) bool {
	for _, id := range f.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от TenantService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
