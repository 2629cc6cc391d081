package get_price_quote

import (
	getPriceQuote "github.com/m04kA/SMC-CourtService/internal/usecase/get_price_quote"
)

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	FacilityID int64   `json:"facilityId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	CourtID    *int64  `json:"courtId,omitempty"`
	Price      float64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPriceQuote.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date,
		Time:       resp.Time,
		CourtID:    resp.CourtID,
		Price:      resp.Price,
	}
}
