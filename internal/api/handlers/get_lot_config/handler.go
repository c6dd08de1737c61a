package get_lot_config

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// LotConfigResponse HTTP response model с действующими параметрами парковки
type LotConfigResponse struct {
	TotalSlots                int     `json:"totalSlots"`
	PricePerHour              float64 `json:"pricePerHour"`
	Currency                  string  `json:"currency"`
	PlateRecognitionAvailable bool    `json:"plateRecognitionAvailable"`
}

type Handler struct {
	totalSlots   int
	pricePerHour float64
	currency     string
	recognizer   PlateRecognizer
	logger       Logger
}

func NewHandler(totalSlots int, pricePerHour float64, currency string, recognizer PlateRecognizer, logger Logger) *Handler {
	return &Handler{
		totalSlots:   totalSlots,
		pricePerHour: pricePerHour,
		currency:     currency,
		recognizer:   recognizer,
		logger:       logger,
	}
}

// Handle GET /api/v1/lot/config (только для администратора)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, LotConfigResponse{
		TotalSlots:                h.totalSlots,
		PricePerHour:              h.pricePerHour,
		Currency:                  h.currency,
		PlateRecognitionAvailable: h.recognizer.Available(),
	})
}
