package get_summary

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	Total        int     `json:"total"`
	Occupied     int     `json:"occupied"`
	Free         int     `json:"free"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type Handler struct {
	service ReportingService
	logger  Logger
}

func NewHandler(service ReportingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.OccupancySummary(r.Context())
	if err != nil {
		h.logger.Error("GET /summary - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.SummaryResponse) *SummaryResponse {
	return &SummaryResponse{
		Total:        resp.Total,
		Occupied:     resp.Occupied,
		Free:         resp.Free,
		TotalRevenue: resp.TotalRevenue,
	}
}
