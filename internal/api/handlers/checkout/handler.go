package checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	checkoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout"
)

const (
	msgInvalidSlotNo = "некорректный номер места"
	msgInvalidSlot   = "номер места вне диапазона парковки"
	msgNotBooked     = "место не занято"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotNo}/checkout
// Возвращает котировку (часы, сумма); оплата подтверждается отдельным вызовом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotNo, err := strconv.Atoi(mux.Vars(r)["slotNo"])
	if err != nil {
		h.logger.Warn("POST /slots/{slotNo}/checkout - Invalid slot number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotNo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkoutUC.Request{SlotNo: slotNo})
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrInvalidSlot):
			h.logger.Warn("POST /slots/%d/checkout - Slot out of range", slotNo)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, checkoutUC.ErrNotBooked):
			h.logger.Warn("POST /slots/%d/checkout - Slot not booked", slotNo)
			handlers.RespondNotFound(w, msgNotBooked)

		default:
			h.logger.Error("POST /slots/%d/checkout - Failed to quote: %v", slotNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%d/checkout - Quoted: hours=%d, amount=%.2f", slotNo, result.Hours, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
