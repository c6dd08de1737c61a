package complete_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	completePayment "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotNo      = "некорректный номер места"
	msgInvalidInput       = "некорректные параметры платежа"
	msgNotBooked          = "место не занято, оплата уже была зафиксирована или бронирование исчезло"
)

type Handler struct {
	useCase CompletePaymentUseCase
	logger  Logger
}

func NewHandler(useCase CompletePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotNo}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotNo, err := strconv.Atoi(mux.Vars(r)["slotNo"])
	if err != nil {
		h.logger.Warn("POST /slots/{slotNo}/payment - Invalid slot number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotNo)
		return
	}

	var req CompletePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/%d/payment - Invalid request body: %v", slotNo, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotNo))
	if err != nil {
		switch {
		case errors.Is(err, completePayment.ErrInvalidInput):
			h.logger.Warn("POST /slots/%d/payment - Invalid input: %v", slotNo, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, completePayment.ErrNotBooked):
			h.logger.Warn("POST /slots/%d/payment - Slot not booked", slotNo)
			handlers.RespondNotFound(w, msgNotBooked)

		default:
			h.logger.Error("POST /slots/%d/payment - Failed to complete payment: %v", slotNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/%d/payment - Payment recorded: id=%d, amount=%.2f",
		slotNo, result.PaymentID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
