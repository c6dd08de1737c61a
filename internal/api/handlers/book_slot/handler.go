package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите имя владельца и номер транспортного средства"
	msgInvalidSlot        = "номер места вне диапазона парковки"
	msgSlotTaken          = "место уже занято"
	msgLotFull            = "свободных мест нет"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, error=%v", session.Username, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSlot.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user=%s, preferred=%v", session.Username, req.PreferredSlot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookSlot.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user=%s, preferred=%v", session.Username, req.PreferredSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookSlot.ErrLotFull):
			h.logger.Warn("POST /bookings - Lot full: user=%s", session.Username)
			handlers.RespondError(w, http.StatusConflict, msgLotFull)

		default:
			h.logger.Error("POST /bookings - Failed to book slot: user=%s, error=%v", session.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Slot booked: slot=%d, user=%s", result.SlotNo, session.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
