package recognize_plate

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgEmptyImage = "изображение не передано"

	// maxImageSize предельный размер изображения
	maxImageSize = 8 << 20 // 8 MiB
)

// RecognizeResponse HTTP response model
// Результат — обычный непроверенный ввод для поля vehicleNo:
// корректность распознанного номера не гарантируется
type RecognizeResponse struct {
	Plate      string `json:"plate"`
	Recognized bool   `json:"recognized"`
}

type Handler struct {
	recognizer PlateRecognizer
	logger     Logger
}

func NewHandler(recognizer PlateRecognizer, logger Logger) *Handler {
	return &Handler{
		recognizer: recognizer,
		logger:     logger,
	}
}

// Handle POST /api/v1/plates/recognize
// Тело запроса — байты изображения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageSize))
	if err != nil || len(image) == 0 {
		h.logger.Warn("POST /plates/recognize - Empty or oversized image: %v", err)
		handlers.RespondBadRequest(w, msgEmptyImage)
		return
	}

	plate, recognized := h.recognizer.RecognizeWithGracefulDegradation(r.Context(), image)

	handlers.RespondJSON(w, http.StatusOK, RecognizeResponse{
		Plate:      plate,
		Recognized: recognized,
	})
}
