package book_slot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// normalizeRequest очищает и нормализует входные данные запроса
// Имя владельца и номер ТС обрезаются по пробелам,
// номер ТС приводится к верхнему регистру
func normalizeRequest(req *Request) {
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	req.VehicleNo = strings.ToUpper(strings.TrimSpace(req.VehicleNo))
}

// validateRequest валидирует нормализованный запрос
func validateRequest(req *Request) error {
	if req.OwnerName == "" {
		return fmt.Errorf("%w: owner name is required", ErrInvalidInput)
	}
	if len(req.OwnerName) > domain.MaxOwnerNameLen {
		return fmt.Errorf("%w: owner name is too long", ErrInvalidInput)
	}

	if req.VehicleNo == "" {
		return fmt.Errorf("%w: vehicle number is required", ErrInvalidInput)
	}
	if len(req.VehicleNo) > domain.MaxVehicleNoLen {
		return fmt.Errorf("%w: vehicle number is too long", ErrInvalidInput)
	}

	if req.Session.Username == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	return nil
}
