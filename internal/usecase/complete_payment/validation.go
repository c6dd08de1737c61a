package complete_payment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует запрос на подтверждение оплаты
func validateRequest(req *Request) error {
	if req.SlotNo < 1 {
		return fmt.Errorf("%w: slot number must be positive", ErrInvalidInput)
	}

	if req.Hours < 1 {
		return fmt.Errorf("%w: hours must be at least 1", ErrInvalidInput)
	}

	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if !req.Method.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	if req.TxnID != nil {
		trimmed := strings.TrimSpace(*req.TxnID)
		if trimmed == "" {
			req.TxnID = nil
		} else if len(trimmed) > domain.MaxTxnIDLen {
			return fmt.Errorf("%w: transaction id is too long", ErrInvalidInput)
		} else {
			*req.TxnID = trimmed
		}
	}

	return nil
}
