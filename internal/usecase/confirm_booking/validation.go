package confirm_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OrderRef == "" {
		return fmt.Errorf("%w: orderRef is required", ErrInvalidInput)
	}

	if req.PaymentRef == "" {
		return fmt.Errorf("%w: paymentRef is required", ErrInvalidInput)
	}

	if req.Signature == "" {
		return fmt.Errorf("%w: signature is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	seen := make(map[int64]bool, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		if id <= 0 {
			return fmt.Errorf("%w: slot ids must be positive", ErrInvalidInput)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate slot id %d", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	if req.TotalPrice <= 0 {
		return fmt.Errorf("%w: totalPrice must be positive", ErrInvalidInput)
	}

	return nil
}
