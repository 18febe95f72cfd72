package usecase

import (
	"context"
	"time"

	"easyplug-admin/internal/inventory"
)

func (uc *implUseCase) Pay(ctx context.Context, sessionID string, input inventory.PayInput) (inventory.PayOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.session(ctx, sessionID)
	if !ok {
		return inventory.PayOutput{}, inventory.ErrSessionNotFound
	}
	if s.step != inventory.StepPayment {
		return inventory.PayOutput{}, inventory.ErrWrongStep
	}

	var message string
	switch input.Method {
	case inventory.PayMethodMasterCard:
		if !input.Card.Complete(time.Now()) {
			return inventory.PayOutput{}, inventory.ErrCardIncomplete
		}
		message = "Payment successful"
	case inventory.PayMethodCapitec:
		message = "Capitec Pay simulated"
	default:
		return inventory.PayOutput{}, inventory.ErrUnknownPayMethod
	}

	uc.teardown(ctx, s)
	delete(uc.sessions, sessionID)

	return inventory.PayOutput{
		Message:  message,
		Redirect: "/inventory",
	}, nil
}
