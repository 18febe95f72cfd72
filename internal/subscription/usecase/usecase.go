package usecase

import (
	"context"
	"fmt"
	"strconv"

	"easyplug-admin/internal/subscription"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) List(ctx context.Context) (subscription.ListOutput, error) {
	subs, err := uc.Subscriptions(ctx)
	if err != nil {
		return subscription.ListOutput{}, err
	}
	return subscription.ListOutput{Subscriptions: subs}, nil
}

func (uc *implUseCase) Subscriptions(ctx context.Context) ([]easyplug.Subscription, error) {
	if subs, ok := uc.cache.Get(listKey); ok {
		return subs, nil
	}

	subs, err := uc.api.ListSubscriptions(ctx, nil)
	if err != nil {
		uc.l.Errorf(ctx, "subscription.usecase.Subscriptions: %v", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	uc.cache.Add(listKey, subs)
	return subs, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (subscription.DetailOutput, error) {
	sub, err := uc.api.GetSubscription(ctx, id)
	if err != nil {
		if easyplug.IsNotFound(err) {
			return subscription.DetailOutput{}, subscription.ErrNotFound
		}
		uc.l.Errorf(ctx, "subscription.usecase.Detail: %v", err)
		return subscription.DetailOutput{}, fmt.Errorf("failed to get subscription %s: %w", id, err)
	}
	return subscription.DetailOutput{Subscription: sub}, nil
}

func (uc *implUseCase) Create(ctx context.Context, input subscription.CreateInput) (subscription.DetailOutput, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return subscription.DetailOutput{}, &subscription.ValidationError{Fields: errs}
	}

	sub, err := uc.api.CreateSubscription(ctx, toFields(input))
	if err != nil {
		uc.l.Errorf(ctx, "subscription.usecase.Create: %v", err)
		return subscription.DetailOutput{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.cache.Purge()
	return subscription.DetailOutput{Subscription: sub}, nil
}

func (uc *implUseCase) Update(ctx context.Context, id string, input subscription.UpdateInput) (subscription.DetailOutput, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return subscription.DetailOutput{}, &subscription.ValidationError{Fields: errs}
	}

	sub, err := uc.api.UpdateSubscription(ctx, id, toFields(input))
	if err != nil {
		if easyplug.IsNotFound(err) {
			return subscription.DetailOutput{}, subscription.ErrNotFound
		}
		uc.l.Errorf(ctx, "subscription.usecase.Update: %v", err)
		return subscription.DetailOutput{}, fmt.Errorf("failed to update subscription %s: %w", id, err)
	}

	uc.cache.Purge()
	return subscription.DetailOutput{Subscription: sub}, nil
}

// toFields renders the validated form for the wire. Numbers go out as
// numbers; Validate has already proven they parse.
func toFields(in subscription.CreateInput) map[string]any {
	hours, _ := strconv.Atoi(in.DurationInHours)
	price, _ := strconv.ParseFloat(in.Price, 64)
	return map[string]any{
		"name":            in.Name,
		"durationInHours": hours,
		"price":           price,
		"description":     in.Description,
		"status":          in.Status,
	}
}
