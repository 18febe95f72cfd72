package usecase

import (
	"context"
	"fmt"
	"strconv"

	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) List(ctx context.Context, input inventory.ListInput) (inventory.ListOutput, error) {
	key := listCacheKey(input)
	if listings, ok := uc.listCache.Get(key); ok {
		return inventory.ListOutput{Listings: listings, Total: len(listings)}, nil
	}

	params := make(map[string]string)
	if input.Status != "" {
		params["status"] = input.Status
	}
	if input.Type != "" {
		params["type"] = input.Type
	}
	if input.Limit > 0 {
		params["limit"] = strconv.Itoa(input.Limit)
	}
	if input.Offset > 0 {
		params["offset"] = strconv.Itoa(input.Offset)
	}

	listings, err := uc.api.ListAdminListings(ctx, params)
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.List: %v", err)
		return inventory.ListOutput{}, fmt.Errorf("failed to list listings: %w", err)
	}

	uc.listCache.Add(key, listings)
	return inventory.ListOutput{Listings: listings, Total: len(listings)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (inventory.DetailOutput, error) {
	listing, err := uc.api.GetListing(ctx, id)
	if err != nil {
		if easyplug.IsNotFound(err) {
			return inventory.DetailOutput{}, inventory.ErrListingNotFound
		}
		uc.l.Errorf(ctx, "inventory.usecase.Detail: %v", err)
		return inventory.DetailOutput{}, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	return inventory.DetailOutput{Listing: listing}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.api.DeleteListing(ctx, id); err != nil {
		if easyplug.IsNotFound(err) {
			return inventory.ErrListingNotFound
		}
		uc.l.Errorf(ctx, "inventory.usecase.Delete: %v", err)
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	uc.listCache.Purge()
	return nil
}

func listCacheKey(input inventory.ListInput) string {
	return fmt.Sprintf("%s|%s|%d|%d", input.Status, input.Type, input.Limit, input.Offset)
}
