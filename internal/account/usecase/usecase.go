package usecase

import (
	"context"
	"fmt"

	"easyplug-admin/internal/account"
	"easyplug-admin/pkg/easyplug"
)

func (uc *implUseCase) Profile(ctx context.Context) (account.ProfileOutput, error) {
	if profile, ok := uc.cache.Get(profileKey); ok {
		return account.ProfileOutput{Profile: profile}, nil
	}

	profile, err := uc.api.MeFull(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Profile: %v", err)
		return account.ProfileOutput{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	uc.cache.Add(profileKey, profile)
	return account.ProfileOutput{Profile: profile}, nil
}

func (uc *implUseCase) UpdateUser(ctx context.Context, id string, input account.UserInput) (easyplug.User, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return easyplug.User{}, account.ErrNoChanges
	}

	user, err := uc.api.UpdateUser(ctx, id, fields)
	if err != nil {
		if easyplug.IsNotFound(err) {
			return easyplug.User{}, account.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "account.usecase.UpdateUser: %v", err)
		return easyplug.User{}, fmt.Errorf("failed to update user %s: %w", id, err)
	}

	uc.cache.Purge()
	return user, nil
}

func (uc *implUseCase) UploadProfilePicture(ctx context.Context, file easyplug.ImageFile) error {
	if err := uc.api.UploadProfilePicture(ctx, file); err != nil {
		uc.l.Errorf(ctx, "account.usecase.UploadProfilePicture: %v", err)
		return fmt.Errorf("failed to upload profile picture: %w", err)
	}
	uc.cache.Purge()
	return nil
}

func (uc *implUseCase) UpdateSellerInfo(ctx context.Context, id string, input account.SellerInfoInput) (easyplug.SellerInfo, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return easyplug.SellerInfo{}, account.ErrNoChanges
	}

	info, err := uc.api.UpdateSellerInfo(ctx, id, fields)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.UpdateSellerInfo: %v", err)
		return easyplug.SellerInfo{}, fmt.Errorf("failed to update seller info %s: %w", id, err)
	}

	uc.cache.Purge()
	return info, nil
}

func (uc *implUseCase) UpdateSellerInfoMe(ctx context.Context, input account.SellerInfoInput) (easyplug.SellerInfo, error) {
	fields := input.Fields()
	if len(fields) == 0 {
		return easyplug.SellerInfo{}, account.ErrNoChanges
	}

	info, err := uc.api.UpdateSellerInfoMe(ctx, fields)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.UpdateSellerInfoMe: %v", err)
		return easyplug.SellerInfo{}, fmt.Errorf("failed to update seller info: %w", err)
	}

	uc.cache.Purge()
	return info, nil
}

func (uc *implUseCase) UploadBusinessPicture(ctx context.Context, file easyplug.ImageFile) error {
	if err := uc.api.UploadBusinessPicture(ctx, file); err != nil {
		uc.l.Errorf(ctx, "account.usecase.UploadBusinessPicture: %v", err)
		return fmt.Errorf("failed to upload business picture: %w", err)
	}
	uc.cache.Purge()
	return nil
}
