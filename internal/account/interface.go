package account

import (
	"context"

	"easyplug-admin/pkg/easyplug"
)

// UseCase covers profile editing: the full-profile view plus user and
// seller-info mutations, any of which invalidate the cached profile.
type UseCase interface {
	Profile(ctx context.Context) (ProfileOutput, error)
	UpdateUser(ctx context.Context, id string, input UserInput) (easyplug.User, error)
	UploadProfilePicture(ctx context.Context, file easyplug.ImageFile) error
	UpdateSellerInfo(ctx context.Context, id string, input SellerInfoInput) (easyplug.SellerInfo, error)
	UpdateSellerInfoMe(ctx context.Context, input SellerInfoInput) (easyplug.SellerInfo, error)
	UploadBusinessPicture(ctx context.Context, file easyplug.ImageFile) error
}
