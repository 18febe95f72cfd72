package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// AccountAPI is the slice of the EasyPlug client this usecase talks to.
type AccountAPI interface {
	MeFull(ctx context.Context) (easyplug.Profile, error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) (easyplug.User, error)
	UploadProfilePicture(ctx context.Context, file easyplug.ImageFile) error
	UpdateSellerInfo(ctx context.Context, id string, fields map[string]any) (easyplug.SellerInfo, error)
	UpdateSellerInfoMe(ctx context.Context, fields map[string]any) (easyplug.SellerInfo, error)
	UploadBusinessPicture(ctx context.Context, file easyplug.ImageFile) error
}

const profileKey = "me"

type implUseCase struct {
	l   log.Logger
	api AccountAPI

	cache *expirable.LRU[string, easyplug.Profile]
}

// New creates a new account UseCase implementation. profileTTL bounds how
// long the full profile is served from cache between mutations.
func New(l log.Logger, api AccountAPI, profileTTL time.Duration) *implUseCase {
	if profileTTL <= 0 {
		profileTTL = time.Minute
	}
	return &implUseCase{
		l:     l,
		api:   api,
		cache: expirable.NewLRU[string, easyplug.Profile](1, nil, profileTTL),
	}
}
