package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// ListingAPI is the slice of the EasyPlug client this usecase talks to.
type ListingAPI interface {
	CreateListing(ctx context.Context, payload easyplug.ListingPayload) (easyplug.Listing, error)
	UpdateListing(ctx context.Context, id string, payload easyplug.ListingPayload) (easyplug.Listing, error)
	GetListing(ctx context.Context, id string) (easyplug.Listing, error)
	ListAdminListings(ctx context.Context, params map[string]string) ([]easyplug.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// SubscriptionSource provides the subscription reference list the wizard
// validates against.
type SubscriptionSource interface {
	Subscriptions(ctx context.Context) ([]easyplug.Subscription, error)
}

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	l    log.Logger
	api  ListingAPI
	subs SubscriptionSource

	mu         sync.Mutex
	sessions   map[string]*wizardSession
	sessionTTL time.Duration

	listCache *expirable.LRU[string, []easyplug.Listing]
}

// New creates a new inventory UseCase implementation. listTTL bounds how long
// the admin listing collection is served from cache; sessionTTL bounds how
// long an idle wizard session keeps its spooled images before being reaped.
func New(l log.Logger, api ListingAPI, subs SubscriptionSource, listTTL, sessionTTL time.Duration) *implUseCase {
	if listTTL <= 0 {
		listTTL = 30 * time.Second
	}
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	return &implUseCase{
		l:          l,
		api:        api,
		subs:       subs,
		sessions:   make(map[string]*wizardSession),
		sessionTTL: sessionTTL,
		listCache:  expirable.NewLRU[string, []easyplug.Listing](16, nil, listTTL),
	}
}

// wizardSession is one open listing wizard. All access goes through uc.mu;
// the admin surface is effectively single-threaded per session.
type wizardSession struct {
	id          string
	edit        bool
	listingID   string
	step        inventory.Step
	lastTouched time.Time

	values           inventory.FormValues
	prevSubscription string

	images       []storedImage
	previews     []previewHandle
	imageWarning string

	subs []easyplug.Subscription
}

// storedImage is a picked file spooled to disk for the session's lifetime.
type storedImage struct {
	name string
	path string
}

// previewHandle is one live preview URL; regenerating the set invalidates
// all prior handles.
type previewHandle struct {
	id  string
	url string
}
