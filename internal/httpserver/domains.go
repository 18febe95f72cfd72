package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "easyplug-admin/internal/account/delivery/http"
	accountUC "easyplug-admin/internal/account/usecase"
	authHTTP "easyplug-admin/internal/auth/delivery/http"
	authUC "easyplug-admin/internal/auth/usecase"
	dashboardHTTP "easyplug-admin/internal/dashboard/delivery/http"
	dashboardUC "easyplug-admin/internal/dashboard/usecase"
	inventoryHTTP "easyplug-admin/internal/inventory/delivery/http"
	inventoryUC "easyplug-admin/internal/inventory/usecase"
	"easyplug-admin/internal/middleware"
	subscriptionHTTP "easyplug-admin/internal/subscription/delivery/http"
	subscriptionUC "easyplug-admin/internal/subscription/usecase"
)

// setupDomains initializes every domain and registers its routes. The
// subscription usecase doubles as the wizard's tier reference source, so it
// comes first.
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	subUC := subscriptionUC.New(srv.l, srv.api, srv.subscriptionsTTL)
	subscriptionHTTP.RegisterRoutes(api, subscriptionHTTP.New(srv.l, subUC), mw)
	srv.l.Infof(ctx, "Subscription domain registered")

	invUC := inventoryUC.New(srv.l, srv.api, subUC, srv.metricsTTL, srv.wizardSessionTTL)
	inventoryHTTP.RegisterRoutes(api, inventoryHTTP.New(srv.l, invUC), mw)
	srv.l.Infof(ctx, "Inventory domain registered")

	aUC := authUC.New(srv.l, srv.api, srv.store, srv.googleClientID)
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, aUC), mw)
	srv.l.Infof(ctx, "Auth domain registered")

	accUC := accountUC.New(srv.l, srv.api, srv.profileTTL)
	accountHTTP.RegisterRoutes(api, accountHTTP.New(srv.l, accUC), mw)
	srv.l.Infof(ctx, "Account domain registered")

	dashUC := dashboardUC.New(srv.l, srv.api, srv.metricsTTL)
	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, dashUC), mw)
	srv.l.Infof(ctx, "Dashboard domain registered")
}
