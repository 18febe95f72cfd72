package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/guard"
	"easyplug-admin/internal/session"
	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared service dependencies handed to the domains.
	api   *easyplug.Client
	store *session.Store
	guard *guard.Guard

	googleClientID string
	requestsPerMin int

	subscriptionsTTL time.Duration
	profileTTL       time.Duration
	metricsTTL       time.Duration
	wizardSessionTTL time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	API   *easyplug.Client
	Store *session.Store
	Guard *guard.Guard

	GoogleClientID string
	RequestsPerMin int

	SubscriptionsTTL time.Duration
	ProfileTTL       time.Duration
	MetricsTTL       time.Duration
	WizardSessionTTL time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		api:              cfg.API,
		store:            cfg.Store,
		guard:            cfg.Guard,
		googleClientID:   cfg.GoogleClientID,
		requestsPerMin:   cfg.RequestsPerMin,
		subscriptionsTTL: cfg.SubscriptionsTTL,
		profileTTL:       cfg.ProfileTTL,
		metricsTTL:       cfg.MetricsTTL,
		wizardSessionTTL: cfg.WizardSessionTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.api == nil {
		return errors.New("easyplug client is required")
	}
	if srv.store == nil {
		return errors.New("session store is required")
	}
	if srv.guard == nil {
		return errors.New("guard is required")
	}
	return nil
}
