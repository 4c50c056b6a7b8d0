package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/common/graceful"
	commonhttp "github.com/ezfinancial/go-entry-engine/internal/common/http"
	"github.com/ezfinancial/go-entry-engine/internal/common/http/middleware"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/deliveries/http/health"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	v1accounts "github.com/ezfinancial/go-entry-engine/internal/deliveries/http/v1/accounts"
	v1duplicates "github.com/ezfinancial/go-entry-engine/internal/deliveries/http/v1/duplicates"
	v1entries "github.com/ezfinancial/go-entry-engine/internal/deliveries/http/v1/entries"
	v1ledger "github.com/ezfinancial/go-entry-engine/internal/deliveries/http/v1/ledger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	duplicateService services.DuplicateService,
	proposalService services.ProposalService,
	rankerService services.RankerService,
	approvalService services.ApprovalService,
	ledgerService services.LedgerService,
	accountService services.AccountService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", log.GetCorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth(), m.ResolveOwner())
	// v1Group register api
	v1duplicates.New(v1Group, duplicateService)
	v1entries.New(v1Group, proposalService, approvalService, rankerService, m)
	v1accounts.New(v1Group, accountService)
	v1ledger.New(v1Group, ledgerService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
