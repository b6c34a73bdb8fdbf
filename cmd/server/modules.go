package main

import (
	"net/http"

	"github.com/JaimeStill/taxi-service/internal/accounts"
	"github.com/JaimeStill/taxi-service/internal/api"
	"github.com/JaimeStill/taxi-service/internal/cars"
	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/drivers"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
	"github.com/JaimeStill/taxi-service/internal/manufacturers"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/lifecycle"
	"github.com/JaimeStill/taxi-service/pkg/middleware"
	"github.com/JaimeStill/taxi-service/pkg/module"
	"github.com/JaimeStill/taxi-service/web/taxi"
)

type Modules struct {
	Manufacturers *module.Module
	Drivers       *module.Module
	Cars          *module.Module
	Accounts      *module.Module
	API           *module.Module
	Static        *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config, domain *Domain, v *views.Views) *Modules {
	logger := infra.Logger
	maxBytes := cfg.Server.MaxFormSizeBytes()

	entity := func(prefix string, router http.Handler) *module.Module {
		m := module.New(prefix, router)
		m.Use(middleware.AddSlash())
		m.Use(middleware.MaxBytes(maxBytes))
		m.Use(middleware.Logger(logger))
		m.Use(infra.Sessions.RequireLogin())
		return m
	}

	mfrs := manufacturers.NewHandler(domain.Manufacturers, v, logger.With("module", "manufacturers"))
	drvs := drivers.NewHandler(domain.Drivers, v, logger.With("module", "drivers"))
	crs := cars.NewHandler(domain.Cars, domain.Manufacturers, domain.Drivers, v, logger.With("module", "cars"))

	acct := accounts.NewHandler(domain.Drivers, infra.Sessions, v, logger.With("module", "accounts"))
	accountsModule := module.New("/accounts", acct.Router())
	accountsModule.Use(middleware.AddSlash())
	accountsModule.Use(middleware.MaxBytes(maxBytes))
	accountsModule.Use(middleware.Logger(logger))
	accountsModule.Use(infra.Sessions.Load())

	apiModule := api.NewModule(
		cfg,
		infra,
		manufacturers.NewAPIHandler(domain.Manufacturers, logger, cfg.Pagination),
		drivers.NewAPIHandler(domain.Drivers, logger, cfg.Pagination),
		cars.NewAPIHandler(domain.Cars, logger, cfg.Pagination),
	)

	return &Modules{
		Manufacturers: entity("/manufacturers", mfrs.Router()),
		Drivers:       entity("/drivers", drvs.Router()),
		Cars:          entity("/cars", crs.Router()),
		Accounts:      accountsModule,
		API:           apiModule,
		Static:        taxi.NewStaticModule(),
	}
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Manufacturers)
	router.Mount(m.Drivers)
	router.Mount(m.Cars)
	router.Mount(m.Accounts)
	router.Mount(m.API)
	router.Mount(m.Static)
}

// buildRouter registers the native routes: the home page, health probes and
// the 404 fallback for anything no module claims.
func buildRouter(ready lifecycle.ReadinessChecker, home, notFound http.Handler) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", home.ServeHTTP)

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("/", notFound.ServeHTTP)

	return router
}
