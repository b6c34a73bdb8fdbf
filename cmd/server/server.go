package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/JaimeStill/taxi-service/internal/config"
	"github.com/JaimeStill/taxi-service/internal/home"
	"github.com/JaimeStill/taxi-service/internal/infrastructure"
	"github.com/JaimeStill/taxi-service/internal/server"
	"github.com/JaimeStill/taxi-service/internal/views"
	"github.com/JaimeStill/taxi-service/pkg/middleware"
	"github.com/JaimeStill/taxi-service/pkg/module"
	"github.com/JaimeStill/taxi-service/web/taxi"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	router, modules, err := newRouter(infra, cfg)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info("server initialized", "addr", cfg.Server.Addr())

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, router, infra.Logger),
	}, nil
}

// newRouter assembles the domain, its modules and the native routes, and
// binds session lookups to the drivers table.
func newRouter(infra *infrastructure.Infrastructure, cfg *config.Config) (*module.Router, *Modules, error) {
	renderer, err := taxi.NewRenderer("")
	if err != nil {
		return nil, nil, fmt.Errorf("templates: %w", err)
	}
	v := views.New(renderer, infra.Logger.With("system", "views"))

	domain := NewDomain(infra, cfg.Pagination)
	infra.Sessions.SetLookup(driverLookup(domain.Drivers))

	modules := NewModules(infra, cfg, domain, v)

	homeHandler := home.NewHandler(domain.Drivers, domain.Cars, domain.Manufacturers, v)
	homePage := chain(http.HandlerFunc(homeHandler.Index),
		middleware.Logger(infra.Logger),
		infra.Sessions.RequireLogin(),
	)
	notFound := chain(http.HandlerFunc(v.NotFound),
		middleware.Logger(infra.Logger),
		infra.Sessions.Load(),
	)

	router := buildRouter(infra.Lifecycle, homePage, notFound)
	modules.Mount(router)
	return router, modules, nil
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

// chain wraps h with mws; the first middleware is outermost.
func chain(h http.Handler, mws ...middleware.Middleware) http.Handler {
	sys := middleware.New()
	for _, mw := range mws {
		sys.Use(mw)
	}
	return sys.Apply(h)
}
