package api

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/whiskers/catgraph/docs"
	"github.com/whiskers/catgraph/internal/api/graphql"
	"github.com/whiskers/catgraph/internal/api/handler"
	"github.com/whiskers/catgraph/internal/api/middleware"
)

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Schema    *gql.Schema
	Queries   graphql.QueryStore
	Probes    map[string]handler.Probe
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware("catgraph"))

	// --- GraphQL (bearer token optional; resolvers decide) ---
	gqlHandler := graphql.NewHandler(deps.Schema, deps.Queries)
	e.POST("/graphql", gqlHandler.Serve, middleware.Auth(deps.JWTSecret))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Probes)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
