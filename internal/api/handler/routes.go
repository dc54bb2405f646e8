package handler

import (
	"net/http"

	"github.com/franpass87/esperienze-insights-api/internal/api/handler/router"
	"github.com/franpass87/esperienze-insights-api/internal/scheduler"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/analyzing"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/authenticating"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting"
	"github.com/franpass87/esperienze-insights-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/:kind",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/analytics/:kind/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/costs/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Digest(service digesting.Dispatcher, syncService *scheduler.DigestSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/digest/send",
			Method:      http.MethodPost,
			Handler:     SendDigest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/digest/status",
			Method:      http.MethodGet,
			Handler:     GetDigestStatus(service, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/digest/settings",
			Method:      http.MethodGet,
			Handler:     GetDigestSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/digest/settings",
			Method:      http.MethodPut,
			Handler:     UpdateDigestSettings(service, syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
