package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swipelytics/insights-api/internal/api/handler/router"
	"github.com/swipelytics/insights-api/internal/usecases/authenticating"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
	"github.com/swipelytics/insights-api/internal/usecases/usageprocessing"
	"github.com/swipelytics/insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Profiles(service usageprocessing.Ingester) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/profiles",
			Method:      http.MethodPost,
			Handler:     IngestProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Demographics(service demographics.Reader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/demographics",
			Method:      http.MethodGet,
			Handler:     ListDemographics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/demographics/:id",
			Method:      http.MethodGet,
			Handler:     GetDemographic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:   "/v1/cron/demographics/run",
			Method: http.MethodPost,
			// A checagem de privilégio fica no handler: a rota também é
			// acessível pelo cron autenticado via segredo compartilhado
			Handler: RunDemographicsSync(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
