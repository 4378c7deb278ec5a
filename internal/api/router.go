// Package api assembles the HTTP surface: the GraphQL endpoint, the
// subscription stream, health probes, and metrics, wrapped in the shared
// middleware chain.
package api

import (
	"net/http"

	"github.com/gatherly/server/internal/api/handlers"
	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/graph"
	"github.com/gatherly/server/internal/metrics"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter builds the root handler. ready is probed by /readyz and may be
// nil when there is nothing to check.
func NewRouter(cfg config.Config, resolver *graph.Resolver, ready func() error, logger zerolog.Logger) (http.Handler, error) {
	schema, err := resolver.Schema()
	if err != nil {
		return nil, err
	}

	gql := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.Environment != "production",
	})

	mux := http.NewServeMux()
	mux.Handle("/graphql", gql)
	mux.Handle("/graphql/stream", handlers.SubscriptionStream(schema, logger))
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(ready))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	var h http.Handler = mux
	h = middleware.RateLimit(cfg.RateLimit)(h)
	h = metrics.HTTPMiddleware(h)
	h = middleware.RequestLogging(logger)(h)
	h = middleware.CorrelationID(logger)(h)
	return h, nil
}
