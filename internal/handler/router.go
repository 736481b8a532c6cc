package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/handler/chat"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/middleware"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/observability"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/stylist"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(stylistSvc *stylist.Service, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(observability.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "Roblox Outfit Marketplace Agents API",
		})
	})
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	chatHandler := chat.New(stylistSvc, logger)
	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
	})

	return r
}
