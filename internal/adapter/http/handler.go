package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crowdfund/internal/core/port"
)

// Options tunes request handling. Zero values select defaults.
type Options struct {
	// SignatureMaxSkew bounds the age of a signed request. Defaults to 5m.
	SignatureMaxSkew time.Duration
	// MaxBodyBytes caps request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64
	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
	// Now overrides the clock used to check signature timestamps.
	Now func() time.Time
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Mutating routes require a signed request proving control of the
// caller's key; read routes are public.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	opts   Options
	replay *replayGuard
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	if opts.SignatureMaxSkew <= 0 {
		opts.SignatureMaxSkew = 5 * time.Minute
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := &Handler{
		svc:    svc,
		logger: logger,
		opts:   opts,
		// a timestamp stays acceptable for skew on either side of now
		replay: newReplayGuard(2 * opts.SignatureMaxSkew),
	}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{address}", h.handleGetCampaign)
		r.Get("/accounts/{address}", h.handleGetBalance)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSigner)
			r.Post("/campaigns", h.handleCreate)
			r.Post("/campaigns/{address}/donations", h.handleDonate)
			r.Post("/campaigns/{address}/withdrawals", h.handleWithdraw)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
