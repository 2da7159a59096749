package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Resolutions      *prometheus.CounterVec
	ResolverRequests *prometheus.CounterVec
	RequestSeconds   *prometheus.HistogramVec
	Fallbacks        prometheus.Counter
	LocationErrors   *prometheus.CounterVec
	Superseded       prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Resolutions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_resolutions_total",
			Help: "Total number of finished location requests.",
		}, []string{"status"}),
		ResolverRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_resolver_requests_total",
			Help: "Total number of requests sent to address resolvers.",
		}, []string{"resolver", "outcome"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hermes_resolver_request_duration_seconds",
			Help:    "Duration of requests to the address resolvers.",
			Buckets: prometheus.DefBuckets,
		}, []string{"resolver"}),
		Fallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hermes_resolver_fallbacks_total",
			Help: "Total number of times the fallback resolver was used after a primary failure.",
		}),
		LocationErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_location_errors_total",
			Help: "Total number of failed coordinate acquisitions.",
		}, []string{"kind"}),
		Superseded: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hermes_superseded_attempts_total",
			Help: "Total number of attempts abandoned because a newer request started.",
		}),
	}
}
