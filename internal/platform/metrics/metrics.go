package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeDegraded = "degraded"
)

// Recorder is what the HTTP layer and the cache warmer report to.
type Recorder interface {
	ObserveReport(report, outcome string, elapsed time.Duration)
	ObserveCacheWarm(report string, err error)
}

var _ Recorder = (*Service)(nil)

type Service struct {
	ReportRequests *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
	ReportDegraded *prometheus.CounterVec
	CacheWarmRuns  *prometheus.CounterVec
}

// NewService creates and registers the report metrics. It uses the default
// registerer when none is given.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ReportRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soccerstats_report_requests_total",
			Help: "Report requests by report name and outcome.",
		}, []string{"report", "outcome"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "soccerstats_report_duration_seconds",
			Help:    "Time spent producing a report, including cache hits.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"report"}),
		ReportDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soccerstats_report_degraded_total",
			Help: "Reports answered with an empty result because the query failed.",
		}, []string{"report"}),
		CacheWarmRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soccerstats_cache_warm_total",
			Help: "Cache warm attempts by report and result.",
		}, []string{"report", "result"}),
	}

	reg.MustRegister(s.ReportRequests, s.ReportDuration, s.ReportDegraded, s.CacheWarmRuns)
	return s
}

// NewHandler serves the given gatherer, or the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

func (s *Service) ObserveReport(report, outcome string, elapsed time.Duration) {
	s.ReportRequests.WithLabelValues(report, outcome).Inc()
	s.ReportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
	if outcome == OutcomeDegraded {
		s.ReportDegraded.WithLabelValues(report).Inc()
	}
}

func (s *Service) ObserveCacheWarm(report string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.CacheWarmRuns.WithLabelValues(report, result).Inc()
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveReport(string, string, time.Duration) {}
func (Nop) ObserveCacheWarm(string, error)             {}
