// Package metrics holds the Prometheus metrics of the roster server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is what the services record
type Metrics interface {
	IncPlayerWrite(op string)
	IncLogin(success bool)
	SetRosterSize(n int)
}

// Write operation labels
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Service holds all the Prometheus metrics for the server
type Service struct {
	PlayerWrites *prometheus.CounterVec
	Logins       *prometheus.CounterVec
	RosterSize   prometheus.Gauge
}

var _ Metrics = (*Service)(nil)

// NewHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayerWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_player_writes_total",
			Help: "Player writes accepted, by operation.",
		}, []string{"op"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_logins_total",
			Help: "Login attempts, by result.",
		}, []string{"result"}),
		RosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_players",
			Help: "Players on the roster after the last list or write.",
		}),
	}

	reg.MustRegister(s.PlayerWrites, s.Logins, s.RosterSize)

	return s
}

func (s *Service) IncPlayerWrite(op string) {
	s.PlayerWrites.WithLabelValues(op).Inc()
}

func (s *Service) IncLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	s.Logins.WithLabelValues(result).Inc()
}

func (s *Service) SetRosterSize(n int) {
	s.RosterSize.Set(float64(n))
}

// Nop discards everything
type Nop struct{}

var _ Metrics = Nop{}

func (Nop) IncPlayerWrite(string) {}
func (Nop) IncLogin(bool)         {}
func (Nop) SetRosterSize(int)     {}
