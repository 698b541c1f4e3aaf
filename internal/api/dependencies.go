package api

import (
	"github.com/paullizer/WildfireRiskManagementAgent/internal/config"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/metrics"
	"github.com/paullizer/WildfireRiskManagementAgent/internal/missions"
)

// MissionStore is the subset of the mission store the handlers use.
type MissionStore interface {
	Create(fp missions.FlightPath) (missions.Mission, error)
	Get(id string) (missions.Mission, error)
	UpdateFlightPath(id string, fp missions.FlightPath) (missions.Mission, error)
	Complete(id string) ([]missions.ImageInfo, error)
	Cancel(id string) (missions.Mission, error)
	ListImages(id string) ([]missions.ImageInfo, error)
}

type Options struct {
	RejectEmptyWaypoints bool
}

type Dependencies struct {
	Store   MissionStore
	Metrics *metrics.MetricsRegistry
	Options Options
}

// InitDependencies builds the mission store and metrics registry for cfg.
// Store transitions feed the mission metrics.
func InitDependencies(cfg *config.Config) (*Dependencies, error) {
	var store *missions.Store
	metricsReg := metrics.NewMetricsRegistry(func() int { return store.Len() })

	store = missions.NewStore(
		missions.WithImageHost(cfg.ImageHost),
		missions.WithTransitionHook(recordTransition(metricsReg)),
	)

	return &Dependencies{
		Store:   store,
		Metrics: metricsReg,
		Options: Options{RejectEmptyWaypoints: cfg.RejectEmptyWaypoints},
	}, nil
}

func recordTransition(metricsReg *metrics.MetricsRegistry) missions.TransitionHook {
	return func(from missions.Status, m missions.Mission) {
		if from == 0 {
			metricsReg.MissionsSubmittedTotal.Inc()
			return
		}
		metricsReg.MissionTransitionsTotal.WithLabelValues(m.Status.String()).Inc()
		if m.Status == missions.StatusCompleted {
			metricsReg.ImagesGeneratedTotal.Add(float64(len(m.Images)))
		}
	}
}
