package service

import (
	"time"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
)

type HealthStatus struct {
	Service   string
	Analyzers int
	Healthy   bool
	Checked   time.Time
}
type HealthService interface {
	Check() *HealthStatus
}

type healthService struct {
	name  string
	probe func() (int, bool)
}

func NewHealthService(engine *analyzer.Engine, name string) HealthService {
	return &healthService{
		name: name,
		probe: func() (int, bool) {
			if engine == nil {
				return 0, false
			}
			n := engine.AnalyzerCount()
			return n, n > 0
		},
	}
}

func (h *healthService) Check() *HealthStatus {
	analyzers, ok := h.probe()
	return &HealthStatus{
		Service:   h.name,
		Analyzers: analyzers,
		Healthy:   ok,
		Checked:   time.Now().UTC(),
	}
}
